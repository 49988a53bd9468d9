package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/session"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

const issuerName = "hwstore-devserver"

type issuer struct {
	key   []byte
	clock pkgtime.Clock
}

func NewIssuer(key []byte, clock pkgtime.Clock) session.TokenIssuer {
	return issuer{
		key:   key,
		clock: clock,
	}
}

func (i issuer) Issue(userID string, ttl time.Duration) (session.TokenData, error) {
	issuedAt := i.clock.Now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuerName,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("sign token: %w", err)
	}

	return session.TokenData{
		EncodedToken: session.EncodedToken(signed),
		ID:           claims.ID,
		UserID:       userID,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

func (i issuer) Verify(token session.EncodedToken) (session.TokenData, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)

	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(string(token), &claims, func(*jwt.Token) (any, error) {
		return i.key, nil
	})
	if errors.Is(err, jwt.ErrTokenMalformed) ||
		errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
		errors.Is(err, jwt.ErrTokenExpired) ||
		errors.Is(err, jwt.ErrTokenInvalidClaims) ||
		errors.Is(err, jwt.ErrTokenUnverifiable) {
		return session.TokenData{}, fmt.Errorf("%w: %w", session.ErrInvalidToken, err)
	}
	if err != nil {
		return session.TokenData{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return session.TokenData{}, fmt.Errorf("%w: token has no id or subject", session.ErrInvalidToken)
	}

	result := session.TokenData{
		EncodedToken: token,
		ID:           claims.ID,
		UserID:       claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
