package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
)

type decoder struct {
	parser *jwt.Parser
}

// NewDecoder returns a decoder that reads the claims segment only, the signature is never checked.
func NewDecoder() session.TokenDecoder {
	return decoder{
		parser: jwt.NewParser(),
	}
}

func (d decoder) Decode(token session.Token) (session.Claims, error) {
	var claims jwt.RegisteredClaims
	_, _, err := d.parser.ParseUnverified(string(token), &claims)
	if err != nil {
		return session.Claims{}, fmt.Errorf("%w: %w", session.ErrTokenDecode, err)
	}
	if claims.ExpiresAt == nil {
		return session.Claims{}, fmt.Errorf("%w: exp claim is missing", session.ErrTokenDecode)
	}

	result := session.Claims{
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}
