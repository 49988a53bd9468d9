//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenIssuer=TokenIssuer"
package session

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type (
	TokenIssuer interface {
		Issue(userID string, ttl time.Duration) (TokenData, error)
		// Verify checks the signature and expiry.
		Verify(EncodedToken) (TokenData, error)
	}

	TokenData struct {
		EncodedToken EncodedToken
		ID           string
		UserID       string
		IssuedAt     time.Time
		ExpiresAt    time.Time
	}

	EncodedToken string
)
