//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenDecoder=TokenDecoder,TokenStore=TokenStore"
package session

import (
	"context"
	"time"
)

// Token is an opaque bearer credential issued by the storefront backend.
type Token string

type Claims struct {
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type (
	// TokenDecoder reads claims without verifying the token signature.
	TokenDecoder interface {
		Decode(Token) (Claims, error)
	}

	TokenStore interface {
		Load(context.Context) (Token, bool, error)
		Save(context.Context, Token) error
		Clear(context.Context) error
	}
)
