//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserAPI=UserAPI"
package session

import (
	"context"
	"time"
)

type User struct {
	ID               string
	Email            string
	Role             string
	AccountCreatedAt time.Time
	PhotoURL         string
}

type UserAPI interface {
	Login(ctx context.Context, email, password string) (Token, *User, error)
	Current(context.Context) (*User, error)
	Logout(context.Context, Token) error
}
