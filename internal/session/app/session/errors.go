package session

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTransientFailure     = errors.New("transient failure")
	ErrSessionExpired       = errors.New("session expired")
	ErrTokenDecode          = errors.New("token decode")
	ErrUnauthorized         = errors.New("unauthorized")
)

type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}
