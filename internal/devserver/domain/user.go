package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID               string
	Email            string
	Role             string
	PasswordHash     string
	AccountCreatedAt time.Time
	PhotoURL         *string
}

type UserRepository interface {
	Store(User) error
	FindByID(id string) (User, error)
	FindByEmail(email string) (User, error)
}
