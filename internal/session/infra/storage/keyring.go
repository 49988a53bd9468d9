package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
)

const keyringService = "hwstore-client"

type keyringStore struct {
	user string
}

// NewKeyringStore keeps the token in the OS credential manager under the given account name.
func NewKeyringStore(account string) session.TokenStore {
	return keyringStore{user: fmt.Sprintf("token-%s", account)}
}

func (s keyringStore) Load(context.Context) (session.Token, bool, error) {
	token, err := keyring.Get(keyringService, s.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load token from keyring: %w", err)
	}

	return session.Token(token), token != "", nil
}

func (s keyringStore) Save(_ context.Context, token session.Token) error {
	err := keyring.Set(keyringService, s.user, string(token))
	if err != nil {
		return fmt.Errorf("save token to keyring: %w", err)
	}

	return nil
}

func (s keyringStore) Clear(context.Context) error {
	err := keyring.Delete(keyringService, s.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete token from keyring: %w", err)
	}

	return nil
}
