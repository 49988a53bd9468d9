package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

type fileStore struct {
	mu   sync.Mutex
	path string
}

type tokenFile struct {
	Token string `json:"token"`
}

// NewFileStore keeps the token in a JSON file readable by the owner only.
func NewFileStore(path string) session.TokenStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load(context.Context) (session.Token, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read token file: %w", err)
	}

	var content tokenFile
	err = json.Unmarshal(data, &content)
	if err != nil {
		return "", false, fmt.Errorf("decode token file: %w", err)
	}

	return session.Token(content.Token), content.Token != "", nil
}

func (s *fileStore) Save(_ context.Context, token session.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tokenFile{Token: string(token)})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(s.path), dirMode)
	if err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	err = tmp.Chmod(fileMode)
	if err == nil {
		_, err = tmp.Write(data)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	return nil
}

func (s *fileStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}
