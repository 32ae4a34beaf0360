//go:build !darwin

package tgclient

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gotd/td/session"
)

// SessionStorage keeps the MTProto session in a file under the XDG state
// directory on platforms without a keychain.
type SessionStorage struct {
	path string
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{path: sessionPath()}
}

func sessionPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		homeDir, _ := os.UserHomeDir()
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	dir := filepath.Join(stateHome, "tgcompose")
	_ = os.MkdirAll(dir, 0o700)

	return filepath.Join(dir, "session.json")
}

func (s *SessionStorage) LoadSession(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, session.ErrNotFound
	}
	return data, nil
}

func (s *SessionStorage) StoreSession(_ context.Context, data []byte) error {
	return os.WriteFile(s.path, data, 0o600)
}

func (s *SessionStorage) DeleteSession() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
