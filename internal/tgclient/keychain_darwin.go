//go:build darwin

package tgclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotd/td/session"
	"github.com/keybase/go-keychain"
)

const (
	keychainService = "tgcompose"
	keychainAccount = "telegram-session"
)

// SessionStorage keeps the MTProto session in the macOS Keychain.
type SessionStorage struct{}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{}
}

func sessionItem() keychain.Item {
	item := keychain.NewItem()
	item.SetSecClass(keychain.SecClassGenericPassword)
	item.SetService(keychainService)
	item.SetAccount(keychainAccount)
	return item
}

func (s *SessionStorage) LoadSession(_ context.Context) ([]byte, error) {
	query := sessionItem()
	query.SetMatchLimit(keychain.MatchLimitOne)
	query.SetReturnData(true)

	results, err := keychain.QueryItem(query)
	if errors.Is(err, keychain.ErrorItemNotFound) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying keychain: %w", err)
	}
	if len(results) == 0 {
		return nil, session.ErrNotFound
	}

	return results[0].Data, nil
}

func (s *SessionStorage) StoreSession(_ context.Context, data []byte) error {
	// Keychain has no upsert, so drop any previous item first.
	_ = keychain.DeleteItem(sessionItem())

	item := sessionItem()
	item.SetLabel("tgcompose Telegram session")
	item.SetData(data)
	item.SetSynchronizable(keychain.SynchronizableNo)
	item.SetAccessible(keychain.AccessibleWhenUnlocked)

	if err := keychain.AddItem(item); err != nil {
		return fmt.Errorf("adding keychain item: %w", err)
	}
	return nil
}

func (s *SessionStorage) DeleteSession() error {
	err := keychain.DeleteItem(sessionItem())
	if errors.Is(err, keychain.ErrorItemNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting keychain item: %w", err)
	}
	return nil
}
