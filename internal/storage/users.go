package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MemoryUsers holds operator credentials for the in-memory mode. Passwords
// are kept as bcrypt hashes, the same way the users table stores them.
type MemoryUsers struct {
	mu     sync.RWMutex
	hashes map[string][]byte
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{hashes: make(map[string][]byte)}
}

func (u *MemoryUsers) EnsureUser(_ context.Context, username, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.hashes[username]; ok {
		return false, nil
	}
	u.hashes[username] = hash
	return true, nil
}

func (u *MemoryUsers) ValidateUser(_ context.Context, username, password string) (bool, error) {
	u.mu.RLock()
	hash, ok := u.hashes[username]
	u.mu.RUnlock()
	if !ok {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to compare password for %s: %w", username, err)
	}
	return true, nil
}
