package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/sahatech/clinic-seed/internal/seed"
)

type memoryAccount struct {
	uid      string
	password string
}

// MemoryAccounts is an in-process account service for dry runs and tests
type MemoryAccounts struct {
	mu       sync.Mutex
	accounts map[string]memoryAccount
	next     int
	// CreateErrors forces CreateAccount to fail for the given emails
	CreateErrors map[string]error
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{
		accounts:     make(map[string]memoryAccount),
		CreateErrors: make(map[string]error),
	}
}

func (m *MemoryAccounts) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.CreateErrors[email]; ok {
		return "", err
	}
	if _, ok := m.accounts[email]; ok {
		return "", fmt.Errorf("%w: %s", seed.ErrEmailExists, email)
	}
	m.next++
	uid := fmt.Sprintf("uid%04d", m.next)
	m.accounts[email] = memoryAccount{uid: uid, password: password}
	return uid, nil
}

func (m *MemoryAccounts) SignIn(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, ok := m.accounts[email]
	if !ok || acct.password != password {
		return "", fmt.Errorf("%w: %s", ErrInvalidCredentials, email)
	}
	return acct.uid, nil
}

// UID returns the uid registered for email, or "" if there is none
func (m *MemoryAccounts) UID(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[email].uid
}
