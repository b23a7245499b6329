package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
)

// MemoryRepository keeps users in a mutex-guarded map. It enforces the same
// uniqueness and monotonic id rules as the Postgres repository and backs
// tests and local runs without a database.
type MemoryRepository struct {
	mu     sync.Mutex
	byName map[string]*User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return nil, common.ErrLoginAlreadyExists
	}

	r.nextID++
	stored := &User{
		ID:           r.nextID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.byName[stored.Username] = stored

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *stored
	return &out, nil
}
