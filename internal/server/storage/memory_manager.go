package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
	"github.com/dmitrijs2005/merchkeeper/internal/server/users"
)

type MemoryManager struct {
	users   users.Repository
	catalog catalog.Repository
}

func (m *MemoryManager) Conn() *sql.DB {
	return nil
}

func (m *MemoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryManager) Catalog() catalog.Repository {
	return m.catalog
}

func (m *MemoryManager) Close() error {
	return nil
}

// NewMemoryManager builds an in-memory manager, seeding the catalog with the
// given items.
func NewMemoryManager(seed []catalog.Item) Manager {
	return &MemoryManager{
		users:   users.NewMemoryRepository(),
		catalog: catalog.NewMemoryRepository(seed),
	}
}
