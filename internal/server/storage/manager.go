// Package storage wires repositories to their backing store. The Postgres
// manager is the production path; the in-memory manager backs tests and
// database-free local runs.
package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
	"github.com/dmitrijs2005/merchkeeper/internal/server/users"
)

type Manager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Catalog() catalog.Repository
	Close() error
}
