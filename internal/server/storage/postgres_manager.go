package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
	"github.com/dmitrijs2005/merchkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/merchkeeper/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresManager struct {
	db      *sql.DB
	users   users.Repository
	catalog catalog.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Catalog() catalog.Repository {
	return m.catalog
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresManager(dsn string) (Manager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:      db,
		users:   users.NewPostgresRepository(db),
		catalog: catalog.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
