package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/merchkeeper/internal/dbx"
)

// PostgresRepository stores saved lists in a saved_items table keyed by
// (user_id, item_id) instead of one dynamically named table per user.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.URL, &it.Kind, &it.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) ListItems(ctx context.Context, kind string) ([]Item, error) {

	query :=
		`SELECT id, url, kind, description FROM items
		 ORDER BY id
		 `
	args := []any{}

	if kind != "" {
		query =
			`SELECT id, url, kind, description FROM items
			 WHERE kind = $1
			 ORDER BY id
			 `
		args = append(args, kind)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanItems(rows)
}

func (r *PostgresRepository) ListSaved(ctx context.Context, userID int64) ([]Item, error) {

	query :=
		`SELECT i.id, i.url, i.kind, i.description
		 FROM items i
		 JOIN saved_items s ON s.item_id = i.id
		 WHERE s.user_id = $1
		 ORDER BY i.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanItems(rows)
}

func (r *PostgresRepository) SaveItems(ctx context.Context, userID int64, itemIDs []int64) ([]int64, error) {

	query :=
		`INSERT INTO saved_items (user_id, item_id)
		 SELECT $1, i.id FROM items i WHERE i.id = $2
		 ON CONFLICT (user_id, item_id) DO NOTHING
		 `

	var inserted []int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, itemID := range itemIDs {
			res, err := tx.ExecContext(ctx, query, userID, itemID)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			if n > 0 {
				inserted = append(inserted, itemID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

func (r *PostgresRepository) DeleteSaved(ctx context.Context, userID int64, itemIDs []int64) (int64, error) {

	query :=
		`DELETE FROM saved_items
		 WHERE user_id = $1 AND item_id = $2
		 `

	var deleted int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, itemID := range itemIDs {
			res, err := tx.ExecContext(ctx, query, userID, itemID)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			deleted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
