package catalog

import "context"

type Repository interface {
	// ListItems returns catalog items, optionally filtered by kind
	// (empty kind means all).
	ListItems(ctx context.Context, kind string) ([]Item, error)

	// ListSaved returns the items the user has saved.
	ListSaved(ctx context.Context, userID int64) ([]Item, error)

	// SaveItems adds catalog items to the user's saved list and reports the
	// ids actually inserted. Already-saved and unknown ids are skipped.
	SaveItems(ctx context.Context, userID int64, itemIDs []int64) ([]int64, error)

	// DeleteSaved removes items from the user's saved list and reports how
	// many rows went away.
	DeleteSaved(ctx context.Context, userID int64, itemIDs []int64) (int64, error)
}
