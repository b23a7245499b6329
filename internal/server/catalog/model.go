// Package catalog manages the collectible item listings and the per-user
// saved lists that the protected routes expose.
package catalog

// Item kinds as stored in the items.kind column.
const (
	KindGames = "games"
	KindMerch = "merch"
)

// Item is one catalog entry (a game release or a piece of merchandise).
type Item struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}
