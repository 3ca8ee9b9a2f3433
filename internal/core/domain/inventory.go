package domain

import "time"

type InventoryItem struct {
	ID        int64     `db:"id" json:"id"`
	ItemName  string    `db:"item_name" json:"itemName"`
	Quantity  int       `db:"quantity" json:"quantity"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// InventoryDetail is an inventory row merged with recipe enrichment data.
type InventoryDetail struct {
	InventoryItem
	RecipeSummary
}
