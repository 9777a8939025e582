package models

import "time"

// CartLine is one persisted cart row: the accumulated quantity for a single
// product. The unique index on ProductID enforces at most one line per
// product, which the store's upsert relies on.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID int       `gorm:"uniqueIndex;not null" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// EnrichedCartLine is a CartLine joined with its live catalog product. Built
// for the cart view only, never persisted.
type EnrichedCartLine struct {
	ID        uint    `json:"id"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}
