// internal/model/content_item.go
package model

import "time"

// Coaching slots. The newsletter campaign has a single unnamed slot ("").
const (
	SlotMorning = "morning"
	SlotMidday  = "midday"
	SlotEvening = "evening"
)

// ContentItem is one externally managed message keyed by cadence index.
// The core reads active items ordered by OrderNumber and falls back to the
// built-in tables in internal/content when the store yields nothing.
type ContentItem struct {
	ID          int       `db:"id" json:"id"`
	Campaign    string    `db:"campaign" json:"campaign"`
	OrderNumber int       `db:"order_number" json:"order_number"` // 1..30 or 1..12
	Slot        string    `db:"slot" json:"slot"`
	Body        string    `db:"body" json:"body"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
