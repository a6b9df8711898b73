// internal/model/message_log.go
package model

import "time"

// MessageLog is one delivery attempt for a (campaign, address, index, slot)
// cell. The unique key on those four columns is what keeps a repeated sweep
// from double-delivering: only rows with status "sent" count as delivered.
type MessageLog struct {
	ID           int       `db:"id" json:"id"`
	Campaign     string    `db:"campaign" json:"campaign"`
	Address      string    `db:"address" json:"address"`
	CadenceIndex int       `db:"cadence_index" json:"cadence_index"`
	Slot         string    `db:"slot" json:"slot"`
	Status       string    `db:"status" json:"status"` // sent, failed
	Body         string    `db:"body" json:"body"`
	ProviderSID  string    `db:"provider_sid" json:"provider_sid,omitempty"`
	LastError    string    `db:"last_error" json:"last_error,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
