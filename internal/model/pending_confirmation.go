// internal/model/pending_confirmation.go
package model

import "time"

// PendingConfirmation marks a recipient who was asked to confirm program
// continuation and has not replied yet. Keyed by contact address; a new
// prompt overwrites the prior entry, so at most one exists per recipient.
type PendingConfirmation struct {
	Address   string    `db:"address" json:"address"`
	SentAt    time.Time `db:"sent_at" json:"sent_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
