// internal/model/recipient.go
package model

import "time"

// Campaign identifiers. Each campaign has its own cadence length and timezone.
const (
	CampaignCoaching   = "coaching"   // 30-day heart health program
	CampaignNewsletter = "newsletter" // 12-month newsletter subscription
)

// Recipient is one campaign membership. The core only ever flips Active /
// ContinueProgram and resets EnrollmentAnchor; creation and deletion belong
// to the admin collaborator.
type Recipient struct {
	ID               int       `db:"id" json:"id"`
	Campaign         string    `db:"campaign" json:"campaign"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	Address          string    `db:"address" json:"address"` // E.164 phone number
	Active           bool      `db:"active" json:"active"`
	ContinueProgram  bool      `db:"continue_program" json:"continue_program"` // coaching only
	EnrollmentAnchor time.Time `db:"enrollment_anchor" json:"enrollment_anchor"`
	Version          int       `db:"version" json:"version"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
