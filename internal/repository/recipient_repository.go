package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/luxehh/hfmessages-backend/internal/errors"
	"github.com/luxehh/hfmessages-backend/internal/model"
)

// RecipientRepositoryInterface defines the narrow view of the record store
// the campaign engine needs.
type RecipientRepositoryInterface interface {
	// ListSendable returns recipients eligible for a send sweep: active, and
	// for the coaching campaign additionally opted in via continue_program.
	ListSendable(campaign string) ([]model.Recipient, error)
	// ListActive returns active recipients regardless of the continue flag.
	ListActive(campaign string) ([]model.Recipient, error)
	// ListAll returns every recipient of a campaign, active or not.
	ListAll(campaign string) ([]model.Recipient, error)
	GetByAddress(campaign, address string) (*model.Recipient, error)
	Create(r *model.Recipient) error
	// UpdateState writes active/continue_program/enrollment_anchor under an
	// optimistic version check.
	UpdateState(r *model.Recipient) error
}

type RecipientRepository struct {
	DB *sql.DB
}

const recipientColumns = `id, campaign, first_name, last_name, address, active, continue_program, enrollment_anchor, version, created_at, updated_at`

func scanRecipient(row interface{ Scan(...any) error }, r *model.Recipient) error {
	return row.Scan(
		&r.ID, &r.Campaign, &r.FirstName, &r.LastName, &r.Address,
		&r.Active, &r.ContinueProgram, &r.EnrollmentAnchor,
		&r.Version, &r.CreatedAt, &r.UpdatedAt,
	)
}

func (repo *RecipientRepository) list(query string, args ...any) ([]model.Recipient, error) {
	rows, err := repo.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipients := []model.Recipient{}
	for rows.Next() {
		var r model.Recipient
		if err := scanRecipient(rows, &r); err != nil {
			return nil, err
		}
		recipients = append(recipients, r)
	}
	return recipients, rows.Err()
}

func (repo *RecipientRepository) ListSendable(campaign string) ([]model.Recipient, error) {
	query := `
        SELECT ` + recipientColumns + `
        FROM recipients
        WHERE campaign = $1 AND active = TRUE
          AND (campaign <> $2 OR continue_program = TRUE)
        ORDER BY id
    `
	return repo.list(query, campaign, model.CampaignCoaching)
}

func (repo *RecipientRepository) ListActive(campaign string) ([]model.Recipient, error) {
	query := `
        SELECT ` + recipientColumns + `
        FROM recipients
        WHERE campaign = $1 AND active = TRUE
        ORDER BY id
    `
	return repo.list(query, campaign)
}

func (repo *RecipientRepository) ListAll(campaign string) ([]model.Recipient, error) {
	query := `
        SELECT ` + recipientColumns + `
        FROM recipients
        WHERE campaign = $1
        ORDER BY id
    `
	return repo.list(query, campaign)
}

func (repo *RecipientRepository) GetByAddress(campaign, address string) (*model.Recipient, error) {
	query := `
        SELECT ` + recipientColumns + `
        FROM recipients
        WHERE campaign = $1 AND address = $2
    `
	var r model.Recipient
	err := scanRecipient(repo.DB.QueryRow(query, campaign, address), &r)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &r, nil
}

func (repo *RecipientRepository) Create(r *model.Recipient) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.EnrollmentAnchor.IsZero() {
		r.EnrollmentAnchor = now
	}
	query := `
        INSERT INTO recipients
        (campaign, first_name, last_name, address, active, continue_program, enrollment_anchor, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
        RETURNING id, version
    `
	return repo.DB.QueryRow(query,
		r.Campaign, r.FirstName, r.LastName, r.Address,
		r.Active, r.ContinueProgram, r.EnrollmentAnchor,
		r.CreatedAt, r.UpdatedAt,
	).Scan(&r.ID, &r.Version)
}

// UpdateState flips the lifecycle fields under an optimistic version check.
// Zero rows affected means someone else wrote first; callers get a
// StateConflict and must re-read before retrying.
func (repo *RecipientRepository) UpdateState(r *model.Recipient) error {
	query := `
        UPDATE recipients
        SET active=$1, continue_program=$2, enrollment_anchor=$3, version=version+1, updated_at=NOW()
        WHERE id=$4 AND version=$5
    `
	res, err := repo.DB.Exec(query, r.Active, r.ContinueProgram, r.EnrollmentAnchor, r.ID, r.Version)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewStateConflict(r.Address, r.Version)
	}
	r.Version++
	return nil
}

var _ RecipientRepositoryInterface = (*RecipientRepository)(nil)
