package repository

import (
	"database/sql"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/model"
)

// PendingRepositoryInterface is the durable pending-confirmation store shared
// between the send sweep (producer) and the reply router / timeout sweep
// (consumers). Keyed by contact address; an upsert overwrites, so a recipient
// never holds more than one entry.
type PendingRepositoryInterface interface {
	Upsert(address string, sentAt time.Time) error
	Get(address string) (*model.PendingConfirmation, error)
	Delete(address string) error
	ListOlderThan(cutoff time.Time) ([]model.PendingConfirmation, error)
}

type PendingRepository struct {
	DB *sql.DB
}

func (r *PendingRepository) Upsert(address string, sentAt time.Time) error {
	query := `
        INSERT INTO pending_confirmations (address, sent_at, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (address) DO UPDATE SET sent_at = EXCLUDED.sent_at
    `
	_, err := r.DB.Exec(query, address, sentAt)
	return err
}

func (r *PendingRepository) Get(address string) (*model.PendingConfirmation, error) {
	query := `SELECT address, sent_at, created_at FROM pending_confirmations WHERE address = $1`
	var p model.PendingConfirmation
	err := r.DB.QueryRow(query, address).Scan(&p.Address, &p.SentAt, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no pending entry
		}
		return nil, err
	}
	return &p, nil
}

func (r *PendingRepository) Delete(address string) error {
	_, err := r.DB.Exec(`DELETE FROM pending_confirmations WHERE address = $1`, address)
	return err
}

// ListOlderThan returns entries whose prompt went out at or before the
// cutoff: a prompt exactly one window old has already timed out. The
// threshold is computed against the stored sent_at, so the sweep interval
// only bounds detection latency.
func (r *PendingRepository) ListOlderThan(cutoff time.Time) ([]model.PendingConfirmation, error) {
	query := `SELECT address, sent_at, created_at FROM pending_confirmations WHERE sent_at <= $1 ORDER BY sent_at`
	rows, err := r.DB.Query(query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.PendingConfirmation{}
	for rows.Next() {
		var p model.PendingConfirmation
		if err := rows.Scan(&p.Address, &p.SentAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

var _ PendingRepositoryInterface = (*PendingRepository)(nil)
