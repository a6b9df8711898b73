package repository

import (
	"database/sql"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/model"
)

// MessageLogRepositoryInterface records delivery attempts. The unique key on
// (campaign, address, cadence_index, slot) is the idempotency guard: cadence
// position is derived from dates, so without this log a repeated sweep would
// happily deliver the same cell twice.
type MessageLogRepositoryInterface interface {
	// AlreadySent reports whether a cell has a successful delivery. Failed
	// attempts do not count; they are retried on the next cadence cycle.
	AlreadySent(campaign, address string, cadenceIndex int, slot string) (bool, error)
	// Record upserts the attempt for a cell, overwriting a prior failure.
	Record(entry *model.MessageLog) error
	GetByID(id int) (*model.MessageLog, error)
	// Stats returns delivery counts by status for a campaign.
	Stats(campaign string) (map[string]int, error)
}

type MessageLogRepository struct {
	DB *sql.DB
}

func (r *MessageLogRepository) AlreadySent(campaign, address string, cadenceIndex int, slot string) (bool, error) {
	query := `
        SELECT 1 FROM message_log
        WHERE campaign = $1 AND address = $2 AND cadence_index = $3 AND slot = $4 AND status = 'sent'
        LIMIT 1
    `
	var tmp int
	err := r.DB.QueryRow(query, campaign, address, cadenceIndex, slot).Scan(&tmp)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *MessageLogRepository) Record(entry *model.MessageLog) error {
	entry.CreatedAt = time.Now()
	query := `
        INSERT INTO message_log (campaign, address, cadence_index, slot, status, body, provider_sid, last_error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (campaign, address, cadence_index, slot) DO UPDATE
        SET status = EXCLUDED.status,
            body = EXCLUDED.body,
            provider_sid = EXCLUDED.provider_sid,
            last_error = EXCLUDED.last_error
        RETURNING id
    `
	return r.DB.QueryRow(query,
		entry.Campaign, entry.Address, entry.CadenceIndex, entry.Slot,
		entry.Status, entry.Body, entry.ProviderSID, entry.LastError, entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *MessageLogRepository) GetByID(id int) (*model.MessageLog, error) {
	query := `
        SELECT id, campaign, address, cadence_index, slot, status, body, provider_sid, last_error, created_at
        FROM message_log
        WHERE id = $1
    `
	var entry model.MessageLog
	err := r.DB.QueryRow(query, id).Scan(
		&entry.ID, &entry.Campaign, &entry.Address, &entry.CadenceIndex, &entry.Slot,
		&entry.Status, &entry.Body, &entry.ProviderSID, &entry.LastError, &entry.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *MessageLogRepository) Stats(campaign string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM message_log WHERE campaign=$1 GROUP BY status`
	rows, err := r.DB.Query(query, campaign)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]int{"sent": 0, "failed": 0}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

var _ MessageLogRepositoryInterface = (*MessageLogRepository)(nil)
