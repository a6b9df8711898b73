package repository

import (
	"database/sql"

	"github.com/luxehh/hfmessages-backend/internal/model"
)

// ContentRepositoryInterface is the read-only view of the externally managed
// content table.
type ContentRepositoryInterface interface {
	ListActive(campaign string) ([]model.ContentItem, error)
}

type ContentRepository struct {
	DB *sql.DB
}

// ListActive fetches active content for a campaign ordered by cadence index.
func (r *ContentRepository) ListActive(campaign string) ([]model.ContentItem, error) {
	query := `
        SELECT id, campaign, order_number, slot, body, is_active, created_at, updated_at
        FROM content_items
        WHERE campaign = $1 AND is_active = TRUE
        ORDER BY order_number
    `
	rows, err := r.DB.Query(query, campaign)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.ContentItem{}
	for rows.Next() {
		var item model.ContentItem
		if err := rows.Scan(&item.ID, &item.Campaign, &item.OrderNumber, &item.Slot,
			&item.Body, &item.IsActive, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
