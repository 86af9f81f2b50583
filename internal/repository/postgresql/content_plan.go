package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/contentplan"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type contentPlanRepository struct {
	db *database.DB
}

func NewContentPlanRepository(db *database.DB) contentplan.ItemRepository {
	return &contentPlanRepository{db: db}
}

const contentPlanColumns = `id, month, year, channel, title, owner_id, publish_date,
	status, notes, created_at, updated_at`

func scanContentPlanItem(row pgx.Row) (contentplan.Item, error) {
	var item contentplan.Item
	err := row.Scan(
		&item.ID, &item.Month, &item.Year, &item.Channel, &item.Title, &item.OwnerID,
		&item.PublishDate, &item.Status, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *contentPlanRepository) Create(ctx context.Context, item contentplan.Item) (contentplan.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO content_plan_items (
			id, month, year, channel, title, owner_id, publish_date, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s
	`, contentPlanColumns)

	created, err := scanContentPlanItem(q.QueryRow(ctx, query,
		uuid.NewString(), item.Month, item.Year, item.Channel, item.Title,
		item.OwnerID, item.PublishDate, item.Status, item.Notes,
	))
	if err != nil {
		return contentplan.Item{}, fmt.Errorf("failed to create content plan item: %w", err)
	}

	return created, nil
}

func (r *contentPlanRepository) GetByID(ctx context.Context, id string) (contentplan.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM content_plan_items WHERE id = $1`, contentPlanColumns)

	item, err := scanContentPlanItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contentplan.Item{}, contentplan.ErrItemNotFound
		}
		return contentplan.Item{}, fmt.Errorf("failed to get content plan item: %w", err)
	}

	return item, nil
}

func (r *contentPlanRepository) GetForPeriod(ctx context.Context, month, year int) ([]contentplan.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM content_plan_items
		WHERE month = $1 AND year = $2
		ORDER BY publish_date NULLS LAST, created_at
	`, contentPlanColumns)

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get content plan items: %w", err)
	}
	defer rows.Close()

	var items []contentplan.Item
	for rows.Next() {
		item, err := scanContentPlanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *contentPlanRepository) Update(ctx context.Context, req contentplan.UpdateItemRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE content_plan_items SET
			channel = COALESCE($2, channel),
			title = COALESCE($3, title),
			owner_id = COALESCE($4, owner_id),
			publish_date = COALESCE($5::date, publish_date),
			status = COALESCE($6, status),
			notes = COALESCE($7, notes),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Channel, req.Title, req.OwnerID, req.PublishDate, req.Status, req.Notes)
	if err != nil {
		return fmt.Errorf("failed to update content plan item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contentplan.ErrItemNotFound
	}

	return nil
}

func (r *contentPlanRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM content_plan_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content plan item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contentplan.ErrItemNotFound
	}

	return nil
}
