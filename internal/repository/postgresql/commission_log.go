package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type commissionLogRepository struct {
	db *database.DB
}

func NewCommissionLogRepository(db *database.DB) finance.CommissionLogRepository {
	return &commissionLogRepository{db: db}
}

const commissionLogColumns = `id, employee_id, month, year, amount, description, created_at`

func scanCommissionLog(row pgx.Row) (finance.OtherCommissionLog, error) {
	var l finance.OtherCommissionLog
	err := row.Scan(&l.ID, &l.EmployeeID, &l.Month, &l.Year, &l.Amount, &l.Description, &l.CreatedAt)
	return l, err
}

func (r *commissionLogRepository) Create(ctx context.Context, log finance.OtherCommissionLog) (finance.OtherCommissionLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO other_commission_logs (id, employee_id, month, year, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`, commissionLogColumns)

	l, err := scanCommissionLog(q.QueryRow(ctx, query,
		uuid.NewString(), log.EmployeeID, log.Month, log.Year, log.Amount, log.Description,
	))
	if err != nil {
		return finance.OtherCommissionLog{}, fmt.Errorf("failed to create commission log: %w", err)
	}

	return l, nil
}

func (r *commissionLogRepository) GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]finance.OtherCommissionLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM other_commission_logs
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at
	`, commissionLogColumns)

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get commission logs: %w", err)
	}
	defer rows.Close()

	var logs []finance.OtherCommissionLog
	for rows.Next() {
		l, err := scanCommissionLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (r *commissionLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM other_commission_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete commission log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrCommissionLogNotFound
	}

	return nil
}

func (r *commissionLogRepository) DeleteForPeriod(ctx context.Context, employeeID string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM other_commission_logs
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`, employeeID, month, year)
	if err != nil {
		return fmt.Errorf("failed to delete commission logs for period: %w", err)
	}

	return nil
}
