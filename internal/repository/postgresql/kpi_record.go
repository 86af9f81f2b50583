package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type kpiRecordRepository struct {
	db *database.DB
}

func NewKPIRecordRepository(db *database.DB) kpi.RecordRepository {
	return &kpiRecordRepository{db: db}
}

const kpiRecordColumns = `id, config_id, employee_id, month, year, week_number,
	achieved_value, notes, created_at, updated_at`

func scanKPIRecord(row pgx.Row) (kpi.Record, error) {
	var rec kpi.Record
	err := row.Scan(
		&rec.ID, &rec.ConfigID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.WeekNumber,
		&rec.AchievedValue, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *kpiRecordRepository) Create(ctx context.Context, record kpi.Record) (kpi.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO kpi_records (
			id, config_id, employee_id, month, year, week_number,
			achieved_value, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s
	`, kpiRecordColumns)

	rec, err := scanKPIRecord(q.QueryRow(ctx, query,
		uuid.NewString(), record.ConfigID, record.EmployeeID, record.Month, record.Year,
		record.WeekNumber, record.AchievedValue, record.Notes,
	))
	if err != nil {
		return kpi.Record{}, fmt.Errorf("failed to create kpi record: %w", err)
	}

	return rec, nil
}

func (r *kpiRecordRepository) GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]kpi.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM kpi_records
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY week_number
	`, kpiRecordColumns)

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get kpi records for period: %w", err)
	}
	defer rows.Close()

	var records []kpi.Record
	for rows.Next() {
		rec, err := scanKPIRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *kpiRecordRepository) ListByConfig(ctx context.Context, configID string) ([]kpi.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM kpi_records
		WHERE config_id = $1
		ORDER BY year, month, week_number
	`, kpiRecordColumns)

	rows, err := q.Query(ctx, query, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi records: %w", err)
	}
	defer rows.Close()

	var records []kpi.Record
	for rows.Next() {
		rec, err := scanKPIRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *kpiRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM kpi_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete kpi record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrRecordNotFound
	}

	return nil
}
