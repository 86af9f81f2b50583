package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/kpi"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
)

type kpiConfigRepository struct {
	db *database.DB
}

func NewKPIConfigRepository(db *database.DB) kpi.ConfigRepository {
	return &kpiConfigRepository{db: db}
}

const kpiConfigColumns = `id, employee_id, name, description, target_value, unit_value,
	applicable_month, applicable_year, status, created_at, updated_at`

func scanKPIConfig(row pgx.Row) (kpi.Config, error) {
	var c kpi.Config
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Name, &c.Description, &c.TargetValue, &c.UnitValue,
		&c.ApplicableMonth, &c.ApplicableYear, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *kpiConfigRepository) Create(ctx context.Context, config kpi.Config) (kpi.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO kpi_configs (
			id, employee_id, name, description, target_value, unit_value,
			applicable_month, applicable_year, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s
	`, kpiConfigColumns)

	c, err := scanKPIConfig(q.QueryRow(ctx, query,
		uuid.NewString(), config.EmployeeID, config.Name, config.Description,
		config.TargetValue, config.UnitValue, config.ApplicableMonth, config.ApplicableYear,
		config.Status,
	))
	if err != nil {
		return kpi.Config{}, fmt.Errorf("failed to create kpi config: %w", err)
	}

	return c, nil
}

func (r *kpiConfigRepository) GetByID(ctx context.Context, id string) (kpi.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM kpi_configs WHERE id = $1`, kpiConfigColumns)

	c, err := scanKPIConfig(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Config{}, kpi.ErrConfigNotFound
		}
		return kpi.Config{}, fmt.Errorf("failed to get kpi config: %w", err)
	}

	return c, nil
}

// GetForPeriod returns period-scoped configs plus evergreen ones (no
// applicable month/year).
func (r *kpiConfigRepository) GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]kpi.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM kpi_configs
		WHERE employee_id = $1
		  AND (
			(applicable_month = $2 AND applicable_year = $3)
			OR (applicable_month IS NULL AND applicable_year IS NULL)
		  )
		ORDER BY created_at
	`, kpiConfigColumns)

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get kpi configs for period: %w", err)
	}
	defer rows.Close()

	var configs []kpi.Config
	for rows.Next() {
		c, err := scanKPIConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}

	return configs, rows.Err()
}

func (r *kpiConfigRepository) ListByEmployee(ctx context.Context, employeeID string) ([]kpi.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM kpi_configs
		WHERE employee_id = $1
		ORDER BY created_at
	`, kpiConfigColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi configs: %w", err)
	}
	defer rows.Close()

	var configs []kpi.Config
	for rows.Next() {
		c, err := scanKPIConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}

	return configs, rows.Err()
}

func (r *kpiConfigRepository) Update(ctx context.Context, id string, req kpi.UpdateConfigRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE kpi_configs SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			target_value = COALESCE($4, target_value),
			unit_value = COALESCE($5, unit_value),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, req.Name, req.Description, req.TargetValue, req.UnitValue)
	if err != nil {
		return fmt.Errorf("failed to update kpi config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrConfigNotFound
	}

	return nil
}

func (r *kpiConfigRepository) UpdateStatus(ctx context.Context, id string, status kpi.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE kpi_configs SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update kpi config status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrConfigNotFound
	}

	return nil
}

func (r *kpiConfigRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM kpi_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete kpi config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrConfigNotFound
	}

	return nil
}
