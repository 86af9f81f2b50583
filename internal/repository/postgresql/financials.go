package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type financialsRepository struct {
	db *database.DB
}

func NewFinancialsRepository(db *database.DB) finance.FinancialsRepository {
	return &financialsRepository{db: db}
}

const financialsColumns = `id, employee_id, month, year, manual_deduction,
	manual_deduction_note, manager_feedback, commitment_score, needs_improvement,
	improvement_note, created_at, updated_at`

func scanFinancials(row pgx.Row) (finance.Financials, error) {
	var f finance.Financials
	err := row.Scan(
		&f.ID, &f.EmployeeID, &f.Month, &f.Year, &f.ManualDeduction,
		&f.ManualDeductionNote, &f.ManagerFeedback, &f.CommitmentScore,
		&f.NeedsImprovement, &f.ImprovementNote, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

func (r *financialsRepository) GetForPeriod(ctx context.Context, employeeID string, month, year int) (finance.Financials, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM financials
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`, financialsColumns)

	f, err := scanFinancials(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.Financials{}, finance.ErrFinancialsNotFound
		}
		return finance.Financials{}, fmt.Errorf("failed to get financials: %w", err)
	}

	return f, nil
}

func (r *financialsRepository) UpsertDeduction(ctx context.Context, employeeID string, month, year int, amount decimal.Decimal, note string) (finance.Financials, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO financials (id, employee_id, month, year, manual_deduction, manual_deduction_note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			manual_deduction = EXCLUDED.manual_deduction,
			manual_deduction_note = EXCLUDED.manual_deduction_note,
			updated_at = NOW()
		RETURNING %s
	`, financialsColumns)

	f, err := scanFinancials(q.QueryRow(ctx, query, uuid.NewString(), employeeID, month, year, amount, note))
	if err != nil {
		return finance.Financials{}, fmt.Errorf("failed to upsert manual deduction: %w", err)
	}

	return f, nil
}

func (r *financialsRepository) UpsertReview(ctx context.Context, row finance.Financials) (finance.Financials, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO financials (
			id, employee_id, month, year, manager_feedback, commitment_score,
			needs_improvement, improvement_note, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			manager_feedback = COALESCE(EXCLUDED.manager_feedback, financials.manager_feedback),
			commitment_score = COALESCE(EXCLUDED.commitment_score, financials.commitment_score),
			needs_improvement = EXCLUDED.needs_improvement,
			improvement_note = COALESCE(EXCLUDED.improvement_note, financials.improvement_note),
			updated_at = NOW()
		RETURNING %s
	`, financialsColumns)

	f, err := scanFinancials(q.QueryRow(ctx, query,
		uuid.NewString(), row.EmployeeID, row.Month, row.Year, row.ManagerFeedback,
		row.CommitmentScore, row.NeedsImprovement, row.ImprovementNote,
	))
	if err != nil {
		return finance.Financials{}, fmt.Errorf("failed to upsert manager review: %w", err)
	}

	return f, nil
}

func (r *financialsRepository) ResetPeriod(ctx context.Context, employeeID string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE financials SET
			manual_deduction = 0,
			manual_deduction_note = '',
			manager_feedback = NULL,
			commitment_score = NULL,
			needs_improvement = FALSE,
			improvement_note = NULL,
			updated_at = NOW()
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	if _, err := q.Exec(ctx, query, employeeID, month, year); err != nil {
		return fmt.Errorf("failed to reset financials: %w", err)
	}

	return nil
}
