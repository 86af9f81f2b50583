package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type problemLogRepository struct {
	db *database.DB
}

func NewProblemLogRepository(db *database.DB) problem.ProblemLogRepository {
	return &problemLogRepository{db: db}
}

const problemLogColumns = `id, employee_id, title, description, solution_status,
	potential_bonus_amount, solved_at, created_at, updated_at`

func scanProblemLog(row pgx.Row) (problem.ProblemLog, error) {
	var p problem.ProblemLog
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Title, &p.Description, &p.SolutionStatus,
		&p.PotentialBonusAmount, &p.SolvedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *problemLogRepository) Create(ctx context.Context, log problem.ProblemLog) (problem.ProblemLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO problem_logs (
			id, employee_id, title, description, solution_status,
			potential_bonus_amount, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`, problemLogColumns)

	p, err := scanProblemLog(q.QueryRow(ctx, query,
		uuid.NewString(), log.EmployeeID, log.Title, log.Description,
		log.SolutionStatus, log.PotentialBonusAmount,
	))
	if err != nil {
		return problem.ProblemLog{}, fmt.Errorf("failed to create problem log: %w", err)
	}

	return p, nil
}

func (r *problemLogRepository) GetByID(ctx context.Context, id string) (problem.ProblemLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM problem_logs WHERE id = $1`, problemLogColumns)

	p, err := scanProblemLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return problem.ProblemLog{}, problem.ErrProblemLogNotFound
		}
		return problem.ProblemLog{}, fmt.Errorf("failed to get problem log: %w", err)
	}

	return p, nil
}

func (r *problemLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]problem.ProblemLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM problem_logs
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`, problemLogColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list problem logs: %w", err)
	}
	defer rows.Close()

	var logs []problem.ProblemLog
	for rows.Next() {
		p, err := scanProblemLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, p)
	}

	return logs, rows.Err()
}

func (r *problemLogRepository) MarkSolved(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE problem_logs
		SET solution_status = $2, solved_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, id, problem.SolutionStatusSolved)
	if err != nil {
		return fmt.Errorf("failed to mark problem solved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return problem.ErrProblemLogNotFound
	}

	return nil
}

func (r *problemLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM problem_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete problem log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return problem.ErrProblemLogNotFound
	}

	return nil
}

// SolvedBonusTotal sums all-time solved bonuses. No period filter by design of
// the current product; see DESIGN.md.
func (r *problemLogRepository) SolvedBonusTotal(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(potential_bonus_amount), 0)
		FROM problem_logs
		WHERE employee_id = $1 AND solution_status = $2
	`, employeeID, problem.SolutionStatusSolved).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total solved bonuses: %w", err)
	}

	return total, nil
}
