package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
)

const planColumns = `id, number, client_name, status, issued_at, due_at, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo over a DBTX.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (number, client_name, status, issued_at, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Number,
		p.ClientName,
		p.Status,
		nullableTimeToString(p.IssuedAt, dateLayout),
		nullableTimeToString(p.DueAt, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("inserting plan %q: %w", p.Number, ErrConstraint)
		}
		return fmt.Errorf("inserting plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading plan id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) GetByNumber(ctx context.Context, number string) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE number = ?`, number)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY number DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := r.scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET number = ?, client_name = ?, status = ?, issued_at = ?, due_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Number,
		p.ClientName,
		p.Status,
		nullableTimeToString(p.IssuedAt, dateLayout),
		nullableTimeToString(p.DueAt, dateLayout),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("updating plan %q: %w", p.Number, ErrConstraint)
		}
		return fmt.Errorf("updating plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id int64) error {
	// Activities, followups and external links go with the plan via
	// ON DELETE CASCADE foreign keys.
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var issuedAt, dueAt sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Number, &p.ClientName, &p.Status, &issuedAt, &dueAt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return r.populatePlan(&p, issuedAt, dueAt, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) scanPlanRow(rows *sql.Rows) (*domain.Plan, error) {
	var p domain.Plan
	var issuedAt, dueAt sql.NullString
	var createdAtStr, updatedAtStr string

	if err := rows.Scan(&p.ID, &p.Number, &p.ClientName, &p.Status, &issuedAt, &dueAt, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning plan row: %w", err)
	}
	return r.populatePlan(&p, issuedAt, dueAt, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) populatePlan(p *domain.Plan, issuedAt, dueAt sql.NullString, createdAtStr, updatedAtStr string) (*domain.Plan, error) {
	p.IssuedAt = parseNullableTime(issuedAt, dateLayout)
	p.DueAt = parseNullableTime(dueAt, dateLayout)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
