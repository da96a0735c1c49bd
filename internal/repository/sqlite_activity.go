package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
)

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, plan_id, code, description, responsible, start_date, end_date,
		status, progress, kind, order_index, parent_id, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo over a DBTX, so it can run
// against the shared handle or a transaction.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (plan_id, code, description, responsible, start_date, end_date,
		status, progress, kind, order_index, parent_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		a.PlanID,
		a.Code,
		a.Description,
		nullableStrToValue(a.Responsible),
		nullableTimeToString(a.StartDate, dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		string(a.Status),
		a.Progress,
		string(a.Kind),
		a.OrderIndex,
		a.ParentID, // *int64: nil becomes SQL NULL
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("inserting activity %q: %w", a.Code, ErrConstraint)
		}
		return fmt.Errorf("inserting activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading activity id: %w", err)
	}
	a.ID = id
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanActivity(row)
}

func (r *SQLiteActivityRepo) GetByCode(ctx context.Context, planID int64, code string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE plan_id = ? AND code = ?`
	row := r.db.QueryRowContext(ctx, query, planID, code)
	return r.scanActivity(row)
}

func (r *SQLiteActivityRepo) ListByPlan(ctx context.Context, planID int64) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE plan_id = ?
		ORDER BY order_index, code, id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing activities by plan: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListChildren(ctx context.Context, parentID int64) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE parent_id = ?
		ORDER BY order_index, code, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET code = ?, description = ?, responsible = ?, start_date = ?,
		end_date = ?, status = ?, progress = ?, kind = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.Code,
		a.Description,
		nullableStrToValue(a.Responsible),
		nullableTimeToString(a.StartDate, dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		string(a.Status),
		a.Progress,
		string(a.Kind),
		a.OrderIndex,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("updating activity %q: %w", a.Code, ErrConstraint)
		}
		return fmt.Errorf("updating activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) UpdateParent(ctx context.Context, id int64, parentID *int64) error {
	query := `UPDATE activities SET parent_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, parentID, nowUTC(), id)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("re-parenting activity %d: %w", id, ErrConstraint)
		}
		return fmt.Errorf("re-parenting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) UpdateDates(ctx context.Context, id int64, start, end *time.Time) error {
	query := `UPDATE activities SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(start, dateLayout),
		nullableTimeToString(end, dateLayout),
		nowUTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating activity dates: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM activities WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) CountByPlan(ctx context.Context, planID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities WHERE plan_id = ?`, planID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting activities: %w", err)
	}
	return count, nil
}

// scanActivity scans a single activity from a *sql.Row.
func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.Activity, error) {
	var a domain.Activity
	var statusStr, kindStr, createdAtStr, updatedAtStr string
	var responsible, startDateStr, endDateStr sql.NullString
	var parentID sql.NullInt64

	err := row.Scan(
		&a.ID, &a.PlanID, &a.Code, &a.Description, &responsible, &startDateStr, &endDateStr,
		&statusStr, &a.Progress, &kindStr, &a.OrderIndex, &parentID, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return r.populateActivity(&a, statusStr, kindStr, createdAtStr, updatedAtStr,
		responsible, startDateStr, endDateStr, parentID)
}

// scanActivities scans multiple activities from *sql.Rows.
func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var statusStr, kindStr, createdAtStr, updatedAtStr string
		var responsible, startDateStr, endDateStr sql.NullString
		var parentID sql.NullInt64

		err := rows.Scan(
			&a.ID, &a.PlanID, &a.Code, &a.Description, &responsible, &startDateStr, &endDateStr,
			&statusStr, &a.Progress, &kindStr, &a.OrderIndex, &parentID, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		act, err := r.populateActivity(&a, statusStr, kindStr, createdAtStr, updatedAtStr,
			responsible, startDateStr, endDateStr, parentID)
		if err != nil {
			return nil, err
		}
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

// populateActivity fills in parsed fields on an Activity after scanning raw strings.
func (r *SQLiteActivityRepo) populateActivity(
	a *domain.Activity,
	statusStr, kindStr, createdAtStr, updatedAtStr string,
	responsible, startDateStr, endDateStr sql.NullString,
	parentID sql.NullInt64,
) (*domain.Activity, error) {
	a.Status = domain.Status(statusStr)
	a.Kind = domain.Kind(kindStr)
	a.Responsible = nullStrToPtr(responsible)
	a.StartDate = parseNullableTime(startDateStr, dateLayout)
	a.EndDate = parseNullableTime(endDateStr, dateLayout)
	a.ParentID = nullInt64ToPtr(parentID)

	var parseErr error
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return a, nil
}
