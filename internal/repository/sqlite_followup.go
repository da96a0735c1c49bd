package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
)

const followUpColumns = `id, activity_id, date, description, responsible, status, created_at`

// SQLiteFollowUpRepo implements FollowUpRepo over a DBTX.
type SQLiteFollowUpRepo struct {
	db db.DBTX
}

// NewSQLiteFollowUpRepo creates a new SQLiteFollowUpRepo.
func NewSQLiteFollowUpRepo(conn db.DBTX) *SQLiteFollowUpRepo {
	return &SQLiteFollowUpRepo{db: conn}
}

func (r *SQLiteFollowUpRepo) Create(ctx context.Context, f *domain.FollowUp) error {
	query := `INSERT INTO followups (activity_id, date, description, responsible, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		f.ActivityID,
		f.Date.Format(dateLayout),
		f.Description,
		nullableStrToValue(f.Responsible),
		string(f.Status),
		f.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("inserting follow-up: %w", ErrConstraint)
		}
		return fmt.Errorf("inserting follow-up: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading follow-up id: %w", err)
	}
	f.ID = id
	return nil
}

func (r *SQLiteFollowUpRepo) GetByID(ctx context.Context, id int64) (*domain.FollowUp, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+followUpColumns+` FROM followups WHERE id = ?`, id)
	f, err := scanFollowUp(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("follow-up: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning follow-up: %w", err)
	}
	return f, nil
}

func (r *SQLiteFollowUpRepo) ListByActivity(ctx context.Context, activityID int64) ([]*domain.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM followups WHERE activity_id = ? ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing follow-ups: %w", err)
	}
	defer rows.Close()

	var followUps []*domain.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning follow-up row: %w", err)
		}
		followUps = append(followUps, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating follow-ups: %w", err)
	}
	return followUps, nil
}

func (r *SQLiteFollowUpRepo) Update(ctx context.Context, f *domain.FollowUp) error {
	query := `UPDATE followups SET date = ?, description = ?, responsible = ?, status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		f.Date.Format(dateLayout),
		f.Description,
		nullableStrToValue(f.Responsible),
		string(f.Status),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating follow-up: %w", err)
	}
	return nil
}

func (r *SQLiteFollowUpRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM followups WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting follow-up: %w", err)
	}
	return nil
}

func (r *SQLiteFollowUpRepo) DeleteByActivity(ctx context.Context, activityID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM followups WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("deleting follow-ups for activity %d: %w", activityID, err)
	}
	return nil
}

// scanFollowUp scans one follow-up via the given Scan function, so it works
// for both *sql.Row and *sql.Rows.
func scanFollowUp(scan func(dest ...any) error) (*domain.FollowUp, error) {
	var f domain.FollowUp
	var dateStr, statusStr, createdAtStr string
	var responsible sql.NullString

	if err := scan(&f.ID, &f.ActivityID, &dateStr, &f.Description, &responsible, &statusStr, &createdAtStr); err != nil {
		return nil, err
	}

	f.Status = domain.Status(statusStr)
	f.Responsible = nullStrToPtr(responsible)

	var parseErr error
	f.Date, parseErr = time.Parse(dateLayout, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	f.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &f, nil
}
