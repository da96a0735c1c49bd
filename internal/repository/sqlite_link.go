package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
)

const linkColumns = `id, activity_id, purchase_order_ref, service_order_ref, created_at`

// SQLiteLinkRepo implements LinkRepo over a DBTX.
type SQLiteLinkRepo struct {
	db db.DBTX
}

// NewSQLiteLinkRepo creates a new SQLiteLinkRepo.
func NewSQLiteLinkRepo(conn db.DBTX) *SQLiteLinkRepo {
	return &SQLiteLinkRepo{db: conn}
}

func (r *SQLiteLinkRepo) Create(ctx context.Context, l *domain.ExternalLink) error {
	query := `INSERT INTO external_links (activity_id, purchase_order_ref, service_order_ref, created_at)
		VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		l.ActivityID,
		nullableStrToValue(l.PurchaseOrderRef),
		nullableStrToValue(l.ServiceOrderRef),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("inserting external link: %w", ErrConstraint)
		}
		return fmt.Errorf("inserting external link: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading external link id: %w", err)
	}
	l.ID = id
	return nil
}

func (r *SQLiteLinkRepo) ListByActivity(ctx context.Context, activityID int64) ([]*domain.ExternalLink, error) {
	query := `SELECT ` + linkColumns + ` FROM external_links WHERE activity_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("listing external links: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

func (r *SQLiteLinkRepo) ListByPlan(ctx context.Context, planID int64) ([]*domain.ExternalLink, error) {
	query := `SELECT l.id, l.activity_id, l.purchase_order_ref, l.service_order_ref, l.created_at
		FROM external_links l
		JOIN activities a ON a.id = l.activity_id
		WHERE a.plan_id = ?
		ORDER BY l.id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing external links by plan: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

func (r *SQLiteLinkRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM external_links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting external link: %w", err)
	}
	return nil
}

func (r *SQLiteLinkRepo) DeleteByActivity(ctx context.Context, activityID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM external_links WHERE activity_id = ?`, activityID); err != nil {
		return fmt.Errorf("deleting external links for activity %d: %w", activityID, err)
	}
	return nil
}

func scanLinks(rows *sql.Rows) ([]*domain.ExternalLink, error) {
	var links []*domain.ExternalLink
	for rows.Next() {
		var l domain.ExternalLink
		var poRef, soRef sql.NullString
		var createdAtStr string

		if err := rows.Scan(&l.ID, &l.ActivityID, &poRef, &soRef, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning external link row: %w", err)
		}
		l.PurchaseOrderRef = nullStrToPtr(poRef)
		l.ServiceOrderRef = nullStrToPtr(soRef)

		var parseErr error
		l.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		links = append(links, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating external links: %w", err)
	}
	return links, nil
}
