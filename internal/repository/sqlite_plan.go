package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/planview/internal/db"
	"github.com/alexanderramin/planview/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. The plan
// itself is stored as one JSON document column.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, short_id, document, source, created_at, updated_at`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.StoredPlan) error {
	doc, err := json.Marshal(&p.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan document: %w", err)
	}
	query := `INSERT INTO plans (id, short_id, title, document, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Plan.Title,
		string(doc),
		p.Source,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inserting plan %s: %w", p.ShortID, domain.ErrDuplicateShortID)
		}
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.StoredPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", id, domain.ErrPlanNotFound)
	}
	return p, err
}

func (r *SQLitePlanRepo) GetByShortID(ctx context.Context, shortID string) (*domain.StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+planColumns+` FROM plans WHERE UPPER(short_id) = UPPER(?)`, shortID)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", shortID, domain.ErrPlanNotFound)
	}
	return p, err
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY created_at, short_id`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.StoredPlan
	for rows.Next() {
		p, err := scanPlan(rows)
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

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", id, domain.ErrPlanNotFound)
	}
	return nil
}

func scanPlan(s scanner) (*domain.StoredPlan, error) {
	var p domain.StoredPlan
	var doc, createdAtStr, updatedAtStr string

	if err := s.Scan(&p.ID, &p.ShortID, &doc, &p.Source, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	if err := json.Unmarshal([]byte(doc), &p.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan %s document: %w", p.ShortID, err)
	}

	var err error
	if p.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
