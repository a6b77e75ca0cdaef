package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert inserts or updates by email so re-submissions never duplicate a
// lead. Writes are two-step: the rich shape includes the qualification
// JSONB; if that column is missing in the deployed schema (42703) the
// write retries with the guaranteed core fields only.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}

	err := r.upsert(ctx, lead, true)
	if isUndefinedColumn(err) {
		logrus.WithField("email", lead.Email).Warn("qualification column missing, falling back to core fields")
		err = r.upsert(ctx, lead, false)
	}
	return err
}

func (r *LeadRepository) upsert(ctx context.Context, lead *entity.Lead, rich bool) error {
	query := `
		INSERT INTO leads (id, email, name, phone, company, interest, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			phone = COALESCE(EXCLUDED.phone, leads.phone),
			company = COALESCE(EXCLUDED.company, leads.company),
			interest = EXCLUDED.interest,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`
	args := []any{
		lead.ID,
		lead.Email,
		nullString(lead.Name),
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Interest),
		lead.Status,
	}

	if rich {
		query = `
		INSERT INTO leads (id, email, name, phone, company, interest, status, qualification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			phone = COALESCE(EXCLUDED.phone, leads.phone),
			company = COALESCE(EXCLUDED.company, leads.company),
			interest = EXCLUDED.interest,
			status = EXCLUDED.status,
			qualification = EXCLUDED.qualification,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`
		args = append(args, qualificationJSON(lead.Qualification))
	}

	return r.DB.QueryRowContext(ctx, query, args...).Scan(
		&lead.ID,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := r.findByID(ctx, id, true)
	if isUndefinedColumn(err) {
		return r.findByID(ctx, id, false)
	}
	return lead, err
}

func (r *LeadRepository) findByID(ctx context.Context, id string, rich bool) (*entity.Lead, error) {
	query := `SELECT id, email, name, phone, company, interest, status, created_at, updated_at FROM leads WHERE id = $1`
	if rich {
		query = `SELECT id, email, name, phone, company, interest, status, created_at, updated_at, qualification FROM leads WHERE id = $1`
	}

	return scanLead(r.DB.QueryRowContext(ctx, query, id), rich)
}

// List returns all leads newest-first for the admin dashboard.
func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := r.list(ctx, true)
	if isUndefinedColumn(err) {
		return r.list(ctx, false)
	}
	return leads, err
}

func (r *LeadRepository) list(ctx context.Context, rich bool) ([]*entity.Lead, error) {
	query := `SELECT id, email, name, phone, company, interest, status, created_at, updated_at FROM leads ORDER BY created_at DESC`
	if rich {
		query = `SELECT id, email, name, phone, company, interest, status, created_at, updated_at, qualification FROM leads ORDER BY created_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows, rich)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateQualification overwrites a lead's verdict in place. Same
// degraded-write contract as Upsert.
func (r *LeadRepository) UpdateQualification(ctx context.Context, id string, status string, q *entity.Qualification) error {
	err := r.updateQualification(ctx, id, status, q, true)
	if isUndefinedColumn(err) {
		logrus.WithField("lead_id", id).Warn("qualification column missing, updating status only")
		err = r.updateQualification(ctx, id, status, q, false)
	}
	return err
}

func (r *LeadRepository) updateQualification(ctx context.Context, id string, status string, q *entity.Qualification, rich bool) error {
	var (
		result sql.Result
		err    error
	)
	if rich {
		result, err = r.DB.ExecContext(ctx,
			`UPDATE leads SET status = $1, qualification = $2, updated_at = NOW() WHERE id = $3`,
			status, qualificationJSON(q), id)
	} else {
		result, err = r.DB.ExecContext(ctx,
			`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`,
			status, id)
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner, rich bool) (*entity.Lead, error) {
	var (
		lead          entity.Lead
		name          sql.NullString
		phone         sql.NullString
		company       sql.NullString
		interest      sql.NullString
		qualification []byte
	)

	dest := []any{&lead.ID, &lead.Email, &name, &phone, &company, &interest, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt}
	if rich {
		dest = append(dest, &qualification)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Phone = phone.String
	lead.Company = company.String
	lead.Interest = interest.String

	if len(qualification) > 0 {
		var q entity.Qualification
		if err := json.Unmarshal(qualification, &q); err == nil {
			lead.Qualification = &q
		}
	}
	return &lead, nil
}

func qualificationJSON(q *entity.Qualification) any {
	if q == nil {
		return nil
	}
	data, err := json.Marshal(q)
	if err != nil {
		return nil
	}
	return data
}

// isUndefinedColumn matches Postgres 42703, the signal that the deployed
// schema predates the qualification column.
func isUndefinedColumn(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42703"
	}
	return false
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
