package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recruiterRepo struct {
	db PgxPool
}

func NewRecruiterRepository(db PgxPool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

const recruiterColumns = `id, user_id, company_name, company_size, location, industry,
	department, position, phone, linkedin_url, company_website, company_description,
	verified, created_at, updated_at`

func (r *recruiterRepo) Insert(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `INSERT INTO recruiter_profiles
		(user_id, company_name, company_size, location, industry, department, position,
		 phone, linkedin_url, company_website, company_description, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.CompanySize, profile.Location,
		profile.Industry, profile.Department, profile.Position, profile.Phone,
		profile.LinkedInURL, profile.CompanyWebsite, profile.CompanyDescription,
		profile.Verified, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUniqueViolation
		}
		return err
	}
	return nil
}

// Upsert creates or replaces the profile keyed by user_id. The verified
// flag is admin-controlled and not touched on update; the stored verified
// and created_at values are scanned back into the profile.
func (r *recruiterRepo) Upsert(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `INSERT INTO recruiter_profiles
		(user_id, company_name, company_size, location, industry, department, position,
		 phone, linkedin_url, company_website, company_description, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_size = EXCLUDED.company_size,
			location = EXCLUDED.location,
			industry = EXCLUDED.industry,
			department = EXCLUDED.department,
			position = EXCLUDED.position,
			phone = EXCLUDED.phone,
			linkedin_url = EXCLUDED.linkedin_url,
			company_website = EXCLUDED.company_website,
			company_description = EXCLUDED.company_description,
			updated_at = EXCLUDED.updated_at
		RETURNING id, verified, created_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.CompanySize, profile.Location,
		profile.Industry, profile.Department, profile.Position, profile.Phone,
		profile.LinkedInURL, profile.CompanyWebsite, profile.CompanyDescription,
		profile.Verified, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID, &profile.Verified, &profile.CreatedAt)
}

func (r *recruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanySize, &p.Location, &p.Industry,
		&p.Department, &p.Position, &p.Phone, &p.LinkedInURL, &p.CompanyWebsite,
		&p.CompanyDescription, &p.Verified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *recruiterRepo) SetVerified(ctx context.Context, userID string, verified bool) error {
	query := `UPDATE recruiter_profiles SET verified = $2, updated_at = NOW() WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, userID, verified)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search filters recruiters by company name (partial, case-insensitive),
// company size, verification flag, and location (partial). Zero-value
// predicates are skipped.
func (r *recruiterRepo) Search(ctx context.Context, filter domain.RecruiterSearch) ([]domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterColumns + ` FROM recruiter_profiles WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.CompanyName != "" {
		query += fmt.Sprintf(" AND company_name ILIKE '%%' || $%d || '%%'", idx)
		args = append(args, filter.CompanyName)
		idx++
	}
	if filter.CompanySize != "" {
		query += fmt.Sprintf(" AND company_size = $%d", idx)
		args = append(args, filter.CompanySize)
		idx++
	}
	if filter.Verified != nil {
		query += fmt.Sprintf(" AND verified = $%d", idx)
		args = append(args, *filter.Verified)
		idx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE '%%' || $%d || '%%'", idx)
		args = append(args, filter.Location)
		idx++
	}
	query += " ORDER BY company_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.RecruiterProfile
	for rows.Next() {
		var p domain.RecruiterProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CompanyName, &p.CompanySize, &p.Location, &p.Industry,
			&p.Department, &p.Position, &p.Phone, &p.LinkedInURL, &p.CompanyWebsite,
			&p.CompanyDescription, &p.Verified, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
