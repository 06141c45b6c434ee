package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db PgxPool
}

func NewCandidateRepository(db PgxPool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, user_id, headline, summary, skills, years_experience,
	experience_level, location, education, experience, created_at, updated_at`

// Insert is the create-only path: a second profile for the same user fails
// on the unique index.
func (r *candidateRepo) Insert(ctx context.Context, profile *domain.CandidateProfile) error {
	education, experience, err := marshalEmbedded(profile)
	if err != nil {
		return err
	}

	query := `INSERT INTO candidate_profiles
		(user_id, headline, summary, skills, years_experience, experience_level, location, education, experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err = r.db.QueryRow(ctx, query,
		profile.UserID, profile.Headline, profile.Summary, pq.Array(profile.Skills),
		profile.YearsExperience, profile.ExperienceLevel, profile.Location,
		education, experience, profile.CreatedAt, profile.UpdatedAt,
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

// Upsert creates the profile or replaces it wholesale, keyed by user_id.
// Embedded education/experience lists are replaced, not merged. The stored
// created_at is scanned back so an update does not report a fresh one.
func (r *candidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	education, experience, err := marshalEmbedded(profile)
	if err != nil {
		return err
	}

	query := `INSERT INTO candidate_profiles
		(user_id, headline, summary, skills, years_experience, experience_level, location, education, experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			skills = EXCLUDED.skills,
			years_experience = EXCLUDED.years_experience,
			experience_level = EXCLUDED.experience_level,
			location = EXCLUDED.location,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Headline, profile.Summary, pq.Array(profile.Skills),
		profile.YearsExperience, profile.ExperienceLevel, profile.Location,
		education, experience, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID, &profile.CreatedAt)
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles, err := scanCandidates(rows)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, domain.ErrNotFound
	}
	return &profiles[0], nil
}

// Search matches candidates whose skill set intersects the given skills
// (OR semantics), whose experience meets the minimum, and whose location
// contains the given fragment case-insensitively. Empty predicates are
// skipped.
func (r *candidateRepo) Search(ctx context.Context, filter domain.CandidateSearch) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if len(filter.Skills) > 0 {
		query += fmt.Sprintf(" AND skills && $%d", idx)
		args = append(args, pq.Array(filter.Skills))
		idx++
	}
	if filter.MinExperience > 0 {
		query += fmt.Sprintf(" AND years_experience >= $%d", idx)
		args = append(args, filter.MinExperience)
		idx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE '%%' || $%d || '%%'", idx)
		args = append(args, filter.Location)
		idx++
	}
	query += " ORDER BY years_experience DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

func (r *candidateRepo) FindByExperienceLevel(ctx context.Context, level string) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE experience_level = $1`

	rows, err := r.db.Query(ctx, query, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// FindByEducationDegree matches candidates with an education entry whose
// degree equals the given value exactly.
func (r *candidateRepo) FindByEducationDegree(ctx context.Context, degree string) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(education) AS e
			WHERE e->>'degree' = $1
		)`

	rows, err := r.db.Query(ctx, query, degree)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// FindByCurrentTitle matches candidates with a current experience entry
// whose title contains the given fragment case-insensitively.
func (r *candidateRepo) FindByCurrentTitle(ctx context.Context, title string) ([]domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(experience) AS e
			WHERE (e->>'is_current')::boolean AND e->>'title' ILIKE '%' || $1 || '%'
		)`

	rows, err := r.db.Query(ctx, query, title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidates(rows)
}

func marshalEmbedded(profile *domain.CandidateProfile) ([]byte, []byte, error) {
	education := profile.Education
	if education == nil {
		education = []domain.Education{}
	}
	experience := profile.Experience
	if experience == nil {
		experience = []domain.Experience{}
	}

	eduJSON, err := json.Marshal(education)
	if err != nil {
		return nil, nil, err
	}
	expJSON, err := json.Marshal(experience)
	if err != nil {
		return nil, nil, err
	}
	return eduJSON, expJSON, nil
}

func scanCandidates(rows pgx.Rows) ([]domain.CandidateProfile, error) {
	var profiles []domain.CandidateProfile
	for rows.Next() {
		var p domain.CandidateProfile
		var skills []string
		var education, experience []byte
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Headline, &p.Summary, pq.Array(&skills),
			&p.YearsExperience, &p.ExperienceLevel, &p.Location,
			&education, &experience, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Skills = skills
		if err := json.Unmarshal(education, &p.Education); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(experience, &p.Experience); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
