package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db PgxPool
}

func NewApplicationRepository(db PgxPool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, candidate_id, job_id, status, cover_letter, resume_url,
	application_date, review_date, review_notes, interview_notes, created_at, updated_at`

// Create inserts the application as a single conditional write: the unique
// index on (candidate_id, job_id) makes the duplicate check atomic, so two
// concurrent applies cannot both succeed.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO applications
		(candidate_id, job_id, status, cover_letter, resume_url, application_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (candidate_id, job_id) DO NOTHING
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.StatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.CandidateID, app.JobID, app.Status, app.CoverLetter, app.ResumeURL,
		app.ApplicationDate, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// DO NOTHING returned no row: the pair already exists.
		return domain.ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, domain.ErrNotFound
	}
	return &apps[0], nil
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID string, limit, offset int) ([]domain.JobApplication, int64, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE candidate_id = $1 ORDER BY application_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, candidateID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.CountByCandidate(ctx, candidateID)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64, limit, offset int) ([]domain.JobApplication, int64, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE job_id = $1 ORDER BY application_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, jobID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.CountByJob(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepo) ListByStatus(ctx context.Context, statuses []string, limit, offset int) ([]domain.JobApplication, int64, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE status = ANY($1) ORDER BY application_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, pq.Array(statuses), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM applications WHERE status = ANY($1)`
	if err := r.db.QueryRow(ctx, countQuery, pq.Array(statuses)).Scan(&total); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE application_date >= $1 AND application_date <= $2
	          ORDER BY application_date DESC`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows)
}

// UpdateStatus applies a status change with its notes. reviewDate is set
// only when non-nil (first transition out of APPLIED).
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, update domain.StatusUpdate, reviewDate *time.Time) (*domain.JobApplication, error) {
	query := `UPDATE applications SET
		status = $2,
		review_notes = $3,
		interview_notes = $4,
		review_date = COALESCE($5, review_date),
		updated_at = $6
	WHERE id = $1 RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query,
		id, update.Status, update.ReviewNotes, update.InterviewNotes, reviewDate, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps, err := scanApplications(rows)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, domain.ErrNotFound
	}
	return &apps[0], nil
}

func (r *applicationRepo) CountByCandidate(ctx context.Context, candidateID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountByJobAndStatus(ctx context.Context, jobID int64, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = $2`, jobID, status).Scan(&count)
	return count, err
}

func scanApplications(rows pgx.Rows) ([]domain.JobApplication, error) {
	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.JobID, &app.Status, &app.CoverLetter,
			&app.ResumeURL, &app.ApplicationDate, &app.ReviewDate,
			&app.ReviewNotes, &app.InterviewNotes, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
