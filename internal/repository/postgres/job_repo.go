package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type jobRepo struct {
	db PgxPool
}

func NewJobRepository(db PgxPool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, recruiter_id, title, description, company_name, location, category,
	employment_type, salary, requirements, responsibilities, posted_date, is_active,
	created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs
		(recruiter_id, title, description, company_name, location, category, employment_type,
		 salary, requirements, responsibilities, posted_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.Description, job.CompanyName, job.Location,
		job.Category, job.EmploymentType, job.Salary,
		pq.Array(job.Requirements), pq.Array(job.Responsibilities),
		job.PostedDate, job.IsActive, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &jobs[0], nil
}

// Update merges the provided fields into the existing row and returns the
// updated job. Absent ids fail with ErrNotFound; nothing is created.
func (r *jobRepo) Update(ctx context.Context, id int64, update domain.JobUpdate) (*domain.Job, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now()}
	idx := 3

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.CompanyName != nil {
		addSet("company_name", *update.CompanyName)
	}
	if update.Location != nil {
		addSet("location", *update.Location)
	}
	if update.Category != nil {
		addSet("category", *update.Category)
	}
	if update.EmploymentType != nil {
		addSet("employment_type", *update.EmploymentType)
	}
	if update.Salary != nil {
		addSet("salary", *update.Salary)
	}
	if update.Requirements != nil {
		addSet("requirements", pq.Array(update.Requirements))
	}
	if update.Responsibilities != nil {
		addSet("responsibilities", pq.Array(update.Responsibilities))
	}

	query := `UPDATE jobs SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &jobs[0], nil
}

// Delete removes the job and reports whether a row existed.
func (r *jobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// ToggleActive flips the is_active flag in a single statement and returns
// the updated job.
func (r *jobRepo) ToggleActive(ctx context.Context, id int64) (*domain.Job, error) {
	query := `UPDATE jobs SET is_active = NOT is_active, updated_at = NOW()
	          WHERE id = $1 RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &jobs[0], nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY posted_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Search matches the keyword case-insensitively against title, description,
// or company name. Only active jobs are returned; an inactive job never
// matches regardless of keyword.
func (r *jobRepo) Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Job, int64, error) {
	where := `WHERE is_active = TRUE AND
		(title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR company_name ILIKE '%' || $1 || '%')`

	query := `SELECT ` + jobColumns + ` FROM jobs ` + where + `
	          ORDER BY posted_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, keyword, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, keyword).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Filter applies the independent equality/range predicates. Salary bounds
// are inclusive on both ends.
func (r *jobRepo) Filter(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1

	addPredicate := func(clause string, value interface{}) {
		where += fmt.Sprintf(clause, idx)
		args = append(args, value)
		idx++
	}

	if filter.Category != "" {
		addPredicate(" AND category = $%d", filter.Category)
	}
	if filter.Location != "" {
		addPredicate(" AND location ILIKE '%%' || $%d || '%%'", filter.Location)
	}
	if filter.CompanyName != "" {
		addPredicate(" AND company_name ILIKE '%%' || $%d || '%%'", filter.CompanyName)
	}
	if filter.MinSalary != nil {
		addPredicate(" AND salary >= $%d", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		addPredicate(" AND salary <= $%d", *filter.MaxSalary)
	}
	if filter.RecruiterID != "" {
		addPredicate(" AND recruiter_id = $%d", filter.RecruiterID)
	}
	if filter.IsActive != nil {
		addPredicate(" AND is_active = $%d", *filter.IsActive)
	}

	query := fmt.Sprintf(`SELECT `+jobColumns+` FROM jobs %s ORDER BY posted_date DESC LIMIT $%d OFFSET $%d`,
		where, idx, idx+1)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) CountActiveByRecruiter(ctx context.Context, recruiterID string) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1 AND is_active = TRUE`
	var count int64
	err := r.db.QueryRow(ctx, query, recruiterID).Scan(&count)
	return count, err
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var requirements, responsibilities []string
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.CompanyName,
			&job.Location, &job.Category, &job.EmploymentType, &job.Salary,
			pq.Array(&requirements), pq.Array(&responsibilities),
			&job.PostedDate, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		job.Requirements = requirements
		job.Responsibilities = responsibilities
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
