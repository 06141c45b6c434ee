package postgres_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobRows(jobs ...domain.Job) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "recruiter_id", "title", "description", "company_name", "location", "category",
		"employment_type", "salary", "requirements", "responsibilities", "posted_date",
		"is_active", "created_at", "updated_at",
	})
	for _, j := range jobs {
		rows.AddRow(j.ID, j.RecruiterID, j.Title, j.Description, j.CompanyName, j.Location,
			j.Category, j.EmploymentType, j.Salary, []byte("{}"), []byte("{}"),
			j.PostedDate, j.IsActive, j.CreatedAt, j.UpdatedAt)
	}
	return rows
}

func sampleJob(id int64) domain.Job {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return domain.Job{
		ID:             id,
		RecruiterID:    "recruiter-1",
		Title:          "Backend Engineer",
		Description:    "Build APIs",
		CompanyName:    "Acme",
		Location:       "Berlin",
		Category:       "ENGINEERING",
		EmploymentType: "FULL_TIME",
		Salary:         60000,
		PostedDate:     now,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestJobRepositoryFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("salary bounds are inclusive on both ends", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		minSalary, maxSalary := 50000.0, 90000.0
		atLowerBound := sampleJob(1)
		atLowerBound.Salary = 50000

		mock.ExpectQuery(`FROM jobs WHERE 1=1 AND salary >= \$1 AND salary <= \$2 ORDER BY posted_date DESC`).
			WithArgs(minSalary, maxSalary, 10, 0).
			WillReturnRows(jobRows(atLowerBound))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE 1=1 AND salary >= \$1 AND salary <= \$2`).
			WithArgs(minSalary, maxSalary).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		repo := postgres.NewJobRepository(mock)
		jobs, total, err := repo.Filter(ctx, domain.JobFilter{MinSalary: &minSalary, MaxSalary: &maxSalary}, 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, jobs, 1)
		assert.Equal(t, 50000.0, jobs[0].Salary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("predicates are numbered in order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`FROM jobs WHERE 1=1 AND category = \$1 AND recruiter_id = \$2 ORDER BY posted_date DESC`).
			WithArgs("ENGINEERING", "recruiter-1", 10, 0).
			WillReturnRows(jobRows())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE 1=1 AND category = \$1 AND recruiter_id = \$2`).
			WithArgs("ENGINEERING", "recruiter-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		repo := postgres.NewJobRepository(mock)
		jobs, total, err := repo.Filter(ctx, domain.JobFilter{Category: "ENGINEERING", RecruiterID: "recruiter-1"}, 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, jobs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobRepositorySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("only active jobs are matched", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		match := sampleJob(4)

		mock.ExpectQuery(`FROM jobs WHERE is_active = TRUE AND`).
			WithArgs("engineer", 20, 0).
			WillReturnRows(jobRows(match))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE is_active = TRUE AND`).
			WithArgs("engineer").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		repo := postgres.NewJobRepository(mock)
		jobs, total, err := repo.Search(ctx, "engineer", 20, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, jobs, 1)
		assert.True(t, jobs[0].IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobRepositoryToggleActive(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag in a single statement", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		deactivated := sampleJob(7)
		deactivated.IsActive = false
		reactivated := sampleJob(7)
		reactivated.IsActive = true

		mock.ExpectQuery(`UPDATE jobs SET is_active = NOT is_active, updated_at = NOW\(\)`).
			WithArgs(int64(7)).
			WillReturnRows(jobRows(deactivated))
		mock.ExpectQuery(`UPDATE jobs SET is_active = NOT is_active, updated_at = NOW\(\)`).
			WithArgs(int64(7)).
			WillReturnRows(jobRows(reactivated))

		repo := postgres.NewJobRepository(mock)

		job, err := repo.ToggleActive(ctx, 7)
		require.NoError(t, err)
		assert.False(t, job.IsActive)

		job, err = repo.ToggleActive(ctx, 7)
		require.NoError(t, err)
		assert.True(t, job.IsActive)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`UPDATE jobs SET is_active = NOT is_active, updated_at = NOW\(\)`).
			WithArgs(int64(99)).
			WillReturnRows(jobRows())

		repo := postgres.NewJobRepository(mock)
		job, err := repo.ToggleActive(ctx, 99)

		require.Nil(t, job)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
