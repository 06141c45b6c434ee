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

func TestApplicationRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	applied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("assigns the generated id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`ON CONFLICT \(candidate_id, job_id\) DO NOTHING`).
			WithArgs("candidate-1", int64(5), domain.StatusApplied, "Dear team", "",
				applied, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

		repo := postgres.NewApplicationRepository(mock)
		app := &domain.JobApplication{
			CandidateID:     "candidate-1",
			JobID:           5,
			CoverLetter:     "Dear team",
			ApplicationDate: applied,
		}

		require.NoError(t, repo.Create(ctx, app))
		assert.Equal(t, int64(11), app.ID)
		assert.Equal(t, domain.StatusApplied, app.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflicting pair maps to duplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		// DO NOTHING yields no row, which pgx surfaces as ErrNoRows.
		mock.ExpectQuery(`ON CONFLICT \(candidate_id, job_id\) DO NOTHING`).
			WithArgs("candidate-1", int64(5), domain.StatusApplied, "", "",
				applied, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		repo := postgres.NewApplicationRepository(mock)
		app := &domain.JobApplication{
			CandidateID:     "candidate-1",
			JobID:           5,
			ApplicationDate: applied,
		}

		err = repo.Create(ctx, app)
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
