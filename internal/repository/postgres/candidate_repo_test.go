package postgres_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"

	"github.com/lib/pq"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	storedCreated := time.Date(2025, 9, 14, 16, 45, 0, 0, time.UTC)

	t.Run("created_at comes from the store", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		profile := domain.CandidateProfile{
			UserID:          "user-2",
			Headline:        "Backend engineer",
			Skills:          []string{"Go", "SQL"},
			YearsExperience: 4,
			ExperienceLevel: "MID",
			Location:        "Hamburg",
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		mock.ExpectQuery(`ON CONFLICT \(user_id\) DO UPDATE SET`).
			WithArgs("user-2", "Backend engineer", "", pq.Array([]string{"Go", "SQL"}),
				4, "MID", "Hamburg", []byte("[]"), []byte("[]"), now, now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(8), storedCreated))

		repo := postgres.NewCandidateRepository(mock)
		require.NoError(t, repo.Upsert(ctx, &profile))

		assert.Equal(t, int64(8), profile.ID)
		assert.True(t, profile.CreatedAt.Equal(storedCreated))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
