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

func TestRecruiterRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	storedCreated := time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC)

	t.Run("verified and created_at come from the store", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		profile := domain.RecruiterProfile{
			UserID:      "user-1",
			CompanyName: "Acme",
			CompanySize: "MEDIUM",
			Location:    "Berlin",
			Verified:    false,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		// The DO UPDATE leg never touches verified; the stored flag and
		// original created_at are reported back.
		mock.ExpectQuery(`ON CONFLICT \(user_id\) DO UPDATE SET`).
			WithArgs("user-1", "Acme", "MEDIUM", "Berlin", "", "", "", "", "", "", "",
				false, now, now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "verified", "created_at"}).
				AddRow(int64(3), true, storedCreated))

		repo := postgres.NewRecruiterRepository(mock)
		require.NoError(t, repo.Upsert(ctx, &profile))

		assert.Equal(t, int64(3), profile.ID)
		assert.True(t, profile.Verified)
		assert.True(t, profile.CreatedAt.Equal(storedCreated))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
