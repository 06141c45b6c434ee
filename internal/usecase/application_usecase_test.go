package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApply(t *testing.T) {
	ctx := context.Background()

	activeJob := &domain.Job{ID: 1, Title: "Engineer", IsActive: true}
	profile := &domain.CandidateProfile{UserID: "c1"}

	t.Run("Should reject an inactive job", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, IsActive: false}, nil)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs, new(MockCandidateRepo))

		_, err := uc.Apply(ctx, "c1", 1, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive job")
	})

	t.Run("Should require a candidate profile", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", ctx, int64(1)).Return(activeJob, nil)
		mockCandidates := new(MockCandidateRepo)
		mockCandidates.On("GetByUserID", ctx, "c1").Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs, mockCandidates)

		_, err := uc.Apply(ctx, "c1", 1, "", "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Should surface a duplicate application as conflict", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", ctx, int64(1)).Return(activeJob, nil)
		mockCandidates := new(MockCandidateRepo)
		mockCandidates.On("GetByUserID", ctx, "c1").Return(profile, nil)
		mockApps := new(MockApplicationRepo)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).
			Return(domain.ErrDuplicateApplication)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockCandidates)

		_, err := uc.Apply(ctx, "c1", 1, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should submit with initial status and application date", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", ctx, int64(1)).Return(activeJob, nil)
		mockCandidates := new(MockCandidateRepo)
		mockCandidates.On("GetByUserID", ctx, "c1").Return(profile, nil)
		mockApps := new(MockApplicationRepo)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockCandidates)

		app, err := uc.Apply(ctx, "c1", 1, "Cover letter", "https://example.com/cv.pdf")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApplied, app.Status)
		assert.Equal(t, "c1", app.CandidateID)
		assert.False(t, app.ApplicationDate.IsZero())
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo))
		_, err := uc.UpdateStatus(ctx, 1, domain.StatusUpdate{Status: "PENDING"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should reject a backward transition", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, int64(1)).Return(&domain.JobApplication{
			ID: 1, Status: domain.StatusShortlisted,
		}, nil)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), new(MockCandidateRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.StatusUpdate{Status: domain.StatusReviewing})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot transition")
	})

	t.Run("Should reject leaving a terminal status", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, int64(1)).Return(&domain.JobApplication{
			ID: 1, Status: domain.StatusRejected,
		}, nil)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), new(MockCandidateRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should stamp review date on the first transition out of APPLIED", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, int64(1)).Return(&domain.JobApplication{
			ID: 1, Status: domain.StatusApplied,
		}, nil)
		mockApps.On("UpdateStatus", ctx, int64(1), mock.Anything, mock.AnythingOfType("*time.Time")).
			Return(&domain.JobApplication{ID: 1, Status: domain.StatusReviewing}, nil)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), new(MockCandidateRepo))

		updated, err := uc.UpdateStatus(ctx, 1, domain.StatusUpdate{Status: domain.StatusReviewing})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusReviewing, updated.Status)
		mockApps.AssertExpectations(t)
	})

	t.Run("Should not restamp review date on later transitions", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, int64(1)).Return(&domain.JobApplication{
			ID: 1, Status: domain.StatusReviewing,
		}, nil)
		mockApps.On("UpdateStatus", ctx, int64(1), mock.Anything, (*time.Time)(nil)).
			Return(&domain.JobApplication{ID: 1, Status: domain.StatusShortlisted}, nil)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), new(MockCandidateRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.StatusUpdate{Status: domain.StatusShortlisted})
		assert.NoError(t, err)
		mockApps.AssertExpectations(t)
	})
}

func TestApplicationQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("ListByStatus should validate every status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo))

		_, _, err := uc.ListByStatus(ctx, nil, 1, 10)
		assert.Error(t, err)

		_, _, err = uc.ListByStatus(ctx, []string{domain.StatusApplied, "BOGUS"}, 1, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("ListByDateRange should reject an inverted range", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo))

		from := time.Now()
		to := from.Add(-time.Hour)
		_, err := uc.ListByDateRange(ctx, from, to)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("CountByJobAndStatus should validate the status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo))
		_, err := uc.CountByJobAndStatus(ctx, 1, "BOGUS")
		assert.Error(t, err)
	})
}
