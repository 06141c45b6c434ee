package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// Apply submits a candidate's application to a job. The job must exist
// and be active, the candidate profile must exist, and the candidate must
// not have applied before; the duplicate check is atomic at the store.
func (u *applicationUsecase) Apply(ctx context.Context, candidateID string, jobID int64, coverLetter, resumeURL string) (*domain.JobApplication, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Cannot apply to an inactive job")
	}

	if _, err := u.candidateRepo.GetByUserID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found. Complete your profile before applying.")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.JobApplication{
		CandidateID:     candidateID,
		JobID:           jobID,
		Status:          domain.StatusApplied,
		CoverLetter:     coverLetter,
		ResumeURL:       resumeURL,
		ApplicationDate: time.Now(),
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.JobApplication, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// UpdateStatus advances an application along the forward-only pipeline.
// The review date is stamped on the first transition out of APPLIED.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, id int64, update domain.StatusUpdate) (*domain.JobApplication, error) {
	if !domain.ValidApplicationStatus(update.Status) {
		return nil, apperror.BadRequest("Invalid status: " + update.Status)
	}

	app, err := u.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(app.Status, update.Status) {
		return nil, apperror.BadRequest("Cannot transition from " + app.Status + " to " + update.Status)
	}

	var reviewDate *time.Time
	if app.Status == domain.StatusApplied {
		now := time.Now()
		reviewDate = &now
	}

	updated, err := u.applicationRepo.UpdateStatus(ctx, id, update, reviewDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (u *applicationUsecase) ListByCandidate(ctx context.Context, candidateID string, page, pageSize int) ([]domain.JobApplication, int64, error) {
	limit, offset := pagination(page, pageSize)
	apps, total, err := u.applicationRepo.ListByCandidate(ctx, candidateID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return apps, total, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID int64, page, pageSize int) ([]domain.JobApplication, int64, error) {
	limit, offset := pagination(page, pageSize)
	apps, total, err := u.applicationRepo.ListByJob(ctx, jobID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return apps, total, nil
}

func (u *applicationUsecase) ListByStatus(ctx context.Context, statuses []string, page, pageSize int) ([]domain.JobApplication, int64, error) {
	if len(statuses) == 0 {
		return nil, 0, apperror.BadRequest("At least one status is required")
	}
	for _, status := range statuses {
		if !domain.ValidApplicationStatus(status) {
			return nil, 0, apperror.BadRequest("Invalid status: " + status)
		}
	}
	limit, offset := pagination(page, pageSize)
	apps, total, err := u.applicationRepo.ListByStatus(ctx, statuses, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return apps, total, nil
}

func (u *applicationUsecase) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.JobApplication, error) {
	if to.Before(from) {
		return nil, apperror.BadRequest("End of date range precedes its start")
	}
	apps, err := u.applicationRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) CountByCandidate(ctx context.Context, candidateID string) (int64, error) {
	count, err := u.applicationRepo.CountByCandidate(ctx, candidateID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (u *applicationUsecase) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	count, err := u.applicationRepo.CountByJob(ctx, jobID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (u *applicationUsecase) CountByJobAndStatus(ctx context.Context, jobID int64, status string) (int64, error) {
	if !domain.ValidApplicationStatus(status) {
		return 0, apperror.BadRequest("Invalid status: " + status)
	}
	count, err := u.applicationRepo.CountByJobAndStatus(ctx, jobID, status)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
