package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo       domain.JobRepository
	recruiterRepo domain.RecruiterRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, recruiterRepo domain.RecruiterRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
	}
}

// CreateJob persists a new posting owned by the recruiter. The recruiter
// profile must exist; postings start active with postedDate = now.
func (u *jobUsecase) CreateJob(ctx context.Context, recruiterID string, job *domain.Job) error {
	if _, err := u.recruiterRepo.GetByUserID(ctx, recruiterID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruiter profile not found. Create a recruiter profile first.")
		}
		return apperror.Internal(err)
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.EmploymentType != "" && !domain.ValidEmploymentType(job.EmploymentType) {
		return apperror.BadRequest("Invalid employment type: " + job.EmploymentType)
	}

	now := time.Now()
	job.RecruiterID = recruiterID
	job.PostedDate = now
	job.IsActive = true
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := pagination(page, pageSize)
	jobs, total, err := u.jobRepo.Fetch(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, keyword string, page, pageSize int) ([]domain.Job, int64, error) {
	if keyword == "" {
		return nil, 0, apperror.BadRequest("Search keyword is required")
	}
	limit, offset := pagination(page, pageSize)
	jobs, total, err := u.jobRepo.Search(ctx, keyword, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) FilterJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if filter.MinSalary != nil && filter.MaxSalary != nil && *filter.MinSalary > *filter.MaxSalary {
		return nil, 0, apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	limit, offset := pagination(page, pageSize)
	jobs, total, err := u.jobRepo.Filter(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// UpdateJob merges the provided fields. A missing id is a NotFound error
// and never creates a record.
func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, update domain.JobUpdate) (*domain.Job, error) {
	if update.Title != nil && *update.Title == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if update.Salary != nil && *update.Salary < 0 {
		return nil, apperror.BadRequest("Salary cannot be negative")
	}
	if update.EmploymentType != nil && !domain.ValidEmploymentType(*update.EmploymentType) {
		return nil, apperror.BadRequest("Invalid employment type: " + *update.EmploymentType)
	}

	job, err := u.jobRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob reports whether a job was removed; an absent id is a plain
// false, not an error.
func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) (bool, error) {
	deleted, err := u.jobRepo.Delete(ctx, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return deleted, nil
}

func (u *jobUsecase) ToggleJobActive(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) CountActiveByRecruiter(ctx context.Context, recruiterID string) (int64, error) {
	count, err := u.jobRepo.CountActiveByRecruiter(ctx, recruiterID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

// pagination normalizes 1-based page/pageSize into limit/offset.
func pagination(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
