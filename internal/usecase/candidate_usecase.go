package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

// CreateProfile is the create-only path: a second profile for the same
// user fails with Conflict.
func (u *candidateUsecase) CreateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	if err := u.validateProfile(ctx, profile); err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.repo.Insert(ctx, profile); err != nil {
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return apperror.Conflict("Candidate profile already exists for this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

// UpdateProfile upserts the profile keyed by user id. Embedded education
// and experience lists are replaced wholesale.
func (u *candidateUsecase) UpdateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	if err := u.validateProfile(ctx, profile); err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) Search(ctx context.Context, filter domain.CandidateSearch) ([]domain.CandidateProfile, error) {
	if filter.MinExperience < 0 {
		return nil, apperror.BadRequest("Minimum experience cannot be negative")
	}
	profiles, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

func (u *candidateUsecase) FindByExperienceLevel(ctx context.Context, level string) ([]domain.CandidateProfile, error) {
	if !domain.ValidExperienceLevel(level) {
		return nil, apperror.BadRequest("Invalid experience level: " + level)
	}
	profiles, err := u.repo.FindByExperienceLevel(ctx, level)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

func (u *candidateUsecase) FindByEducationDegree(ctx context.Context, degree string) ([]domain.CandidateProfile, error) {
	if degree == "" {
		return nil, apperror.BadRequest("Degree is required")
	}
	profiles, err := u.repo.FindByEducationDegree(ctx, degree)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

func (u *candidateUsecase) FindByCurrentTitle(ctx context.Context, title string) ([]domain.CandidateProfile, error) {
	if title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	profiles, err := u.repo.FindByCurrentTitle(ctx, title)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

// validateProfile checks structural validity, the experience-entry rules,
// and that the referenced user exists and is a candidate.
func (u *candidateUsecase) validateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if profile.ExperienceLevel != "" && !domain.ValidExperienceLevel(profile.ExperienceLevel) {
		return apperror.BadRequest("Invalid experience level: " + profile.ExperienceLevel)
	}
	for _, exp := range profile.Experience {
		if exp.IsCurrent && exp.EndDate != nil {
			return apperror.BadRequest("A current experience entry cannot have an end date")
		}
	}

	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	if !user.HasRole(domain.RoleCandidate) {
		return apperror.Forbidden("User does not hold the CANDIDATE role")
	}
	return nil
}
