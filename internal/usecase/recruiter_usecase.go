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

type recruiterUsecase struct {
	repo     domain.RecruiterRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewRecruiterUsecase(repo domain.RecruiterRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.RecruiterUsecase {
	return &recruiterUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *recruiterUsecase) CreateProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	if err := u.validateProfile(ctx, profile); err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.Verified = false // admin-controlled, never set at creation

	if err := u.repo.Insert(ctx, profile); err != nil {
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return apperror.Conflict("Recruiter profile already exists for this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	if err := u.validateProfile(ctx, profile); err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.Verified = false // admin-controlled, never taken from the request

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *recruiterUsecase) GetProfile(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *recruiterUsecase) SetVerified(ctx context.Context, userID string, verified bool) error {
	if err := u.repo.SetVerified(ctx, userID, verified); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruiter profile not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *recruiterUsecase) Search(ctx context.Context, filter domain.RecruiterSearch) ([]domain.RecruiterProfile, error) {
	if filter.CompanySize != "" && !domain.ValidCompanySize(filter.CompanySize) {
		return nil, apperror.BadRequest("Invalid company size: " + filter.CompanySize)
	}
	profiles, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

func (u *recruiterUsecase) validateProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if profile.CompanySize != "" && !domain.ValidCompanySize(profile.CompanySize) {
		return apperror.BadRequest("Invalid company size: " + profile.CompanySize)
	}

	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	if !user.HasRole(domain.RoleRecruiter) {
		return apperror.Forbidden("User does not hold the RECRUITER role")
	}
	return nil
}
