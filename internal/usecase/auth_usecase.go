package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates an account with a bcrypt-hashed password. Username and
// email are globally unique; a duplicate of either fails with Conflict.
func (u *authUsecase) Register(ctx context.Context, username, email, password string, roles []string) (*domain.User, error) {
	if username == "" || email == "" {
		return nil, apperror.BadRequest("Username and email are required")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}
	if len(roles) == 0 {
		roles = []string{domain.RoleCandidate}
	}
	for _, role := range roles {
		if !domain.ValidRole(role) {
			return nil, apperror.BadRequest("Invalid role: " + role)
		}
	}

	taken, err := u.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken {
		return nil, apperror.Conflict("Username is already taken")
	}
	taken, err = u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken {
		return nil, apperror.Conflict("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Roles:     roles,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// The unique index is the backstop for concurrent registrations.
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return nil, apperror.Conflict("Username or email is already taken")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// Login validates the credentials and issues a signed bearer token. Bad
// username and bad password fail identically.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, apperror.Internal(err)
	}
	if !user.Enabled {
		return nil, apperror.Unauthorized("Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}

	signed, err := u.tokens.Generate(user.ID, user.Username, user.Email, user.Roles)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		Token:    signed,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's account and bumps
// the update timestamp.
func (u *authUsecase) UpdateProfile(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	user, err := u.GetCurrentUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		taken, err := u.userRepo.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if taken {
			return nil, apperror.Conflict("Email is already registered")
		}
		user.Email = *update.Email
	}
	if update.Password != nil {
		if len(*update.Password) < 8 {
			return nil, apperror.BadRequest("Password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.Password = string(hash)
	}
	if update.Enabled != nil {
		user.Enabled = *update.Enabled
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return nil, apperror.Conflict("Email is already registered")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// DeleteUser is the explicit admin removal path. Profiles referencing the
// user are left in place; nothing cascades.
func (u *authUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
