package domain

import (
	"context"
	"time"
)

// Company size constants
const (
	SizeStartup    = "STARTUP"
	SizeSmall      = "SMALL"
	SizeMedium     = "MEDIUM"
	SizeLarge      = "LARGE"
	SizeEnterprise = "ENTERPRISE"
)

// ValidCompanySize reports whether size is a known company size.
func ValidCompanySize(size string) bool {
	switch size {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	}
	return false
}

type RecruiterProfile struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id" validate:"required"`
	CompanyName        string    `json:"company_name" validate:"required"`
	CompanySize        string    `json:"company_size"`
	Location           string    `json:"location"`
	Industry           string    `json:"industry"`
	Department         string    `json:"department"`
	Position           string    `json:"position"`
	Phone              string    `json:"phone" validate:"omitempty,valid_phone"`
	LinkedInURL        string    `json:"linkedin_url" validate:"omitempty,url"`
	CompanyWebsite     string    `json:"company_website" validate:"omitempty,url"`
	CompanyDescription string    `json:"company_description" validate:"max=2000"`
	Verified           bool      `json:"verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecruiterSearch holds the combined recruiter search predicates.
// Zero values are ignored.
type RecruiterSearch struct {
	CompanyName string
	CompanySize string
	Verified    *bool
	Location    string
}

type RecruiterRepository interface {
	Insert(ctx context.Context, profile *RecruiterProfile) error
	Upsert(ctx context.Context, profile *RecruiterProfile) error
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
	SetVerified(ctx context.Context, userID string, verified bool) error
	Search(ctx context.Context, filter RecruiterSearch) ([]RecruiterProfile, error)
}

type RecruiterUsecase interface {
	CreateProfile(ctx context.Context, profile *RecruiterProfile) error
	UpdateProfile(ctx context.Context, profile *RecruiterProfile) error
	GetProfile(ctx context.Context, userID string) (*RecruiterProfile, error)
	SetVerified(ctx context.Context, userID string, verified bool) error
	Search(ctx context.Context, filter RecruiterSearch) ([]RecruiterProfile, error)
}
