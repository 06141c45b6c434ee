package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Experience level constants
const (
	LevelEntry     = "ENTRY"
	LevelJunior    = "JUNIOR"
	LevelMid       = "MID"
	LevelSenior    = "SENIOR"
	LevelExecutive = "EXECUTIVE"
)

// ValidExperienceLevel reports whether level is a known experience level.
func ValidExperienceLevel(level string) bool {
	switch level {
	case LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

// Education is an embedded education entry on a candidate profile.
type Education struct {
	Degree         string  `json:"degree" validate:"required"`
	Institution    string  `json:"institution" validate:"required"`
	FieldOfStudy   string  `json:"field_of_study"`
	GraduationDate string  `json:"graduation_date"`
	GPA            float64 `json:"gpa" validate:"gte=0"`
}

// Experience is an embedded work-experience entry on a candidate profile.
// IsCurrent and EndDate are mutually exclusive.
type Experience struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	IsCurrent   bool       `json:"is_current"`
}

type CandidateProfile struct {
	ID              int64        `json:"id"`
	UserID          string       `json:"user_id" validate:"required"`
	Headline        string       `json:"headline" validate:"max=200"`
	Summary         string       `json:"summary" validate:"max=2000"`
	Skills          []string     `json:"skills"`
	YearsExperience int          `json:"years_experience" validate:"gte=0"`
	ExperienceLevel string       `json:"experience_level"`
	Location        string       `json:"location"`
	Education       []Education  `json:"education"`
	Experience      []Experience `json:"experience"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CandidateSearch holds the combined search predicates. Zero values are
// ignored; all populated predicates must match.
type CandidateSearch struct {
	Skills        []string
	MinExperience int
	Location      string
}

type CandidateRepository interface {
	Insert(ctx context.Context, profile *CandidateProfile) error
	Upsert(ctx context.Context, profile *CandidateProfile) error
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Search(ctx context.Context, filter CandidateSearch) ([]CandidateProfile, error)
	FindByExperienceLevel(ctx context.Context, level string) ([]CandidateProfile, error)
	FindByEducationDegree(ctx context.Context, degree string) ([]CandidateProfile, error)
	FindByCurrentTitle(ctx context.Context, title string) ([]CandidateProfile, error)
}

type CandidateUsecase interface {
	CreateProfile(ctx context.Context, profile *CandidateProfile) error
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	Search(ctx context.Context, filter CandidateSearch) ([]CandidateProfile, error)
	FindByExperienceLevel(ctx context.Context, level string) ([]CandidateProfile, error)
	FindByEducationDegree(ctx context.Context, degree string) ([]CandidateProfile, error)
	FindByCurrentTitle(ctx context.Context, title string) ([]CandidateProfile, error)
}
