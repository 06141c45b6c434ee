package domain

import (
	"context"
	"time"
)

// Employment type constants
const (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentInternship = "INTERNSHIP"
)

// ValidEmploymentType reports whether t is a known employment type.
func ValidEmploymentType(t string) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

type Job struct {
	ID               int64     `json:"id"`
	RecruiterID      string    `json:"recruiter_id"`
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	CompanyName      string    `json:"company_name" validate:"required"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	EmploymentType   string    `json:"employment_type"`
	Salary           float64   `json:"salary" validate:"gte=0"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	PostedDate       time.Time `json:"posted_date"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JobUpdate carries the mutable fields of a job update. Nil means
// "leave unchanged".
type JobUpdate struct {
	Title            *string
	Description      *string
	CompanyName      *string
	Location         *string
	Category         *string
	EmploymentType   *string
	Salary           *float64
	Requirements     []string
	Responsibilities []string
}

// JobFilter holds the independent job filter predicates. Zero values are
// ignored; salary bounds are inclusive.
type JobFilter struct {
	Category    string
	Location    string
	CompanyName string
	MinSalary   *float64
	MaxSalary   *float64
	RecruiterID string
	IsActive    *bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Update(ctx context.Context, id int64, update JobUpdate) (*Job, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ToggleActive(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]Job, int64, error)
	Filter(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	CountActiveByRecruiter(ctx context.Context, recruiterID string) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	SearchJobs(ctx context.Context, keyword string, page, pageSize int) ([]Job, int64, error)
	FilterJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, id int64, update JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, id int64) (bool, error)
	ToggleJobActive(ctx context.Context, id int64) (*Job, error)
	CountActiveByRecruiter(ctx context.Context, recruiterID string) (int64, error)
}
