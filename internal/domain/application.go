package domain

import (
	"context"
	"errors"
	"time"
)

// Application status constants. Transitions only move forward:
// APPLIED → REVIEWING → SHORTLISTED → REJECTED / ACCEPTED.
const (
	StatusApplied     = "APPLIED"
	StatusReviewing   = "REVIEWING"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
	StatusAccepted    = "ACCEPTED"
)

// statusRank orders statuses along the forward-only pipeline. REJECTED and
// ACCEPTED share the terminal rank; neither can be left once reached.
var statusRank = map[string]int{
	StatusApplied:     0,
	StatusReviewing:   1,
	StatusShortlisted: 2,
	StatusRejected:    3,
	StatusAccepted:    3,
}

// ValidApplicationStatus reports whether status is a known status.
func ValidApplicationStatus(status string) bool {
	_, ok := statusRank[status]
	return ok
}

// CanTransition reports whether an application may move from one status to
// another. Backward moves and transitions out of a terminal status are
// rejected, as is a no-op transition to the current status.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	if from == StatusRejected || from == StatusAccepted {
		return false
	}
	return toRank > fromRank
}

type JobApplication struct {
	ID              int64      `json:"id"`
	CandidateID     string     `json:"candidate_id"`
	JobID           int64      `json:"job_id"`
	Status          string     `json:"status"`
	CoverLetter     string     `json:"cover_letter"`
	ResumeURL       string     `json:"resume_url"`
	ApplicationDate time.Time  `json:"application_date"`
	ReviewDate      *time.Time `json:"review_date,omitempty"`
	ReviewNotes     string     `json:"review_notes,omitempty"`
	InterviewNotes  string     `json:"interview_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ErrDuplicateApplication is returned by the store when the atomic
// (candidate_id, job_id) uniqueness constraint rejects an insert.
var ErrDuplicateApplication = errors.New("application already exists")

// StatusUpdate carries the fields of an application status change.
type StatusUpdate struct {
	Status         string
	ReviewNotes    string
	InterviewNotes string
}

type ApplicationRepository interface {
	// Create inserts the application and fails with ErrDuplicateApplication
	// when one already exists for (candidate_id, job_id). The check and the
	// insert are a single conditional write.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	ListByCandidate(ctx context.Context, candidateID string, limit, offset int) ([]JobApplication, int64, error)
	ListByJob(ctx context.Context, jobID int64, limit, offset int) ([]JobApplication, int64, error)
	ListByStatus(ctx context.Context, statuses []string, limit, offset int) ([]JobApplication, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, update StatusUpdate, reviewDate *time.Time) (*JobApplication, error)
	CountByCandidate(ctx context.Context, candidateID string) (int64, error)
	CountByJob(ctx context.Context, jobID int64) (int64, error)
	CountByJobAndStatus(ctx context.Context, jobID int64, status string) (int64, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID string, jobID int64, coverLetter, resumeURL string) (*JobApplication, error)
	GetApplication(ctx context.Context, id int64) (*JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, update StatusUpdate) (*JobApplication, error)
	ListByCandidate(ctx context.Context, candidateID string, page, pageSize int) ([]JobApplication, int64, error)
	ListByJob(ctx context.Context, jobID int64, page, pageSize int) ([]JobApplication, int64, error)
	ListByStatus(ctx context.Context, statuses []string, page, pageSize int) ([]JobApplication, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]JobApplication, error)
	CountByCandidate(ctx context.Context, candidateID string) (int64, error)
	CountByJob(ctx context.Context, jobID int64) (int64, error)
	CountByJobAndStatus(ctx context.Context, jobID int64, status string) (int64, error)
}
