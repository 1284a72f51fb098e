package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

// Application status constants
const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses lists the statuses in display order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusInterview,
	ApplicationStatusReviewed,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationStatusPending:
		return "Pending"
	case ApplicationStatusInterview:
		return "Interview"
	case ApplicationStatusReviewed:
		return "Reviewed"
	case ApplicationStatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Application is a seeker's submission against a posting.
type Application struct {
	ID              int64             `json:"id"`
	JobID           int64             `json:"job_id"`
	SeekerID        int64             `json:"seeker_id"`
	ApplicationDate time.Time         `json:"application_date"`
	Status          ApplicationStatus `json:"status"`
	CoverLetterText string            `json:"cover_letter_text"`

	// Joined data for list pages
	JobTitle       string `json:"job_title,omitempty"`
	JobCompany     string `json:"job_company,omitempty"`
	SeekerName     string `json:"seeker_name,omitempty"`
	SeekerHeadline string `json:"seeker_headline,omitempty"`
}

type ApplicationInput struct {
	CoverLetterText string `form:"cover_letter_text" validate:"required"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	// GetOwnedByID matches only applications to jobs owned by recruiter userID.
	GetOwnedByID(ctx context.Context, id, userID int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetBySeekerID(ctx context.Context, seekerID int64) ([]Application, error)
	GetRecentByRecruiter(ctx context.Context, recruiterID int64, limit int) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
}

// ApplicationExport is a generated spreadsheet download.
type ApplicationExport struct {
	Filename string
	Data     []byte
}

type ApplicationUsecase interface {
	// Seeker operations
	ApplyToJob(ctx context.Context, userID, jobID int64, input ApplicationInput) (*Application, error)
	GetMyApplications(ctx context.Context, userID int64) ([]Application, error)

	// Recruiter operations
	ListByJobID(ctx context.Context, userID, jobID int64) (*JobPosting, []Application, error)
	// UpdateApplicationStatus returns the job ID of the application. Unknown
	// status values leave the stored status unchanged without an error.
	UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (int64, error)
	ExportApplications(ctx context.Context, userID, jobID int64) (*ApplicationExport, error)
}
