package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

const DefaultJobType = "Full-time"

type JobPosting struct {
	ID          int64           `json:"id"`
	RecruiterID int64           `json:"recruiter_id"`
	CompanyName string          `json:"company_name"` // Snapshot taken at creation
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Salary      decimal.Decimal `json:"salary"`
	JobType     string          `json:"job_type"`
	DatePosted  time.Time       `json:"date_posted"`
	IsActive    bool            `json:"is_active"`
}

// FillDefaults applies the creation-time rules: blank job type becomes
// Full-time and a blank company name is copied from the owning recruiter.
func (j *JobPosting) FillDefaults(recruiter *RecruiterProfile) {
	if strings.TrimSpace(j.JobType) == "" {
		j.JobType = DefaultJobType
	}
	if strings.TrimSpace(j.CompanyName) == "" && recruiter != nil {
		j.CompanyName = recruiter.CompanyName
	}
}

type JobPostingInput struct {
	Title       string `form:"title" validate:"required,max=255"`
	Description string `form:"description" validate:"required"`
	Location    string `form:"location" validate:"required,max=255"`
	Salary      string `form:"salary" validate:"required,money"`
	JobType     string `form:"job_type" validate:"max=50"`
	CompanyName string `form:"company_name" validate:"max=255"`
	IsActive    bool   `form:"is_active"`
}

// InputFromJob pre-fills an edit form.
func InputFromJob(j *JobPosting) JobPostingInput {
	return JobPostingInput{
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Salary:      j.Salary.StringFixed(2),
		JobType:     j.JobType,
		CompanyName: j.CompanyName,
		IsActive:    j.IsActive,
	}
}

// JobSearch filters the public listing. Empty fields do not filter.
type JobSearch struct {
	Query    string
	Location string
}

type JobRepository interface {
	// Create stores the posting; an empty CompanyName is filled from the recruiter row.
	Create(ctx context.Context, job *JobPosting) error
	GetActiveByID(ctx context.Context, id int64) (*JobPosting, error)
	// GetOwnedByID only matches postings whose recruiter belongs to userID.
	GetOwnedByID(ctx context.Context, id, userID int64) (*JobPosting, error)
	SearchActive(ctx context.Context, search JobSearch) ([]JobPosting, error)
	FetchByRecruiter(ctx context.Context, recruiterID int64) ([]JobPosting, error)
	Update(ctx context.Context, job *JobPosting) error
	// Delete removes the posting with its applications and saved jobs.
	Delete(ctx context.Context, id int64) error
}

// RecruiterDashboard is the recruiter landing page.
type RecruiterDashboard struct {
	Jobs               []JobPosting
	RecentApplications []Application
}

const DashboardRecentApplications = 10

type JobUsecase interface {
	ListActiveJobs(ctx context.Context) ([]JobPosting, error)
	SearchJobs(ctx context.Context, search JobSearch) ([]JobPosting, error)
	GetActiveJob(ctx context.Context, id int64) (*JobPosting, error)

	CreateJob(ctx context.Context, userID int64, input JobPostingInput) (*JobPosting, error)
	ListJobsByRecruiter(ctx context.Context, userID int64) ([]JobPosting, error)
	GetOwnedJob(ctx context.Context, userID, jobID int64) (*JobPosting, error)
	UpdateJob(ctx context.Context, userID, jobID int64, input JobPostingInput) (*JobPosting, error)
	DeleteJob(ctx context.Context, userID, jobID int64) error
	GetDashboard(ctx context.Context, userID int64) (*RecruiterDashboard, error)
}
