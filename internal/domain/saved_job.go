package domain

import (
	"context"
	"time"
)

// SavedJob is a seeker's bookmark; unique per (job, seeker).
type SavedJob struct {
	ID        int64      `json:"id"`
	JobID     int64      `json:"job_id"`
	SeekerID  int64      `json:"seeker_id"`
	DateSaved time.Time  `json:"date_saved"`
	Job       JobPosting `json:"job"`
}

type SavedJobRepository interface {
	// GetOrCreate is idempotent; created reports whether a row was inserted.
	GetOrCreate(ctx context.Context, jobID, seekerID int64) (saved *SavedJob, created bool, err error)
	GetBySeekerID(ctx context.Context, seekerID int64) ([]SavedJob, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, userID, jobID int64) (*SavedJob, error)
	ListSavedJobs(ctx context.Context, userID int64) ([]SavedJob, error)
}
