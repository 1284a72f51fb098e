package usecase

import (
	"context"

	"go-jobboard/internal/domain"
)

type savedJobUsecase struct {
	savedRepo   domain.SavedJobRepository
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
}

func NewSavedJobUsecase(savedRepo domain.SavedJobRepository, jobRepo domain.JobRepository, profileRepo domain.ProfileRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{savedRepo: savedRepo, jobRepo: jobRepo, profileRepo: profileRepo}
}

// SaveJob is idempotent per (job, seeker).
func (u *savedJobUsecase) SaveJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	job, err := u.jobRepo.GetActiveByID(ctx, jobID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	seeker, err := seekerFor(ctx, u.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	saved, _, err := u.savedRepo.GetOrCreate(ctx, job.ID, seeker.ID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	saved.Job = *job
	return saved, nil
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	seeker, err := seekerFor(ctx, u.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	saved, err := u.savedRepo.GetBySeekerID(ctx, seeker.ID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return saved, nil
}
