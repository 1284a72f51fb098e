package usecase

import (
	"context"
	"strings"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	msgApplicationNotFound = "Application not found"
	msgSeekerNotFound      = "Job seeker profile not found"
)

type applicationUsecase struct {
	appRepo     domain.ApplicationRepository
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func seekerFor(ctx context.Context, repo domain.ProfileRepository, userID int64) (*domain.JobSeekerProfile, error) {
	p, err := repo.GetSeekerByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepoErr(err, msgSeekerNotFound)
	}
	return p, nil
}

// ApplyToJob does not guard against repeat applications to the same job.
func (u *applicationUsecase) ApplyToJob(ctx context.Context, userID, jobID int64, input domain.ApplicationInput) (*domain.Application, error) {
	job, err := u.jobRepo.GetActiveByID(ctx, jobID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	seeker, err := seekerFor(ctx, u.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	trimAll(&input.CoverLetterText)
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	app := &domain.Application{
		JobID:           job.ID,
		SeekerID:        seeker.ID,
		Status:          domain.ApplicationStatusPending,
		CoverLetterText: input.CoverLetterText,
		JobTitle:        job.Title,
		JobCompany:      job.CompanyName,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	seeker, err := seekerFor(ctx, u.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	apps, err := u.appRepo.GetBySeekerID(ctx, seeker.ID)
	if err != nil {
		return nil, wrapRepoErr(err, msgApplicationNotFound)
	}
	return apps, nil
}

func (u *applicationUsecase) ListByJobID(ctx context.Context, userID, jobID int64) (*domain.JobPosting, []domain.Application, error) {
	job, err := u.jobRepo.GetOwnedByID(ctx, jobID, userID)
	if err != nil {
		return nil, nil, wrapRepoErr(err, msgJobNotFound)
	}
	apps, err := u.appRepo.GetByJobID(ctx, job.ID)
	if err != nil {
		return nil, nil, wrapRepoErr(err, msgApplicationNotFound)
	}
	return job, apps, nil
}

func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (int64, error) {
	app, err := u.appRepo.GetOwnedByID(ctx, applicationID, userID)
	if err != nil {
		return 0, wrapRepoErr(err, msgApplicationNotFound)
	}

	next := domain.ApplicationStatus(strings.TrimSpace(status))
	if !next.Valid() {
		logger.Log.Warn("Ignoring invalid application status",
			"application_id", app.ID, "status", status)
		return app.JobID, nil
	}
	if next == app.Status {
		return app.JobID, nil
	}

	if err := u.appRepo.UpdateStatus(ctx, app.ID, next); err != nil {
		return 0, wrapRepoErr(err, msgApplicationNotFound)
	}
	return app.JobID, nil
}
