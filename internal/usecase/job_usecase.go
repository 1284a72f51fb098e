package usecase

import (
	"context"
	"strings"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgJobNotFound       = "Job not found"
	msgRecruiterNotFound = "Recruiter profile not found"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	appRepo     domain.ApplicationRepository
	validate    *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, profileRepo domain.ProfileRepository, appRepo domain.ApplicationRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		appRepo:     appRepo,
		validate:    validate,
	}
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context) ([]domain.JobPosting, error) {
	return u.SearchJobs(ctx, domain.JobSearch{})
}

// SearchJobs with both terms blank is the plain active listing.
func (u *jobUsecase) SearchJobs(ctx context.Context, search domain.JobSearch) ([]domain.JobPosting, error) {
	search.Query = strings.TrimSpace(search.Query)
	search.Location = strings.TrimSpace(search.Location)

	jobs, err := u.jobRepo.SearchActive(ctx, search)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return jobs, nil
}

func (u *jobUsecase) GetActiveJob(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return job, nil
}

func (u *jobUsecase) recruiterFor(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	p, err := u.profileRepo.GetRecruiterByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepoErr(err, msgRecruiterNotFound)
	}
	return p, nil
}

// applyInput validates input and copies it onto job.
func (u *jobUsecase) applyInput(job *domain.JobPosting, input domain.JobPostingInput) error {
	trimAll(&input.Title, &input.Description, &input.Location, &input.Salary, &input.JobType, &input.CompanyName)
	if err := validateInput(u.validate, input); err != nil {
		return err
	}

	salary, _ := validation.ParseMoney(input.Salary)
	job.Title = input.Title
	job.Description = input.Description
	job.Location = input.Location
	job.Salary = salary
	job.JobType = input.JobType
	job.CompanyName = input.CompanyName
	job.IsActive = input.IsActive
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, input domain.JobPostingInput) (*domain.JobPosting, error) {
	recruiter, err := u.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	job := &domain.JobPosting{RecruiterID: recruiter.ID}
	if err := u.applyInput(job, input); err != nil {
		return nil, err
	}
	job.FillDefaults(recruiter)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return job, nil
}

func (u *jobUsecase) ListJobsByRecruiter(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	recruiter, err := u.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.FetchByRecruiter(ctx, recruiter.ID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return jobs, nil
}

// GetOwnedJob answers 404 for both missing jobs and jobs of other recruiters.
func (u *jobUsecase) GetOwnedJob(ctx context.Context, userID, jobID int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetOwnedByID(ctx, jobID, userID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID, jobID int64, input domain.JobPostingInput) (*domain.JobPosting, error) {
	job, err := u.GetOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	recruiter, err := u.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.applyInput(job, input); err != nil {
		return nil, err
	}
	job.FillDefaults(recruiter)

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID, jobID int64) error {
	job, err := u.GetOwnedJob(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, job.ID); err != nil {
		return wrapRepoErr(err, msgJobNotFound)
	}
	return nil
}

func (u *jobUsecase) GetDashboard(ctx context.Context, userID int64) (*domain.RecruiterDashboard, error) {
	recruiter, err := u.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchByRecruiter(ctx, recruiter.ID)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	recent, err := u.appRepo.GetRecentByRecruiter(ctx, recruiter.ID, domain.DashboardRecentApplications)
	if err != nil {
		return nil, wrapRepoErr(err, msgJobNotFound)
	}
	return &domain.RecruiterDashboard{Jobs: jobs, RecentApplications: recent}, nil
}
