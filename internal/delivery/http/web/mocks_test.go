package web_test

import (
	"context"

	"go-jobboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUC) Authenticate(ctx context.Context, input domain.LoginInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUC) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileUC struct {
	mock.Mock
}

func (m *MockProfileUC) GetRecruiterProfile(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockProfileUC) UpdateRecruiterProfile(ctx context.Context, userID int64, input domain.RecruiterProfileInput) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockProfileUC) GetSeekerProfile(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}

func (m *MockProfileUC) UpdateSeekerProfile(ctx context.Context, userID int64, input domain.SeekerProfileInput, resume *domain.FileUpload) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID, input, resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}

type MockJobUC struct {
	mock.Mock
}

func (m *MockJobUC) ListActiveJobs(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) SearchJobs(ctx context.Context, search domain.JobSearch) ([]domain.JobPosting, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) GetActiveJob(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) CreateJob(ctx context.Context, userID int64, input domain.JobPostingInput) (*domain.JobPosting, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) ListJobsByRecruiter(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) GetOwnedJob(ctx context.Context, userID, jobID int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, userID, jobID int64, input domain.JobPostingInput) (*domain.JobPosting, error) {
	args := m.Called(ctx, userID, jobID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobUC) DeleteJob(ctx context.Context, userID, jobID int64) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

func (m *MockJobUC) GetDashboard(ctx context.Context, userID int64) (*domain.RecruiterDashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterDashboard), args.Error(1)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) ApplyToJob(ctx context.Context, userID, jobID int64, input domain.ApplicationInput) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListByJobID(ctx context.Context, userID, jobID int64) (*domain.JobPosting, []domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.JobPosting), args.Get(1).([]domain.Application), args.Error(2)
}

func (m *MockApplicationUC) UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, status string) (int64, error) {
	args := m.Called(ctx, userID, applicationID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationUC) ExportApplications(ctx context.Context, userID, jobID int64) (*domain.ApplicationExport, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationExport), args.Error(1)
}

type MockSavedJobUC struct {
	mock.Mock
}

func (m *MockSavedJobUC) SaveJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedJob), args.Error(1)
}

func (m *MockSavedJobUC) ListSavedJobs(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}
