package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User, profile domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetRecruiterByUserID(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockProfileRepo) GetSeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}

func (m *MockProfileRepo) UpdateRecruiter(ctx context.Context, p *domain.RecruiterProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) UpdateSeeker(ctx context.Context, p *domain.JobSeekerProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetActiveByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) SearchActive(ctx context.Context, search domain.JobSearch) ([]domain.JobPosting, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Application, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetRecentByRecruiter(ctx context.Context, recruiterID int64, limit int) ([]domain.Application, error) {
	args := m.Called(ctx, recruiterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) GetOrCreate(ctx context.Context, jobID, seekerID int64) (*domain.SavedJob, bool, error) {
	args := m.Called(ctx, jobID, seekerID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.SavedJob), args.Bool(1), args.Error(2)
}

func (m *MockSavedJobRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.SavedJob, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, key, string(data), size, contentType)
	return args.String(0), args.Error(1)
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}
