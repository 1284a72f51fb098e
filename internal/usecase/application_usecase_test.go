package usecase_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobboard/internal/domain"
	"go-jobboard/internal/usecase"
	"go-jobboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type appFixture struct {
	apps     *MockApplicationRepo
	jobs     *MockJobRepo
	profiles *MockProfileRepo
	uc       domain.ApplicationUsecase
}

func newAppFixture() *appFixture {
	f := &appFixture{apps: new(MockApplicationRepo), jobs: new(MockJobRepo), profiles: new(MockProfileRepo)}
	f.uc = usecase.NewApplicationUsecase(f.apps, f.jobs, f.profiles, validation.New())
	return f
}

var seekerB = &domain.JobSeekerProfile{ID: 21, UserID: 2, FullName: "Bea", ResumeFile: "resumes/b.pdf"}

func TestApplyToJob(t *testing.T) {
	t.Run("creates pending application", func(t *testing.T) {
		f := newAppFixture()
		f.jobs.On("GetActiveByID", mock.Anything, int64(7)).Return(&domain.JobPosting{ID: 7, Title: "Go Engineer", IsActive: true}, nil)
		f.profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(seekerB, nil)
		f.apps.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.JobID == 7 && a.SeekerID == 21 && a.Status == domain.ApplicationStatusPending
		})).Return(nil).Once()

		app, err := f.uc.ApplyToJob(context.Background(), 2, 7, domain.ApplicationInput{CoverLetterText: "Hire me"})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		f.apps.AssertExpectations(t)
	})

	t.Run("inactive or missing job", func(t *testing.T) {
		f := newAppFixture()
		f.jobs.On("GetActiveByID", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.ApplyToJob(context.Background(), 2, 8, domain.ApplicationInput{CoverLetterText: "Hi"})
		requireAppError(t, err, http.StatusNotFound)
		f.apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty cover letter", func(t *testing.T) {
		f := newAppFixture()
		f.jobs.On("GetActiveByID", mock.Anything, int64(7)).Return(&domain.JobPosting{ID: 7, IsActive: true}, nil)
		f.profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(seekerB, nil)

		_, err := f.uc.ApplyToJob(context.Background(), 2, 7, domain.ApplicationInput{CoverLetterText: "  "})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Fields, "cover_letter_text")
	})

	t.Run("repeat applications are allowed", func(t *testing.T) {
		f := newAppFixture()
		f.jobs.On("GetActiveByID", mock.Anything, int64(7)).Return(&domain.JobPosting{ID: 7, IsActive: true}, nil)
		f.profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(seekerB, nil)
		f.apps.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

		for i := 0; i < 2; i++ {
			_, err := f.uc.ApplyToJob(context.Background(), 2, 7, domain.ApplicationInput{CoverLetterText: "Again"})
			require.NoError(t, err)
		}
		f.apps.AssertExpectations(t)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	owned := &domain.Application{ID: 30, JobID: 7, Status: domain.ApplicationStatusPending}

	t.Run("valid status is written", func(t *testing.T) {
		f := newAppFixture()
		f.apps.On("GetOwnedByID", mock.Anything, int64(30), int64(1)).Return(owned, nil)
		f.apps.On("UpdateStatus", mock.Anything, int64(30), domain.ApplicationStatusInterview).Return(nil).Once()

		jobID, err := f.uc.UpdateApplicationStatus(context.Background(), 1, 30, "interview")
		require.NoError(t, err)
		assert.Equal(t, int64(7), jobID)
		f.apps.AssertExpectations(t)
	})

	t.Run("invalid status is ignored", func(t *testing.T) {
		f := newAppFixture()
		f.apps.On("GetOwnedByID", mock.Anything, int64(30), int64(1)).Return(owned, nil)

		jobID, err := f.uc.UpdateApplicationStatus(context.Background(), 1, 30, "hired")
		require.NoError(t, err)
		assert.Equal(t, int64(7), jobID)
		f.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other recruiter gets not found", func(t *testing.T) {
		f := newAppFixture()
		f.apps.On("GetOwnedByID", mock.Anything, int64(30), int64(9)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.UpdateApplicationStatus(context.Background(), 9, 30, "rejected")
		requireAppError(t, err, http.StatusNotFound)
	})
}

func TestListByJobID_Scoped(t *testing.T) {
	f := newAppFixture()
	f.jobs.On("GetOwnedByID", mock.Anything, int64(7), int64(9)).Return(nil, domain.ErrNotFound)

	_, _, err := f.uc.ListByJobID(context.Background(), 9, 7)
	requireAppError(t, err, http.StatusNotFound)
	f.apps.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
}

func TestGetMyApplications(t *testing.T) {
	f := newAppFixture()
	f.profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(seekerB, nil)
	f.apps.On("GetBySeekerID", mock.Anything, int64(21)).
		Return([]domain.Application{{ID: 1, Status: domain.ApplicationStatusInterview}}, nil)

	apps, err := f.uc.GetMyApplications(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, domain.ApplicationStatusInterview, apps[0].Status)
}

func TestExportApplications(t *testing.T) {
	f := newAppFixture()
	job := &domain.JobPosting{ID: 7, Title: "Go Engineer"}
	applied := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	f.jobs.On("GetOwnedByID", mock.Anything, int64(7), int64(1)).Return(job, nil)
	f.apps.On("GetByJobID", mock.Anything, int64(7)).Return([]domain.Application{
		{ID: 2, SeekerName: "Bea", SeekerHeadline: "Gopher", Status: domain.ApplicationStatusReviewed, ApplicationDate: applied, CoverLetterText: "Hello"},
		{ID: 1, SeekerName: "Al", Status: domain.ApplicationStatusPending, ApplicationDate: applied.Add(-time.Hour)},
	}, nil)

	export, err := f.uc.ExportApplications(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "job_7_applications.xlsx", export.Filename)

	wb, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "APPLICANT", rows[0][0])
	assert.Equal(t, []string{"Bea", "Gopher", "Reviewed", "2024-05-01 09:30", "Hello"}, rows[1])
	assert.Equal(t, "Al", rows[2][0])
	assert.Equal(t, "Pending", rows[2][2])
}
