package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go-jobboard/internal/domain"
	"go-jobboard/internal/usecase"
	"go-jobboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSeekerInput() domain.SeekerProfileInput {
	return domain.SeekerProfileInput{FullName: "Bea Smith", Headline: "Backend developer", Skills: "Go, SQL"}
}

func TestUpdateSeekerProfile_RequiresResumeWhenNoneStored(t *testing.T) {
	profiles := new(MockProfileRepo)
	files := new(MockFileStorage)
	uc := usecase.NewProfileUsecase(profiles, files, validation.New(), 1<<20)

	profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(&domain.JobSeekerProfile{ID: 21, UserID: 2}, nil)

	_, err := uc.UpdateSeekerProfile(context.Background(), 2, validSeekerInput(), nil)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "This field is required.", appErr.Fields["resume_file"])
	profiles.AssertNotCalled(t, "UpdateSeeker", mock.Anything, mock.Anything)
}

func TestUpdateSeekerProfile_StoresNewResume(t *testing.T) {
	profiles := new(MockProfileRepo)
	files := new(MockFileStorage)
	uc := usecase.NewProfileUsecase(profiles, files, validation.New(), 1<<20)

	profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).
		Return(&domain.JobSeekerProfile{ID: 21, UserID: 2, ResumeFile: "resumes/old.pdf"}, nil)
	files.On("Save", mock.Anything,
		mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "resumes/") && strings.HasSuffix(key, ".txt") }),
		"Bea Smith\nGo developer\n", int64(23), mock.AnythingOfType("string"),
	).Return("resumes/new.txt", nil).Once()
	profiles.On("UpdateSeeker", mock.Anything, mock.MatchedBy(func(p *domain.JobSeekerProfile) bool {
		return p.ResumeFile == "resumes/new.txt" && p.FullName == "Bea Smith" && p.UserID == 2
	})).Return(nil).Once()

	p, err := uc.UpdateSeekerProfile(context.Background(), 2, validSeekerInput(),
		&domain.FileUpload{Filename: "cv.txt", Data: []byte("Bea Smith\nGo developer\n")})
	require.NoError(t, err)
	assert.Equal(t, "resumes/new.txt", p.ResumeFile)
	files.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestUpdateSeekerProfile_KeepsExistingResume(t *testing.T) {
	profiles := new(MockProfileRepo)
	files := new(MockFileStorage)
	uc := usecase.NewProfileUsecase(profiles, files, validation.New(), 1<<20)

	profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).
		Return(&domain.JobSeekerProfile{ID: 21, UserID: 2, ResumeFile: "resumes/old.pdf"}, nil)
	profiles.On("UpdateSeeker", mock.Anything, mock.MatchedBy(func(p *domain.JobSeekerProfile) bool {
		return p.ResumeFile == "resumes/old.pdf" && p.Skills == "Go, SQL"
	})).Return(nil).Once()

	_, err := uc.UpdateSeekerProfile(context.Background(), 2, validSeekerInput(), nil)
	require.NoError(t, err)
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSeekerProfile_RejectsBadUpload(t *testing.T) {
	profiles := new(MockProfileRepo)
	files := new(MockFileStorage)
	uc := usecase.NewProfileUsecase(profiles, files, validation.New(), 1<<20)

	profiles.On("GetSeekerByUserID", mock.Anything, int64(2)).Return(&domain.JobSeekerProfile{ID: 21, UserID: 2}, nil)

	in := validSeekerInput()
	in.Headline = ""
	_, err := uc.UpdateSeekerProfile(context.Background(), 2, in,
		&domain.FileUpload{Filename: "cv.exe", Data: []byte("MZ\x90\x00")})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Fields, "resume_file")
	assert.Contains(t, appErr.Fields, "headline")
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRecruiterProfile(t *testing.T) {
	profiles := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profiles, new(MockFileStorage), validation.New(), 1<<20)

	profiles.On("GetRecruiterByUserID", mock.Anything, int64(1)).
		Return(&domain.RecruiterProfile{ID: 5, UserID: 1, CompanyName: "Acme"}, nil)
	profiles.On("UpdateRecruiter", mock.Anything, mock.MatchedBy(func(p *domain.RecruiterProfile) bool {
		return p.ID == 5 && p.UserID == 1 && p.CompanyName == "Acme Corp"
	})).Return(nil).Once()

	p, err := uc.UpdateRecruiterProfile(context.Background(), 1, domain.RecruiterProfileInput{
		CompanyName: " Acme Corp ", CompanyDescription: "Widgets", PhoneNumber: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", p.CompanyName)

	_, err = uc.UpdateRecruiterProfile(context.Background(), 1, domain.RecruiterProfileInput{
		CompanyName: "Acme", CompanyDescription: "Widgets", PhoneNumber: strings.Repeat("1", 21),
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Ensure this value has at most 20 characters.", appErr.Fields["phone_number"])
	profiles.AssertNumberOfCalls(t, "UpdateRecruiter", 1)
}
