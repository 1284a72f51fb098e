package usecase

import (
	"bytes"
	"context"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/security"
	"go-jobboard/pkg/storage"
	"go-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo    domain.ProfileRepository
	files          domain.FileStorage
	validate       *validator.Validate
	maxResumeBytes int64
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, files domain.FileStorage, validate *validator.Validate, maxResumeBytes int64) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:    profileRepo,
		files:          files,
		validate:       validate,
		maxResumeBytes: maxResumeBytes,
	}
}

func (u *profileUsecase) GetRecruiterProfile(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	p, err := u.profileRepo.GetRecruiterByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepoErr(err, "Profile not found")
	}
	return p, nil
}

func (u *profileUsecase) UpdateRecruiterProfile(ctx context.Context, userID int64, input domain.RecruiterProfileInput) (*domain.RecruiterProfile, error) {
	p, err := u.GetRecruiterProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	trimAll(&input.CompanyName, &input.CompanyDescription, &input.PhoneNumber)
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	p.CompanyName = input.CompanyName
	p.CompanyDescription = input.CompanyDescription
	p.PhoneNumber = input.PhoneNumber
	if err := u.profileRepo.UpdateRecruiter(ctx, p); err != nil {
		return nil, wrapRepoErr(err, "Profile not found")
	}
	return p, nil
}

func (u *profileUsecase) GetSeekerProfile(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	p, err := u.profileRepo.GetSeekerByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepoErr(err, "Profile not found")
	}
	return p, nil
}

func (u *profileUsecase) UpdateSeekerProfile(ctx context.Context, userID int64, input domain.SeekerProfileInput, resume *domain.FileUpload) (*domain.JobSeekerProfile, error) {
	p, err := u.GetSeekerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	trimAll(&input.FullName, &input.Headline, &input.Skills)
	fields := map[string]string{}
	if err := u.validate.Struct(input); err != nil {
		fields = validation.FieldErrors(err)
	}

	var check security.FileValidationResult
	switch {
	case resume != nil:
		check = security.ValidateResume(resume.Filename, resume.Data, u.maxResumeBytes)
		if !check.Valid {
			fields["resume_file"] = check.Error
		}
	case p.ResumeFile == "":
		fields["resume_file"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	if resume != nil {
		ref, err := u.files.Save(ctx, storage.ResumeKey(resume.Filename),
			bytes.NewReader(resume.Data), int64(len(resume.Data)), check.DetectedMIME)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		p.ResumeFile = ref
	}

	p.FullName = input.FullName
	p.Headline = input.Headline
	p.Skills = input.Skills
	if err := u.profileRepo.UpdateSeeker(ctx, p); err != nil {
		return nil, wrapRepoErr(err, "Profile not found")
	}
	return p, nil
}
