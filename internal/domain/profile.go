package domain

import (
	"context"
	"io"
)

// Profile is the role-specific half of an account: *RecruiterProfile or
// *JobSeekerProfile. Exactly one exists per user, chosen by UserType.
type Profile interface {
	OwnerType() UserType
	setOwner(userID int64)
}

type RecruiterProfile struct {
	ID                 int64  `json:"id"`
	UserID             int64  `json:"user_id"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	PhoneNumber        string `json:"phone_number"`
}

func (p *RecruiterProfile) OwnerType() UserType { return UserTypeRecruiter }
func (p *RecruiterProfile) setOwner(userID int64) { p.UserID = userID }

type JobSeekerProfile struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	FullName   string `json:"full_name"`
	Headline   string `json:"headline"`
	ResumeFile string `json:"resume_file"` // Opaque storage reference
	Skills     string `json:"skills"`
}

func (p *JobSeekerProfile) OwnerType() UserType { return UserTypeSeeker }
func (p *JobSeekerProfile) setOwner(userID int64) { p.UserID = userID }

// NewProfileFor returns the empty profile variant matching the user's type.
func NewProfileFor(u *User) Profile {
	var p Profile
	if u.UserType == UserTypeRecruiter {
		p = &RecruiterProfile{}
	} else {
		p = &JobSeekerProfile{}
	}
	p.setOwner(u.ID)
	return p
}

// BindProfileOwner points p at userID once the user row exists.
func BindProfileOwner(p Profile, userID int64) {
	p.setOwner(userID)
}

type RecruiterProfileInput struct {
	CompanyName        string `form:"company_name" validate:"required,max=255"`
	CompanyDescription string `form:"company_description" validate:"required"`
	PhoneNumber        string `form:"phone_number" validate:"required,max=20"`
}

type SeekerProfileInput struct {
	FullName string `form:"full_name" validate:"required,max=255"`
	Headline string `form:"headline" validate:"required,max=255"`
	Skills   string `form:"skills" validate:"required"`
}

// FileUpload is a fully read multipart file.
type FileUpload struct {
	Filename string
	Data     []byte
}

// FileStorage persists uploaded files and returns an opaque reference.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

type ProfileRepository interface {
	GetRecruiterByUserID(ctx context.Context, userID int64) (*RecruiterProfile, error)
	GetSeekerByUserID(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	UpdateRecruiter(ctx context.Context, profile *RecruiterProfile) error
	UpdateSeeker(ctx context.Context, profile *JobSeekerProfile) error
}

type ProfileUsecase interface {
	GetRecruiterProfile(ctx context.Context, userID int64) (*RecruiterProfile, error)
	UpdateRecruiterProfile(ctx context.Context, userID int64, input RecruiterProfileInput) (*RecruiterProfile, error)
	GetSeekerProfile(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	// UpdateSeekerProfile replaces the stored resume when resume is non-nil.
	UpdateSeekerProfile(ctx context.Context, userID int64, input SeekerProfileInput, resume *FileUpload) (*JobSeekerProfile, error)
}
