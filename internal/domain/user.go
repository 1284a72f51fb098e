package domain

import (
	"context"
	"time"
)

type UserType string

const (
	UserTypeRecruiter UserType = "recruiter"
	UserTypeSeeker    UserType = "seeker"
)

// Valid reports whether t is one of the two account types.
func (t UserType) Valid() bool {
	return t == UserTypeRecruiter || t == UserTypeSeeker
}

// Label is the human readable account type.
func (t UserType) Label() string {
	switch t {
	case UserTypeRecruiter:
		return "Recruiter"
	case UserTypeSeeker:
		return "Job Seeker"
	}
	return string(t)
}

// User is an account. UserType is written once at registration.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     UserType  `json:"user_type"`
	DateJoined   time.Time `json:"date_joined"`
}

// IsRecruiter is true iff u is an authenticated recruiter. A nil user is anonymous.
func (u *User) IsRecruiter() bool {
	return u != nil && u.UserType == UserTypeRecruiter
}

// IsSeeker is true iff u is an authenticated job seeker.
func (u *User) IsSeeker() bool {
	return u != nil && u.UserType == UserTypeSeeker
}

// HasRole checks the principal against a route's required role.
func (u *User) HasRole(t UserType) bool {
	switch t {
	case UserTypeRecruiter:
		return u.IsRecruiter()
	case UserTypeSeeker:
		return u.IsSeeker()
	}
	return false
}

type RegisterInput struct {
	Username string `form:"username" validate:"required,max=150"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required"`
	UserType string `form:"user_type" validate:"required,oneof=recruiter seeker"`
}

type LoginInput struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
}

type UserRepository interface {
	// Create inserts the user and its profile atomically and fills both IDs.
	Create(ctx context.Context, user *User, profile Profile) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Authenticate(ctx context.Context, input LoginInput) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
