package usecase

import (
	"context"
	"errors"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/auth"

	"github.com/go-playground/validator/v10"
)

const invalidCredentials = "Invalid username or password"

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, validate: validate}
}

// Register creates the user and exactly one profile of the matching type.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	trimAll(&input.Username, &input.Email, &input.UserType)
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		UserType:     domain.UserType(input.UserType),
	}
	if err := u.userRepo.Create(ctx, user, domain.NewProfileFor(user)); err != nil {
		return nil, wrapRepoErr(err, "User not found")
	}
	return user, nil
}

// Authenticate never reveals whether the username or the password was wrong.
func (u *authUsecase) Authenticate(ctx context.Context, input domain.LoginInput) (*domain.User, error) {
	trimAll(&input.Username)
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.FieldError("", invalidCredentials)
		}
		return nil, apperror.Internal(err)
	}
	if !auth.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperror.FieldError("", invalidCredentials)
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "User not found")
	}
	return user, nil
}
