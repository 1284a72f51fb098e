package postgres

import (
	"context"
	"fmt"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, password_hash, user_type, date_joined`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Create inserts the user row and its profile in one transaction so a user
// never exists without exactly one profile of the matching type.
func (r *userRepo) Create(ctx context.Context, user *domain.User, profile domain.Profile) error {
	if profile == nil || profile.OwnerType() != user.UserType {
		return fmt.Errorf("profile type does not match user type %q", user.UserType)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (username, email, password_hash, user_type)
              VALUES ($1, $2, $3, $4) RETURNING id, date_joined`
	err = tx.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.UserType).
		Scan(&user.ID, &user.DateJoined)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return apperror.FieldError("username", "A user with that username already exists.")
		}
		return apperror.Internal(err)
	}

	domain.BindProfileOwner(profile, user.ID)
	if err := insertProfile(ctx, tx, profile); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func insertProfile(ctx context.Context, tx pgx.Tx, profile domain.Profile) error {
	switch p := profile.(type) {
	case *domain.RecruiterProfile:
		return tx.QueryRow(ctx,
			`INSERT INTO recruiter_profiles (user_id, company_name, company_description, phone_number)
             VALUES ($1, $2, $3, $4) RETURNING id`,
			p.UserID, p.CompanyName, p.CompanyDescription, p.PhoneNumber,
		).Scan(&p.ID)
	case *domain.JobSeekerProfile:
		return tx.QueryRow(ctx,
			`INSERT INTO job_seeker_profiles (user_id, full_name, headline, resume_file, skills)
             VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			p.UserID, p.FullName, p.Headline, p.ResumeFile, p.Skills,
		).Scan(&p.ID)
	}
	return fmt.Errorf("unsupported profile %T", profile)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.UserType, &user.DateJoined,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
