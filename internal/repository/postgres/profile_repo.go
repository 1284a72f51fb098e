package postgres

import (
	"context"

	"go-jobboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetRecruiterByUserID(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	query := `SELECT id, user_id, company_name, company_description, phone_number
              FROM recruiter_profiles WHERE user_id = $1`
	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDescription, &p.PhoneNumber,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *profileRepo) GetSeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	query := `SELECT id, user_id, full_name, headline, resume_file, skills
              FROM job_seeker_profiles WHERE user_id = $1`
	var p domain.JobSeekerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Headline, &p.ResumeFile, &p.Skills,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// UpdateRecruiter never touches user_id; the owner is fixed at creation.
func (r *profileRepo) UpdateRecruiter(ctx context.Context, p *domain.RecruiterProfile) error {
	query := `UPDATE recruiter_profiles
              SET company_name = $2, company_description = $3, phone_number = $4
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, p.ID, p.CompanyName, p.CompanyDescription, p.PhoneNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) UpdateSeeker(ctx context.Context, p *domain.JobSeekerProfile) error {
	query := `UPDATE job_seeker_profiles
              SET full_name = $2, headline = $3, resume_file = $4, skills = $5
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, p.ID, p.FullName, p.Headline, p.ResumeFile, p.Skills)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
