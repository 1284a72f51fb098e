package postgres

import (
	"context"

	"go-jobboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Every list query joins the job and the seeker so list pages render without N+1 lookups.
const applicationSelect = `SELECT a.id, a.job_id, a.seeker_id, a.application_date, a.status, a.cover_letter_text,
	j.title, j.company_name, sp.full_name, sp.headline
	FROM applications a
	JOIN job_postings j ON j.id = a.job_id
	JOIN job_seeker_profiles sp ON sp.id = a.seeker_id`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row, app *domain.Application) error {
	return row.Scan(
		&app.ID, &app.JobID, &app.SeekerID, &app.ApplicationDate, &app.Status, &app.CoverLetterText,
		&app.JobTitle, &app.JobCompany, &app.SeekerName, &app.SeekerHeadline,
	)
}

func (r *applicationRepo) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	query := `INSERT INTO applications (job_id, seeker_id, status, cover_letter_text)
              VALUES ($1, $2, $3, $4) RETURNING id, application_date`
	return r.db.QueryRow(ctx, query, app.JobID, app.SeekerID, app.Status, app.CoverLetterText).
		Scan(&app.ID, &app.ApplicationDate)
}

// GetOwnedByID resolves through job -> recruiter -> user so other recruiters get ErrNotFound.
func (r *applicationRepo) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.Application, error) {
	query := applicationSelect + `
              JOIN recruiter_profiles rp ON rp.id = j.recruiter_id
              WHERE a.id = $1 AND rp.user_id = $2`
	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id, userID), &app); err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.list(ctx, applicationSelect+`
              WHERE a.job_id = $1
              ORDER BY a.application_date DESC, a.id DESC`, jobID)
}

func (r *applicationRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	return r.list(ctx, applicationSelect+`
              WHERE a.seeker_id = $1
              ORDER BY a.application_date DESC, a.id DESC`, seekerID)
}

func (r *applicationRepo) GetRecentByRecruiter(ctx context.Context, recruiterID int64, limit int) ([]domain.Application, error) {
	return r.list(ctx, applicationSelect+`
              WHERE j.recruiter_id = $1
              ORDER BY a.application_date DESC, a.id DESC
              LIMIT $2`, recruiterID, limit)
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
