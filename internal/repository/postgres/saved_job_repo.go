package postgres

import (
	"context"
	"errors"

	"go-jobboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// GetOrCreate relies on the (job_id, seeker_id) unique constraint so
// concurrent saves of the same pair still produce a single row.
func (r *savedJobRepo) GetOrCreate(ctx context.Context, jobID, seekerID int64) (*domain.SavedJob, bool, error) {
	saved := &domain.SavedJob{JobID: jobID, SeekerID: seekerID}

	err := r.db.QueryRow(ctx,
		`INSERT INTO saved_jobs (job_id, seeker_id) VALUES ($1, $2)
         ON CONFLICT ON CONSTRAINT saved_jobs_job_seeker_key DO NOTHING
         RETURNING id, date_saved`,
		jobID, seekerID,
	).Scan(&saved.ID, &saved.DateSaved)
	if err == nil {
		return saved, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Conflict: row already exists
	err = r.db.QueryRow(ctx,
		`SELECT id, date_saved FROM saved_jobs WHERE job_id = $1 AND seeker_id = $2`,
		jobID, seekerID,
	).Scan(&saved.ID, &saved.DateSaved)
	if err != nil {
		return nil, false, notFound(err)
	}
	return saved, false, nil
}

func (r *savedJobRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.SavedJob, error) {
	query := `SELECT s.id, s.job_id, s.seeker_id, s.date_saved, ` + jobColumns + `
              FROM saved_jobs s
              JOIN job_postings j ON j.id = s.job_id
              WHERE s.seeker_id = $1
              ORDER BY s.date_saved DESC, s.id DESC`
	rows, err := r.db.Query(ctx, query, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []domain.SavedJob{}
	for rows.Next() {
		var s domain.SavedJob
		j := &s.Job
		if err := rows.Scan(
			&s.ID, &s.JobID, &s.SeekerID, &s.DateSaved,
			&j.ID, &j.RecruiterID, &j.CompanyName, &j.Title, &j.Description, &j.Location,
			&j.Salary, &j.JobType, &j.DatePosted, &j.IsActive,
		); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}
