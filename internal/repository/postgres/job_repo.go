package postgres

import (
	"context"

	"go-jobboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `j.id, j.recruiter_id, j.company_name, j.title, j.description, j.location,
	j.salary, j.job_type, j.date_posted, j.is_active`

// companyFallback enforces the company name snapshot on every write:
// a blank value is replaced with the owning recruiter's company name.
const companyFallback = `COALESCE(NULLIF(TRIM($2), ''),
	(SELECT company_name FROM recruiter_profiles WHERE id = $1), '')`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row, job *domain.JobPosting) error {
	return row.Scan(
		&job.ID, &job.RecruiterID, &job.CompanyName, &job.Title, &job.Description, &job.Location,
		&job.Salary, &job.JobType, &job.DatePosted, &job.IsActive,
	)
}

func collectJobs(rows pgx.Rows) ([]domain.JobPosting, error) {
	defer rows.Close()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		var job domain.JobPosting
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (recruiter_id, company_name, title, description, location, salary, job_type, is_active)
              VALUES ($1, ` + companyFallback + `, $3, $4, $5, $6, COALESCE(NULLIF(TRIM($7), ''), 'Full-time'), $8)
              RETURNING id, company_name, job_type, date_posted`
	return r.db.QueryRow(ctx, query,
		job.RecruiterID, job.CompanyName, job.Title, job.Description, job.Location,
		job.Salary, job.JobType, job.IsActive,
	).Scan(&job.ID, &job.CompanyName, &job.JobType, &job.DatePosted)
}

func (r *jobRepo) GetActiveByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings j WHERE j.id = $1 AND j.is_active`
	var job domain.JobPosting
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// GetOwnedByID returns ErrNotFound both for missing jobs and for jobs owned by someone else.
func (r *jobRepo) GetOwnedByID(ctx context.Context, id, userID int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
              FROM job_postings j
              JOIN recruiter_profiles rp ON rp.id = j.recruiter_id
              WHERE j.id = $1 AND rp.user_id = $2`
	var job domain.JobPosting
	if err := scanJob(r.db.QueryRow(ctx, query, id, userID), &job); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// SearchActive filters active postings. Query matches title, description or
// company name; location is ANDed on top. Both are case-insensitive substrings.
func (r *jobRepo) SearchActive(ctx context.Context, search domain.JobSearch) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
              FROM job_postings j
              WHERE j.is_active
                AND ($1::text = '' OR j.title ILIKE $2 OR j.description ILIKE $2 OR j.company_name ILIKE $2)
                AND ($3::text = '' OR j.location ILIKE $4)
              ORDER BY j.date_posted DESC, j.id DESC`
	rows, err := r.db.Query(ctx, query,
		search.Query, containsPattern(search.Query),
		search.Location, containsPattern(search.Location),
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *jobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + `
              FROM job_postings j
              WHERE j.recruiter_id = $1
              ORDER BY j.date_posted DESC, j.id DESC`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

// Update leaves recruiter_id and date_posted untouched.
func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings
              SET company_name = ` + companyFallback + `,
                  title = $3, description = $4, location = $5, salary = $6,
                  job_type = COALESCE(NULLIF(TRIM($7), ''), 'Full-time'), is_active = $8
              WHERE recruiter_id = $1 AND id = $9
              RETURNING company_name, job_type`
	err := r.db.QueryRow(ctx, query,
		job.RecruiterID, job.CompanyName, job.Title, job.Description, job.Location,
		job.Salary, job.JobType, job.IsActive, job.ID,
	).Scan(&job.CompanyName, &job.JobType)
	return notFound(err)
}

// Delete removes dependents first so it does not rely on FK cascades alone.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM saved_jobs WHERE job_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
