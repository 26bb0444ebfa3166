package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, employer_id, job_title, location, company, employment_type, experience_level, approved, reports_to, salary_range, application_deadline, skills, details, posting_date`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.JobTitle, &j.Location, &j.Company,
		&j.EmploymentType, &j.ExperienceLevel, &j.Approved, &j.ReportsTo,
		&j.SalaryRange, &j.ApplicationDeadline, &j.Skills, &j.Details, &j.PostingDate,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (employer_id, job_title, location, company, employment_type, experience_level, approved, reports_to, salary_range, application_deadline, skills, details, posting_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if job.PostingDate.IsZero() {
		job.PostingDate = time.Now()
	}
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.JobTitle, job.Location, job.Company, job.EmploymentType,
		job.ExperienceLevel, job.Approved, job.ReportsTo, job.SalaryRange,
		job.ApplicationDeadline, job.Skills, job.Details, job.PostingDate,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) fetch(ctx context.Context, where string, limit, offset int) ([]domain.JobPosting, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings ` + where + ` ORDER BY posting_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings `+where).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	return r.fetch(ctx, "", limit, offset)
}

func (r *jobRepo) FetchApproved(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	return r.fetch(ctx, "WHERE approved = TRUE", limit, offset)
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE employer_id = $1 ORDER BY posting_date DESC, id DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET job_title = $1, location = $2, company = $3, employment_type = $4, experience_level = $5, reports_to = $6, salary_range = $7, application_deadline = $8, skills = $9, details = $10 WHERE id = $11`
	tag, err := r.db.Exec(ctx, query,
		job.JobTitle, job.Location, job.Company, job.EmploymentType, job.ExperienceLevel,
		job.ReportsTo, job.SalaryRange, job.ApplicationDeadline, job.Skills, job.Details, job.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE job_postings SET approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
