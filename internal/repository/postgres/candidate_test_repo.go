package postgres

import (
	"context"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateTestRepo struct {
	db *pgxpool.Pool
}

func NewCandidateTestRepository(db *pgxpool.Pool) domain.CandidateTestRepository {
	return &candidateTestRepo{db: db}
}

// Create stores a first attempt. The unique index on (candidate_id, job_id)
// backstops the usecase's Exists check; a concurrent duplicate insert fails
// here instead of overwriting the stored result.
func (r *candidateTestRepo) Create(ctx context.Context, result *domain.CandidateTestResult) error {
	query := `INSERT INTO candidate_test_results (candidate_id, job_id, answers, obtained_marks, total_marks, submitted_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	result.SubmittedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		result.CandidateID, result.JobID, []byte(result.Answers),
		result.ObtainedMarks, result.TotalMarks, result.SubmittedAt,
	).Scan(&result.ID)
}

func (r *candidateTestRepo) Exists(ctx context.Context, candidateID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidate_test_results WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID,
	).Scan(&exists)
	return exists, err
}

func (r *candidateTestRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.CandidateTestResult, error) {
	query := `SELECT id, candidate_id, job_id, answers, obtained_marks, total_marks, submitted_at
              FROM candidate_test_results WHERE job_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.CandidateTestResult
	for rows.Next() {
		var res domain.CandidateTestResult
		var answers []byte
		if err := rows.Scan(&res.ID, &res.CandidateID, &res.JobID, &answers, &res.ObtainedMarks, &res.TotalMarks, &res.SubmittedAt); err != nil {
			return nil, err
		}
		res.Answers = answers
		results = append(results, res)
	}
	return results, rows.Err()
}
