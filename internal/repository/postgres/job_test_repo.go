package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobTestRepo struct {
	db *pgxpool.Pool
}

func NewJobTestRepository(db *pgxpool.Pool) domain.JobTestRepository {
	return &jobTestRepo{db: db}
}

// Save creates the job's test or replaces its question set. Questions live
// in a child table, one row per question with the options as a text array,
// so the whole set is swapped inside one transaction.
func (r *jobTestRepo) Save(ctx context.Context, test *domain.JobTest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	test.CreatedAt = time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO job_tests (job_id, skills, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id) DO UPDATE SET skills = EXCLUDED.skills
		RETURNING id`,
		test.JobID, test.Skills, test.CreatedAt,
	).Scan(&test.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM job_test_questions WHERE job_test_id = $1`, test.ID); err != nil {
		return err
	}
	for i, q := range test.Questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO job_test_questions (job_test_id, position, question, options, answer)
			VALUES ($1, $2, $3, $4, $5)`,
			test.ID, i, q.Question, pq.Array(q.Options), q.Answer,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *jobTestRepo) GetByJobID(ctx context.Context, jobID int64) (*domain.JobTest, error) {
	var test domain.JobTest
	err := r.db.QueryRow(ctx,
		`SELECT id, job_id, skills, created_at FROM job_tests WHERE job_id = $1`, jobID,
	).Scan(&test.ID, &test.JobID, &test.Skills, &test.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT question, options, answer FROM job_test_questions
		WHERE job_test_id = $1 ORDER BY position`, test.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q domain.TestQuestion
		if err := rows.Scan(&q.Question, pq.Array(&q.Options), &q.Answer); err != nil {
			return nil, err
		}
		test.Questions = append(test.Questions, q)
	}
	return &test, rows.Err()
}

func (r *jobTestRepo) ExistsForJob(ctx context.Context, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_tests WHERE job_id = $1)`, jobID).Scan(&exists)
	return exists, err
}
