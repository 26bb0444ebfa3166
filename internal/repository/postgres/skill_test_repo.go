package postgres

import (
	"context"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillTestRepo struct {
	db *pgxpool.Pool
}

func NewSkillTestRepository(db *pgxpool.Pool) domain.SkillTestRepository {
	return &skillTestRepo{db: db}
}

// Upsert keeps at most one current row per (candidate, skill). The unique
// index is on (candidate_id, lower(skill)) so resubmitting "SQL" replaces a
// result recorded as "sql".
func (r *skillTestRepo) Upsert(ctx context.Context, result *domain.SkillTestResult) error {
	query := `INSERT INTO skill_test_results (candidate_id, skill, marks, total_marks, taken_at)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (candidate_id, lower(skill))
              DO UPDATE SET skill = EXCLUDED.skill, marks = EXCLUDED.marks, total_marks = EXCLUDED.total_marks, taken_at = EXCLUDED.taken_at
              RETURNING id`
	result.TakenAt = time.Now()
	return r.db.QueryRow(ctx, query,
		result.CandidateID, result.Skill, result.Marks, result.TotalMarks, result.TakenAt,
	).Scan(&result.ID)
}

func (r *skillTestRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.SkillTestResult, error) {
	query := `SELECT id, candidate_id, skill, marks, total_marks, taken_at
              FROM skill_test_results WHERE candidate_id = $1 ORDER BY taken_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SkillTestResult
	for rows.Next() {
		var s domain.SkillTestResult
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.Skill, &s.Marks, &s.TotalMarks, &s.TakenAt); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
