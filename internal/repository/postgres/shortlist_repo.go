package postgres

import (
	"context"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type shortlistRepo struct {
	db *pgxpool.Pool
}

func NewShortlistRepository(db *pgxpool.Pool) domain.ShortlistRepository {
	return &shortlistRepo{db: db}
}

func (r *shortlistRepo) Create(ctx context.Context, s *domain.ShortlistedCandidate) error {
	query := `INSERT INTO shortlisted_candidates (candidate_id, employer_id, position, position_id, date_shortlisted)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	s.DateShortlisted = time.Now()
	return r.db.QueryRow(ctx, query,
		s.CandidateID, s.EmployerID, s.Position, s.PositionID, s.DateShortlisted,
	).Scan(&s.ID)
}

func (r *shortlistRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.ShortlistedCandidate, error) {
	query := `SELECT id, candidate_id, employer_id, position, position_id, date_shortlisted
              FROM shortlisted_candidates WHERE employer_id = $1 ORDER BY date_shortlisted DESC, id DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ShortlistedCandidate
	for rows.Next() {
		var s domain.ShortlistedCandidate
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.EmployerID, &s.Position, &s.PositionID, &s.DateShortlisted); err != nil {
			return nil, err
		}
		entries = append(entries, s)
	}
	return entries, rows.Err()
}
