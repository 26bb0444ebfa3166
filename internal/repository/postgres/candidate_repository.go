package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, firstname, lastname, email, password, phone, COALESCE(resume, 'null'::jsonb), COALESCE(skills, ''), joined_date, selected_theme`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var resume []byte
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Password,
		&c.Phone, &resume, &c.Skills, &c.JoinedDate, &c.SelectedTheme,
	)
	if err != nil {
		return nil, err
	}
	c.Resume = json.RawMessage(resume)
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates (firstname, lastname, email, password, phone, skills, joined_date, selected_theme)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	c.JoinedDate = time.Now()
	if c.SelectedTheme == "" {
		c.SelectedTheme = "default"
	}
	return r.db.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Password, c.Phone, c.Skills, c.JoinedDate, c.SelectedTheme,
	).Scan(&c.ID)
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) UpdateProfile(ctx context.Context, c *domain.Candidate) error {
	query := `UPDATE candidates SET firstname = $1, lastname = $2, phone = $3, skills = $4, selected_theme = $5 WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, c.FirstName, c.LastName, c.Phone, c.Skills, c.SelectedTheme, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	tag, err := r.db.Exec(ctx, `UPDATE candidates SET password = $1 WHERE id = $2`, hashed, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) UpdateResume(ctx context.Context, id int64, resume json.RawMessage) error {
	tag, err := r.db.Exec(ctx, `UPDATE candidates SET resume = $1 WHERE id = $2`, []byte(resume), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
