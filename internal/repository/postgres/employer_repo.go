package postgres

import (
	"context"
	"errors"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `id, firstname, lastname, email, password, active, company, phone, joined_date`

func scanEmployer(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Password, &e.Active, &e.Company, &e.Phone, &e.JoinedDate)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employerRepo) Create(ctx context.Context, e *domain.Employer) error {
	query := `INSERT INTO employers (firstname, lastname, email, password, active, company, phone, joined_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Password, e.Active, e.Company, e.Phone, e.JoinedDate,
	).Scan(&e.ID)
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	e, err := scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return e, err
}

func (r *employerRepo) GetByEmail(ctx context.Context, email string) (*domain.Employer, error) {
	e, err := scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return e, err
}
