package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobsclub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type blogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) domain.BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = `id, employer_id, title, approved, outline, content, created_at`

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	query := `INSERT INTO blog_posts (employer_id, title, approved, outline, content, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	post.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		post.EmployerID, post.Title, post.Approved, post.Outline, post.Content, post.CreatedAt,
	).Scan(&post.ID)
}

func (r *blogRepo) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id).Scan(
		&p.ID, &p.EmployerID, &p.Title, &p.Approved, &p.Outline, &p.Content, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.BlogPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(&p.ID, &p.EmployerID, &p.Title, &p.Approved, &p.Outline, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogRepo) FetchApproved(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	return r.fetch(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE approved = TRUE ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *blogRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.BlogPost, error) {
	return r.fetch(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE employer_id = $1 ORDER BY created_at DESC`, employerID)
}

func (r *blogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	query := `UPDATE blog_posts SET title = $1, outline = $2, content = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, post.Title, post.Outline, post.Content, post.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE blog_posts SET approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
