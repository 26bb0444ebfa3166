package domain

import (
	"context"
	"time"
)

type BlogPost struct {
	ID         int64     `json:"id"`
	EmployerID int64     `json:"employer_id"`
	Title      string    `json:"title" validate:"required,max=255"`
	Approved   bool      `json:"approved"`
	Outline    string    `json:"outline"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type BlogRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	GetByID(ctx context.Context, id int64) (*BlogPost, error)
	FetchApproved(ctx context.Context, limit int) ([]BlogPost, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]BlogPost, error)
	Update(ctx context.Context, post *BlogPost) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type BlogUsecase interface {
	CreatePost(ctx context.Context, employerID int64, post *BlogPost) error
	GetPost(ctx context.Context, id int64) (*BlogPost, error)
	ListApproved(ctx context.Context, limit int) ([]BlogPost, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]BlogPost, error)
	UpdatePost(ctx context.Context, employerID int64, post *BlogPost) error
	DeletePost(ctx context.Context, employerID, postID int64) error
}
