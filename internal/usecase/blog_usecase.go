package usecase

import (
	"context"
	"strings"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type blogUsecase struct {
	blogRepo domain.BlogRepository
}

func NewBlogUsecase(blogRepo domain.BlogRepository) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo}
}

func (u *blogUsecase) CreatePost(ctx context.Context, employerID int64, post *domain.BlogPost) error {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Content) == "" {
		return apperror.BadRequest("Title and content are required")
	}
	post.EmployerID = employerID
	// New posts wait for admin review before appearing publicly.
	post.Approved = false
	if err := u.blogRepo.Create(ctx, post); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *blogUsecase) GetPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	post, err := u.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Blog post not found")
	}
	return post, nil
}

func (u *blogUsecase) ListApproved(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	posts, err := u.blogRepo.FetchApproved(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (u *blogUsecase) ListByEmployer(ctx context.Context, employerID int64) ([]domain.BlogPost, error) {
	posts, err := u.blogRepo.FetchByEmployerID(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (u *blogUsecase) UpdatePost(ctx context.Context, employerID int64, post *domain.BlogPost) error {
	existing, err := u.blogRepo.GetByID(ctx, post.ID)
	if err != nil {
		return apperror.NotFound("Blog post not found")
	}
	if existing.EmployerID != employerID {
		return apperror.Forbidden("You can only edit your own posts")
	}
	post.EmployerID = existing.EmployerID
	// Edits go back through review.
	post.Approved = false
	if err := u.blogRepo.Update(ctx, post); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *blogUsecase) DeletePost(ctx context.Context, employerID, postID int64) error {
	existing, err := u.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return apperror.NotFound("Blog post not found")
	}
	if existing.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own posts")
	}
	if err := u.blogRepo.Delete(ctx, postID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
