package usecase

import (
	"context"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type adminUsecase struct {
	jobRepo  domain.JobRepository
	blogRepo domain.BlogRepository
}

func NewAdminUsecase(jobRepo domain.JobRepository, blogRepo domain.BlogRepository) domain.AdminUsecase {
	return &adminUsecase{jobRepo: jobRepo, blogRepo: blogRepo}
}

func (u *adminUsecase) SetJobApproval(ctx context.Context, jobID int64, approved bool) error {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return apperror.NotFound("Job not found")
	}
	if err := u.jobRepo.SetApproved(ctx, jobID, approved); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) SetBlogApproval(ctx context.Context, postID int64, approved bool) error {
	if _, err := u.blogRepo.GetByID(ctx, postID); err != nil {
		return apperror.NotFound("Blog post not found")
	}
	if err := u.blogRepo.SetApproved(ctx, postID, approved); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListPendingJobs pages through every posting; the review screen shows
// approved and pending side by side so admins can also revoke approval.
func (u *adminUsecase) ListPendingJobs(ctx context.Context, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	jobs, total, err := u.jobRepo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}
