package domain

import "context"

// AdminUsecase gates what the public site shows: job and blog posts only
// appear on public listings once approved.
type AdminUsecase interface {
	SetJobApproval(ctx context.Context, jobID int64, approved bool) error
	SetBlogApproval(ctx context.Context, postID int64, approved bool) error
	ListPendingJobs(ctx context.Context, page, pageSize int) ([]JobPosting, int64, error)
}
