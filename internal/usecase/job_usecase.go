package usecase

import (
	"context"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, employerRepo: employerRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, employerID int64, job *domain.JobPosting) error {
	employer, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return apperror.NotFound("Employer account not found")
	}

	if job.JobTitle == "" {
		return apperror.BadRequest("Job title is required")
	}
	if job.Skills == "" {
		return apperror.BadRequest("Required skills are required")
	}

	job.EmployerID = employer.ID
	if job.Company == "" {
		job.Company = employer.Company
	}
	// New posts wait for admin approval before appearing publicly.
	job.Approved = false

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListApprovedJobs(ctx context.Context, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	return u.jobRepo.FetchApproved(ctx, pageSize, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, employerID int64) ([]domain.JobPosting, error) {
	return u.jobRepo.FetchByEmployerID(ctx, employerID)
}

// requireJobOwner loads the job and rejects employers touching postings
// that are not theirs.
func (u *jobUsecase) requireJobOwner(ctx context.Context, employerID, jobID int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("You can only manage your own job posts")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, employerID int64, job *domain.JobPosting) error {
	if _, err := u.requireJobOwner(ctx, employerID, job.ID); err != nil {
		return err
	}
	if job.JobTitle == "" {
		return apperror.BadRequest("Job title is required")
	}
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, employerID, jobID int64) error {
	if _, err := u.requireJobOwner(ctx, employerID, jobID); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, jobID)
}
