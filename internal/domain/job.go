package domain

import (
	"context"
	"time"
)

type JobPosting struct {
	ID                  int64     `json:"id"`
	EmployerID          int64     `json:"employer_id"`
	JobTitle            string    `json:"job_title" validate:"required,max=255"`
	Location            string    `json:"location"`
	Company             string    `json:"company"`
	EmploymentType      string    `json:"employment_type"`
	ExperienceLevel     string    `json:"experience_level"`
	Approved            bool      `json:"approved"`
	ReportsTo           string    `json:"reports_to"`
	SalaryRange         string    `json:"salary_range"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	Skills              string    `json:"skills"`
	Details             string    `json:"details"`
	PostingDate         time.Time `json:"posting_date"`
}

// RequiredSkills is the job's skills field normalized for matching.
func (j *JobPosting) RequiredSkills() []string {
	return SplitSkills(j.Skills)
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobPosting, int64, error)
	FetchApproved(ctx context.Context, limit, offset int) ([]JobPosting, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]JobPosting, error)
	Update(ctx context.Context, job *JobPosting) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID int64, job *JobPosting) error
	GetJobDetails(ctx context.Context, id int64) (*JobPosting, error)
	ListApprovedJobs(ctx context.Context, page, pageSize int) ([]JobPosting, int64, error)
	ListJobsByEmployer(ctx context.Context, employerID int64) ([]JobPosting, error)
	UpdateJob(ctx context.Context, employerID int64, job *JobPosting) error
	DeleteJob(ctx context.Context, employerID, jobID int64) error
}
