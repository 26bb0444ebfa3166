package domain

import (
	"context"
	"time"
)

// ShortlistedCandidate records an employer's manual shortlisting decision.
// PositionID references a job posting when the shortlist came from a per-job
// view; 0 means the position is a free-text label only.
type ShortlistedCandidate struct {
	ID              int64     `json:"id"`
	CandidateID     int64     `json:"candidate_id"`
	EmployerID      int64     `json:"employer_id"`
	Position        string    `json:"position"`
	PositionID      int64     `json:"position_id"`
	DateShortlisted time.Time `json:"date_shortlisted"`
}

// ShortlistEntry is a shortlist row joined with candidate and, when
// PositionID is set, job posting details for the outreach views.
type ShortlistEntry struct {
	CandidateID    int64  `json:"candidate_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Skills         string `json:"skills"`
	Position       string `json:"position"`
	PositionID     int64  `json:"position_id"`
	JobTitle       string `json:"job_title,omitempty"`
	Location       string `json:"location,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	ReportsTo      string `json:"reports_to,omitempty"`
	SalaryRange    string `json:"salary_range,omitempty"`
}

type ShortlistRepository interface {
	Create(ctx context.Context, s *ShortlistedCandidate) error
	ListByEmployer(ctx context.Context, employerID int64) ([]ShortlistedCandidate, error)
}

type ShortlistUsecase interface {
	ShortlistCandidate(ctx context.Context, employerID, candidateID int64, position string, positionID int64) error
	GetShortlisted(ctx context.Context, employerID int64) ([]ShortlistEntry, error)
	// ExportShortlist renders the employer's shortlist as an xlsx workbook.
	ExportShortlist(ctx context.Context, employerID int64) ([]byte, string, error)
}
