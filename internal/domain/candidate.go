package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Candidate struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"firstname" validate:"required,max=255"`
	LastName      string          `json:"lastname" validate:"required,max=255"`
	Email         string          `json:"email" validate:"required,email"`
	Password      string          `json:"-"`
	Phone         *string         `json:"phone,omitempty"`
	Resume        json.RawMessage `json:"-"`
	Skills        string          `json:"skills"`
	JoinedDate    time.Time       `json:"joined_date"`
	SelectedTheme string          `json:"selected_theme"`
}

// FullName is the display name used across employer-facing views.
func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ResumeDocument decodes the stored resume through the accessor. The result
// is always usable; a missing or corrupt resume is simply empty.
func (c *Candidate) ResumeDocument() ResumeDocument {
	return DecodeResumeDocument(c.Resume)
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	UpdateProfile(ctx context.Context, candidate *Candidate) error
	UpdatePassword(ctx context.Context, id int64, hashed string) error
	UpdateResume(ctx context.Context, id int64, resume json.RawMessage) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, id int64) (*Candidate, error)
	UpdateProfile(ctx context.Context, candidate *Candidate) error
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	GetResume(ctx context.Context, id int64) (ResumeDocument, error)
	SaveResume(ctx context.Context, id int64, doc ResumeDocument) error
	// SearchCandidates matches a free-text query against names, the direct
	// skills field, resume skills and resume education entries.
	SearchCandidates(ctx context.Context, query string) ([]CandidateSearchHit, error)
}

// CandidateSearchHit is the flattened row the employer search view renders.
type CandidateSearchHit struct {
	CandidateID int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	Address     string `json:"address"`
}
