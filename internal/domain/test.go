package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// SkillTestResult is a candidate's score for one self-assessed skill. At
// most one current row exists per (candidate, skill); resubmitting a skill
// test overwrites the previous result.
type SkillTestResult struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	Skill       string    `json:"skill"`
	Marks       float64   `json:"marks"`
	TotalMarks  float64   `json:"total_marks"`
	TakenAt     time.Time `json:"taken_at"`
}

// JobTest is the optional formal multiple-choice test attached to a job
// posting. A job has zero or one test; saving again replaces the questions.
type JobTest struct {
	ID        int64          `json:"id"`
	JobID     int64          `json:"job_id"`
	Skills    string         `json:"skills"`
	Questions []TestQuestion `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
}

type TestQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// TestAnswer is one submitted answer, paired against the question text.
type TestAnswer struct {
	Question string `json:"question"`
	Selected string `json:"selected"`
	// Answer carries the expected option on skill-test submissions, where
	// the questions are generated ad hoc and not stored server-side.
	Answer string `json:"answer,omitempty"`
}

// Grade scores submitted answers against the stored questions. Unanswered
// or unknown questions count as wrong; the total is the question count.
func (t *JobTest) Grade(answers []TestAnswer) (score, total int) {
	key := make(map[string]string, len(t.Questions))
	for _, q := range t.Questions {
		key[q.Question] = strings.TrimSpace(q.Answer)
	}
	for _, a := range answers {
		if expected, ok := key[a.Question]; ok && strings.TrimSpace(a.Selected) == expected {
			score++
		}
	}
	return score, len(t.Questions)
}

// CandidateTestResult records a candidate's single attempt at a job's formal
// test. A second attempt must be rejected, never overwritten.
type CandidateTestResult struct {
	ID            int64           `json:"id"`
	CandidateID   int64           `json:"candidate_id"`
	JobID         int64           `json:"job_id"`
	Answers       json.RawMessage `json:"-"`
	ObtainedMarks int             `json:"obtained_marks"`
	TotalMarks    int             `json:"total_marks"`
	SubmittedAt   time.Time       `json:"submitted_at"`
}

type SkillTestRepository interface {
	// Upsert replaces the candidate's current result for the skill.
	Upsert(ctx context.Context, result *SkillTestResult) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]SkillTestResult, error)
}

type JobTestRepository interface {
	// Save creates the job's test or replaces its questions when one exists.
	Save(ctx context.Context, test *JobTest) error
	GetByJobID(ctx context.Context, jobID int64) (*JobTest, error)
	ExistsForJob(ctx context.Context, jobID int64) (bool, error)
}

type CandidateTestRepository interface {
	Create(ctx context.Context, result *CandidateTestResult) error
	Exists(ctx context.Context, candidateID, jobID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64) ([]CandidateTestResult, error)
}

type TestUsecase interface {
	// SaveJobTest creates or updates the formal test for an employer's job.
	SaveJobTest(ctx context.Context, employerID, jobID int64, questions []TestQuestion) (created bool, err error)
	// GetJobTest returns the questions for a candidate about to take the
	// test; a candidate who already attempted it gets a conflict instead.
	GetJobTest(ctx context.Context, candidateID, jobID int64) (*JobTest, error)
	// SubmitJobTest grades and stores the candidate's one permitted attempt.
	SubmitJobTest(ctx context.Context, candidateID, jobID int64, answers []TestAnswer) (*CandidateTestResult, error)
	// SubmitSkillTest scores a self-assessment and upserts the skill result.
	SubmitSkillTest(ctx context.Context, candidateID int64, skill string, answers []TestAnswer) (*SkillTestResult, error)
}
