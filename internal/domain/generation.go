package domain

import "context"

// GeneratedEmail is an AI-drafted outreach email split into its parts.
type GeneratedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GeneratedBlog is an AI-drafted blog post; Title is only filled when the
// employer did not provide one.
type GeneratedBlog struct {
	Title   string `json:"title,omitempty"`
	Outline string `json:"outline"`
	Content string `json:"content"`
}

// GenerationUsecase owns every prompt sent to the language-model service and
// all post-processing of its output (markdown fence stripping, JSON
// decoding, defaulting). Handlers never talk to the model directly.
type GenerationUsecase interface {
	GenerateResume(ctx context.Context, candidateID int64, input ResumeDocument) (ResumeDocument, error)
	GenerateJobPost(ctx context.Context, description string) (string, error)
	GenerateBlogPost(ctx context.Context, title string) (*GeneratedBlog, error)
	// GenerateSkillTest produces the fixed 20-question self-assessment.
	GenerateSkillTest(ctx context.Context, skill string) ([]TestQuestion, error)
	// GenerateJobTest produces numQuestions questions spread over the job's
	// required skills.
	GenerateJobTest(ctx context.Context, jobID int64, numQuestions int) ([]TestQuestion, error)
	GenerateOutreachEmail(ctx context.Context, employerID int64, prompt string, candidates []ShortlistEntry) (*GeneratedEmail, error)
	// GenerateContract drafts contract text with candidate placeholders left
	// in place for the employer to fill before sending.
	GenerateContract(ctx context.Context, employerID int64, prompt string, candidates []ShortlistEntry) (string, error)
	// RecommendCandidates asks the model to pick the best candidate ids for
	// a job description out of the whole population.
	RecommendCandidates(ctx context.Context, description string) ([]CandidateSearchHit, error)
}
