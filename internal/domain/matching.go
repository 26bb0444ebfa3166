package domain

import "context"

// MatchedCandidate is one scored row in the employer's per-job candidate
// view. Skills always carries the general-scale badges for the candidate's
// own skill list; MatchedSkills is only populated for the relevant group and
// uses the job-relevance scale.
type MatchedCandidate struct {
	CandidateID   int64              `json:"id"`
	Name          string             `json:"name"`
	Skills        []SkillBadge       `json:"skills"`
	MatchedSkills []SkillBadge       `json:"matched_skills,omitempty"`
	Experiences   []ResumeExperience `json:"experiences"`
	Educations    []ResumeEducation  `json:"educations"`
	Percentage    float64            `json:"percentage"`
	MatchCount    int                `json:"match_count,omitempty"`
	JobID         int64              `json:"job_id"`
	JobTitle      string             `json:"job_title"`
}

// JobMatchResult partitions the candidate population for one job posting.
// Tested holds candidates who completed the job's formal test, ranked by
// test score. Relevant holds the remaining candidates with a non-empty skill
// overlap, ranked by (match_count, aggregate percentage). Candidates in
// neither partition do not appear at all.
type JobMatchResult struct {
	Tested   []MatchedCandidate `json:"test_candidates"`
	Relevant []MatchedCandidate `json:"relevant_candidates"`
}

type MatchingUsecase interface {
	// ComputeSkillBadges scores every skill the candidate lists (direct
	// field first, resume fallback) on the general badge scale.
	ComputeSkillBadges(ctx context.Context, candidateID int64) ([]SkillBadge, error)
	// MatchCandidatesForJob evaluates the whole candidate population
	// against one job. A single candidate's bad data never fails the call.
	MatchCandidatesForJob(ctx context.Context, jobID int64) (*JobMatchResult, error)
}
