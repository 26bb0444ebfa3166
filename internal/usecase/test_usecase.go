package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type testUsecase struct {
	jobRepo           domain.JobRepository
	jobTestRepo       domain.JobTestRepository
	candidateTestRepo domain.CandidateTestRepository
	skillTestRepo     domain.SkillTestRepository
}

func NewTestUsecase(
	jobRepo domain.JobRepository,
	jobTestRepo domain.JobTestRepository,
	candidateTestRepo domain.CandidateTestRepository,
	skillTestRepo domain.SkillTestRepository,
) domain.TestUsecase {
	return &testUsecase{
		jobRepo:           jobRepo,
		jobTestRepo:       jobTestRepo,
		candidateTestRepo: candidateTestRepo,
		skillTestRepo:     skillTestRepo,
	}
}

// SaveJobTest attaches a test to the employer's job, replacing any previous
// question set. The returned flag reports whether the test was newly
// created, so the handler can phrase its message.
func (u *testUsecase) SaveJobTest(ctx context.Context, employerID, jobID int64, questions []domain.TestQuestion) (bool, error) {
	if len(questions) == 0 {
		return false, apperror.BadRequest("No test questions provided")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return false, apperror.NotFound("Job not found")
	}
	if job.EmployerID != employerID {
		return false, apperror.Forbidden("You can only manage tests for your own job posts")
	}

	existed, err := u.jobTestRepo.ExistsForJob(ctx, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}

	test := &domain.JobTest{
		JobID:     jobID,
		Skills:    job.Skills,
		Questions: questions,
	}
	if err := u.jobTestRepo.Save(ctx, test); err != nil {
		return false, apperror.Internal(err)
	}
	return !existed, nil
}

// GetJobTest hands the questions to a candidate about to take the test. A
// candidate who already has a stored result gets a conflict; their first
// attempt is final.
func (u *testUsecase) GetJobTest(ctx context.Context, candidateID, jobID int64) (*domain.JobTest, error) {
	attempted, err := u.candidateTestRepo.Exists(ctx, candidateID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if attempted {
		return nil, apperror.Conflict("You have already attempted this test")
	}

	test, err := u.jobTestRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Test not available for this job")
	}
	return test, nil
}

// SubmitJobTest grades the candidate's answers against the stored questions
// and records the single permitted attempt. A repeat submission is rejected
// without touching the stored result.
func (u *testUsecase) SubmitJobTest(ctx context.Context, candidateID, jobID int64, answers []domain.TestAnswer) (*domain.CandidateTestResult, error) {
	if len(answers) == 0 {
		return nil, apperror.BadRequest("Missing answers")
	}
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	test, err := u.jobTestRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("No test found for this job")
	}

	attempted, err := u.candidateTestRepo.Exists(ctx, candidateID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if attempted {
		return nil, apperror.Conflict("You have already attempted this test")
	}

	score, total := test.Grade(answers)
	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := &domain.CandidateTestResult{
		CandidateID:   candidateID,
		JobID:         jobID,
		Answers:       rawAnswers,
		ObtainedMarks: score,
		TotalMarks:    total,
	}
	if err := u.candidateTestRepo.Create(ctx, result); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}

// SubmitSkillTest scores a self-assessment locally; the generated questions
// carry their expected answers, so grading is a string comparison. The
// result replaces the candidate's previous score for that skill.
func (u *testUsecase) SubmitSkillTest(ctx context.Context, candidateID int64, skill string, answers []domain.TestAnswer) (*domain.SkillTestResult, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" || len(answers) == 0 {
		return nil, apperror.BadRequest("Missing skill or answers")
	}

	score := 0
	for _, a := range answers {
		if strings.TrimSpace(a.Selected) != "" && strings.TrimSpace(a.Selected) == strings.TrimSpace(a.Answer) {
			score++
		}
	}

	result := &domain.SkillTestResult{
		CandidateID: candidateID,
		Skill:       skill,
		Marks:       float64(score),
		TotalMarks:  float64(len(answers)),
	}
	if err := u.skillTestRepo.Upsert(ctx, result); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}
