package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/internal/usecase"
)

func TestComputeSkillBadges(t *testing.T) {
	ctx := context.Background()

	t.Run("Direct skills field wins over the resume", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		skillTestRepo := new(MockSkillTestRepo)
		uc := usecase.NewMatchingUsecase(candidateRepo, new(MockJobRepo), skillTestRepo, new(MockCandidateTestRepo))

		candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Candidate{
			ID:     1,
			Skills: "Go, SQL",
			Resume: []byte(`{"skills":"python"}`),
		}, nil)
		skillTestRepo.On("ListByCandidate", mock.Anything, int64(1)).Return([]domain.SkillTestResult{
			{ID: 1, Skill: "go", Marks: 9, TotalMarks: 10, TakenAt: time.Now()},
		}, nil)

		badges, err := uc.ComputeSkillBadges(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, []domain.SkillBadge{
			{Skill: "go", Tier: domain.TierSuccess, Score: 90},
			{Skill: "sql", Tier: domain.TierDanger, Score: 0},
		}, badges)
	})

	t.Run("Falls back to resume skills when the field is blank", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		skillTestRepo := new(MockSkillTestRepo)
		uc := usecase.NewMatchingUsecase(candidateRepo, new(MockJobRepo), skillTestRepo, new(MockCandidateTestRepo))

		candidateRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Candidate{
			ID:     2,
			Resume: []byte(`{"skills":"python"}`),
		}, nil)
		skillTestRepo.On("ListByCandidate", mock.Anything, int64(2)).Return([]domain.SkillTestResult{}, nil)

		badges, err := uc.ComputeSkillBadges(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, []domain.SkillBadge{{Skill: "python", Tier: domain.TierDanger, Score: 0}}, badges)
	})

	t.Run("No skills anywhere yields an empty list, not an error", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewMatchingUsecase(candidateRepo, new(MockJobRepo), new(MockSkillTestRepo), new(MockCandidateTestRepo))

		candidateRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Candidate{ID: 3}, nil)

		badges, err := uc.ComputeSkillBadges(ctx, 3)
		assert.NoError(t, err)
		assert.Empty(t, badges)
	})
}

// matchFixture wires a job with skills "go,sql" and a candidate population
// covering both partitions.
func matchFixture(t *testing.T) (domain.MatchingUsecase, *MockCandidateRepo, *MockSkillTestRepo) {
	t.Helper()
	now := time.Now()

	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	skillTestRepo := new(MockSkillTestRepo)
	candidateTestRepo := new(MockCandidateTestRepo)

	jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{
		ID: 10, JobTitle: "Backend Engineer", Skills: "Go, SQL",
	}, nil)

	// Two candidates completed the job's formal test.
	candidateTestRepo.On("ListByJob", mock.Anything, int64(10)).Return([]domain.CandidateTestResult{
		{ID: 1, CandidateID: 2, JobID: 10, ObtainedMarks: 5, TotalMarks: 10},
		{ID: 2, CandidateID: 1, JobID: 10, ObtainedMarks: 8, TotalMarks: 10},
	}, nil)

	candidateRepo.On("List", mock.Anything).Return([]domain.Candidate{
		{ID: 1, FirstName: "Tess", LastName: "One", Skills: "go"},
		{ID: 2, FirstName: "Tess", LastName: "Two", Skills: "go,sql"},
		{ID: 3, FirstName: "Rel", LastName: "Single", Skills: "go,python"},
		{ID: 4, FirstName: "Rel", LastName: "Double", Skills: "go,sql,rust"},
		{ID: 5, FirstName: "No", LastName: "Overlap", Skills: "java"},
		{ID: 6, FirstName: "Broken", LastName: "Resume", Resume: []byte(`{not json`)},
	}, nil)

	skillTestRepo.On("ListByCandidate", mock.Anything, int64(1)).Return([]domain.SkillTestResult{}, nil)
	skillTestRepo.On("ListByCandidate", mock.Anything, int64(2)).Return([]domain.SkillTestResult{}, nil)
	skillTestRepo.On("ListByCandidate", mock.Anything, int64(3)).Return([]domain.SkillTestResult{
		{ID: 11, CandidateID: 3, Skill: "go", Marks: 9, TotalMarks: 10, TakenAt: now},
		{ID: 12, CandidateID: 3, Skill: "python", Marks: 10, TotalMarks: 10, TakenAt: now},
	}, nil)
	skillTestRepo.On("ListByCandidate", mock.Anything, int64(4)).Return([]domain.SkillTestResult{
		{ID: 13, CandidateID: 4, Skill: "go", Marks: 6, TotalMarks: 10, TakenAt: now},
	}, nil)
	skillTestRepo.On("ListByCandidate", mock.Anything, int64(5)).Return([]domain.SkillTestResult{}, nil)
	skillTestRepo.On("ListByCandidate", mock.Anything, int64(6)).Return([]domain.SkillTestResult{}, nil)

	uc := usecase.NewMatchingUsecase(candidateRepo, jobRepo, skillTestRepo, candidateTestRepo)
	return uc, candidateRepo, skillTestRepo
}

func TestMatchCandidatesForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Partitions and ranks the population", func(t *testing.T) {
		uc, _, _ := matchFixture(t)

		result, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)

		// Tested group ranked by test percentage descending.
		assert.Len(t, result.Tested, 2)
		assert.Equal(t, int64(1), result.Tested[0].CandidateID)
		assert.Equal(t, 80.0, result.Tested[0].Percentage)
		assert.Equal(t, int64(2), result.Tested[1].CandidateID)
		assert.Equal(t, 50.0, result.Tested[1].Percentage)
		assert.Equal(t, "Backend Engineer", result.Tested[0].JobTitle)

		// Relevant group ranked by overlap size first.
		assert.Len(t, result.Relevant, 2)
		assert.Equal(t, int64(4), result.Relevant[0].CandidateID)
		assert.Equal(t, 2, result.Relevant[0].MatchCount)
		assert.Equal(t, int64(3), result.Relevant[1].CandidateID)
		assert.Equal(t, 1, result.Relevant[1].MatchCount)
	})

	t.Run("Untested overlapping skill counts as a match but contributes no marks", func(t *testing.T) {
		uc, _, _ := matchFixture(t)

		result, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)

		// Candidate 4 overlaps both go (tested 6/10) and sql (never tested).
		entry := result.Relevant[0]
		assert.Equal(t, int64(4), entry.CandidateID)
		assert.Equal(t, 2, entry.MatchCount)
		// Aggregate is 6/10 only; sql adds 0/0.
		assert.Equal(t, 60.0, entry.Percentage)

		assert.Len(t, entry.MatchedSkills, 2)
		assert.Equal(t, "go", entry.MatchedSkills[0].Skill)
		assert.Equal(t, domain.TierWarning, entry.MatchedSkills[0].Tier)
		assert.Equal(t, 60.0, entry.MatchedSkills[0].Score)
		assert.Equal(t, "sql", entry.MatchedSkills[1].Skill)
		assert.Equal(t, domain.TierDanger, entry.MatchedSkills[1].Tier)
		assert.Equal(t, 0.0, entry.MatchedSkills[1].Score)
	})

	t.Run("Unrelated test history does not leak into the job aggregate", func(t *testing.T) {
		uc, _, _ := matchFixture(t)

		result, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)

		// Candidate 3 aced python, but only go counts for this job.
		entry := result.Relevant[1]
		assert.Equal(t, int64(3), entry.CandidateID)
		assert.Equal(t, 90.0, entry.Percentage)
		assert.Len(t, entry.MatchedSkills, 1)
		assert.Equal(t, "go", entry.MatchedSkills[0].Skill)
	})

	t.Run("Zero-overlap and skill-less candidates appear in neither partition", func(t *testing.T) {
		uc, _, _ := matchFixture(t)

		result, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)

		for _, entry := range append(result.Tested, result.Relevant...) {
			assert.NotEqual(t, int64(5), entry.CandidateID)
			assert.NotEqual(t, int64(6), entry.CandidateID)
		}
	})

	t.Run("Repeated calls produce identical output", func(t *testing.T) {
		uc, _, _ := matchFixture(t)

		first, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)
		second, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("A single candidate's failed load never aborts the batch", func(t *testing.T) {
		now := time.Now()
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		skillTestRepo := new(MockSkillTestRepo)
		candidateTestRepo := new(MockCandidateTestRepo)

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10, JobTitle: "BE", Skills: "go"}, nil)
		candidateTestRepo.On("ListByJob", mock.Anything, int64(10)).Return([]domain.CandidateTestResult{}, nil)
		candidateRepo.On("List", mock.Anything).Return([]domain.Candidate{
			{ID: 1, FirstName: "Fails", LastName: "ToLoad", Skills: "go"},
			{ID: 2, FirstName: "Loads", LastName: "Fine", Skills: "go"},
		}, nil)
		skillTestRepo.On("ListByCandidate", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))
		skillTestRepo.On("ListByCandidate", mock.Anything, int64(2)).Return([]domain.SkillTestResult{
			{ID: 1, CandidateID: 2, Skill: "go", Marks: 7, TotalMarks: 10, TakenAt: now},
		}, nil)

		uc := usecase.NewMatchingUsecase(candidateRepo, jobRepo, skillTestRepo, candidateTestRepo)
		result, err := uc.MatchCandidatesForJob(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, result.Relevant, 1)
		assert.Equal(t, int64(2), result.Relevant[0].CandidateID)
	})

	t.Run("Missing job is a not-found error", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewMatchingUsecase(new(MockCandidateRepo), jobRepo, new(MockSkillTestRepo), new(MockCandidateTestRepo))
		_, err := uc.MatchCandidatesForJob(ctx, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}
