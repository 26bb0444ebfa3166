package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/internal/usecase"
)

func jobTestFixture() *domain.JobTest {
	return &domain.JobTest{
		ID:    1,
		JobID: 10,
		Questions: []domain.TestQuestion{
			{Question: "Q1", Options: []string{"a", "b"}, Answer: "a"},
			{Question: "Q2", Options: []string{"a", "b"}, Answer: "b"},
		},
	}
}

func TestSaveJobTest(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a test on the employer's own job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobTestRepo := new(MockJobTestRepo)
		uc := usecase.NewTestUsecase(jobRepo, jobTestRepo, new(MockCandidateTestRepo), new(MockSkillTestRepo))

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10, EmployerID: 7, Skills: "go"}, nil)
		jobTestRepo.On("ExistsForJob", mock.Anything, int64(10)).Return(false, nil)
		jobTestRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.JobTest")).Return(nil)

		created, err := uc.SaveJobTest(ctx, 7, 10, jobTestFixture().Questions)
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Replacing an existing test reports an update", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobTestRepo := new(MockJobTestRepo)
		uc := usecase.NewTestUsecase(jobRepo, jobTestRepo, new(MockCandidateTestRepo), new(MockSkillTestRepo))

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10, EmployerID: 7, Skills: "go"}, nil)
		jobTestRepo.On("ExistsForJob", mock.Anything, int64(10)).Return(true, nil)
		jobTestRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.JobTest")).Return(nil)

		created, err := uc.SaveJobTest(ctx, 7, 10, jobTestFixture().Questions)
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("Rejects another employer's job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewTestUsecase(jobRepo, new(MockJobTestRepo), new(MockCandidateTestRepo), new(MockSkillTestRepo))

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10, EmployerID: 7}, nil)

		_, err := uc.SaveJobTest(ctx, 8, 10, jobTestFixture().Questions)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job posts")
	})
}

func TestGetJobTestOneAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("Hands out questions on the first attempt", func(t *testing.T) {
		jobTestRepo := new(MockJobTestRepo)
		candidateTestRepo := new(MockCandidateTestRepo)
		uc := usecase.NewTestUsecase(new(MockJobRepo), jobTestRepo, candidateTestRepo, new(MockSkillTestRepo))

		candidateTestRepo.On("Exists", mock.Anything, int64(1), int64(10)).Return(false, nil)
		jobTestRepo.On("GetByJobID", mock.Anything, int64(10)).Return(jobTestFixture(), nil)

		test, err := uc.GetJobTest(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, test.Questions, 2)
	})

	t.Run("Rejects a candidate who already attempted", func(t *testing.T) {
		candidateTestRepo := new(MockCandidateTestRepo)
		uc := usecase.NewTestUsecase(new(MockJobRepo), new(MockJobTestRepo), candidateTestRepo, new(MockSkillTestRepo))

		candidateTestRepo.On("Exists", mock.Anything, int64(1), int64(10)).Return(true, nil)

		_, err := uc.GetJobTest(ctx, 1, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already attempted")
	})
}

func TestSubmitJobTest(t *testing.T) {
	ctx := context.Background()

	t.Run("Grades and stores the first attempt", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobTestRepo := new(MockJobTestRepo)
		candidateTestRepo := new(MockCandidateTestRepo)
		uc := usecase.NewTestUsecase(jobRepo, jobTestRepo, candidateTestRepo, new(MockSkillTestRepo))

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10}, nil)
		jobTestRepo.On("GetByJobID", mock.Anything, int64(10)).Return(jobTestFixture(), nil)
		candidateTestRepo.On("Exists", mock.Anything, int64(1), int64(10)).Return(false, nil)
		candidateTestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CandidateTestResult")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.CandidateTestResult)
			assert.Equal(t, 1, r.ObtainedMarks)
			assert.Equal(t, 2, r.TotalMarks)
		})

		result, err := uc.SubmitJobTest(ctx, 1, 10, []domain.TestAnswer{
			{Question: "Q1", Selected: "a"},
			{Question: "Q2", Selected: "a"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ObtainedMarks)
		assert.Equal(t, 2, result.TotalMarks)
	})

	t.Run("A second submission is rejected and the stored result untouched", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobTestRepo := new(MockJobTestRepo)
		candidateTestRepo := new(MockCandidateTestRepo)
		uc := usecase.NewTestUsecase(jobRepo, jobTestRepo, candidateTestRepo, new(MockSkillTestRepo))

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.JobPosting{ID: 10}, nil)
		jobTestRepo.On("GetByJobID", mock.Anything, int64(10)).Return(jobTestFixture(), nil)
		candidateTestRepo.On("Exists", mock.Anything, int64(1), int64(10)).Return(true, nil)

		_, err := uc.SubmitJobTest(ctx, 1, 10, []domain.TestAnswer{{Question: "Q1", Selected: "a"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already attempted")
		candidateTestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSubmitSkillTest(t *testing.T) {
	ctx := context.Background()

	t.Run("Scores answers locally and upserts the result", func(t *testing.T) {
		skillTestRepo := new(MockSkillTestRepo)
		uc := usecase.NewTestUsecase(new(MockJobRepo), new(MockJobTestRepo), new(MockCandidateTestRepo), skillTestRepo)

		skillTestRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.SkillTestResult")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.SkillTestResult)
			assert.Equal(t, "go", r.Skill)
			assert.Equal(t, 2.0, r.Marks)
			assert.Equal(t, 3.0, r.TotalMarks)
		})

		result, err := uc.SubmitSkillTest(ctx, 1, "go", []domain.TestAnswer{
			{Question: "Q1", Selected: "a", Answer: "a"},
			{Question: "Q2", Selected: "b", Answer: "a"},
			{Question: "Q3", Selected: "c", Answer: "c"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 2.0, result.Marks)
		assert.Equal(t, 3.0, result.TotalMarks)
	})

	t.Run("Rejects a blank skill or empty answers", func(t *testing.T) {
		uc := usecase.NewTestUsecase(new(MockJobRepo), new(MockJobTestRepo), new(MockCandidateTestRepo), new(MockSkillTestRepo))

		_, err := uc.SubmitSkillTest(ctx, 1, "  ", []domain.TestAnswer{{Question: "Q1", Selected: "a", Answer: "a"}})
		assert.Error(t, err)

		_, err = uc.SubmitSkillTest(ctx, 1, "go", nil)
		assert.Error(t, err)
	})
}
