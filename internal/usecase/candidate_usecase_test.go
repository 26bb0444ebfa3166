package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/internal/usecase"
)

func TestCandidateOwnership(t *testing.T) {
	validate := validator.New()

	t.Run("Rejects updates to another candidate's profile", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validate)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(1))
		err := uc.UpdateProfile(ctx, &domain.Candidate{ID: 2, FirstName: "A", LastName: "B"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own profile")
	})

	t.Run("Fails safe when the context carries no identity", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validate)

		err := uc.UpdateProfile(context.Background(), &domain.Candidate{ID: 1, FirstName: "A", LastName: "B"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestSearchCandidates(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	population := []domain.Candidate{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Skills: "go,sql"},
		{ID: 2, FirstName: "Grace", LastName: "Hopper", Resume: []byte(`{"skills":"cobol,go"}`)},
		{ID: 3, FirstName: "Linus", LastName: "T", Resume: []byte(`{"educations":[{"degree":"B.Sc Computer Science"}]}`)},
		{ID: 4, FirstName: "Broken", LastName: "Row", Resume: []byte(`{oops`), Skills: "go"},
	}

	newUC := func() domain.CandidateUsecase {
		repo := new(MockCandidateRepo)
		repo.On("List", mock.Anything).Return(population, nil)
		return usecase.NewCandidateUsecase(repo, validate)
	}

	t.Run("Matches on name substring", func(t *testing.T) {
		hits, err := newUC().SearchCandidates(ctx, "ada")
		assert.NoError(t, err)
		assert.Len(t, hits, 1)
		assert.Equal(t, int64(1), hits[0].CandidateID)
	})

	t.Run("Matches resume skills as exact tokens", func(t *testing.T) {
		hits, err := newUC().SearchCandidates(ctx, "cobol")
		assert.NoError(t, err)
		assert.Len(t, hits, 1)
		assert.Equal(t, int64(2), hits[0].CandidateID)
	})

	t.Run("Education matching ignores dots and spaces", func(t *testing.T) {
		hits, err := newUC().SearchCandidates(ctx, "bsc")
		assert.NoError(t, err)
		assert.Len(t, hits, 1)
		assert.Equal(t, int64(3), hits[0].CandidateID)
	})

	t.Run("Candidates with broken resumes still match on the direct field", func(t *testing.T) {
		hits, err := newUC().SearchCandidates(ctx, "go")
		assert.NoError(t, err)
		ids := make([]int64, 0, len(hits))
		for _, h := range hits {
			ids = append(ids, h.CandidateID)
		}
		assert.Contains(t, ids, int64(4))
	})

	t.Run("Blank query returns an empty result set", func(t *testing.T) {
		hits, err := newUC().SearchCandidates(ctx, "   ")
		assert.NoError(t, err)
		assert.Empty(t, hits)
	})
}
