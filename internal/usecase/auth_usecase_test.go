package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/internal/usecase"
	"go-jobsclub-backend/pkg/auth"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestRegisterCandidate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Creates the account with a hashed password", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(candidateRepo, new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		candidateRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound)
		candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.NotEqual(t, "supersecret", c.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("supersecret")))
		})

		err := uc.RegisterCandidate(ctx, &domain.Candidate{
			FirstName: "Ada", LastName: "Lovelace", Email: "Ada@Example.com ",
		}, "supersecret")
		assert.NoError(t, err)
	})

	t.Run("Rejects a duplicate email", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(candidateRepo, new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		candidateRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.Candidate{ID: 1}, nil)

		err := uc.RegisterCandidate(ctx, &domain.Candidate{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		}, "supersecret")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Rejects a short password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockCandidateRepo), new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		err := uc.RegisterCandidate(ctx, &domain.Candidate{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		}, "short")
		assert.Error(t, err)
	})
}

func TestLoginCandidate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Issues a session for valid credentials", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(candidateRepo, new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		candidateRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.Candidate{
			ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Password: mustHash(t, "supersecret"),
		}, nil)

		session, err := uc.LoginCandidate(ctx, domain.Credentials{Email: "ada@example.com", Password: "supersecret"})
		assert.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, domain.RoleCandidate, session.Role)
		assert.Equal(t, "Ada Lovelace", session.Name)
	})

	t.Run("Uses the same message for unknown email and wrong password", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(candidateRepo, new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		candidateRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)
		candidateRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.Candidate{
			ID: 1, Email: "ada@example.com", Password: mustHash(t, "supersecret"),
		}, nil)

		_, unknownErr := uc.LoginCandidate(ctx, domain.Credentials{Email: "ghost@example.com", Password: "whatever"})
		_, wrongErr := uc.LoginCandidate(ctx, domain.Credentials{Email: "ada@example.com", Password: "wrong"})
		assert.Error(t, unknownErr)
		assert.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestLoginEmployer(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Rejects a deactivated account even with valid credentials", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewAuthUsecase(new(MockCandidateRepo), employerRepo, testTokens(), validate, usecase.AdminCredentials{})

		employerRepo.On("GetByEmail", mock.Anything, "emp@example.com").Return(&domain.Employer{
			ID: 2, Email: "emp@example.com", Password: mustHash(t, "secret1"), Active: false,
		}, nil)

		_, err := uc.LoginEmployer(ctx, domain.Credentials{Email: "emp@example.com", Password: "secret1"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	admin := usecase.AdminCredentials{Email: "admin@example.com", PasswordHash: mustHash(t, "adminpass")}

	t.Run("Issues an admin session for the configured account", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockCandidateRepo), new(MockEmployerRepo), testTokens(), validate, admin)

		session, err := uc.LoginAdmin(ctx, domain.Credentials{Email: "Admin@Example.com", Password: "adminpass"})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, session.Role)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockCandidateRepo), new(MockEmployerRepo), testTokens(), validate, admin)

		_, err := uc.LoginAdmin(ctx, domain.Credentials{Email: "admin@example.com", Password: "nope"})
		assert.Error(t, err)
	})

	t.Run("Refuses to log in when no admin account is configured", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockCandidateRepo), new(MockEmployerRepo), testTokens(), validate, usecase.AdminCredentials{})

		_, err := uc.LoginAdmin(ctx, domain.Credentials{Email: "admin@example.com", Password: "adminpass"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})
}
