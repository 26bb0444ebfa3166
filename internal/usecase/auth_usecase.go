package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
	"go-jobsclub-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the statically configured admin identity. Admins are
// not stored in the database; the hash is provisioned via environment.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

type authUsecase struct {
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	tokens        *auth.TokenManager
	validate      *validator.Validate
	admin         AdminCredentials
}

func NewAuthUsecase(
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	tokens *auth.TokenManager,
	validate *validator.Validate,
	admin AdminCredentials,
) domain.AuthUsecase {
	return &authUsecase{
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		tokens:        tokens,
		validate:      validate,
		admin:         admin,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func checkPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

func (u *authUsecase) RegisterCandidate(ctx context.Context, candidate *domain.Candidate, password string) error {
	candidate.Email = strings.ToLower(strings.TrimSpace(candidate.Email))
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if len(password) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters long")
	}

	if _, err := u.candidateRepo.GetByEmail(ctx, candidate.Email); err == nil {
		return apperror.Conflict("Email is already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return apperror.Internal(err)
	}
	candidate.Password = hashed

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) RegisterEmployer(ctx context.Context, employer *domain.Employer, password string) error {
	employer.Email = strings.ToLower(strings.TrimSpace(employer.Email))
	if err := u.validate.Struct(employer); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if len(password) < 6 {
		return apperror.BadRequest("Password must be at least 6 characters long")
	}

	if _, err := u.employerRepo.GetByEmail(ctx, employer.Email); err == nil {
		return apperror.Conflict("An account with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return apperror.Internal(err)
	}
	employer.Password = hashed
	employer.Active = true
	if employer.JoinedDate == nil {
		now := time.Now()
		employer.JoinedDate = &now
	}

	if err := u.employerRepo.Create(ctx, employer); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) LoginCandidate(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	candidate, err := u.candidateRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		// Same message for unknown email and wrong password.
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if !checkPassword(candidate.Password, creds.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Issue(candidate.ID, candidate.Email, domain.RoleCandidate)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthSession{
		Token: token,
		ID:    candidate.ID,
		Email: candidate.Email,
		Role:  domain.RoleCandidate,
		Name:  candidate.FullName(),
	}, nil
}

func (u *authUsecase) LoginEmployer(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	employer, err := u.employerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if !checkPassword(employer.Password, creds.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if !employer.Active {
		return nil, apperror.Forbidden("This employer account is deactivated")
	}

	token, err := u.tokens.Issue(employer.ID, employer.Email, domain.RoleEmployer)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthSession{
		Token: token,
		ID:    employer.ID,
		Email: employer.Email,
		Role:  domain.RoleEmployer,
		Name:  employer.FullName(),
	}, nil
}

func (u *authUsecase) LoginAdmin(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if u.admin.Email == "" || u.admin.PasswordHash == "" {
		return nil, apperror.Forbidden("Admin access is not configured")
	}
	if email != strings.ToLower(u.admin.Email) || !checkPassword(u.admin.PasswordHash, creds.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Issue(0, email, domain.RoleAdmin)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthSession{
		Token: token,
		Email: email,
		Role:  domain.RoleAdmin,
		Name:  "Administrator",
	}, nil
}
