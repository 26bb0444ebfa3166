package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"go-jobsclub-backend/internal/domain"
)

// Mock repositories shared by the usecase tests.

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateProfile(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return m.Called(ctx, id, hashed).Error(0)
}

func (m *MockCandidateRepo) UpdateResume(ctx context.Context, id int64, resume json.RawMessage) error {
	return m.Called(ctx, id, resume).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchApproved(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	return m.Called(ctx, id, approved).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillTestRepo struct {
	mock.Mock
}

func (m *MockSkillTestRepo) Upsert(ctx context.Context, result *domain.SkillTestResult) error {
	return m.Called(ctx, result).Error(0)
}

func (m *MockSkillTestRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.SkillTestResult, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillTestResult), args.Error(1)
}

type MockJobTestRepo struct {
	mock.Mock
}

func (m *MockJobTestRepo) Save(ctx context.Context, test *domain.JobTest) error {
	return m.Called(ctx, test).Error(0)
}

func (m *MockJobTestRepo) GetByJobID(ctx context.Context, jobID int64) (*domain.JobTest, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobTest), args.Error(1)
}

func (m *MockJobTestRepo) ExistsForJob(ctx context.Context, jobID int64) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

type MockCandidateTestRepo struct {
	mock.Mock
}

func (m *MockCandidateTestRepo) Create(ctx context.Context, result *domain.CandidateTestResult) error {
	return m.Called(ctx, result).Error(0)
}

func (m *MockCandidateTestRepo) Exists(ctx context.Context, candidateID, jobID int64) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateTestRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.CandidateTestResult, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateTestResult), args.Error(1)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, e *domain.Employer) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

func (m *MockEmployerRepo) GetByEmail(ctx context.Context, email string) (*domain.Employer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
