package usecase

import (
	"context"
	"strings"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, validate: validate}
}

// requireOwnCandidate enforces that the session owner is the candidate being
// accessed. Candidates can only ever touch their own records.
func requireOwnCandidate(ctx context.Context, id int64) error {
	ctxID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxID != id {
		return apperror.Forbidden("You can only access your own profile")
	}
	return nil
}

func (u *candidateUsecase) GetProfile(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, candidate *domain.Candidate) error {
	if err := requireOwnCandidate(ctx, candidate.ID); err != nil {
		return err
	}
	if err := u.validate.StructPartial(candidate, "FirstName", "LastName"); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.repo.UpdateProfile(ctx, candidate)
}

func (u *candidateUsecase) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if err := requireOwnCandidate(ctx, id); err != nil {
		return err
	}
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Candidate not found")
	}
	if !checkPassword(candidate.Password, oldPassword) {
		return apperror.BadRequest("Incorrect old password")
	}
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters long")
	}
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.repo.UpdatePassword(ctx, id, hashed)
}

func (u *candidateUsecase) GetResume(ctx context.Context, id int64) (domain.ResumeDocument, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ResumeDocument{}, apperror.NotFound("Candidate not found")
	}
	return candidate.ResumeDocument(), nil
}

func (u *candidateUsecase) SaveResume(ctx context.Context, id int64, doc domain.ResumeDocument) error {
	if err := requireOwnCandidate(ctx, id); err != nil {
		return err
	}
	encoded, err := doc.Encode()
	if err != nil {
		return apperror.BadRequest("Invalid resume document")
	}
	return u.repo.UpdateResume(ctx, id, encoded)
}

// SearchCandidates scans the population in memory: the query has to reach
// resume-embedded skills and education entries, which live inside the
// document, not in relational columns. Candidates with broken resumes still
// match on name and the direct skills field.
func (u *candidateUsecase) SearchCandidates(ctx context.Context, query string) ([]domain.CandidateSearchHit, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.CandidateSearchHit{}, nil
	}

	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	hits := make([]domain.CandidateSearchHit, 0)
	for i := range candidates {
		c := &candidates[i]
		doc := c.ResumeDocument()
		if !candidateMatchesQuery(c, doc, query) {
			continue
		}
		hits = append(hits, domain.CandidateSearchHit{
			CandidateID: c.ID,
			Name:        c.FullName(),
			Email:       c.Email,
			Skills:      domain.ResolveSkillSource(c.Skills, doc),
			Address:     doc.Summary.PostalAddress(),
		})
	}
	return hits, nil
}

func candidateMatchesQuery(c *domain.Candidate, doc domain.ResumeDocument, query string) bool {
	if strings.Contains(strings.ToLower(c.FirstName), query) ||
		strings.Contains(strings.ToLower(c.LastName), query) ||
		strings.Contains(strings.ToLower(c.Skills), query) {
		return true
	}
	for _, skill := range domain.SplitSkills(doc.Skills) {
		if skill == query {
			return true
		}
	}
	// Education matching ignores dots and spaces so "B.Sc" finds "BSc".
	normalize := func(s string) string {
		return strings.NewReplacer(".", "", " ", "").Replace(strings.ToLower(s))
	}
	nq := normalize(query)
	for _, edu := range doc.Educations {
		for _, field := range []string{edu.Degree, edu.Institution, edu.Date, edu.Grade, edu.Subjects} {
			if nq != "" && strings.Contains(normalize(field), nq) {
				return true
			}
		}
	}
	return false
}
