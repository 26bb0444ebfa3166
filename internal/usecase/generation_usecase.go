package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
	"go-jobsclub-backend/pkg/llm"
)

const skillTestQuestionCount = 20

type generationUsecase struct {
	generator     llm.TextGenerator
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	employerRepo  domain.EmployerRepository
}

func NewGenerationUsecase(
	generator llm.TextGenerator,
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	employerRepo domain.EmployerRepository,
) domain.GenerationUsecase {
	return &generationUsecase{
		generator:     generator,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		employerRepo:  employerRepo,
	}
}

func (u *generationUsecase) generate(ctx context.Context, system, prompt string) (string, error) {
	out, err := u.generator.Generate(ctx, system, prompt)
	if err != nil {
		slog.Error("llm generation failed", "error", err)
		return "", apperror.BadGateway("The AI service is currently unavailable", err)
	}
	return llm.StripFences(out), nil
}

// GenerateResume rewrites the candidate's draft resume into polished prose
// while keeping the document structure intact. The result is returned for
// review, not persisted; the candidate saves it explicitly.
func (u *generationUsecase) GenerateResume(ctx context.Context, candidateID int64, input domain.ResumeDocument) (domain.ResumeDocument, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return domain.ResumeDocument{}, apperror.NotFound("Candidate not found")
	}
	if input.Name == "" {
		input.Name = candidate.FullName()
	}

	draft, err := json.Marshal(input)
	if err != nil {
		return domain.ResumeDocument{}, apperror.Internal(err)
	}

	system := "You are a professional resume writer. You respond with JSON only, no commentary, no markdown fences."
	prompt := fmt.Sprintf(`Improve the resume below. Rewrite the summary and every experience description in polished, achievement-oriented language. Keep the exact same JSON structure and keys; do not invent employers, dates or qualifications.

Resume JSON:
%s`, draft)

	out, err := u.generate(ctx, system, prompt)
	if err != nil {
		return domain.ResumeDocument{}, err
	}

	var doc domain.ResumeDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		slog.Warn("llm returned malformed resume json", "candidate_id", candidateID, "error", err)
		return domain.ResumeDocument{}, apperror.BadGateway("The AI service returned an unusable response", err)
	}
	if doc.Name == "" {
		doc.Name = input.Name
	}
	return doc, nil
}

func (u *generationUsecase) GenerateJobPost(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", apperror.BadRequest("Description is required")
	}

	system := "You are an experienced technical recruiter writing job advertisements."
	prompt := fmt.Sprintf(`Write a complete, well-structured job post from the rough notes below. Include sections for the role summary, responsibilities, requirements and benefits. Plain text with section headings, no markdown symbols.

Notes:
%s`, description)

	return u.generate(ctx, system, prompt)
}

func (u *generationUsecase) GenerateBlogPost(ctx context.Context, title string) (*domain.GeneratedBlog, error) {
	title = strings.TrimSpace(title)

	blog := &domain.GeneratedBlog{}
	if title == "" {
		system := "You are an editor for a careers and recruitment blog."
		generated, err := u.generate(ctx, system, "Suggest one engaging blog post title about careers, hiring or workplace skills. Respond with the title only.")
		if err != nil {
			return nil, err
		}
		title = strings.Trim(generated, `"`)
		blog.Title = title
	}

	system := "You are a professional writer for a careers and recruitment blog."
	outline, err := u.generate(ctx, system, fmt.Sprintf("Write a short outline (5-7 bullet points) for a blog post titled %q. Respond with the outline only.", title))
	if err != nil {
		return nil, err
	}
	blog.Outline = outline

	content, err := u.generate(ctx, system, fmt.Sprintf(`Write the full blog post titled %q following this outline. Around 700 words, plain text with paragraph breaks.

Outline:
%s`, title, outline))
	if err != nil {
		return nil, err
	}
	blog.Content = content
	return blog, nil
}

func (u *generationUsecase) GenerateSkillTest(ctx context.Context, skill string) ([]domain.TestQuestion, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill is required")
	}
	return u.generateQuestions(ctx, []string{skill}, skillTestQuestionCount)
}

func (u *generationUsecase) GenerateJobTest(ctx context.Context, jobID int64, numQuestions int) ([]domain.TestQuestion, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	skills := job.RequiredSkills()
	if len(skills) == 0 {
		return nil, apperror.BadRequest("Job has no required skills to test")
	}
	if numQuestions <= 0 {
		numQuestions = 10
	}
	if numQuestions > 50 {
		numQuestions = 50
	}
	return u.generateQuestions(ctx, skills, numQuestions)
}

func (u *generationUsecase) generateQuestions(ctx context.Context, skills []string, count int) ([]domain.TestQuestion, error) {
	system := "You are an examiner writing multiple-choice assessments. You respond with JSON only, no commentary, no markdown fences."
	prompt := fmt.Sprintf(`Write %d multiple-choice questions spread evenly across these skills: %s.
Each question has exactly 4 options and one correct answer. The answer must match one option verbatim.
Respond with a JSON array of objects with keys "question", "options" (array of 4 strings) and "answer".`, count, strings.Join(skills, ", "))

	out, err := u.generate(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var questions []domain.TestQuestion
	if err := json.Unmarshal([]byte(out), &questions); err != nil {
		slog.Warn("llm returned malformed question json", "error", err)
		return nil, apperror.BadGateway("The AI service returned an unusable response", err)
	}

	valid := questions[:0]
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) == 0 || strings.TrimSpace(q.Answer) == "" {
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, apperror.BadGateway("The AI service returned an unusable response", nil)
	}
	return valid, nil
}

var (
	subjectLineRe = regexp.MustCompile(`(?im)^\s*subject\s*:\s*(.+)$`)
	bodyMarkerRe  = regexp.MustCompile(`(?im)^\s*body\s*:\s*`)
)

func (u *generationUsecase) GenerateOutreachEmail(ctx context.Context, employerID int64, prompt string, candidates []domain.ShortlistEntry) (*domain.GeneratedEmail, error) {
	employer, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, apperror.NotFound("Employer not found")
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}

	system := "You draft recruitment outreach emails on behalf of employers."
	full := fmt.Sprintf(`Write an outreach email from %s at %s to shortlisted candidates (%s).
Instructions from the employer: %s
Respond in exactly this format:
Subject: <subject line>
Body:
<email body>`, employer.FullName(), employer.Company, strings.Join(names, ", "), strings.TrimSpace(prompt))

	out, err := u.generate(ctx, system, full)
	if err != nil {
		return nil, err
	}

	email := &domain.GeneratedEmail{Body: out}
	if m := subjectLineRe.FindStringSubmatch(out); m != nil {
		email.Subject = strings.TrimSpace(m[1])
	}
	if loc := bodyMarkerRe.FindStringIndex(out); loc != nil {
		email.Body = strings.TrimSpace(out[loc[1]:])
	} else if email.Subject != "" {
		// no Body marker; drop the subject line from the body
		email.Body = strings.TrimSpace(subjectLineRe.ReplaceAllString(out, ""))
	}
	if email.Subject == "" {
		email.Subject = "An opportunity that matches your profile"
	}
	return email, nil
}

// GenerateContract drafts an employment contract addressed to the shortlisted
// candidates. Candidate-specific details stay as placeholders so the same text
// can be personalized per recipient.
func (u *generationUsecase) GenerateContract(ctx context.Context, employerID int64, prompt string, candidates []domain.ShortlistEntry) (string, error) {
	employer, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return "", apperror.NotFound("Employer not found")
	}

	positions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		positions = append(positions, fmt.Sprintf("%s (%s)", c.Name, c.Position))
	}

	system := "You draft professional employment contracts between a company and its candidates."
	full := fmt.Sprintf(`Draft an employment contract from %s on behalf of %s.
Shortlisted candidates and positions: %s
Instructions from the employer: %s
Use the placeholders [Candidate's Name], [Position Title], [location], [employment_type] and [salary] where candidate-specific details belong. Do not invent company data.`,
		employer.FullName(), employer.Company, strings.Join(positions, "; "), strings.TrimSpace(prompt))

	return u.generate(ctx, system, full)
}

// RecommendCandidates sends a compact roster of every candidate to the model
// and asks it to pick the ids best suited to the description. Ids the model
// invents are dropped.
func (u *generationUsecase) RecommendCandidates(ctx context.Context, description string) ([]domain.CandidateSearchHit, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperror.BadRequest("Description is required")
	}

	candidates, err := u.candidateRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(candidates) == 0 {
		return []domain.CandidateSearchHit{}, nil
	}

	byID := make(map[int64]*domain.Candidate, len(candidates))
	var roster strings.Builder
	for i := range candidates {
		c := &candidates[i]
		byID[c.ID] = c
		doc := c.ResumeDocument()
		fmt.Fprintf(&roster, "id=%d name=%q skills=%q\n", c.ID, c.FullName(), domain.ResolveSkillSource(c.Skills, doc))
	}

	system := "You match candidates to job requirements. You respond with JSON only, no commentary, no markdown fences."
	prompt := fmt.Sprintf(`Given this job description:
%s

And these candidates:
%s
Pick the candidates best suited to the role. Respond with JSON: {"selected_ids": [<candidate ids>]}.`, description, roster.String())

	out, err := u.generate(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var selection struct {
		SelectedIDs []int64 `json:"selected_ids"`
	}
	if err := json.Unmarshal([]byte(out), &selection); err != nil {
		slog.Warn("llm returned malformed selection json", "error", err)
		return nil, apperror.BadGateway("The AI service returned an unusable response", err)
	}

	hits := make([]domain.CandidateSearchHit, 0, len(selection.SelectedIDs))
	seen := make(map[int64]bool, len(selection.SelectedIDs))
	for _, id := range selection.SelectedIDs {
		c, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		doc := c.ResumeDocument()
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
