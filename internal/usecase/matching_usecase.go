package usecase

import (
	"context"
	"log/slog"
	"sort"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

// snapshotWorkers bounds the parallel per-candidate loads during a matching
// pass. Ordering of the final result does not depend on evaluation order;
// everything is collected first and sorted deterministically after.
const snapshotWorkers = 8

type matchingUsecase struct {
	candidateRepo     domain.CandidateRepository
	jobRepo           domain.JobRepository
	skillTestRepo     domain.SkillTestRepository
	candidateTestRepo domain.CandidateTestRepository
}

func NewMatchingUsecase(
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	skillTestRepo domain.SkillTestRepository,
	candidateTestRepo domain.CandidateTestRepository,
) domain.MatchingUsecase {
	return &matchingUsecase{
		candidateRepo:     candidateRepo,
		jobRepo:           jobRepo,
		skillTestRepo:     skillTestRepo,
		candidateTestRepo: candidateTestRepo,
	}
}

// ComputeSkillBadges scores the candidate's own skill list on the general
// badge scale. The skill source resolves direct-field-first with the resume
// document as fallback; a candidate with neither gets an empty list.
func (u *matchingUsecase) ComputeSkillBadges(ctx context.Context, candidateID int64) ([]domain.SkillBadge, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	source := domain.ResolveSkillSource(candidate.Skills, candidate.ResumeDocument())
	skills := domain.SplitSkills(source)
	if len(skills) == 0 {
		return []domain.SkillBadge{}, nil
	}

	results, err := u.skillTestRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	badges := make([]domain.SkillBadge, 0, len(skills))
	for _, skill := range skills {
		badges = append(badges, domain.ScoreSkill(results, skill))
	}
	return badges, nil
}

// candidateSnapshot is one candidate's data loaded for a matching pass.
// ok is false when the load failed; such candidates are skipped, never
// allowed to abort the batch.
type candidateSnapshot struct {
	candidate *domain.Candidate
	doc       domain.ResumeDocument
	skills    []string
	results   []domain.SkillTestResult
	ok        bool
}

// MatchCandidatesForJob partitions the candidate population for one job:
// candidates who completed the job's formal test ranked by test score, then
// the remaining candidates with a non-empty skill overlap ranked by
// (match_count, aggregate test percentage). Repeated calls over the same
// snapshot produce identical output.
func (u *matchingUsecase) MatchCandidatesForJob(ctx context.Context, jobID int64) (*domain.JobMatchResult, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	jobSkills := job.RequiredSkills()
	jobSkillSet := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		jobSkillSet[s] = struct{}{}
	}

	testResults, err := u.candidateTestRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	tested := make(map[int64]struct{}, len(testResults))
	for _, tr := range testResults {
		tested[tr.CandidateID] = struct{}{}
	}

	candidates, err := u.candidateRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	snapshots := u.loadSnapshots(ctx, candidates)
	byID := make(map[int64]*candidateSnapshot, len(snapshots))
	for i := range snapshots {
		byID[snapshots[i].candidate.ID] = &snapshots[i]
	}

	result := &domain.JobMatchResult{
		Tested:   make([]domain.MatchedCandidate, 0, len(testResults)),
		Relevant: []domain.MatchedCandidate{},
	}

	for _, tr := range testResults {
		snap, found := byID[tr.CandidateID]
		if !found || !snap.ok {
			slog.Warn("skipping tested candidate with unloadable data", "candidate_id", tr.CandidateID, "job_id", jobID)
			continue
		}
		result.Tested = append(result.Tested, u.buildTestedEntry(job, snap, tr))
	}
	sort.SliceStable(result.Tested, func(i, j int) bool {
		a, b := result.Tested[i], result.Tested[j]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.CandidateID < b.CandidateID
	})

	for i := range snapshots {
		snap := &snapshots[i]
		if _, took := tested[snap.candidate.ID]; took {
			continue
		}
		if !snap.ok {
			slog.Warn("skipping candidate with unloadable data", "candidate_id", snap.candidate.ID, "job_id", jobID)
			continue
		}
		entry, match := u.buildRelevantEntry(job, snap, jobSkillSet)
		if !match {
			continue
		}
		result.Relevant = append(result.Relevant, entry)
	}
	sort.SliceStable(result.Relevant, func(i, j int) bool {
		a, b := result.Relevant[i], result.Relevant[j]
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.CandidateID < b.CandidateID
	})

	return result, nil
}

// loadSnapshots fetches per-candidate resumes and skill test histories in
// parallel. A failed load marks only that candidate; the pass continues.
func (u *matchingUsecase) loadSnapshots(ctx context.Context, candidates []domain.Candidate) []candidateSnapshot {
	snapshots := make([]candidateSnapshot, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotWorkers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			c := &candidates[i]
			doc := c.ResumeDocument()
			results, err := u.skillTestRepo.ListByCandidate(gctx, c.ID)
			if err != nil {
				slog.Warn("failed to load skill test results", "candidate_id", c.ID, "error", err)
				snapshots[i] = candidateSnapshot{candidate: c}
				return nil
			}
			snapshots[i] = candidateSnapshot{
				candidate: c,
				doc:       doc,
				skills:    domain.SplitSkills(domain.ResolveSkillSource(c.Skills, doc)),
				results:   results,
				ok:        true,
			}
			return nil
		})
	}
	_ = g.Wait()
	return snapshots
}

// buildTestedEntry summarizes a candidate who completed the job's formal
// test. The score is the test result itself; the skill badges use the
// general scale over the candidate's own skill list.
func (u *matchingUsecase) buildTestedEntry(job *domain.JobPosting, snap *candidateSnapshot, tr domain.CandidateTestResult) domain.MatchedCandidate {
	badges := make([]domain.SkillBadge, 0, len(snap.skills))
	for _, skill := range snap.skills {
		badges = append(badges, domain.ScoreSkill(snap.results, skill))
	}
	return domain.MatchedCandidate{
		CandidateID: snap.candidate.ID,
		Name:        snap.candidate.FullName(),
		Skills:      badges,
		Experiences: snap.doc.Experiences,
		Educations:  snap.doc.Educations,
		Percentage:  domain.Round2(domain.Percentage(float64(tr.ObtainedMarks), float64(tr.TotalMarks))),
		JobID:       job.ID,
		JobTitle:    job.JobTitle,
	}
}

// buildRelevantEntry scores a candidate against the job's required skills.
// The second return is false when the skill overlap is empty, in which case
// the candidate appears in neither partition.
func (u *matchingUsecase) buildRelevantEntry(job *domain.JobPosting, snap *candidateSnapshot, jobSkillSet map[string]struct{}) (domain.MatchedCandidate, bool) {
	// Intersection keeps the candidate's ordering and set semantics:
	// duplicates in the raw skill string count once.
	seen := make(map[string]struct{}, len(snap.skills))
	var overlap []string
	for _, skill := range snap.skills {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		if _, required := jobSkillSet[skill]; required {
			overlap = append(overlap, skill)
		}
	}
	if len(overlap) == 0 {
		return domain.MatchedCandidate{}, false
	}

	// Aggregate only over test results for skills the job requires; the
	// candidate's unrelated test history must not influence this ranking.
	// An overlapping skill with no test contributes nothing to either sum
	// but still counts as a match.
	var obtained, total float64
	matchedSkills := make([]domain.SkillBadge, 0, len(overlap))
	for _, skill := range overlap {
		r := domain.LatestResultForSkill(snap.results, skill)
		if r == nil {
			matchedSkills = append(matchedSkills, domain.SkillBadge{Skill: skill, Tier: domain.TierDanger, Score: 0})
			continue
		}
		obtained += r.Marks
		total += r.TotalMarks
		pct := domain.Round2(domain.Percentage(r.Marks, r.TotalMarks))
		matchedSkills = append(matchedSkills, domain.SkillBadge{
			Skill: r.Skill,
			Tier:  domain.RelevanceTier(pct),
			Score: pct,
		})
	}

	badges := make([]domain.SkillBadge, 0, len(snap.skills))
	for _, skill := range snap.skills {
		badges = append(badges, domain.ScoreSkill(snap.results, skill))
	}

	return domain.MatchedCandidate{
		CandidateID:   snap.candidate.ID,
		Name:          snap.candidate.FullName(),
		Skills:        badges,
		MatchedSkills: matchedSkills,
		Experiences:   snap.doc.Experiences,
		Educations:    snap.doc.Educations,
		Percentage:    domain.Round2(domain.Percentage(obtained, total)),
		MatchCount:    len(overlap),
		JobID:         job.ID,
		JobTitle:      job.JobTitle,
	}, true
}
