package domain

import (
	"math"
	"strings"
)

// Badge tiers shared by the candidate dashboard and the employer matching view.
const (
	TierSuccess = "success"
	TierWarning = "warning"
	TierDanger  = "danger"
)

// SkillBadge is a single scored skill entry ready for display.
type SkillBadge struct {
	Skill string  `json:"skill"`
	Tier  string  `json:"badge"`
	Score float64 `json:"score"`
}

// SplitSkills normalizes a comma-separated skill string into lowercase,
// trimmed tokens. Empty tokens are dropped, order is preserved, duplicates
// are kept; consumers that need set semantics dedupe themselves. Any input,
// including the empty string, yields a valid (possibly empty) slice.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToLower(strings.TrimSpace(p)); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ResolveSkillSource makes the direct-field-wins fallback order explicit:
// the candidate's own skills field is authoritative, the resume document's
// skills section is only consulted when the field is blank.
func ResolveSkillSource(direct string, doc ResumeDocument) string {
	if strings.TrimSpace(direct) != "" {
		return direct
	}
	return doc.Skills
}

// BadgeTier maps a percentage onto the general skill-badge scale used on
// profiles and dashboards.
func BadgeTier(pct float64) string {
	switch {
	case pct >= 70:
		return TierSuccess
	case pct >= 50:
		return TierWarning
	default:
		return TierDanger
	}
}

// RelevanceTier maps a percentage onto the stricter scale used for a job's
// matched-skill list. It is deliberately a separate function from BadgeTier;
// the two scales coexist in the product and must not be unified.
func RelevanceTier(pct float64) string {
	switch {
	case pct >= 80:
		return TierSuccess
	case pct >= 60:
		return TierWarning
	default:
		return TierDanger
	}
}

// Percentage computes marks/total*100, defined as 0 when total is 0 so
// callers never divide by zero.
func Percentage(marks, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return marks / total * 100
}

// Round2 rounds to two decimal places, the precision all scores are
// reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LatestResultForSkill picks the current test result for a skill out of a
// candidate's full result history. Matching is case-insensitive on the skill
// name; when several rows match, the most recently taken wins, with the
// higher id breaking exact-time ties so the choice stays deterministic.
// Returns nil when the candidate never tested the skill.
func LatestResultForSkill(results []SkillTestResult, skill string) *SkillTestResult {
	needle := strings.ToLower(strings.TrimSpace(skill))
	var latest *SkillTestResult
	for i := range results {
		r := &results[i]
		if strings.ToLower(strings.TrimSpace(r.Skill)) != needle {
			continue
		}
		if latest == nil ||
			r.TakenAt.After(latest.TakenAt) ||
			(r.TakenAt.Equal(latest.TakenAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	return latest
}

// ScoreSkill converts a candidate's result history into the badge shown for
// one skill on the general scale. No result, or a result with zero total
// marks, reports danger at 0%.
func ScoreSkill(results []SkillTestResult, skill string) SkillBadge {
	r := LatestResultForSkill(results, skill)
	if r == nil || r.TotalMarks <= 0 {
		return SkillBadge{Skill: skill, Tier: TierDanger, Score: 0}
	}
	pct := Percentage(r.Marks, r.TotalMarks)
	return SkillBadge{Skill: skill, Tier: BadgeTier(pct), Score: Round2(pct)}
}
