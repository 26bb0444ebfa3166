package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobsclub-backend/internal/domain"
)

func TestSplitSkills(t *testing.T) {
	t.Run("Should lowercase and trim tokens preserving order", func(t *testing.T) {
		got := domain.SplitSkills(" Go , PostgreSQL,redis ")
		assert.Equal(t, []string{"go", "postgresql", "redis"}, got)
	})

	t.Run("Should drop empty tokens", func(t *testing.T) {
		got := domain.SplitSkills("go,, ,python,")
		assert.Equal(t, []string{"go", "python"}, got)
	})

	t.Run("Should keep duplicates", func(t *testing.T) {
		got := domain.SplitSkills("go,Go,GO")
		assert.Equal(t, []string{"go", "go", "go"}, got)
	})

	t.Run("Should return empty slice for empty input", func(t *testing.T) {
		assert.Empty(t, domain.SplitSkills(""))
		assert.Empty(t, domain.SplitSkills(" , ,"))
	})
}

func TestResolveSkillSource(t *testing.T) {
	doc := domain.ResumeDocument{Skills: "python,django"}

	t.Run("Direct field wins when set", func(t *testing.T) {
		assert.Equal(t, "go,redis", domain.ResolveSkillSource("go,redis", doc))
	})

	t.Run("Falls back to resume when field is blank", func(t *testing.T) {
		assert.Equal(t, "python,django", domain.ResolveSkillSource("   ", doc))
	})
}

func TestBadgeTierBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, domain.TierSuccess},
		{70, domain.TierSuccess},
		{69.99, domain.TierWarning},
		{50, domain.TierWarning},
		{49.99, domain.TierDanger},
		{0, domain.TierDanger},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.BadgeTier(c.pct), "pct=%v", c.pct)
	}
}

func TestRelevanceTierBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{80, domain.TierSuccess},
		{79.99, domain.TierWarning},
		{60, domain.TierWarning},
		{59.99, domain.TierDanger},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.RelevanceTier(c.pct), "pct=%v", c.pct)
	}

	// The two scales disagree between 60 and 70; they are separate on purpose.
	assert.Equal(t, domain.TierWarning, domain.RelevanceTier(65))
	assert.Equal(t, domain.TierWarning, domain.BadgeTier(65))
	assert.Equal(t, domain.TierSuccess, domain.BadgeTier(75))
	assert.Equal(t, domain.TierWarning, domain.RelevanceTier(75))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, domain.Percentage(5, 0))
	assert.Equal(t, 50.0, domain.Percentage(5, 10))
	assert.InDelta(t, 66.666, domain.Percentage(2, 3), 0.001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, domain.Round2(66.66666))
	assert.Equal(t, 50.0, domain.Round2(50))
	assert.Equal(t, 33.33, domain.Round2(33.333))
}

func TestLatestResultForSkill(t *testing.T) {
	now := time.Now()
	results := []domain.SkillTestResult{
		{ID: 1, Skill: "Go", Marks: 5, TotalMarks: 10, TakenAt: now.Add(-2 * time.Hour)},
		{ID: 2, Skill: "go", Marks: 8, TotalMarks: 10, TakenAt: now.Add(-1 * time.Hour)},
		{ID: 3, Skill: "python", Marks: 9, TotalMarks: 10, TakenAt: now},
	}

	t.Run("Matches case-insensitively and picks the latest", func(t *testing.T) {
		r := domain.LatestResultForSkill(results, "GO")
		assert.NotNil(t, r)
		assert.Equal(t, int64(2), r.ID)
	})

	t.Run("Breaks exact-time ties by higher id", func(t *testing.T) {
		tied := []domain.SkillTestResult{
			{ID: 4, Skill: "go", Marks: 3, TotalMarks: 10, TakenAt: now},
			{ID: 7, Skill: "go", Marks: 9, TotalMarks: 10, TakenAt: now},
		}
		r := domain.LatestResultForSkill(tied, "go")
		assert.Equal(t, int64(7), r.ID)
	})

	t.Run("Returns nil for an untested skill", func(t *testing.T) {
		assert.Nil(t, domain.LatestResultForSkill(results, "rust"))
	})
}

func TestScoreSkill(t *testing.T) {
	results := []domain.SkillTestResult{
		{ID: 1, Skill: "go", Marks: 8, TotalMarks: 10, TakenAt: time.Now()},
		{ID: 2, Skill: "sql", Marks: 0, TotalMarks: 0, TakenAt: time.Now()},
	}

	t.Run("Scores a tested skill on the general scale", func(t *testing.T) {
		badge := domain.ScoreSkill(results, "go")
		assert.Equal(t, domain.TierSuccess, badge.Tier)
		assert.Equal(t, 80.0, badge.Score)
	})

	t.Run("Untested skill is danger at zero", func(t *testing.T) {
		badge := domain.ScoreSkill(results, "rust")
		assert.Equal(t, domain.SkillBadge{Skill: "rust", Tier: domain.TierDanger, Score: 0}, badge)
	})

	t.Run("Zero total marks is danger at zero, not a division", func(t *testing.T) {
		badge := domain.ScoreSkill(results, "sql")
		assert.Equal(t, domain.TierDanger, badge.Tier)
		assert.Equal(t, 0.0, badge.Score)
	})
}
