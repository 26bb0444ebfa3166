package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobsclub-backend/internal/domain"
)

func TestDecodeResumeDocument(t *testing.T) {
	t.Run("Decodes a plain JSON object", func(t *testing.T) {
		raw := []byte(`{"name":"Ada Lovelace","skills":"go,python","experiences":[{"position":"Engineer","company":"ACME"}]}`)
		doc := domain.DecodeResumeDocument(raw)
		assert.Equal(t, "Ada Lovelace", doc.Name)
		assert.Equal(t, "go,python", doc.Skills)
		assert.Len(t, doc.Experiences, 1)
		assert.Equal(t, "ACME", doc.Experiences[0].Company)
	})

	t.Run("Decodes a double-encoded JSON string", func(t *testing.T) {
		inner := `{"name":"Grace Hopper","skills":"cobol"}`
		raw, err := json.Marshal(inner)
		assert.NoError(t, err)

		doc := domain.DecodeResumeDocument(raw)
		assert.Equal(t, "Grace Hopper", doc.Name)
		assert.Equal(t, "cobol", doc.Skills)
	})

	t.Run("Missing resume yields the zero document", func(t *testing.T) {
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument(nil))
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument([]byte("null")))
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument([]byte("  ")))
	})

	t.Run("Malformed resume yields the zero document", func(t *testing.T) {
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument([]byte(`{broken`)))
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument([]byte(`"not even json inside`)))
		assert.Equal(t, domain.ResumeDocument{}, domain.DecodeResumeDocument([]byte(`[1,2,3]`)))
	})

	t.Run("A damaged section degrades only that section", func(t *testing.T) {
		raw := []byte(`{"name":"Ada","experiences":"should be an array","skills":"go"}`)
		doc := domain.DecodeResumeDocument(raw)
		assert.Equal(t, "Ada", doc.Name)
		assert.Equal(t, "go", doc.Skills)
		assert.Empty(t, doc.Experiences)
	})
}

func TestResumeSummaryShapes(t *testing.T) {
	t.Run("Accepts a plain string", func(t *testing.T) {
		doc := domain.DecodeResumeDocument([]byte(`{"summary":"Seasoned backend engineer"}`))
		assert.Equal(t, "Seasoned backend engineer", doc.Summary.Text)
		assert.Empty(t, doc.Summary.Fields)
	})

	t.Run("Accepts a key/value mapping", func(t *testing.T) {
		doc := domain.DecodeResumeDocument([]byte(`{"summary":{"Postal Address":"12 Main St","Objective":"Ship things"}}`))
		assert.Equal(t, "12 Main St", doc.Summary.PostalAddress())
		assert.Equal(t, "Ship things", doc.Summary.Field("Objective"))
		assert.Empty(t, doc.Summary.Text)
	})

	t.Run("Other shapes degrade to an empty summary", func(t *testing.T) {
		doc := domain.DecodeResumeDocument([]byte(`{"summary":[1,2]}`))
		assert.True(t, doc.Summary.IsEmpty())
		assert.Equal(t, "", doc.Summary.PostalAddress())
	})
}

func TestResumeDocumentRoundTrip(t *testing.T) {
	doc := domain.ResumeDocument{
		Name:   "Ada Lovelace",
		Skills: "go,sql",
		Summary: domain.ResumeSummary{
			Fields: map[string]string{"Postal Address": "12 Main St"},
		},
	}
	raw, err := doc.Encode()
	assert.NoError(t, err)

	decoded := domain.DecodeResumeDocument(raw)
	assert.Equal(t, doc.Name, decoded.Name)
	assert.Equal(t, doc.Skills, decoded.Skills)
	assert.Equal(t, "12 Main St", decoded.Summary.PostalAddress())
}

func TestJobTestGrade(t *testing.T) {
	test := &domain.JobTest{
		Questions: []domain.TestQuestion{
			{Question: "Q1", Options: []string{"a", "b"}, Answer: "a"},
			{Question: "Q2", Options: []string{"a", "b"}, Answer: "b"},
			{Question: "Q3", Options: []string{"a", "b"}, Answer: "a"},
		},
	}

	t.Run("Scores matching answers against the key", func(t *testing.T) {
		score, total := test.Grade([]domain.TestAnswer{
			{Question: "Q1", Selected: "a"},
			{Question: "Q2", Selected: "a"},
			{Question: "Q3", Selected: "a"},
		})
		assert.Equal(t, 2, score)
		assert.Equal(t, 3, total)
	})

	t.Run("Unknown questions and missing answers count as wrong", func(t *testing.T) {
		score, total := test.Grade([]domain.TestAnswer{
			{Question: "made-up", Selected: "a"},
		})
		assert.Equal(t, 0, score)
		assert.Equal(t, 3, total)
	})
}
