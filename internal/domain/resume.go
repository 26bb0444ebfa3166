package domain

import (
	"bytes"
	"encoding/json"
)

// ResumeDocument is the normalized form of a candidate's stored resume.
// The storage value may be a JSON object, a JSON-encoded string wrapping an
// object, or absent entirely; DecodeResumeDocument absorbs that variance once
// at the persistence boundary so use sites never re-parse raw resume data.
type ResumeDocument struct {
	Name        string             `json:"name,omitempty"`
	Summary     ResumeSummary      `json:"summary,omitempty"`
	Experiences []ResumeExperience `json:"experiences,omitempty"`
	Educations  []ResumeEducation  `json:"educations,omitempty"`
	Skills      string             `json:"skills,omitempty"`
	Languages   string             `json:"languages,omitempty"`
	Theme       string             `json:"theme,omitempty"`
}

type ResumeExperience struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type ResumeEducation struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Date        string `json:"date,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Subjects    string `json:"subjects,omitempty"`
}

// ResumeSummary accepts both shapes the resume builder produces: a plain
// paragraph or a key/value mapping ("Postal Address", "Objective", ...).
type ResumeSummary struct {
	Text   string
	Fields map[string]string
}

func (s *ResumeSummary) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		return nil
	}
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err == nil {
		s.Fields = fields
		return nil
	}
	// Anything else (arrays, numbers) degrades to an empty summary.
	*s = ResumeSummary{}
	return nil
}

func (s ResumeSummary) MarshalJSON() ([]byte, error) {
	if s.Fields != nil {
		return json.Marshal(s.Fields)
	}
	return json.Marshal(s.Text)
}

func (s ResumeSummary) IsEmpty() bool {
	return s.Text == "" && len(s.Fields) == 0
}

// Field returns a named summary entry, or "" when the summary is plain text
// or the key is absent.
func (s ResumeSummary) Field(key string) string {
	return s.Fields[key]
}

// PostalAddress is the summary entry the employer views surface for contact.
func (s ResumeSummary) PostalAddress() string {
	return s.Field("Postal Address")
}

// DecodeResumeDocument turns the raw stored resume value into a usable
// document. Malformed or missing input yields the zero document rather than
// an error; section-level damage degrades only that section.
func DecodeResumeDocument(raw []byte) ResumeDocument {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ResumeDocument{}
	}

	// Legacy rows hold the document double-encoded as a JSON string.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return ResumeDocument{}
		}
		raw = []byte(inner)
		if len(bytes.TrimSpace(raw)) == 0 {
			return ResumeDocument{}
		}
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return ResumeDocument{}
	}

	var doc ResumeDocument
	decodeSection(sections, "name", &doc.Name)
	decodeSection(sections, "summary", &doc.Summary)
	decodeSection(sections, "experiences", &doc.Experiences)
	decodeSection(sections, "educations", &doc.Educations)
	decodeSection(sections, "skills", &doc.Skills)
	decodeSection(sections, "languages", &doc.Languages)
	decodeSection(sections, "theme", &doc.Theme)
	return doc
}

// decodeSection leaves dst at its zero value when the section is missing or
// does not match the expected shape.
func decodeSection(sections map[string]json.RawMessage, key string, dst interface{}) {
	raw, ok := sections[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// Encode serializes the document for storage.
func (d ResumeDocument) Encode() ([]byte, error) {
	return json.Marshal(d)
}
