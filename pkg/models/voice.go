package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VoiceSource marks the provenance of the material a profile was generated from.
type VoiceSource string

const (
	// SourceURL means only scraped web pages contributed content.
	SourceURL VoiceSource = "url"
	// SourceWritingSample means only user-supplied samples contributed.
	SourceWritingSample VoiceSource = "writing_sample"
	// SourceMixed means both URLs and writing samples contributed.
	SourceMixed VoiceSource = "mixed"
)

// Valid reports whether s is one of the known source tags.
func (s VoiceSource) Valid() bool {
	switch s {
	case SourceURL, SourceWritingSample, SourceMixed:
		return true
	}
	return false
}

// VoiceMetrics holds the five bounded voice dimensions. Every value must lie
// in [0.0, 1.0]; LLM output is range-checked before it crosses into persistence.
type VoiceMetrics struct {
	Warmth       float64 `json:"warmth"`
	Seriousness  float64 `json:"seriousness"`
	Technicality float64 `json:"technicality"`
	Formality    float64 `json:"formality"`
	Playfulness  float64 `json:"playfulness"`
}

// Validate returns an error naming the first dimension outside [0.0, 1.0].
func (m VoiceMetrics) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"warmth", m.Warmth},
		{"seriousness", m.Seriousness},
		{"technicality", m.Technicality},
		{"formality", m.Formality},
		{"playfulness", m.Playfulness},
	}
	for _, d := range dims {
		if d.value < 0.0 || d.value > 1.0 {
			return fmt.Errorf("metric %s out of range: %v", d.name, d.value)
		}
	}
	return nil
}

// Value implements driver.Valuer for JSONB serialization.
func (m VoiceMetrics) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (m *VoiceMetrics) Scan(value interface{}) error {
	if value == nil {
		*m = VoiceMetrics{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into VoiceMetrics", value)
	}
	return json.Unmarshal(bytes, m)
}

// StringList is a string slice stored as a JSONB array, preserving order.
type StringList []string

// Value implements driver.Valuer for JSONB serialization.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	return json.Unmarshal(bytes, l)
}

// VoiceProfile is a versioned, immutable snapshot of a brand's inferred
// communication style. Refinement never mutates a profile; it inserts a new
// row with version = max(existing versions) + 1, starting at 1.
type VoiceProfile struct {
	ID                uuid.UUID    `json:"id"`
	BrandID           uuid.UUID    `json:"brand_id"`
	Version           int          `json:"version"`
	Metrics           VoiceMetrics `json:"metrics"`
	TargetDemographic string       `json:"target_demographic"`
	StyleGuide        StringList   `json:"style_guide"`
	WritingExample    string       `json:"writing_example"`
	LLMModel          string       `json:"llm_model"`
	Source            VoiceSource  `json:"source"`
	CreatedAt         time.Time    `json:"created_at"`
}

// VoiceEvaluation is a scored comparison of arbitrary text against one stored
// profile version. Evaluations reference the profile by id, not version, so
// they stay valid when later versions are created. Append-only.
type VoiceEvaluation struct {
	ID             uuid.UUID    `json:"id"`
	BrandID        uuid.UUID    `json:"brand_id"`
	VoiceProfileID uuid.UUID    `json:"voice_profile_id"`
	InputText      string       `json:"input_text"`
	Scores         VoiceMetrics `json:"scores"`
	Suggestions    StringList   `json:"suggestions"`
	CreatedAt      time.Time    `json:"created_at"`
}
