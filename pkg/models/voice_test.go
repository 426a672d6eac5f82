package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceMetrics_Validate(t *testing.T) {
	valid := VoiceMetrics{Warmth: 0.0, Seriousness: 1.0, Technicality: 0.5, Formality: 0.25, Playfulness: 0.75}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*VoiceMetrics)
		wantDim string
	}{
		{"warmth above range", func(m *VoiceMetrics) { m.Warmth = 1.01 }, "warmth"},
		{"seriousness negative", func(m *VoiceMetrics) { m.Seriousness = -0.01 }, "seriousness"},
		{"technicality large", func(m *VoiceMetrics) { m.Technicality = 42 }, "technicality"},
		{"formality negative", func(m *VoiceMetrics) { m.Formality = -1 }, "formality"},
		{"playfulness above range", func(m *VoiceMetrics) { m.Playfulness = 1.5 }, "playfulness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantDim)
		})
	}
}

func TestVoiceSource_Valid(t *testing.T) {
	assert.True(t, SourceURL.Valid())
	assert.True(t, SourceWritingSample.Valid())
	assert.True(t, SourceMixed.Valid())
	assert.False(t, VoiceSource("scraped").Valid())
	assert.False(t, VoiceSource("").Valid())
}

func TestVoiceMetrics_JSONBRoundTrip(t *testing.T) {
	original := VoiceMetrics{Warmth: 0.8, Seriousness: 0.3, Technicality: 0.2, Formality: 0.4, Playfulness: 0.7}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned VoiceMetrics
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringList_NilStoresEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(value.([]byte)))
}

func TestStringList_PreservesOrder(t *testing.T) {
	original := StringList{"first", "second", "third"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringList_ScanNil(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestVoiceProfile_JSONFieldNames(t *testing.T) {
	profile := VoiceProfile{Version: 2, Source: SourceMixed}

	raw, err := json.Marshal(profile)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "brand_id")
	assert.Contains(t, fields, "target_demographic")
	assert.Contains(t, fields, "style_guide")
	assert.Contains(t, fields, "writing_example")
	assert.Contains(t, fields, "llm_model")
	assert.Equal(t, "mixed", fields["source"])
}
