package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			input:    `{"warmth": 0.8}`,
			expected: `{"warmth": 0.8}`,
		},
		{
			name:     "markdown code fence",
			input:    "```json\n{\"warmth\": 0.8}\n```",
			expected: `{"warmth": 0.8}`,
		},
		{
			name:     "surrounding prose",
			input:    `Here is the profile you asked for: {"warmth": 0.8} Hope it helps!`,
			expected: `{"warmth": 0.8}`,
		},
		{
			name:     "think tags",
			input:    "<think>reasoning about the brand</think>{\"warmth\": 0.8}",
			expected: `{"warmth": 0.8}`,
		},
		{
			name:     "nested objects",
			input:    `{"metrics": {"warmth": 0.8}, "style_guide": ["a", "b"]}`,
			expected: `{"metrics": {"warmth": 0.8}, "style_guide": ["a", "b"]}`,
		},
		{
			name:     "braces inside strings",
			input:    `{"writing_example": "use {placeholders} sparingly"}`,
			expected: `{"writing_example": "use {placeholders} sparingly"}`,
		},
		{
			name:    "no json at all",
			input:   "I am unable to help with that.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			input:   `{"warmth": 0.8`,
			wantErr: true,
		},
		{
			name:    "empty response",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	type payload struct {
		Warmth float64 `json:"warmth"`
	}

	result, err := ParseJSONResponse[payload]("```json\n{\"warmth\": 0.8}\n```")
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Warmth)
}

func TestParseJSONResponse_FailureIsParseError(t *testing.T) {
	type payload struct {
		Warmth float64 `json:"warmth"`
	}

	_, err := ParseJSONResponse[payload]("no json here")
	require.Error(t, err)
	assert.Equal(t, ErrorTypeParse, GetErrorType(err))

	_, err = ParseJSONResponse[payload](`{"warmth": "not a number"}`)
	require.Error(t, err)
	assert.Equal(t, ErrorTypeParse, GetErrorType(err))
}
