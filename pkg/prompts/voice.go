// Package prompts builds the LLM prompts and response schemas for voice
// profile generation and text evaluation.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brandvoice/voice-engine/pkg/llm"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// VoiceProfilePayload is the structure the LLM must return for generation.
// It is untrusted output: the service range-checks Metrics before persisting.
type VoiceProfilePayload struct {
	Metrics           models.VoiceMetrics `json:"metrics"`
	TargetDemographic string              `json:"target_demographic"`
	StyleGuide        []string            `json:"style_guide"`
	WritingExample    string              `json:"writing_example"`
}

// VoiceEvaluationPayload is the structure the LLM must return for evaluation.
type VoiceEvaluationPayload struct {
	Scores      models.VoiceMetrics `json:"scores"`
	Suggestions []string            `json:"suggestions"`
}

const metricsSchema = `{
	"type": "object",
	"required": ["warmth", "seriousness", "technicality", "formality", "playfulness"],
	"properties": {
		"warmth": {"type": "number"},
		"seriousness": {"type": "number"},
		"technicality": {"type": "number"},
		"formality": {"type": "number"},
		"playfulness": {"type": "number"}
	}
}`

// VoiceProfileSchema constrains generation responses.
var VoiceProfileSchema = llm.ResponseSchema{
	Name:        "voice_profile",
	Description: "A brand voice profile with five scored dimensions, target demographic, style guide, and writing example.",
	Schema: json.RawMessage(`{
	"type": "object",
	"required": ["metrics", "target_demographic", "style_guide", "writing_example"],
	"properties": {
		"metrics": ` + metricsSchema + `,
		"target_demographic": {"type": "string"},
		"style_guide": {"type": "array", "items": {"type": "string"}},
		"writing_example": {"type": "string"}
	}
}`),
}

// VoiceEvaluationSchema constrains evaluation responses.
var VoiceEvaluationSchema = llm.ResponseSchema{
	Name:        "voice_evaluation",
	Description: "Scores for how well a text matches a brand voice profile, with improvement suggestions.",
	Schema: json.RawMessage(`{
	"type": "object",
	"required": ["scores", "suggestions"],
	"properties": {
		"scores": ` + metricsSchema + `,
		"suggestions": {"type": "array", "items": {"type": "string"}}
	}
}`),
}

// BuildVoiceProfilePrompt creates the generation prompt from a brand name and
// the aggregated content (scraped page text plus writing samples).
func BuildVoiceProfilePrompt(brandName, content string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a voice profile generator. You are given a brand name and content ")
	prompt.WriteString("from the brand's website and writing samples. Generate a comprehensive voice ")
	prompt.WriteString("profile capturing how the brand \"sounds\" and communicates.\n\n")

	prompt.WriteString("Brand Information:\n")
	prompt.WriteString(fmt.Sprintf("- Brand Name: %s\n", brandName))
	prompt.WriteString(fmt.Sprintf("- Content:\n%s\n\n", content))

	prompt.WriteString("Consider the following aspects:\n\n")
	prompt.WriteString("1. Voice Metrics (score each 0.0-1.0, up to 2 decimal places):\n")
	prompt.WriteString("   - warmth: how friendly, approachable, and emotionally connected the brand feels\n")
	prompt.WriteString("   - seriousness: how professional and business-focused the tone is\n")
	prompt.WriteString("   - technicality: how much technical jargon or specialized language is used\n")
	prompt.WriteString("   - formality: how formal vs. casual the language and structure are\n")
	prompt.WriteString("   - playfulness: how much humor, creativity, or light-heartedness is present\n")
	prompt.WriteString("2. Target Demographic: who the brand is speaking to (age, interests, needs)\n")
	prompt.WriteString("3. Style Guide: specific writing guidelines extracted from the content\n")
	prompt.WriteString("4. Writing Example: a representative example embodying the brand's voice\n\n")

	prompt.WriteString("Analyze language patterns, tone, vocabulary, and sentence structure. ")
	prompt.WriteString("Output a single valid JSON object with keys metrics, target_demographic, ")
	prompt.WriteString("style_guide, and writing_example.\n")

	return prompt.String()
}

// BuildVoiceEvaluationPrompt creates the evaluation prompt from a stored
// profile and the candidate text.
func BuildVoiceEvaluationPrompt(profile *models.VoiceProfile, text string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a voice evaluation expert. Evaluate a piece of text against a ")
	prompt.WriteString("brand's voice profile.\n\n")

	prompt.WriteString("Voice Profile Details:\n")
	prompt.WriteString(fmt.Sprintf("- Target Demographic: %s\n", profile.TargetDemographic))
	prompt.WriteString(fmt.Sprintf("- Style Guide: %s\n", strings.Join(profile.StyleGuide, ", ")))
	prompt.WriteString(fmt.Sprintf("- Writing Example: %s\n", profile.WritingExample))
	prompt.WriteString("- Expected Metrics:\n")
	prompt.WriteString(fmt.Sprintf("  - warmth: %.2f\n", profile.Metrics.Warmth))
	prompt.WriteString(fmt.Sprintf("  - seriousness: %.2f\n", profile.Metrics.Seriousness))
	prompt.WriteString(fmt.Sprintf("  - technicality: %.2f\n", profile.Metrics.Technicality))
	prompt.WriteString(fmt.Sprintf("  - formality: %.2f\n", profile.Metrics.Formality))
	prompt.WriteString(fmt.Sprintf("  - playfulness: %.2f\n\n", profile.Metrics.Playfulness))

	prompt.WriteString("Text to Evaluate:\n")
	prompt.WriteString(text)
	prompt.WriteString("\n\n")

	prompt.WriteString("Score each metric 0.0-1.0 for how closely the text aligns with the expected ")
	prompt.WriteString("voice profile (1.0 means perfect alignment, 0.0 complete misalignment; up to ")
	prompt.WriteString("2 decimal places) and provide specific suggestions for improvement. Output a ")
	prompt.WriteString("single valid JSON object with keys scores and suggestions.\n")

	return prompt.String()
}
