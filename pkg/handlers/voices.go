package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/models"
	"github.com/brandvoice/voice-engine/pkg/services"
)

// GenerateInputs carries the raw material fields of a generation request.
type GenerateInputs struct {
	URLs           []string `json:"urls"`
	WritingSamples []string `json:"writing_samples"`
}

// GenerateVoiceRequest for POST /brands/{brand_id}/voices:generate
type GenerateVoiceRequest struct {
	Inputs   GenerateInputs `json:"inputs"`
	LLMModel string         `json:"llm_model" validate:"required"`
}

// EvaluateRequest for POST /brands/{brand_id}/voices/{version}/evaluate
type EvaluateRequest struct {
	Text string `json:"text" validate:"required"`
}

// VoiceProfileResponse wraps a single profile in the response envelope.
type VoiceProfileResponse struct {
	Success      bool                 `json:"success"`
	VoiceProfile *models.VoiceProfile `json:"voice_profile"`
	Message      string               `json:"message,omitempty"`
}

// EvaluationResponse wraps a single evaluation in the response envelope.
type EvaluationResponse struct {
	Success    bool                    `json:"success"`
	Evaluation *models.VoiceEvaluation `json:"evaluation"`
	Message    string                  `json:"message,omitempty"`
}

// VoiceHandler handles voice profile HTTP requests.
type VoiceHandler struct {
	voiceService services.VoiceService
	logger       *zap.Logger
}

// NewVoiceHandler creates a new voice handler.
func NewVoiceHandler(voiceService services.VoiceService, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		voiceService: voiceService,
		logger:       logger,
	}
}

// RegisterRoutes registers the voice handler's routes on the given mux.
func (h *VoiceHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/brands/{brand_id}/voices"

	mux.HandleFunc("POST "+base+":generate", h.Generate)
	mux.HandleFunc("GET "+base+"/latest", h.GetLatest)
	mux.HandleFunc("GET "+base+"/{version}", h.GetVersion)
	mux.HandleFunc("POST "+base+"/{version}/evaluate", h.Evaluate)
}

// Generate handles POST /brands/{brand_id}/voices:generate
func (h *VoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	brandID, ok := ParseBrandID(w, r, h.logger)
	if !ok {
		return
	}

	var req GenerateVoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validate.Struct(req); err != nil {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	inputs := services.GenerateInputs{
		URLs:           req.Inputs.URLs,
		WritingSamples: req.Inputs.WritingSamples,
	}

	profile, err := h.voiceService.GenerateProfile(r.Context(), brandID, inputs, req.LLMModel)
	if err != nil {
		h.logger.Error("Failed to generate voice profile",
			zap.String("brand_id", brandID.String()),
			zap.String("model", req.LLMModel),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "generate_voice_profile_failed")
		return
	}

	response := VoiceProfileResponse{
		Success:      true,
		VoiceProfile: profile,
		Message:      "Voice profile generated",
	}

	if err := WriteJSON(w, http.StatusCreated, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetLatest handles GET /brands/{brand_id}/voices/latest
func (h *VoiceHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	brandID, ok := ParseBrandID(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.voiceService.GetLatestProfile(r.Context(), brandID)
	if err != nil {
		h.logger.Error("Failed to get latest voice profile",
			zap.String("brand_id", brandID.String()),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "get_voice_profile_failed")
		return
	}

	response := VoiceProfileResponse{
		Success:      true,
		VoiceProfile: profile,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetVersion handles GET /brands/{brand_id}/voices/{version}
func (h *VoiceHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	brandID, ok := ParseBrandID(w, r, h.logger)
	if !ok {
		return
	}

	version, ok := ParseVersion(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.voiceService.GetProfileByVersion(r.Context(), brandID, version)
	if err != nil {
		h.logger.Error("Failed to get voice profile version",
			zap.String("brand_id", brandID.String()),
			zap.Int("version", version),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "get_voice_profile_failed")
		return
	}

	response := VoiceProfileResponse{
		Success:      true,
		VoiceProfile: profile,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Evaluate handles POST /brands/{brand_id}/voices/{version}/evaluate
func (h *VoiceHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	brandID, ok := ParseBrandID(w, r, h.logger)
	if !ok {
		return
	}

	version, ok := ParseVersion(w, r, h.logger)
	if !ok {
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validate.Struct(req); err != nil {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	eval, err := h.voiceService.Evaluate(r.Context(), brandID, version, req.Text)
	if err != nil {
		h.logger.Error("Failed to evaluate text",
			zap.String("brand_id", brandID.String()),
			zap.Int("version", version),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "evaluate_text_failed")
		return
	}

	response := EvaluationResponse{
		Success:    true,
		Evaluation: eval,
		Message:    "Text evaluated",
	}

	if err := WriteJSON(w, http.StatusCreated, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
