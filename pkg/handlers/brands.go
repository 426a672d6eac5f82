package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/models"
	"github.com/brandvoice/voice-engine/pkg/services"
)

// validate checks request structs against their validate tags.
var validate = validator.New()

// CreateBrandRequest for POST /brands/
type CreateBrandRequest struct {
	Name         string `json:"name" validate:"required"`
	CanonicalURL string `json:"canonical_url,omitempty" validate:"omitempty,url"`
}

// BrandResponse wraps a single brand in the response envelope.
type BrandResponse struct {
	Success bool          `json:"success"`
	Brand   *models.Brand `json:"brand"`
	Message string        `json:"message,omitempty"`
}

// BrandListResponse for GET /brands/
type BrandListResponse struct {
	Success bool            `json:"success"`
	Brands  []*models.Brand `json:"brands"`
	Total   int             `json:"total"`
}

// BrandHandler handles brand HTTP requests.
type BrandHandler struct {
	brandService services.BrandService
	logger       *zap.Logger
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(brandService services.BrandService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
	}
}

// RegisterRoutes registers the brand handler's routes on the given mux.
func (h *BrandHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /brands/{$}", h.Create)
	mux.HandleFunc("GET /brands/{$}", h.List)
	mux.HandleFunc("GET /brands/{brand_id}", h.Get)
}

// Create handles POST /brands/
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
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

	brand, err := h.brandService.Create(r.Context(), req.Name, req.CanonicalURL)
	if err != nil {
		h.logger.Error("Failed to create brand",
			zap.String("name", req.Name),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "create_brand_failed")
		return
	}

	response := BrandResponse{
		Success: true,
		Brand:   brand,
		Message: "Brand created",
	}

	if err := WriteJSON(w, http.StatusCreated, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /brands/
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list brands", zap.Error(err))
		WriteDomainError(w, h.logger, err, "list_brands_failed")
		return
	}

	response := BrandListResponse{
		Success: true,
		Brands:  brands,
		Total:   len(brands),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /brands/{brand_id}
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	brandID, ok := ParseBrandID(w, r, h.logger)
	if !ok {
		return
	}

	brand, err := h.brandService.Get(r.Context(), brandID)
	if err != nil {
		h.logger.Error("Failed to get brand",
			zap.String("brand_id", brandID.String()),
			zap.Error(err))
		WriteDomainError(w, h.logger, err, "get_brand_failed")
		return
	}

	response := BrandResponse{
		Success: true,
		Brand:   brand,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
