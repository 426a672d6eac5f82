// Package services contains the business logic for brands, voice profile
// generation, and text evaluation.
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/models"
	"github.com/brandvoice/voice-engine/pkg/repositories"
)

// BrandService defines the interface for brand operations.
type BrandService interface {
	Create(ctx context.Context, name, canonicalURL string) (*models.Brand, error)
	List(ctx context.Context) ([]*models.Brand, error)
	// Get returns the brand or apperrors.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.Brand, error)
}

// brandService implements BrandService.
type brandService struct {
	repo   repositories.BrandRepository
	logger *zap.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(repo repositories.BrandRepository, logger *zap.Logger) BrandService {
	return &brandService{repo: repo, logger: logger}
}

// Create stores a new brand.
func (s *brandService) Create(ctx context.Context, name, canonicalURL string) (*models.Brand, error) {
	brand := &models.Brand{
		Name:         name,
		CanonicalURL: canonicalURL,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}

	s.logger.Info("Brand created",
		zap.String("brand_id", brand.ID.String()),
		zap.String("name", brand.Name))

	return brand, nil
}

// List returns all brands.
func (s *brandService) List(ctx context.Context) ([]*models.Brand, error) {
	return s.repo.List(ctx)
}

// Get returns a brand by id.
func (s *brandService) Get(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return s.repo.Get(ctx, id)
}
