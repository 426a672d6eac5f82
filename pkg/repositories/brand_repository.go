// Package repositories provides PostgreSQL data access for voice-engine.
package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/database"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	Get(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	List(ctx context.Context) ([]*models.Brand, error)
}

// brandRepository implements BrandRepository using PostgreSQL.
type brandRepository struct {
	db *database.DB
}

// NewBrandRepository creates a new brand repository.
func NewBrandRepository(db *database.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Create inserts a new brand.
func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}

	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	query := `
		INSERT INTO brands (id, name, canonical_url, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)`

	_, err := r.db.Exec(ctx, query,
		brand.ID,
		brand.Name,
		brand.CanonicalURL,
		brand.CreatedAt,
		brand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

// Get retrieves a brand by ID.
func (r *brandRepository) Get(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	query := `
		SELECT id, name, COALESCE(canonical_url, ''), created_at, updated_at
		FROM brands
		WHERE id = $1`

	var brand models.Brand
	err := r.db.QueryRow(ctx, query, id).Scan(
		&brand.ID,
		&brand.Name,
		&brand.CanonicalURL,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &brand, nil
}

// List returns all brands ordered by creation time.
func (r *brandRepository) List(ctx context.Context) ([]*models.Brand, error) {
	query := `
		SELECT id, name, COALESCE(canonical_url, ''), created_at, updated_at
		FROM brands
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := make([]*models.Brand, 0)
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.CanonicalURL,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, &brand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brands: %w", err)
	}

	return brands, nil
}

// Ensure brandRepository implements BrandRepository at compile time.
var _ BrandRepository = (*brandRepository)(nil)
