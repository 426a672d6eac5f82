package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/database"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// VoiceProfileRepository defines the interface for voice profile data access.
// Profiles are write-once; there are no update or delete operations.
type VoiceProfileRepository interface {
	// Create inserts a new profile. Returns apperrors.ErrConflict when the
	// (brand_id, version) pair is already taken, so the caller can re-read
	// the max version and retry.
	Create(ctx context.Context, profile *models.VoiceProfile) error
	GetByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error)
	GetLatest(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error)
	// MaxVersion returns the highest version for a brand, 0 if none exist.
	MaxVersion(ctx context.Context, brandID uuid.UUID) (int, error)
}

// voiceProfileRepository implements VoiceProfileRepository using PostgreSQL.
type voiceProfileRepository struct {
	db *database.DB
}

// NewVoiceProfileRepository creates a new voice profile repository.
func NewVoiceProfileRepository(db *database.DB) VoiceProfileRepository {
	return &voiceProfileRepository{db: db}
}

const profileColumns = `id, brand_id, version, metrics, target_demographic, style_guide, writing_example, llm_model, source, created_at`

// Create inserts a new profile row. The UNIQUE (brand_id, version) constraint
// is the serialization point for concurrent version assignment.
func (r *voiceProfileRepository) Create(ctx context.Context, profile *models.VoiceProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO voice_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.BrandID,
		profile.Version,
		profile.Metrics,
		profile.TargetDemographic,
		profile.StyleGuide,
		profile.WritingExample,
		profile.LLMModel,
		string(profile.Source),
		profile.CreatedAt,
	)
	if err != nil {
		// Unique constraint violation (PostgreSQL error code 23505) means a
		// concurrent generation claimed this version first.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create voice profile: %w", err)
	}

	return nil
}

// GetByVersion retrieves a specific profile version for a brand.
func (r *voiceProfileRepository) GetByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM voice_profiles
		WHERE brand_id = $1 AND version = $2`

	return r.scanOne(r.db.QueryRow(ctx, query, brandID, version))
}

// GetLatest retrieves the highest-version profile for a brand.
func (r *voiceProfileRepository) GetLatest(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM voice_profiles
		WHERE brand_id = $1
		ORDER BY version DESC
		LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, brandID))
}

// MaxVersion returns the highest version number for a brand, 0 if none exist.
func (r *voiceProfileRepository) MaxVersion(ctx context.Context, brandID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM voice_profiles WHERE brand_id = $1`

	var max int
	if err := r.db.QueryRow(ctx, query, brandID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max version: %w", err)
	}
	return max, nil
}

func (r *voiceProfileRepository) scanOne(row pgx.Row) (*models.VoiceProfile, error) {
	var profile models.VoiceProfile
	var source string

	err := row.Scan(
		&profile.ID,
		&profile.BrandID,
		&profile.Version,
		&profile.Metrics,
		&profile.TargetDemographic,
		&profile.StyleGuide,
		&profile.WritingExample,
		&profile.LLMModel,
		&source,
		&profile.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get voice profile: %w", err)
	}

	profile.Source = models.VoiceSource(source)
	return &profile, nil
}

// Ensure voiceProfileRepository implements VoiceProfileRepository at compile time.
var _ VoiceProfileRepository = (*voiceProfileRepository)(nil)
