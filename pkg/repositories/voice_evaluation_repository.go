package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brandvoice/voice-engine/pkg/database"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// VoiceEvaluationRepository defines the interface for evaluation data access.
// Evaluations form an append-only log; nothing reads them back in the current
// HTTP surface, but ListByBrand supports inspection and tests.
type VoiceEvaluationRepository interface {
	Create(ctx context.Context, eval *models.VoiceEvaluation) error
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*models.VoiceEvaluation, error)
}

// voiceEvaluationRepository implements VoiceEvaluationRepository using PostgreSQL.
type voiceEvaluationRepository struct {
	db *database.DB
}

// NewVoiceEvaluationRepository creates a new voice evaluation repository.
func NewVoiceEvaluationRepository(db *database.DB) VoiceEvaluationRepository {
	return &voiceEvaluationRepository{db: db}
}

// Create appends a new evaluation row.
func (r *voiceEvaluationRepository) Create(ctx context.Context, eval *models.VoiceEvaluation) error {
	if eval.ID == uuid.Nil {
		eval.ID = uuid.New()
	}
	eval.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO voice_evaluations (id, brand_id, voice_profile_id, input_text, scores, suggestions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		eval.ID,
		eval.BrandID,
		eval.VoiceProfileID,
		eval.InputText,
		eval.Scores,
		eval.Suggestions,
		eval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create voice evaluation: %w", err)
	}

	return nil
}

// ListByBrand returns all evaluations for a brand, oldest first.
func (r *voiceEvaluationRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*models.VoiceEvaluation, error) {
	query := `
		SELECT id, brand_id, voice_profile_id, input_text, scores, suggestions, created_at
		FROM voice_evaluations
		WHERE brand_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice evaluations: %w", err)
	}
	defer rows.Close()

	evals := make([]*models.VoiceEvaluation, 0)
	for rows.Next() {
		var eval models.VoiceEvaluation
		if err := rows.Scan(
			&eval.ID,
			&eval.BrandID,
			&eval.VoiceProfileID,
			&eval.InputText,
			&eval.Scores,
			&eval.Suggestions,
			&eval.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan voice evaluation: %w", err)
		}
		evals = append(evals, &eval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voice evaluations: %w", err)
	}

	return evals, nil
}

// Ensure voiceEvaluationRepository implements VoiceEvaluationRepository at compile time.
var _ VoiceEvaluationRepository = (*voiceEvaluationRepository)(nil)
