package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/llm"
	"github.com/brandvoice/voice-engine/pkg/models"
	"github.com/brandvoice/voice-engine/pkg/prompts"
	"github.com/brandvoice/voice-engine/pkg/repositories"
)

// ContentAggregator combines URLs and writing samples into a single text blob
// and reports which kinds of source contributed.
type ContentAggregator interface {
	Aggregate(ctx context.Context, urls, writingSamples []string) (string, models.VoiceSource, error)
}

// GenerateInputs carries the raw material for a profile generation request.
type GenerateInputs struct {
	URLs           []string
	WritingSamples []string
}

// VoiceService defines the interface for voice profile operations.
type VoiceService interface {
	// GenerateProfile builds a new immutable profile version for a brand from
	// the given inputs. Returns apperrors.ErrNotFound for an unknown brand,
	// apperrors.ErrNoContent when no input source yields text, and a
	// classified llm error when the model call or its output fails.
	GenerateProfile(ctx context.Context, brandID uuid.UUID, inputs GenerateInputs, model string) (*models.VoiceProfile, error)
	GetLatestProfile(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error)
	GetProfileByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error)
	// Evaluate scores text against a stored profile version and records the
	// result. Any stored version may be evaluated against, not just the latest.
	Evaluate(ctx context.Context, brandID uuid.UUID, version int, text string) (*models.VoiceEvaluation, error)
}

// voiceService implements VoiceService.
type voiceService struct {
	brands     repositories.BrandRepository
	profiles   repositories.VoiceProfileRepository
	evals      repositories.VoiceEvaluationRepository
	aggregator ContentAggregator
	llmFactory llm.Factory
	logger     *zap.Logger
}

// NewVoiceService creates a new voice service.
func NewVoiceService(
	brands repositories.BrandRepository,
	profiles repositories.VoiceProfileRepository,
	evals repositories.VoiceEvaluationRepository,
	aggregator ContentAggregator,
	llmFactory llm.Factory,
	logger *zap.Logger,
) VoiceService {
	return &voiceService{
		brands:     brands,
		profiles:   profiles,
		evals:      evals,
		aggregator: aggregator,
		llmFactory: llmFactory,
		logger:     logger,
	}
}

// GenerateProfile runs the full generation pipeline: aggregate content, call
// the LLM, validate its output, and persist the next profile version.
func (s *voiceService) GenerateProfile(ctx context.Context, brandID uuid.UUID, inputs GenerateInputs, model string) (*models.VoiceProfile, error) {
	brand, err := s.brands.Get(ctx, brandID)
	if err != nil {
		return nil, err
	}

	text, source, err := s.aggregator.Aggregate(ctx, inputs.URLs, inputs.WritingSamples)
	if err != nil {
		return nil, err
	}

	client, err := s.llmFactory.Create(model)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildVoiceProfilePrompt(brand.Name, text)
	raw, err := client.GenerateStructured(ctx, prompt, prompts.VoiceProfileSchema)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseJSONResponse[prompts.VoiceProfilePayload](raw)
	if err != nil {
		return nil, err
	}

	if err := payload.Metrics.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidProfileData, err)
	}

	profile := &models.VoiceProfile{
		BrandID:           brandID,
		Metrics:           payload.Metrics,
		TargetDemographic: payload.TargetDemographic,
		StyleGuide:        payload.StyleGuide,
		WritingExample:    payload.WritingExample,
		LLMModel:          client.GetModel(),
		Source:            source,
	}

	if err := s.insertNextVersion(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Voice profile generated",
		zap.String("brand_id", brandID.String()),
		zap.Int("version", profile.Version),
		zap.String("model", profile.LLMModel),
		zap.String("source", string(profile.Source)))

	return profile, nil
}

// insertNextVersion assigns version max+1 and inserts. The UNIQUE
// (brand_id, version) constraint catches concurrent generations; on conflict
// the max is re-read and the insert attempted once more.
func (s *voiceService) insertNextVersion(ctx context.Context, profile *models.VoiceProfile) error {
	attempt := func() error {
		max, err := s.profiles.MaxVersion(ctx, profile.BrandID)
		if err != nil {
			return err
		}
		profile.Version = max + 1
		return s.profiles.Create(ctx, profile)
	}

	err := attempt()
	if errors.Is(err, apperrors.ErrConflict) {
		s.logger.Warn("Version collision on profile insert, retrying",
			zap.String("brand_id", profile.BrandID.String()),
			zap.Int("version", profile.Version))
		err = attempt()
	}
	return err
}

// GetLatestProfile returns the highest-version profile for a brand.
func (s *voiceService) GetLatestProfile(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error) {
	if _, err := s.brands.Get(ctx, brandID); err != nil {
		return nil, err
	}
	return s.profiles.GetLatest(ctx, brandID)
}

// GetProfileByVersion returns a specific profile version for a brand.
func (s *voiceService) GetProfileByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error) {
	if _, err := s.brands.Get(ctx, brandID); err != nil {
		return nil, err
	}
	return s.profiles.GetByVersion(ctx, brandID, version)
}

// Evaluate scores text against a stored profile with the model that produced
// the profile, validates the output, and appends an evaluation record.
func (s *voiceService) Evaluate(ctx context.Context, brandID uuid.UUID, version int, text string) (*models.VoiceEvaluation, error) {
	profile, err := s.profiles.GetByVersion(ctx, brandID, version)
	if err != nil {
		return nil, err
	}

	client, err := s.llmFactory.Create(profile.LLMModel)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildVoiceEvaluationPrompt(profile, text)
	raw, err := client.GenerateStructured(ctx, prompt, prompts.VoiceEvaluationSchema)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseJSONResponse[prompts.VoiceEvaluationPayload](raw)
	if err != nil {
		return nil, err
	}

	if err := payload.Scores.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidEvaluationData, err)
	}
	if payload.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing suggestions", apperrors.ErrInvalidEvaluationData)
	}

	eval := &models.VoiceEvaluation{
		BrandID:        brandID,
		VoiceProfileID: profile.ID,
		InputText:      text,
		Scores:         payload.Scores,
		Suggestions:    payload.Suggestions,
	}

	if err := s.evals.Create(ctx, eval); err != nil {
		return nil, err
	}

	s.logger.Info("Text evaluated against voice profile",
		zap.String("brand_id", brandID.String()),
		zap.Int("version", profile.Version),
		zap.String("model", client.GetModel()))

	return eval, nil
}

// Ensure voiceService implements VoiceService at compile time.
var _ VoiceService = (*voiceService)(nil)
