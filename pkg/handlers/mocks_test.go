package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/brandvoice/voice-engine/pkg/models"
	"github.com/brandvoice/voice-engine/pkg/services"
)

// ============================================================================
// Mock Services for Handler Tests
// ============================================================================

type mockBrandService struct {
	createFunc func(ctx context.Context, name, canonicalURL string) (*models.Brand, error)
	listFunc   func(ctx context.Context) ([]*models.Brand, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*models.Brand, error)
}

func (m *mockBrandService) Create(ctx context.Context, name, canonicalURL string) (*models.Brand, error) {
	return m.createFunc(ctx, name, canonicalURL)
}

func (m *mockBrandService) List(ctx context.Context) ([]*models.Brand, error) {
	return m.listFunc(ctx)
}

func (m *mockBrandService) Get(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return m.getFunc(ctx, id)
}

type mockVoiceService struct {
	generateFunc  func(ctx context.Context, brandID uuid.UUID, inputs services.GenerateInputs, model string) (*models.VoiceProfile, error)
	getLatestFunc func(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error)
	getByVerFunc  func(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error)
	evaluateFunc  func(ctx context.Context, brandID uuid.UUID, version int, text string) (*models.VoiceEvaluation, error)
}

func (m *mockVoiceService) GenerateProfile(ctx context.Context, brandID uuid.UUID, inputs services.GenerateInputs, model string) (*models.VoiceProfile, error) {
	return m.generateFunc(ctx, brandID, inputs, model)
}

func (m *mockVoiceService) GetLatestProfile(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error) {
	return m.getLatestFunc(ctx, brandID)
}

func (m *mockVoiceService) GetProfileByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error) {
	return m.getByVerFunc(ctx, brandID, version)
}

func (m *mockVoiceService) Evaluate(ctx context.Context, brandID uuid.UUID, version int, text string) (*models.VoiceEvaluation, error) {
	return m.evaluateFunc(ctx, brandID, version, text)
}

// Ensure mocks implement their interfaces at compile time.
var (
	_ services.BrandService = (*mockBrandService)(nil)
	_ services.VoiceService = (*mockVoiceService)(nil)
)
