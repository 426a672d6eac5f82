package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
	"github.com/brandvoice/voice-engine/pkg/models"
)

// ============================================================================
// Mock Implementations for Service Tests
// ============================================================================

type mockBrandRepo struct {
	brands    map[uuid.UUID]*models.Brand
	createErr error
	getErr    error
	listErr   error
}

func newMockBrandRepo() *mockBrandRepo {
	return &mockBrandRepo{brands: make(map[uuid.UUID]*models.Brand)}
}

func (m *mockBrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	if m.createErr != nil {
		return m.createErr
	}
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	m.brands[brand.ID] = brand
	return nil
}

func (m *mockBrandRepo) Get(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	brand, ok := m.brands[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return brand, nil
}

func (m *mockBrandRepo) List(ctx context.Context) ([]*models.Brand, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*models.Brand, 0, len(m.brands))
	for _, brand := range m.brands {
		result = append(result, brand)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// mockProfileRepo enforces the (brand_id, version) uniqueness the real table
// guarantees, so conflict behavior can be tested without a database.
type mockProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]map[int]*models.VoiceProfile

	createCalls int
	// conflictOnCalls injects ErrConflict on specific create attempts (1-based),
	// simulating a concurrent writer claiming the version first.
	conflictOnCalls map[int]bool
	maxVersionErr   error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{
		profiles:        make(map[uuid.UUID]map[int]*models.VoiceProfile),
		conflictOnCalls: make(map[int]bool),
	}
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *models.VoiceProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.conflictOnCalls[m.createCalls] {
		return apperrors.ErrConflict
	}

	byVersion, ok := m.profiles[profile.BrandID]
	if !ok {
		byVersion = make(map[int]*models.VoiceProfile)
		m.profiles[profile.BrandID] = byVersion
	}
	if _, taken := byVersion[profile.Version]; taken {
		return apperrors.ErrConflict
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	byVersion[profile.Version] = profile
	return nil
}

func (m *mockProfileRepo) GetByVersion(ctx context.Context, brandID uuid.UUID, version int) (*models.VoiceProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[brandID][version]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}

func (m *mockProfileRepo) GetLatest(ctx context.Context, brandID uuid.UUID) (*models.VoiceProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *models.VoiceProfile
	for _, profile := range m.profiles[brandID] {
		if latest == nil || profile.Version > latest.Version {
			latest = profile
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (m *mockProfileRepo) MaxVersion(ctx context.Context, brandID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxVersionErr != nil {
		return 0, m.maxVersionErr
	}
	max := 0
	for version := range m.profiles[brandID] {
		if version > max {
			max = version
		}
	}
	return max, nil
}

type mockEvalRepo struct {
	evals     []*models.VoiceEvaluation
	createErr error
}

func (m *mockEvalRepo) Create(ctx context.Context, eval *models.VoiceEvaluation) error {
	if m.createErr != nil {
		return m.createErr
	}
	if eval.ID == uuid.Nil {
		eval.ID = uuid.New()
	}
	m.evals = append(m.evals, eval)
	return nil
}

func (m *mockEvalRepo) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*models.VoiceEvaluation, error) {
	var result []*models.VoiceEvaluation
	for _, eval := range m.evals {
		if eval.BrandID == brandID {
			result = append(result, eval)
		}
	}
	return result, nil
}

// mockAggregator returns canned content without touching the network.
type mockAggregator struct {
	text   string
	source models.VoiceSource
	err    error

	calls       int
	lastURLs    []string
	lastSamples []string
}

func (m *mockAggregator) Aggregate(ctx context.Context, urls, writingSamples []string) (string, models.VoiceSource, error) {
	m.calls++
	m.lastURLs = urls
	m.lastSamples = writingSamples
	if m.err != nil {
		return "", "", m.err
	}
	return m.text, m.source, nil
}
