package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brandvoice/voice-engine/pkg/apperrors"
)

func TestBrandService_Create(t *testing.T) {
	repo := newMockBrandRepo()
	service := NewBrandService(repo, zap.NewNop())

	brand, err := service.Create(context.Background(), "Acme", "https://acme.example")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, brand.ID)
	assert.Equal(t, "Acme", brand.Name)
	assert.Equal(t, "https://acme.example", brand.CanonicalURL)
	assert.Len(t, repo.brands, 1)
}

func TestBrandService_CreateWithoutCanonicalURL(t *testing.T) {
	repo := newMockBrandRepo()
	service := NewBrandService(repo, zap.NewNop())

	brand, err := service.Create(context.Background(), "Acme", "")
	require.NoError(t, err)
	assert.Empty(t, brand.CanonicalURL)
}

func TestBrandService_CreateRepositoryError(t *testing.T) {
	repo := newMockBrandRepo()
	repo.createErr = errors.New("connection reset")
	service := NewBrandService(repo, zap.NewNop())

	_, err := service.Create(context.Background(), "Acme", "")
	require.Error(t, err)
}

func TestBrandService_List(t *testing.T) {
	repo := newMockBrandRepo()
	service := NewBrandService(repo, zap.NewNop())

	for _, name := range []string{"Acme", "Globex"} {
		_, err := service.Create(context.Background(), name, "")
		require.NoError(t, err)
	}

	brands, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, brands, 2)
}

func TestBrandService_GetUnknown(t *testing.T) {
	repo := newMockBrandRepo()
	service := NewBrandService(repo, zap.NewNop())

	_, err := service.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
