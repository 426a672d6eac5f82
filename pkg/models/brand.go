// Package models contains domain types for voice-engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the tenant entity whose voice is profiled. Brand rows are not
// updated after creation.
type Brand struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CanonicalURL string    `json:"canonical_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
