// Package apperrors defines sentinel errors shared across services,
// repositories, and handlers. Callers classify them with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound indicates a brand or voice profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, e.g. two generations
	// racing for the same (brand_id, version) pair.
	ErrConflict = errors.New("conflict")

	// ErrNoContent indicates every content source failed during aggregation,
	// leaving nothing to feed the LLM.
	ErrNoContent = errors.New("no usable content from any source")

	// ErrInvalidProfileData indicates the LLM returned a well-formed profile
	// with out-of-range metrics. Treated as an upstream failure, never clamped.
	ErrInvalidProfileData = errors.New("invalid profile data from model")

	// ErrInvalidEvaluationData indicates the LLM returned a well-formed
	// evaluation with out-of-range scores or missing suggestions.
	ErrInvalidEvaluationData = errors.New("invalid evaluation data from model")
)
