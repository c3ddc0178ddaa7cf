package domain

import (
	apperrors "github.com/dannymato/ticket-generator/internal/errors"
)

// Ticket generation errors.
var (
	// ErrEmptyAlphabet indicates the class selection and exclusion list left no
	// characters to draw from.
	ErrEmptyAlphabet = apperrors.Wrap(apperrors.ErrInvalidInput, "alphabet is empty")

	// ErrRunInProgress indicates a generation run is already in flight; only one
	// run may execute at a time.
	ErrRunInProgress = apperrors.Wrap(apperrors.ErrConflict, "a generation run is already in progress")

	// ErrTokenSpaceExhausted indicates the alphabet and length cannot supply the
	// requested number of unique tokens, or the duplicate-avoidance retry budget
	// ran out.
	ErrTokenSpaceExhausted = apperrors.New("token space exhausted")
)
