package domain

import (
	"math"

	validation "github.com/jellydator/validation"

	customValidation "github.com/dannymato/ticket-generator/internal/validation"
)

// MaxTokenLength bounds the length of a single generated ticket.
const MaxTokenLength = 255

// GenerationRequest is the validated one-shot parameter bundle driving a single
// generation run. It is built from the current ClassSelection and output
// settings at submission time and consumed entirely by the run.
type GenerationRequest struct {
	// Alphabet is the assembled character set tokens are drawn from.
	Alphabet string
	// FilePath is the destination of the CSV output.
	FilePath string
	// TokenCount is the number of unique tickets to produce.
	TokenCount int
	// TokenLength is the exact length of each ticket.
	TokenLength int
}

// Validate checks that the request is complete enough to start a run.
func (r GenerationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Alphabet,
			validation.Required,
		),
		validation.Field(&r.FilePath,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.TokenCount,
			validation.Required,
			validation.Min(1),
		),
		validation.Field(&r.TokenLength,
			validation.Required,
			validation.Min(1),
			validation.Max(MaxTokenLength),
		),
	)
}

// IsValid reports whether the request passes validation. The background worker
// uses this for its silent-refusal path: an invalid submission is a no-op, not
// an error.
func (r GenerationRequest) IsValid() bool {
	return r.Validate() == nil
}

// HasCapacity reports whether len(Alphabet)^TokenLength can accommodate
// TokenCount distinct tokens. Generation must refuse to start when it cannot,
// since duplicate avoidance could otherwise never terminate.
func (r GenerationRequest) HasCapacity() bool {
	size := uint64(len(r.Alphabet))
	if size == 0 || r.TokenCount < 1 || r.TokenLength < 1 {
		return false
	}

	need := uint64(r.TokenCount)
	space := uint64(1)
	for i := 0; i < r.TokenLength; i++ {
		if space >= need {
			return true
		}
		if space > math.MaxUint64/size {
			return true
		}
		space *= size
	}

	return space >= need
}
