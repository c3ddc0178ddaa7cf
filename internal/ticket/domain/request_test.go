package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() GenerationRequest {
	return GenerationRequest{
		Alphabet:    CapitalChars + DigitChars,
		FilePath:    "/tmp/tickets.csv",
		TokenCount:  10,
		TokenLength: 6,
	}
}

func TestGenerationRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *GenerationRequest)
		shouldErr bool
	}{
		{
			name:      "valid request",
			mutate:    func(r *GenerationRequest) {},
			shouldErr: false,
		},
		{
			name:      "empty alphabet",
			mutate:    func(r *GenerationRequest) { r.Alphabet = "" },
			shouldErr: true,
		},
		{
			name:      "empty file path",
			mutate:    func(r *GenerationRequest) { r.FilePath = "" },
			shouldErr: true,
		},
		{
			name:      "blank file path",
			mutate:    func(r *GenerationRequest) { r.FilePath = "   " },
			shouldErr: true,
		},
		{
			name:      "zero token count",
			mutate:    func(r *GenerationRequest) { r.TokenCount = 0 },
			shouldErr: true,
		},
		{
			name:      "zero token length",
			mutate:    func(r *GenerationRequest) { r.TokenLength = 0 },
			shouldErr: true,
		},
		{
			name:      "token length above maximum",
			mutate:    func(r *GenerationRequest) { r.TokenLength = MaxTokenLength + 1 },
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
				assert.False(t, req.IsValid())
			} else {
				assert.NoError(t, err)
				assert.True(t, req.IsValid())
			}
		})
	}
}

func TestGenerationRequest_HasCapacity(t *testing.T) {
	tests := []struct {
		name     string
		req      GenerationRequest
		expected bool
	}{
		{
			name:     "ample space",
			req:      GenerationRequest{Alphabet: CapitalChars, TokenCount: 100, TokenLength: 4},
			expected: true,
		},
		{
			name:     "exact fit",
			req:      GenerationRequest{Alphabet: "ab", TokenCount: 4, TokenLength: 2},
			expected: true,
		},
		{
			name:     "too many tokens for space",
			req:      GenerationRequest{Alphabet: "ab", TokenCount: 3, TokenLength: 1},
			expected: false,
		},
		{
			name:     "single character alphabet single token",
			req:      GenerationRequest{Alphabet: "a", TokenCount: 1, TokenLength: 5},
			expected: true,
		},
		{
			name:     "single character alphabet two tokens",
			req:      GenerationRequest{Alphabet: "a", TokenCount: 2, TokenLength: 5},
			expected: false,
		},
		{
			name:     "empty alphabet",
			req:      GenerationRequest{Alphabet: "", TokenCount: 1, TokenLength: 1},
			expected: false,
		},
		{
			name: "long token does not overflow",
			req: GenerationRequest{
				Alphabet:    CapitalChars + LowercaseChars + DigitChars,
				TokenCount:  1000000,
				TokenLength: MaxTokenLength,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.HasCapacity())
		})
	}
}

func TestRun_Finished(t *testing.T) {
	run := &Run{Status: RunStatusRunning}
	assert.False(t, run.Finished())

	run.Status = RunStatusSucceeded
	assert.True(t, run.Finished())

	run.Status = RunStatusFailed
	assert.True(t, run.Finished())
}
