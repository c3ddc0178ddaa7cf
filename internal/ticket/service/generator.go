package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// DefaultMaxAttempts is the fallback retry budget per token when the caller
// does not configure one.
const DefaultMaxAttempts = 10000

type alphabetGenerator struct {
	alphabet    string
	alphabetLen *big.Int
	maxAttempts int
}

// NewAlphabetGenerator creates a token generator that draws characters uniformly
// at random from the given alphabet. A candidate that collides with an already
// generated token is redrawn in full, up to maxAttempts times per token; the
// retry budget turns the rejection-sampling loop into a bounded one with a
// documented failure instead of an unbounded hang near token-space saturation.
// Returns an error if the alphabet is empty.
func NewAlphabetGenerator(alphabet string, maxAttempts int) (TokenGenerator, error) {
	if len(alphabet) == 0 {
		return nil, ticketDomain.ErrEmptyAlphabet
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	return &alphabetGenerator{
		alphabet:    alphabet,
		alphabetLen: big.NewInt(int64(len(alphabet))),
		maxAttempts: maxAttempts,
	}, nil
}

// Generate draws one token of the specified length, rejecting candidates that
// already appear in alreadyGenerated. Each position is an independent uniform
// draw, so a rejected candidate costs a full redraw. Returns
// ErrTokenSpaceExhausted when the retry budget runs out.
func (g *alphabetGenerator) Generate(alreadyGenerated map[string]struct{}, length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}
	if length > ticketDomain.MaxTokenLength {
		return "", errors.New("length must not exceed 255")
	}

	buf := make([]byte, length)
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		for i := 0; i < length; i++ {
			n, err := rand.Int(rand.Reader, g.alphabetLen)
			if err != nil {
				return "", fmt.Errorf("failed to generate random character: %w", err)
			}
			buf[i] = g.alphabet[n.Int64()]
		}

		candidate := string(buf)
		if _, exists := alreadyGenerated[candidate]; !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf(
		"%w: no unique token found after %d attempts",
		ticketDomain.ErrTokenSpaceExhausted, g.maxAttempts,
	)
}
