// Package usecase implements the business logic for a single generation run:
// validation, uniqueness-checked token generation and CSV emission.
package usecase

import (
	"context"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
	ticketService "github.com/dannymato/ticket-generator/internal/ticket/service"
)

// GeneratorFactory builds a token generator for the alphabet of one run.
type GeneratorFactory func(alphabet string) (ticketService.TokenGenerator, error)

// WriterFactory opens a ticket writer for the destination of one run.
type WriterFactory func(path string) (ticketService.TicketWriter, error)

// GenerationUseCase defines the interface for executing one generation run.
type GenerationUseCase interface {
	// Generate validates the request, produces the requested number of unique
	// tokens and writes them to the destination. The returned Run is always
	// non-nil when the request was valid; on failure it carries the failed
	// status and the error description alongside the returned error.
	Generate(ctx context.Context, req ticketDomain.GenerationRequest) (*ticketDomain.Run, error)
}
