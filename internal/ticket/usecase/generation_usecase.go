package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/dannymato/ticket-generator/internal/errors"
	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
	customValidation "github.com/dannymato/ticket-generator/internal/validation"
)

// generationUseCase implements GenerationUseCase.
type generationUseCase struct {
	newGenerator GeneratorFactory
	newWriter    WriterFactory
}

// NewGenerationUseCase creates a generation use case backed by the given
// generator and writer factories. Factories are injected so tests can swap the
// random source and the output destination independently.
func NewGenerationUseCase(newGenerator GeneratorFactory, newWriter WriterFactory) GenerationUseCase {
	return &generationUseCase{
		newGenerator: newGenerator,
		newWriter:    newWriter,
	}
}

// Generate executes one run: validate, draw unique tokens, stream them to the
// CSV destination. The first I/O error aborts the run immediately and leaves a
// partial file; there are no I/O retries.
func (g *generationUseCase) Generate(
	ctx context.Context,
	req ticketDomain.GenerationRequest,
) (*ticketDomain.Run, error) {
	if err := req.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	run := &ticketDomain.Run{
		ID:        uuid.Must(uuid.NewV7()),
		Request:   req,
		Status:    ticketDomain.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	if !req.HasCapacity() {
		return g.fail(run, fmt.Errorf(
			"%w: alphabet of %d characters cannot produce %d unique tokens of length %d",
			ticketDomain.ErrTokenSpaceExhausted, len(req.Alphabet), req.TokenCount, req.TokenLength,
		))
	}

	generator, err := g.newGenerator(req.Alphabet)
	if err != nil {
		return g.fail(run, err)
	}

	writer, err := g.newWriter(req.FilePath)
	if err != nil {
		return g.fail(run, err)
	}

	generated := make(map[string]struct{}, req.TokenCount)
	for i := 0; i < req.TokenCount; i++ {
		token, err := generator.Generate(generated, req.TokenLength)
		if err != nil {
			_ = writer.Close()
			return g.fail(run, err)
		}

		if err := writer.Write(token); err != nil {
			_ = writer.Close()
			return g.fail(run, err)
		}

		generated[token] = struct{}{}
		run.RowsWritten++
	}

	if err := writer.Close(); err != nil {
		return g.fail(run, err)
	}

	run.Status = ticketDomain.RunStatusSucceeded
	run.Message = ticketDomain.SuccessMessage
	run.FinishedAt = time.Now().UTC()

	return run, nil
}

// fail marks the run as failed with the error text as its completion message.
func (g *generationUseCase) fail(run *ticketDomain.Run, err error) (*ticketDomain.Run, error) {
	run.Status = ticketDomain.RunStatusFailed
	run.Message = err.Error()
	run.FinishedAt = time.Now().UTC()

	return run, apperrors.Wrap(err, "generation run failed")
}
