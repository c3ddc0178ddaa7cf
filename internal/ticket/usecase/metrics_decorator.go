package usecase

import (
	"context"
	"time"

	"github.com/dannymato/ticket-generator/internal/metrics"
	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// generationUseCaseWithMetrics decorates GenerationUseCase with metrics instrumentation.
type generationUseCaseWithMetrics struct {
	next    GenerationUseCase
	metrics metrics.BusinessMetrics
}

// NewGenerationUseCaseWithMetrics wraps a GenerationUseCase with metrics recording.
func NewGenerationUseCaseWithMetrics(useCase GenerationUseCase, m metrics.BusinessMetrics) GenerationUseCase {
	return &generationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for generation runs, including the number of CSV
// rows written by successful and partially written runs.
func (g *generationUseCaseWithMetrics) Generate(
	ctx context.Context,
	req ticketDomain.GenerationRequest,
) (*ticketDomain.Run, error) {
	start := time.Now()
	run, err := g.next.Generate(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "ticket", "generate", status)
	g.metrics.RecordDuration(ctx, "ticket", "generate", time.Since(start), status)
	if run != nil {
		g.metrics.RecordTokensWritten(ctx, int64(run.RowsWritten), status)
	}

	return run, err
}
