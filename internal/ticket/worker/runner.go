// Package worker executes generation runs on a dedicated background goroutine
// so callers stay responsive while duplicate-avoidance retries happen. Only one
// run may be in flight at a time and completion is reported as a single message
// consumed at the caller's next opportunity.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
	ticketUsecase "github.com/dannymato/ticket-generator/internal/ticket/usecase"
)

// Runner owns the background generation worker. The worker goroutine has
// exclusive ownership of the file handle, random source and duplicate set for
// the duration of a run; the interactive side only ever sees immutable
// snapshots and the completion message.
type Runner struct {
	useCase ticketUsecase.GenerationUseCase
	logger  *slog.Logger

	// inbox carries the single completion message per run. Capacity one: an
	// unread message from a previous run is dropped in favor of the latest.
	inbox chan string

	mu      sync.Mutex
	active  bool
	current *ticketDomain.Run
	lastRun *ticketDomain.Run
	wg      sync.WaitGroup
}

// NewRunner creates a runner that executes runs through the given use case.
func NewRunner(useCase ticketUsecase.GenerationUseCase, logger *slog.Logger) *Runner {
	return &Runner{
		useCase: useCase,
		logger:  logger,
		inbox:   make(chan string, 1),
	}
}

// Submit starts a generation run in the background.
//
// An invalid request is silently refused: Submit returns (nil, nil), no run
// starts and no error is surfaced. This mirrors the submission form contract,
// where incomplete input is a no-op rather than a failure. A request arriving
// while a run is in flight returns ErrRunInProgress.
func (r *Runner) Submit(req ticketDomain.GenerationRequest) (*ticketDomain.Run, error) {
	if !req.IsValid() {
		r.logger.Debug("ignoring invalid generation request",
			slog.String("file_path", req.FilePath),
			slog.Int("token_count", req.TokenCount),
			slog.Int("token_length", req.TokenLength),
			slog.Int("alphabet_size", len(req.Alphabet)),
		)
		return nil, nil
	}

	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return nil, ticketDomain.ErrRunInProgress
	}

	run := &ticketDomain.Run{
		ID:        uuid.Must(uuid.NewV7()),
		Request:   req,
		Status:    ticketDomain.RunStatusPending,
		StartedAt: time.Now().UTC(),
	}
	r.active = true
	r.current = run
	r.mu.Unlock()

	snapshot := *run

	r.wg.Add(1)
	go r.execute(run, req)

	return &snapshot, nil
}

// execute performs the run and publishes its completion message. Runs are not
// cancellable once started, so the run uses a fresh background context rather
// than the submitter's.
func (r *Runner) execute(run *ticketDomain.Run, req ticketDomain.GenerationRequest) {
	defer r.wg.Done()

	r.logger.Info("generation run started",
		slog.String("run_id", run.ID.String()),
		slog.String("file_path", req.FilePath),
		slog.Int("token_count", req.TokenCount),
		slog.Int("token_length", req.TokenLength),
	)

	result, err := r.useCase.Generate(context.Background(), req)

	r.mu.Lock()
	run.Status = ticketDomain.RunStatusFailed
	if result != nil {
		run.Status = result.Status
		run.Message = result.Message
		run.RowsWritten = result.RowsWritten
	} else if err != nil {
		run.Message = err.Error()
	}
	run.FinishedAt = time.Now().UTC()

	r.lastRun = run
	r.current = nil
	r.active = false
	message := run.Message
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("generation run failed",
			slog.String("run_id", run.ID.String()),
			slog.Any("error", err),
		)
	} else {
		r.logger.Info("generation run finished",
			slog.String("run_id", run.ID.String()),
			slog.Int("rows_written", run.RowsWritten),
		)
	}

	r.publish(message)
}

// publish delivers the completion message, displacing an unread older one.
func (r *Runner) publish(message string) {
	for {
		select {
		case r.inbox <- message:
			return
		default:
			select {
			case <-r.inbox:
			default:
			}
		}
	}
}

// Poll returns the pending completion message, if any, without blocking.
func (r *Runner) Poll() (string, bool) {
	select {
	case message := <-r.inbox:
		return message, true
	default:
		return "", false
	}
}

// Active reports whether a run is currently in flight.
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// LastRun returns a snapshot of the most recently completed run, or nil if no
// run has completed yet.
func (r *Runner) LastRun() *ticketDomain.Run {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastRun == nil {
		return nil
	}
	snapshot := *r.lastRun
	return &snapshot
}

// Close waits for an in-flight run to finish. Runs cannot be cancelled; the
// only external control is refusing new submissions.
func (r *Runner) Close() {
	r.wg.Wait()
}
