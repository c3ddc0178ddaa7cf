package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dannymato/ticket-generator/internal/ticket/domain"
	ticketWorker "github.com/dannymato/ticket-generator/internal/ticket/worker"
)

// RunGenerate executes a one-shot generation run through the background runner
// and waits for its completion message. An incomplete request (no classes
// selected, missing output path, zero count or length) is a silent no-op, the
// same contract the submission endpoint's form layer has.
func RunGenerate(
	ctx context.Context,
	runner *ticketWorker.Runner,
	logger *slog.Logger,
	out io.Writer,
	selection domain.ClassSelection,
	filePath string,
	tokenCount int,
	tokenLength int,
	format string,
) error {
	alphabet := domain.BuildAlphabet(selection)

	req := domain.GenerationRequest{
		Alphabet:    alphabet,
		FilePath:    filePath,
		TokenCount:  tokenCount,
		TokenLength: tokenLength,
	}

	run, err := runner.Submit(req)
	if err != nil {
		return fmt.Errorf("failed to submit generation run: %w", err)
	}
	if run == nil {
		// Incomplete request, nothing to do
		return nil
	}

	logger.Info("generation run submitted",
		slog.String("run_id", run.ID.String()),
		slog.String("file_path", filePath),
		slog.Int("token_count", tokenCount),
		slog.Int("token_length", tokenLength),
	)

	// Runs are not cancellable; wait for the in-flight run to finish
	runner.Close()

	message, _ := runner.Poll()
	lastRun := runner.LastRun()
	if lastRun == nil {
		return fmt.Errorf("generation run did not complete")
	}

	if format == "json" {
		if err := outputGenerateJSON(out, lastRun); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, message)
	}

	if lastRun.Status == domain.RunStatusFailed {
		return fmt.Errorf("generation run failed: %s", lastRun.Message)
	}

	return nil
}

// outputGenerateJSON outputs the run result in JSON format for machine consumption.
func outputGenerateJSON(out io.Writer, run *domain.Run) error {
	result := map[string]interface{}{
		"run_id":       run.ID.String(),
		"status":       string(run.Status),
		"message":      run.Message,
		"rows_written": run.RowsWritten,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(out, string(jsonBytes))
	return nil
}
