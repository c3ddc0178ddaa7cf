package service

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvTicketWriter streams accepted tokens to a CSV file, one single-field
// record per token, no header.
type csvTicketWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVTicketWriter creates (or truncates) the file at path and returns a
// writer that emits one CSV row per token using standard quoting rules.
// A failed creation surfaces the underlying OS error.
func NewCSVTicketWriter(path string) (TicketWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	return &csvTicketWriter{
		file:   file,
		writer: csv.NewWriter(file),
	}, nil
}

// Write appends one token as a single-field record. Records are flushed per
// write so the first I/O failure surfaces immediately; on failure the file is
// left partially written and the run must abort.
func (w *csvTicketWriter) Write(token string) error {
	if err := w.writer.Write([]string{token}); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}

// Close flushes any remaining buffered output and closes the file.
func (w *csvTicketWriter) Close() error {
	w.writer.Flush()
	flushErr := w.writer.Error()

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if flushErr != nil {
		return fmt.Errorf("failed to write to file: %w", flushErr)
	}

	return nil
}
