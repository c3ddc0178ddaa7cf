package dto

import (
	"time"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// RunResponse represents a generation run in API responses.
type RunResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Message     string     `json:"message,omitempty"`
	FilePath    string     `json:"file_path"`
	TokenCount  int        `json:"token_count"`
	TokenLength int        `json:"token_length"`
	RowsWritten int        `json:"rows_written"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// MapRunToResponse converts a domain run to an API response.
func MapRunToResponse(run *ticketDomain.Run) RunResponse {
	response := RunResponse{
		ID:          run.ID.String(),
		Status:      string(run.Status),
		Message:     run.Message,
		FilePath:    run.Request.FilePath,
		TokenCount:  run.Request.TokenCount,
		TokenLength: run.Request.TokenLength,
		RowsWritten: run.RowsWritten,
		StartedAt:   run.StartedAt,
	}

	if !run.FinishedAt.IsZero() {
		finishedAt := run.FinishedAt
		response.FinishedAt = &finishedAt
	}

	return response
}

// AlphabetResponse represents the assembled character set preview.
type AlphabetResponse struct {
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}
