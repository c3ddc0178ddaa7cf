// Package http provides HTTP handlers for submitting generation runs and
// inspecting their outcome.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dannymato/ticket-generator/internal/errors"
	"github.com/dannymato/ticket-generator/internal/httputil"
	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
	"github.com/dannymato/ticket-generator/internal/ticket/http/dto"
	customValidation "github.com/dannymato/ticket-generator/internal/validation"
)

// RunSubmitter is the worker-side surface the handler drives.
type RunSubmitter interface {
	Submit(req ticketDomain.GenerationRequest) (*ticketDomain.Run, error)
	LastRun() *ticketDomain.Run
}

// RunHandler handles HTTP requests for generation run management.
type RunHandler struct {
	runner RunSubmitter
	logger *slog.Logger
}

// NewRunHandler creates a new run handler with required dependencies.
func NewRunHandler(runner RunSubmitter, logger *slog.Logger) *RunHandler {
	return &RunHandler{
		runner: runner,
		logger: logger,
	}
}

// SubmitHandler submits a new generation run.
// POST /v1/runs - Returns 202 Accepted with the pending run, 409 when a run is
// already in flight, 422 on validation failure.
func (h *RunHandler) SubmitHandler(c *gin.Context) {
	var req dto.SubmitRunRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Build the working alphabet; the exclusion list may have emptied it.
	alphabet := ticketDomain.BuildAlphabet(req.ClassSelection())
	if alphabet == "" {
		httputil.HandleErrorGin(c, ticketDomain.ErrEmptyAlphabet, h.logger)
		return
	}

	run, err := h.runner.Submit(ticketDomain.GenerationRequest{
		Alphabet:    alphabet,
		FilePath:    req.FilePath,
		TokenCount:  req.TokenCount,
		TokenLength: req.TokenLength,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if run == nil {
		// The worker silently refused; the DTO validation above should make
		// this unreachable, so treat it as invalid input rather than a success.
		httputil.HandleErrorGin(c, apperrors.ErrInvalidInput, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.MapRunToResponse(run))
}

// LastRunHandler returns the most recently completed run.
// GET /v1/runs/last - Returns 404 before any run has completed.
func (h *RunHandler) LastRunHandler(c *gin.Context) {
	run := h.runner.LastRun()
	if run == nil {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRunToResponse(run))
}

// AlphabetHandler previews the character set a class selection produces.
// GET /v1/alphabet?capitals=true&digits=true&exclude=AEIOU0
func (h *RunHandler) AlphabetHandler(c *gin.Context) {
	var query dto.AlphabetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	alphabet := ticketDomain.BuildAlphabet(query.ClassSelection())

	c.JSON(http.StatusOK, dto.AlphabetResponse{
		Alphabet: alphabet,
		Size:     len(alphabet),
	})
}
