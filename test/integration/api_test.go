// Package integration provides end-to-end tests for the ticket generation API.
// Tests run the full stack: DI container, HTTP server, background runner and
// CSV output on disk.
package integration

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannymato/ticket-generator/internal/app"
	"github.com/dannymato/ticket-generator/internal/config"
	ticketDTO "github.com/dannymato/ticket-generator/internal/ticket/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// waitForLastRun polls /v1/runs/last until a run reaches a terminal state.
func (ctx *integrationTestContext) waitForLastRun(t *testing.T) ticketDTO.RunResponse {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/runs/last", nil)
		if resp.StatusCode == http.StatusOK {
			var run ticketDTO.RunResponse
			require.NoError(t, json.Unmarshal(body, &run))
			if run.Status == "succeeded" || run.Status == "failed" {
				return run
			}
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("timed out waiting for run to complete")
	return ticketDTO.RunResponse{}
}

// setupIntegrationTest initializes all components for integration testing.
func setupIntegrationTest(t *testing.T) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		LogLevel:            "error",
		ServerHost:          "localhost",
		ServerPort:          8080,
		MaxGenerateAttempts: 1000,
	}

	container := app.NewContainer(cfg)

	httpServer, err := container.HTTPServer()
	require.NoError(t, err, "failed to initialize HTTP server")

	server := httptest.NewServer(httpServer.GetHandler())

	t.Cleanup(func() {
		server.Close()
		runner, runnerErr := container.Runner()
		if runnerErr == nil {
			runner.Close()
		}
	})

	return &integrationTestContext{
		container: container,
		server:    server,
	}
}

func TestHealthEndpoint(t *testing.T) {
	ctx := setupIntegrationTest(t)

	resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")
}

func TestAlphabetPreview(t *testing.T) {
	ctx := setupIntegrationTest(t)

	resp, body := ctx.makeRequest(
		t, http.MethodGet, "/v1/alphabet?capitals=true&digits=true&exclude=AEIOU0", nil,
	)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var alphabet ticketDTO.AlphabetResponse
	require.NoError(t, json.Unmarshal(body, &alphabet))
	assert.Equal(t, "BCDFGHJKLMNPQRSTVWXYZ123456789", alphabet.Alphabet)
	assert.Equal(t, 30, alphabet.Size)
}

func TestSubmitRunLifecycle(t *testing.T) {
	ctx := setupIntegrationTest(t)
	outputPath := filepath.Join(t.TempDir(), "tickets.csv")

	resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/runs", ticketDTO.SubmitRunRequest{
		Capitals:    true,
		Digits:      true,
		FilePath:    outputPath,
		TokenCount:  20,
		TokenLength: 8,
	})

	require.Equal(t, http.StatusAccepted, resp.StatusCode, "body: %s", string(body))

	var submitted ticketDTO.RunResponse
	require.NoError(t, json.Unmarshal(body, &submitted))
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, "pending", submitted.Status)

	// Wait for the background runner to finish and verify the reported run
	run := ctx.waitForLastRun(t)
	assert.Equal(t, "succeeded", run.Status)
	assert.Equal(t, "Successfully wrote to CSV", run.Message)
	assert.Equal(t, 20, run.RowsWritten)
	assert.NotNil(t, run.FinishedAt)

	// Verify the CSV on disk: one token per row, no header, unique tokens
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 20)

	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		require.Len(t, record, 1)
		assert.Len(t, record[0], 8)
		_, duplicate := seen[record[0]]
		assert.False(t, duplicate, "duplicate token %q", record[0])
		seen[record[0]] = struct{}{}
	}
}

func TestSubmitRunValidation(t *testing.T) {
	ctx := setupIntegrationTest(t)

	t.Run("no character class selected", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/runs", ticketDTO.SubmitRunRequest{
			FilePath:    "/tmp/tickets.csv",
			TokenCount:  10,
			TokenLength: 8,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(body), "at least one character class must be selected")
	})

	t.Run("missing file path", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/runs", ticketDTO.SubmitRunRequest{
			Capitals:    true,
			TokenCount:  10,
			TokenLength: 8,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("exclusion leaves empty alphabet", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/runs", ticketDTO.SubmitRunRequest{
			Digits:      true,
			Exclude:     "0123456789",
			FilePath:    "/tmp/tickets.csv",
			TokenCount:  10,
			TokenLength: 8,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("malformed json body", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPost, ctx.server.URL+"/v1/runs", bytes.NewReader([]byte("{not json")),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := (&http.Client{Timeout: 10 * time.Second}).Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLastRunBeforeAnyRun(t *testing.T) {
	ctx := setupIntegrationTest(t)

	resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/runs/last", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFailedRunReportsError(t *testing.T) {
	ctx := setupIntegrationTest(t)

	// Directory that does not exist makes file creation fail
	resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/runs", ticketDTO.SubmitRunRequest{
		Capitals:    true,
		FilePath:    filepath.Join(t.TempDir(), "missing", "tickets.csv"),
		TokenCount:  5,
		TokenLength: 8,
	})

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	run := ctx.waitForLastRun(t)
	assert.Equal(t, "failed", run.Status)
	assert.Contains(t, run.Message, "failed to create file")
}
