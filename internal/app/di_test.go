package app

import (
	"context"
	"testing"

	"github.com/dannymato/ticket-generator/internal/config"
)

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		LogLevel:            "info",
		ServerHost:          "localhost",
		ServerPort:          8080,
		MaxGenerateAttempts: 100,
	}

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "debug",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "invalid",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

// TestContainerMetricsDisabled verifies that metrics components are nil or no-op
// when metrics are disabled.
func TestContainerMetricsDisabled(t *testing.T) {
	cfg := &config.Config{
		LogLevel:       "info",
		MetricsEnabled: false,
	}

	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error getting metrics provider: %v", err)
	}
	if provider != nil {
		t.Error("expected nil metrics provider when metrics are disabled")
	}

	businessMetrics, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error getting business metrics: %v", err)
	}
	if businessMetrics == nil {
		t.Error("expected no-op business metrics when metrics are disabled")
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		t.Fatalf("unexpected error getting metrics server: %v", err)
	}
	if metricsServer != nil {
		t.Error("expected nil metrics server when metrics are disabled")
	}
}

// TestContainerMetricsEnabled verifies that metrics components are created
// when metrics are enabled.
func TestContainerMetricsEnabled(t *testing.T) {
	cfg := &config.Config{
		LogLevel:         "info",
		ServerHost:       "localhost",
		MetricsEnabled:   true,
		MetricsNamespace: "tickets",
		MetricsPort:      9090,
	}

	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error getting metrics provider: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil metrics provider when metrics are enabled")
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		t.Fatalf("unexpected error getting metrics server: %v", err)
	}
	if metricsServer == nil {
		t.Error("expected non-nil metrics server when metrics are enabled")
	}
}

// TestContainerGenerationUseCase verifies that the generation use case can be created.
func TestContainerGenerationUseCase(t *testing.T) {
	cfg := &config.Config{
		LogLevel:            "info",
		MaxGenerateAttempts: 100,
	}

	container := NewContainer(cfg)

	useCase, err := container.GenerationUseCase()
	if err != nil {
		t.Fatalf("unexpected error getting generation use case: %v", err)
	}
	if useCase == nil {
		t.Fatal("expected non-nil generation use case")
	}

	// Calling again should return the same instance (singleton)
	useCase2, err := container.GenerationUseCase()
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if useCase != useCase2 {
		t.Error("expected same use case instance on multiple calls")
	}
}

// TestContainerRunner verifies that the background runner can be created.
func TestContainerRunner(t *testing.T) {
	cfg := &config.Config{
		LogLevel:            "info",
		MaxGenerateAttempts: 100,
	}

	container := NewContainer(cfg)

	runner, err := container.Runner()
	if err != nil {
		t.Fatalf("unexpected error getting runner: %v", err)
	}
	if runner == nil {
		t.Fatal("expected non-nil runner")
	}
}

// TestContainerHTTPServer verifies that the HTTP server can be created.
func TestContainerHTTPServer(t *testing.T) {
	cfg := &config.Config{
		LogLevel:            "info",
		ServerHost:          "localhost",
		ServerPort:          8080,
		MaxGenerateAttempts: 100,
	}

	container := NewContainer(cfg)

	server, err := container.HTTPServer()
	if err != nil {
		t.Fatalf("unexpected error getting http server: %v", err)
	}
	if server == nil {
		t.Fatal("expected non-nil http server")
	}
}

// TestContainerLazyInitialization verifies that components are only initialized when accessed.
func TestContainerLazyInitialization(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "info",
	}

	container := NewContainer(cfg)

	// At this point, no components should be initialized
	if container.logger != nil {
		t.Error("expected logger to be nil before first access")
	}

	// Access logger
	logger := container.Logger()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Now logger should be initialized
	if container.logger == nil {
		t.Error("expected logger to be initialized after access")
	}
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "info",
	}

	container := NewContainer(cfg)

	// Shutdown should not fail even if no components are initialized
	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
