package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/groupforge/groupforge/pkg/group"
	"github.com/groupforge/groupforge/pkg/groupcfg"
	"github.com/groupforge/groupforge/pkg/resultstore"
	"github.com/groupforge/groupforge/pkg/telemetry"
)

// newTelemetry builds the logger and metrics registry from the global flags.
func newTelemetry() (*telemetry.Logger, *telemetry.Metrics) {
	level := "info"
	if verbose {
		level = "debug"
	}
	format := "console"
	if jsonOutput {
		// Keep human output on stdout clean; logs go structured to stderr.
		format = "json"
	}
	logger := telemetry.NewLogger(telemetry.LoggingConfig{
		Level:  level,
		Format: format,
		Output: "stderr",
	})
	metrics := telemetry.NewMetrics(telemetry.MetricsConfig{
		Enabled:   true,
		Namespace: "groupforge",
	})
	return logger, metrics
}

// newTracer builds a tracer from the global flags. With the default
// "none" exporter it returns a no-op tracer.
func newTracer(logger *telemetry.Logger) *telemetry.Tracer {
	tracer, err := telemetry.NewTracer(telemetry.TracingConfig{
		Enabled:       traceExporter != "none",
		Exporter:      traceExporter,
		Endpoint:      traceEndpoint,
		Insecure:      true,
		SamplingRate:  1.0,
		ExportTimeout: 10 * time.Second,
	}, "groupforge", "dev")
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize tracing, continuing without it")
		tracer, _ = telemetry.NewTracer(telemetry.TracingConfig{}, "groupforge", "dev")
	}
	return tracer
}

// loadGroup parses a group definition file into a validated group.
func loadGroup(path string) (*group.Group, error) {
	if path == "" {
		return nil, fmt.Errorf("a group definition file is required (--group)")
	}
	g, err := groupcfg.NewParser().ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load group from %s: %w", path, err)
	}
	return g, nil
}

// recordComputation persists a computation to the history store when the
// --store flag is set. Failures to record are logged, not fatal: the
// computation itself already succeeded or failed on its own terms.
func recordComputation(ctx context.Context, logger *telemetry.Logger, c *resultstore.Computation) {
	if storePath == "" {
		return
	}

	store, err := resultstore.NewSQLiteStore(storePath)
	if err != nil {
		logger.Warn().Err(err).Str("path", storePath).Msg("Failed to open history store")
		return
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize history store")
		return
	}
	if err := store.Record(ctx, c); err != nil {
		logger.Warn().Err(err).Msg("Failed to record computation")
		return
	}
	logger.Debug().Str("id", c.ID).Str("kind", string(c.Kind)).Msg("Recorded computation")
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorCode extracts the machine-readable code from a domain error, if any.
func errorCode(err error) string {
	var gerr *group.Error
	if errors.As(err, &gerr) && gerr.Code != "" {
		return gerr.Code
	}
	return "UNKNOWN"
}
