// Package cmd holds the startup plumbing shared by the game commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/louisbranch/minigames/internal/platform/config"
	"github.com/louisbranch/minigames/internal/platform/otel"
)

// telemetryShutdownTimeout bounds the final span flush after a run.
const telemetryShutdownTimeout = 5 * time.Second

// Service identifiers for command startup telemetry and CLI naming consistency.
const (
	ServiceRacing = "racing"
	ServiceLotto  = "lotto"
)

// ParseConfigFromArgs fills cfg from MINIGAMES_ environment variables and then
// applies args to fs. Flags must already be bound to cfg's fields; only flags
// present in args override the environment.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes one game run inside a
// "<service>.run" span. Spans started from the context passed to run are its
// children. A failed run marks the span as an error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()

	ctx, span := otel.Tracer().Start(ctx, service+".run")
	defer span.End()
	if err := run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, service+" run failed")
		return err
	}
	return nil
}
