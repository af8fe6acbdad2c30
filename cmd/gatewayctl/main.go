// Command gatewayctl drives the payment gateway from the command line and
// can run a local sandbox gateway to develop against.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/gateway-client/internal/adapters/clients/gateway"
	sandbox "github.com/jsamuelsen/gateway-client/internal/adapters/http"
	"github.com/jsamuelsen/gateway-client/internal/app"
	"github.com/jsamuelsen/gateway-client/internal/platform/config"
	"github.com/jsamuelsen/gateway-client/internal/platform/logging"
	"github.com/jsamuelsen/gateway-client/internal/platform/telemetry"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

const usage = `usage: gatewayctl [-profile name] <command> [flags] [args]

commands:
  charges create|get|update|capture|list
  disputes get|update|close|list|await
  health
  sandbox

`

// errUsage marks errors caused by how the command was invoked.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		if errors.Is(err, errUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

// cli carries what every command needs.
type cli struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gatewayctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	profile := fs.String("profile", envOr("APP_ENVIRONMENT", "local"), "config profile, loads configs/{profile}.yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: no command given", errUsage)
	}

	cfg, err := config.Load(*profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, stderr)
	logging.SetDefault(logger)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.App.Environment == "local",
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	c := &cli{cfg: cfg, logger: logger, out: stdout, errOut: stderr}

	return c.dispatch(ctx, fs.Args())
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "charges":
		return c.charges(ctx, rest)
	case "disputes":
		return c.disputes(ctx, rest)
	case "health":
		return c.health(ctx)
	case "sandbox":
		return c.sandbox(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) gateway() (*gateway.Gateway, error) {
	return gateway.New(&c.cfg.Gateway, c.logger)
}

func (c *cli) disputeService(gw *gateway.Gateway, attempts int, interval time.Duration) *app.DisputeService {
	return app.NewDisputeService(app.DisputeServiceConfig{
		Charges:      gw.Charges,
		Disputes:     gw.Disputes,
		PollAttempts: attempts,
		PollInterval: interval,
		Logger:       c.logger,
	})
}

// waitForShutdown blocks until ctx ends or the server fails, then drains
// in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *sandbox.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
