package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
)

// Process exit codes.
const (
	exitOK      = 0
	exitSetup   = 1
	exitRunFail = 2
)

func main() {
	// Interrupts abort the process; the batch itself never checks for cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run loads configuration, executes one batch and returns the exit code.
func run(ctx context.Context) int {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't configured yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return exitSetup
	}

	if err := logger.InitWithOptions(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return exitSetup
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := app.NewFromConfig(ctx, cfg, app.WithLogger(loggerInstance.Named("pipeline")))
	if err != nil {
		loggerInstance.Error(ctx, "failed to build pipeline", logger.Error(err))
		return exitSetup
	}

	loggerInstance.Info(ctx, "starting feature run",
		logger.String("run_id", svc.RunID()),
		logger.String("input", cfg.InputPath),
		logger.String("output", cfg.OutputPath),
		logger.String("format", cfg.OutputFormat),
	)

	sum, err := svc.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "feature run failed", logger.String("run_id", svc.RunID()), logger.Error(err))
		return exitRunFail
	}

	loggerInstance.Info(ctx, "feature run complete",
		logger.String("run_id", sum.RunID),
		logger.Int("input_rows", sum.InputRows),
		logger.Int("feature_rows", sum.FeatureRows),
		logger.Duration("elapsed", sum.Elapsed),
	)
	return exitOK
}
