package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tester-report/internal/converter"
	"tester-report/internal/converter/converterobs"
	"tester-report/internal/interfaces"
	"tester-report/internal/logger"
	"tester-report/internal/renderer"
	"tester-report/internal/store"
	"tester-report/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

func shutdownSystem() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shut down tracer: %v\n", err)
	}
}

// loadConfig loads the config file and applies command-line overrides
func loadConfig(ctx context.Context, opts *options) (*store.Config, error) {
	cfg, err := store.LoadConfig(opts.configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", opts.configPath)
		return nil, err
	}
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	return cfg, nil
}

// newConverter builds the observable converter for cfg
func newConverter(cfg *store.Config) (interfaces.Converter, error) {
	r, err := renderer.New(renderer.Format(cfg.Output.Format), renderer.Options{
		TimestampFormat: cfg.Output.TimestampFormat,
	})
	if err != nil {
		return nil, err
	}
	return converterobs.Wrap(converter.New(cfg, r)), nil
}
