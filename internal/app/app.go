package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/calcsheet/internal/ctxlog"
	"github.com/vk/calcsheet/internal/hcl"
	"github.com/vk/calcsheet/internal/sheet"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *hcl.Loader
}

// NewApp returns an initialized App with its own isolated logger.
func NewApp(outW io.Writer, config *Config) *App {
	return NewAppWithLogWriter(outW, os.Stderr, config)
}

// NewAppWithLogWriter is NewApp with log output redirected, so tests can
// capture what the run logged.
func NewAppWithLogWriter(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		loader: hcl.NewLoader(),
	}
}

// Run loads the sheet, evaluates it and writes the report. It returns the
// first error encountered; nothing is emitted on failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	builder, err := a.loader.Load(ctx, a.config.SheetPath)
	if err != nil {
		return fmt.Errorf("loading sheet: %w", err)
	}
	a.logger.Debug("Sheet loaded.", "path", a.config.SheetPath, "steps", len(builder.Steps()))

	if err := builder.Evaluate(ctx); err != nil {
		return fmt.Errorf("evaluating sheet: %w", err)
	}
	a.logger.Debug("Sheet evaluated.")

	var report string
	switch a.config.Format {
	case "text":
		report, err = builder.Text()
	default:
		report, err = builder.Report(ctx, sheet.WithStyle(a.config.Style))
	}
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	_, err = fmt.Fprintln(a.outW, report)
	return err
}
