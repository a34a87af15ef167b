package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/ctxlog"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
)

// Run compiles program and writes the result to the configured output
// file. The file is only created once compilation has succeeded.
func (a *App) Run(ctx context.Context, program executable.Statement) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	opts, err := a.loadOptions(ctx)
	if err != nil {
		return err
	}

	unit, err := compiler.New(ctx, opts, a.plugins...)
	if err != nil {
		return fmt.Errorf("failed to set up compilation: %w", err)
	}
	defer unit.Close()

	tl, err := unit.Compile(ctx, program)
	if err != nil {
		return err
	}

	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := a.write(f, tl, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	a.logger.Info("Output written.", "path", a.config.OutputPath, "format", a.config.Format, "events", tl.Len())
	return nil
}

func (a *App) loadOptions(ctx context.Context) (compiler.Options, error) {
	if a.config.OptionsPath == "" {
		a.logger.Debug("No options file configured, using defaults.")
		return compiler.DefaultOptions(), nil
	}
	return compiler.LoadOptions(ctx, a.config.OptionsPath)
}

func (a *App) write(w io.Writer, tl *output.Timeline, opts compiler.Options) error {
	switch a.config.Format {
	case FormatYAML:
		return output.WriteYAML(w, tl)
	default:
		return output.WriteSMF(w, tl, opts.Meta())
	}
}
