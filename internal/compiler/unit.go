package compiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/World-Enterprise-Collision/MellowD/internal/ctxlog"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
)

// Unit is one compilation: a root environment shared by every program it
// compiles, and the plugins applied to it.
type Unit struct {
	Root    *environment.Environment
	Options Options

	logger  *slog.Logger
	plugins []Plugin
	closed  bool
}

// New validates opts, creates the root environment and applies plugins in
// order. If a plugin fails to apply, the plugins loaded so far are unloaded
// and the error is returned.
func New(ctx context.Context, opts Options, plugins ...Plugin) (*Unit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	u := &Unit{
		Root:    environment.NewRoot(logger),
		Options: opts,
		logger:  logger,
	}

	for _, p := range plugins {
		p.OnLoad()
		u.plugins = append(u.plugins, p)
		if err := p.Apply(u); err != nil {
			u.Close()
			return nil, fmt.Errorf("failed to apply plugin %T: %w", p, err)
		}
		logger.Debug("Plugin applied.", "plugin", fmt.Sprintf("%T", p))
	}
	logger.Debug("Compilation unit ready.", "plugins", len(u.plugins), "bindings", len(u.Root.Names()), "functions", len(u.Root.FunctionNames()))
	return u, nil
}

// Logger returns the unit's logger.
func (u *Unit) Logger() *slog.Logger { return u.logger }

// Compile executes program in the root environment and returns what it
// played. Bindings and functions it declares stay visible to later calls.
func (u *Unit) Compile(ctx context.Context, program executable.Statement) (*output.Timeline, error) {
	if u.closed {
		return nil, fmt.Errorf("%w: compilation unit is closed", failure.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tl := output.NewTimeline(u.Options.PPQN)
	if err := program.Execute(u.Root, tl); err != nil {
		return nil, fmt.Errorf("compilation failed: %w", err)
	}

	level := slog.LevelInfo
	if u.Options.Silent {
		level = slog.LevelDebug
	}
	u.logger.Log(ctx, level, "Compilation finished.", "events", tl.Len(), "channels", len(tl.Channels()), "ticks", tl.End())
	return tl, nil
}

// Close unloads the plugins in reverse order. Calling it again does
// nothing.
func (u *Unit) Close() {
	if u.closed {
		return
	}
	u.closed = true
	for i := len(u.plugins) - 1; i >= 0; i-- {
		u.plugins[i].OnUnload()
	}
}
