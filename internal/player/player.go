// Package player controls the desktop audio player through an OS command:
// osascript driving the Music app on darwin, playerctl everywhere else.
package player

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/tbekov/scheduling-assistant/internal/metrics"
)

// Runner executes one OS command. Injected so tests never shell out.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

type Controller struct {
	runner Runner
	goos   string
	logger *slog.Logger
}

func New(logger *slog.Logger) *Controller {
	return &Controller{
		runner: execRunner{},
		goos:   runtime.GOOS,
		logger: logger.With("component", "player"),
	}
}

// NewWithRunner is for tests.
func NewWithRunner(runner Runner, goos string, logger *slog.Logger) *Controller {
	return &Controller{runner: runner, goos: goos, logger: logger}
}

func (c *Controller) Play(ctx context.Context) error     { return c.command(ctx, "play") }
func (c *Controller) Pause(ctx context.Context) error    { return c.command(ctx, "pause") }
func (c *Controller) Next(ctx context.Context) error     { return c.command(ctx, "next") }
func (c *Controller) Previous(ctx context.Context) error { return c.command(ctx, "previous") }

var appleScripts = map[string]string{
	"play":     `tell application "Music" to play`,
	"pause":    `tell application "Music" to pause`,
	"next":     `tell application "Music" to next track`,
	"previous": `tell application "Music" to previous track`,
}

func (c *Controller) command(ctx context.Context, action string) error {
	var err error
	if c.goos == "darwin" {
		err = c.runner.Run(ctx, "osascript", "-e", appleScripts[action])
	} else {
		err = c.runner.Run(ctx, "playerctl", action)
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
		c.logger.Warn("player command failed", "action", action, "error", err)
	}
	metrics.PlayerCommandsTotal.WithLabelValues(action, outcome).Inc()

	if err != nil {
		return fmt.Errorf("player %s: %w", action, err)
	}
	return nil
}
