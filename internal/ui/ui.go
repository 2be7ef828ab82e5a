// Package ui implements an optional terminal progress display for a
// [project.CopyFilesBuildPhase] run, built on bubbletea. It is a
// simplified, single-phase rendering of a three-panel enumeration /
// evaluation / IO layout: this driver only ever runs one phase at a time,
// so one progress bar and a log viewport is all there is to show.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/forgebuild/xcfs/internal/project"
	"github.com/lmittmann/tint"
)

// Handler owns the bubbletea program for one build phase run. phaseFunc is
// polled rather than bound at construction because the phase it renders
// does not exist yet when the UI and the driver goroutine are started
// together.
type Handler struct {
	phaseFunc  func() *project.CopyFilesBuildPhase
	logHandler *teaLogWriter
	program    *tea.Program
}

// NewHandler returns a Handler that will render the progress of whatever
// phase phaseFunc returns, once non-nil.
func NewHandler(phaseFunc func() *project.CopyFilesBuildPhase) *Handler {
	return &Handler{
		phaseFunc:  phaseFunc,
		logHandler: newTeaLogWriter(),
	}
}

// Launch runs the bubbletea program until the user quits or cancel is
// invoked, redirecting the default logger into the UI's log viewport for
// the duration.
func (h *Handler) Launch(ctx context.Context, cancel context.CancelFunc) error {
	model := newTeaModel(h.phaseFunc, h.logHandler, cancel)

	h.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	h.logHandler.SetProgram(h.program)
	h.logHandler.Start()
	defer h.logHandler.Stop()

	slog.SetDefault(slog.New(
		tint.NewHandler(h.logHandler, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))

	if _, err := h.program.Run(); err != nil {
		return fmt.Errorf("(ui-tea) %w", err)
	}

	return nil
}

// Stop kills the running bubbletea program, if any.
func (h *Handler) Stop() {
	if h.program != nil {
		h.program.Kill()
	}
}
