// Package project defines the thin build-phase/target model the driver
// orchestrates. It depends only on [vfs.Filesystem], never on a concrete
// backend, so a phase can be exercised against an in-memory filesystem in
// tests exactly as it runs against the host in production.
package project

import (
	"context"

	"github.com/forgebuild/xcfs/internal/vfs"
)

// BuildPhase is one step a [Target] runs as part of producing its output.
// CopyFilesBuildPhase is the only concrete phase implemented so far.
type BuildPhase interface {
	Name() string
	// Inputs lists the paths the phase reads from, before Run is called.
	Inputs() []string
	// Outputs lists the paths the phase writes to, before Run is called.
	Outputs() []string
	Run(ctx context.Context, fs vfs.Filesystem) error
}
