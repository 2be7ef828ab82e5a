package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// CopyFileSpec names one source/destination pair a [CopyFilesBuildPhase]
// carries. Source may be a file or a directory; the phase dispatches on
// its actual type at run time.
type CopyFileSpec struct {
	Source      string
	Destination string
}

// ManifestEntry records one completed copy, in the order it was performed.
type ManifestEntry struct {
	Source      string
	Destination string
}

// CopyFilesBuildPhase copies a fixed list of source/destination pairs
// through a [vfs.Filesystem], mirroring an Xcode "Copy Files" build phase.
// Each destination's parent directory is created as needed. A destination
// collision is logged and skipped; it never aborts the
// remaining pairs in the same phase.
type CopyFilesBuildPhase struct {
	PhaseName string
	Specs     []CopyFileSpec

	Manifest []ManifestEntry

	progress progressTracker
}

// Progress returns a snapshot of the phase's run so far, safe to call
// concurrently with Run.
func (p *CopyFilesBuildPhase) Progress() Progress {
	return p.progress.snapshot()
}

var _ BuildPhase = (*CopyFilesBuildPhase)(nil)

func (p *CopyFilesBuildPhase) Name() string {
	return p.PhaseName
}

// Inputs returns every source path the phase will read from.
func (p *CopyFilesBuildPhase) Inputs() []string {
	out := make([]string, len(p.Specs))
	for i, spec := range p.Specs {
		out[i] = spec.Source
	}

	return out
}

// Outputs returns every destination path the phase will write to.
func (p *CopyFilesBuildPhase) Outputs() []string {
	out := make([]string, len(p.Specs))
	for i, spec := range p.Specs {
		out[i] = spec.Destination
	}

	return out
}

func (p *CopyFilesBuildPhase) Run(ctx context.Context, fs vfs.Filesystem) error {
	p.Manifest = p.Manifest[:0]
	p.progress.start(len(p.Specs))
	defer p.progress.finish()

	if ctx.Err() != nil {
		return fmt.Errorf("(project-copyphase) %w", ctx.Err())
	}

	runnable := filterExistingSpecs(ctx, fs, p.Specs)
	if missing := len(p.Specs) - len(runnable); missing > 0 {
		p.progress.recordSkippedN(missing)
		slog.Warn("Skipped copies with a missing source.", "phase", p.PhaseName, "count", missing)
	}

	for _, spec := range runnable {
		if ctx.Err() != nil {
			return fmt.Errorf("(project-copyphase) %w", ctx.Err())
		}

		if err := p.runOne(fs, spec); err != nil {
			p.progress.recordSkipped()
			slog.Warn("Skipped copy: failure during processing",
				"phase", p.PhaseName,
				"source", spec.Source,
				"destination", spec.Destination,
				"err", err,
			)

			continue
		}

		p.progress.recordSuccess()
		p.Manifest = append(p.Manifest, ManifestEntry{Source: spec.Source, Destination: spec.Destination})

		slog.Info("Processed copy:",
			"phase", p.PhaseName,
			"source", spec.Source,
			"destination", spec.Destination,
		)
	}

	return nil
}

func (p *CopyFilesBuildPhase) runOne(fs vfs.Filesystem, spec CopyFileSpec) error {
	if fs.Exists(spec.Destination) {
		return fmt.Errorf("(project-copyphase) %w: %s", ErrDestinationExists, spec.Destination)
	}

	if parent := pathutil.GetDirectoryName(spec.Destination); parent != "" && !fs.CreateDirectory(parent, true) {
		return fmt.Errorf("(project-copyphase) %w: %s", ErrCopyFailed, spec.Destination)
	}

	switch fs.Type(spec.Source) {
	case vfs.TypeDirectory:
		if !fs.CopyDirectory(spec.Source, spec.Destination) {
			return fmt.Errorf("(project-copyphase) %w: %s", ErrCopyFailed, spec.Source)
		}
	case vfs.TypeFile:
		if !fs.CopyFile(spec.Source, spec.Destination) {
			return fmt.Errorf("(project-copyphase) %w: %s", ErrCopyFailed, spec.Source)
		}
	case vfs.TypeSymbolicLink:
		if !fs.CopySymbolicLink(spec.Source, spec.Destination) {
			return fmt.Errorf("(project-copyphase) %w: %s", ErrCopyFailed, spec.Source)
		}
	default:
		return fmt.Errorf("(project-copyphase) %w: %s", ErrSourceMissing, spec.Source)
	}

	return nil
}
