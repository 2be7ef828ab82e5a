// Package driver implements the command-line orchestration layer: it
// parses subcommands, wires a [vfs.Filesystem] into a build phase, and
// reports outcomes through structured logging. It depends only on
// internal/vfs's interface, never on a concrete backend, so its
// subcommands can be driven against an in-memory filesystem in tests.
package driver

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/project"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// ErrUnknownSubcommand occurs when args names neither "build" nor
// "assemble".
var ErrUnknownSubcommand = errors.New("unknown subcommand")

// ErrMissingSource occurs when "assemble" is invoked without at least one
// -source flag and no -target.
var ErrMissingSource = errors.New("at least one -source is required")

// ErrDestinationUnavailable occurs when the destination root cannot be
// created or prepared before a subcommand runs against it.
var ErrDestinationUnavailable = errors.New("destination unavailable")

// ErrInvalidTarget occurs when a -target description cannot be decoded
// into a project.Target.
var ErrInvalidTarget = errors.New("invalid target description")

const manifestName = "BuildManifest.txt"

// Driver runs subcommands against a filesystem contract and a resolved
// configuration.
type Driver struct {
	FS       vfs.Filesystem
	DestRoot string
	SDKRoot  string

	mu          sync.RWMutex
	activePhase *project.CopyFilesBuildPhase
}

// New returns a Driver bound to fs, with destRoot/sdkRoot as the defaults
// subcommands fall back to when not overridden by flags.
func New(fs vfs.Filesystem, destRoot, sdkRoot string) *Driver {
	return &Driver{FS: fs, DestRoot: destRoot, SDKRoot: sdkRoot}
}

// ActivePhase returns the build phase currently running under "assemble",
// or nil between runs. A UI goroutine polls this to render progress for a
// phase it did not start itself.
func (d *Driver) ActivePhase() *project.CopyFilesBuildPhase {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.activePhase
}

func (d *Driver) setActivePhase(p *project.CopyFilesBuildPhase) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.activePhase = p
}

// Run parses args[0] as a subcommand name and dispatches to it. It returns
// a wrapped error on failure; callers that only care about the process
// exit code should treat any non-nil return as exit status 1.
func (d *Driver) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("(driver) %w: no subcommand given", ErrUnknownSubcommand)
	}

	switch args[0] {
	case "assemble":
		return d.runAssemble(ctx, args[1:])
	case "build":
		return d.runBuild(ctx, args[1:])
	default:
		return fmt.Errorf("(driver) %w: %q", ErrUnknownSubcommand, args[0])
	}
}

type sourceFlags []string

func (s *sourceFlags) String() string     { return strings.Join(*s, ",") }
func (s *sourceFlags) Set(v string) error { *s = append(*s, v); return nil }

func (d *Driver) runAssemble(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("assemble", flag.ContinueOnError)

	var sources sourceFlags

	fset.Var(&sources, "source", "source path to copy into the destination root (repeatable)")
	dest := fset.String("dest", d.DestRoot, "destination root to assemble the bundle into")
	targetPath := fset.String("target", "", "path to a JSON-decoded target description (overrides -source)")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("(driver-assemble) parsing flags: %w", err)
	}

	if !d.FS.CreateDirectory(*dest, true) {
		return fmt.Errorf("(driver-assemble) %w: %s", ErrDestinationUnavailable, *dest)
	}

	phases, err := d.resolvePhases(*targetPath, *dest, sources)
	if err != nil {
		return fmt.Errorf("(driver-assemble) %w", err)
	}

	var (
		manifest  []project.ManifestEntry
		copied    int
		attempted int
	)

	for _, phase := range phases {
		if cp, ok := phase.(*project.CopyFilesBuildPhase); ok {
			d.setActivePhase(cp)
		}

		runErr := phase.Run(ctx, d.FS)

		d.setActivePhase(nil)

		if runErr != nil {
			return fmt.Errorf("(driver-assemble) running phase %q: %w", phase.Name(), runErr)
		}

		if cp, ok := phase.(*project.CopyFilesBuildPhase); ok {
			manifest = append(manifest, cp.Manifest...)
			copied += len(cp.Manifest)
			attempted += len(cp.Specs)
		}
	}

	if err := d.writeManifest(*dest, manifest); err != nil {
		return fmt.Errorf("(driver-assemble) %w", err)
	}

	slog.Info("Assembled bundle.", "dest", *dest, "copied", copied, "attempted", attempted)

	return nil
}

// resolvePhases returns the phases to run for an "assemble" invocation:
// the phases of a decoded Target when -target is given, otherwise a single
// CopyFilesBuildPhase built from a BundleSpec over -source.
func (d *Driver) resolvePhases(targetPath, dest string, sources []string) ([]project.BuildPhase, error) {
	if targetPath != "" {
		target, err := d.loadTarget(targetPath)
		if err != nil {
			return nil, err
		}

		return target.Phases, nil
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w", ErrMissingSource)
	}

	bundle := BundleSpec{Root: dest, Resources: sources}

	return []project.BuildPhase{
		&project.CopyFilesBuildPhase{PhaseName: "CopyFiles", Specs: bundle.Specs()},
	}, nil
}

func (d *Driver) loadTarget(path string) (project.Target, error) {
	data, ok := d.FS.Read(path, 0, 0, false)
	if !ok {
		return project.Target{}, fmt.Errorf("%w: reading target description %s", ErrDestinationUnavailable, path)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return project.Target{}, fmt.Errorf("decoding target description %s: %w", path, err)
	}

	target, ok := project.DecodeTarget(decoded)
	if !ok {
		return project.Target{}, fmt.Errorf("%w: %s", ErrInvalidTarget, path)
	}

	return target, nil
}

func (d *Driver) writeManifest(dest string, entries []project.ManifestEntry) error {
	var b strings.Builder

	for _, e := range entries {
		b.WriteString(e.Source)
		b.WriteString(" -> ")
		b.WriteString(e.Destination)
		b.WriteString("\n")
	}

	if !d.FS.Write([]byte(b.String()), pathutil.Join(dest, manifestName)) {
		return fmt.Errorf("writing manifest to %s", dest)
	}

	return nil
}

func (d *Driver) runBuild(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("build", flag.ContinueOnError)
	sdkRoot := fset.String("sdk", d.SDKRoot, "SDK root to resolve build inputs against")

	var inputs sourceFlags
	fset.Var(&inputs, "input", "name to resolve against the SDK root (repeatable)")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("(driver-build) parsing flags: %w", err)
	}

	if !d.FS.IsDirectory(*sdkRoot) {
		slog.Warn("SDK root is not a directory; build inputs may fail to resolve.", "sdk", *sdkRoot)
	}

	resolved, ok := d.FS.ResolvePath(*sdkRoot)
	if !ok {
		slog.Warn("Could not resolve SDK root.", "sdk", *sdkRoot)

		return nil
	}

	slog.Info("Resolved SDK root.", "sdk", resolved)

	searchPaths := []string{
		resolved,
		pathutil.Join(resolved, "usr/bin"),
		pathutil.Join(resolved, "Library/Frameworks"),
	}

	for _, name := range inputs {
		if ctx.Err() != nil {
			return fmt.Errorf("(driver-build) %w", ctx.Err())
		}

		if path, ok := vfs.FindExecutable(d.FS, name, searchPaths); ok {
			slog.Info("Resolved build input as an executable.", "name", name, "path", path)

			continue
		}

		if path, ok := vfs.FindFile(d.FS, name, searchPaths); ok {
			slog.Info("Resolved build input.", "name", name, "path", path)

			continue
		}

		slog.Warn("Could not resolve build input.", "name", name, "sdk", resolved)
	}

	return nil
}
