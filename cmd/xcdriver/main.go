package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/forgebuild/xcfs/internal/configuration"
	"github.com/forgebuild/xcfs/internal/driver"
	"github.com/forgebuild/xcfs/internal/ui"
	"github.com/forgebuild/xcfs/internal/vfs/physical"
)

const (
	stackTraceBufMax = 1 << 24
	envFileName      = ".env"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	uiEnabled  = flag.Bool("ui", true, "enable the terminal progress UI")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
	buildlog   = flag.String("buildlog", "", "also write build logs as JSON to this file")
)

// setupLogging points the default logger at manager. It's called once at
// startup and again after the UI tears down, so the fallback terminal
// output survives the UI taking over stdout in between.
func setupLogging(manager *SlogManager) {
	slog.SetDefault(slog.New(manager))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()

	sigChan3 := make(chan os.Signal, 1)
	signal.Notify(sigChan3, syscall.SIGUSR2)
	go func() {
		for range sigChan3 {
			runtime.GC()
		}
	}()
}

func runDriver(ctx context.Context, wg *sync.WaitGroup, d *driver.Driver, uiHandler *ui.Handler, args []string) {
	defer wg.Done()

	if err := d.Run(ctx, args); err != nil {
		slog.Error("Run failed.", "err", err)
		ExitCode = 1
	}

	if uiHandler != nil {
		uiHandler.Stop()
	}
}

func runUI(ctx context.Context, cancel context.CancelFunc, wg *sync.WaitGroup, manager *SlogManager, uiHandler *ui.Handler) {
	defer wg.Done()

	defer setupLogging(manager)

	if err := uiHandler.Launch(ctx, cancel); err != nil {
		slog.Error("UI failure: falling back to terminal.", "err", err)
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	logManager, closeLog, err := newLogManager(*buildlog)
	if err != nil {
		slog.Error("Failed to set up logging.", "err", err)

		ExitCode = 1

		return
	}
	defer closeLog()

	setupLogging(logManager)
	setupSignalHandlers(cancel)

	memObserver := newMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := NewCPUProfiler(ctx, cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := NewAllocProfiler(ctx, memprofile)
	defer allocProfiler.Stop()

	cfg := configuration.NewHandler()
	if err := cfg.Load(envFileName); err != nil {
		slog.Error("Failed to load configuration.", "err", err)

		return
	}

	fs := physical.New()
	d := driver.New(fs, cfg.DestRoot(), cfg.SDKRoot())

	var uiHandler *ui.Handler
	if uiEnabled != nil && *uiEnabled {
		uiHandler = ui.NewHandler(d.ActivePhase)
	}

	var wg sync.WaitGroup

	if uiHandler != nil {
		wg.Add(1)
		go runUI(ctx, cancel, &wg, logManager, uiHandler)
	}

	wg.Add(1)
	go runDriver(ctx, &wg, d, uiHandler, flag.Args())

	wg.Wait()
}
