package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/lumipallolabs/liveprops/internal/config"
	"github.com/lumipallolabs/liveprops/internal/core"
	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/monitor"
	"github.com/lumipallolabs/liveprops/internal/scanner"
	"github.com/lumipallolabs/liveprops/internal/selection"
	"github.com/lumipallolabs/liveprops/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Enable CPU profiling if CPUPROFILE env var is set
	if cpuProfile := os.Getenv("CPUPROFILE"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", cpuProfile)
	}

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	logging.Debug.Printf("[Main] liveprops %s, source %s, config %q", version, cfg.Source, cfg.File)

	src, wake, stopWatch, err := openSource(cfg)
	if err != nil {
		return err
	}
	if stopWatch != nil {
		defer stopWatch()
	}

	sink := ui.NewProgramSink()
	defer sink.Close()

	walker := scanner.NewWalker(cfg.ScannerOptions())
	sup := core.NewSupervisor(walker, sink, core.WithPulseInterval(cfg.PulseInterval))

	monOpts := []monitor.Option{
		monitor.WithPollInterval(cfg.PollInterval),
		monitor.WithRetryInterval(cfg.RetryInterval),
	}
	if wake != nil {
		monOpts = append(monOpts, monitor.WithWake(wake))
	}
	mon := monitor.New(src, sink, monOpts...)

	p := tea.NewProgram(
		ui.NewApp(sup, version, cfg.Source),
		tea.WithAltScreen(),
	)
	sink.Attach(p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := mon.Run(gctx)
		if err != nil {
			// The panel keeps running without live updates
			sink.Post(core.MonitorStoppedEvent{Err: err})
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		defer mon.Stop()

		_, err := p.Run()
		sup.Stop()
		return err
	})

	err = g.Wait()
	sup.Wait()
	return err
}

// openSource builds the configured selection source. The file source also
// returns a wake channel that fires when the selection file changes.
func openSource(cfg *config.Config) (selection.Source, <-chan struct{}, func(), error) {
	switch cfg.Source {
	case config.SourceStatic:
		src, err := selection.NewStaticSource(cfg.Paths...)
		return src, nil, nil, err

	case config.SourceFinder:
		src, err := selection.NewFinderSource()
		return src, nil, nil, err

	default:
		src := selection.NewFileSource(cfg.SelectionFile)
		wake, stop, err := src.Watch()
		if err != nil {
			// Polling alone still picks up changes
			logging.Monitor.Printf("[Main] not watching %s: %v", cfg.SelectionFile, err)
			return src, nil, nil, nil
		}
		return src, wake, stop, nil
	}
}
