package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/tui"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("configuration: %+v", err)
	}

	if err = run(config); err != nil {
		log.Fatalf("%s driver: %+v", config.Driver, err)
	}
}

func run(config utils.Config) error {
	session, err := game.NewSession(config)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Driver {
	case utils.DriverHeadless:
		err = runHeadless(ctx, session, config, os.Stdout)
	case utils.DriverTerminal:
		err = tui.Run(ctx, session, config.FrameRate)
	case utils.DriverWindow:
		err = window.Run(session, config)
	}
	if err != nil {
		return err
	}

	displayFinalStats(os.Stdout, session)
	return nil
}

func displayFinalStats(out io.Writer, session *game.Session) {
	stats := session.Stats()
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		session.World().Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
