package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func newFlagSet(config *utils.Config, path *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(path, "config", defaultConfigFile, "JSON configuration file")
	config.Bind(fs)
	return fs
}

// loadConfig reads the config file named by -config, then applies the
// remaining flags on top of it
func loadConfig(args []string, output io.Writer) (utils.Config, error) {
	var (
		path  string
		probe = utils.DefaultConfig()
	)
	if err := newFlagSet(&probe, &path, output).Parse(args); err != nil {
		return probe, err
	}

	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Fprintf(output, "Using default configuration (%s not found)\n", path)
		config = utils.DefaultConfig()
	}

	if err = newFlagSet(&config, &path, output).Parse(args); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, world *model.World) {
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		world.Width(), world.Height(), world.CountLivingCells())
	if config.MaxGenerations > 0 {
		fmt.Fprintf(out, "Running %d generations, press Ctrl+C to stop\n", config.MaxGenerations)
	} else {
		fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	}
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, status game.Status, stats *utils.Stats) {
	fmt.Fprintln(out, status.String())
	fmt.Fprintf(out, "Births: %d | Deaths: %d | Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		status.Births, status.Deaths, stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// checkStopConditions determines if a headless run should end
func checkStopConditions(status game.Status, stagnantCount int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && status.Generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if status.Living == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runHeadless steps the session on a ticker and prints every generation to
// out until a stop condition is met or ctx is cancelled
func runHeadless(ctx context.Context, session *game.Session, config utils.Config, out io.Writer) error {
	renderer := model.NewTextRenderer()
	session.SetPaused(false)
	displayGameInfo(out, config, session.World())

	var tick <-chan time.Time
	if config.FrameRate > 0 {
		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		status := session.Status()
		displayGameStatus(out, status, session.Stats())
		if err := renderer.Display(out, session.World()); err != nil {
			return errors.Wrap(err, "[runHeadless] failed to render world")
		}
		fmt.Fprintln(out)

		if stop, reason := checkStopConditions(status, session.StagnantFor(), config); stop {
			fmt.Fprintf(out, "Stopping: %s\n", reason)
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				fmt.Fprintln(out, "Shutting down gracefully...")
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			fmt.Fprintln(out, "Shutting down gracefully...")
			return nil
		}

		session.Tick()
	}
}
