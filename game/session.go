// Package game holds the driver-side state around a World: pause/run mode,
// cell painting, stagnation tracking and the status line every driver shows.
package game

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// State is the one-word summary shown on the status line
type State string

const (
	StatePaused   State = "Paused"
	StateRunning  State = "Running"
	StateStagnant State = "Stagnant"
	StateExtinct  State = "Extinct"
)

// Status is a snapshot of the session for display
type Status struct {
	Generation int
	Living     int
	Total      int
	Density    float64
	Births     int
	Deaths     int
	State      State
}

// String formats the status the way every driver prints it
func (s Status) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.Generation, s.Living, s.Density, s.State)
}

// Session owns a World on behalf of a single driver. It is not safe for
// concurrent use; drivers call it from one goroutine.
type Session struct {
	world  *model.World
	config utils.Config
	stats  *utils.Stats

	paused   bool
	history  model.History
	stagnant int
	lastStep time.Time
}

// NewSession validates cfg and builds the world it describes
func NewSession(cfg utils.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] invalid config")
	}

	world, err := model.NewWorld(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create world")
	}

	s := &Session{
		world:    world,
		config:   cfg,
		stats:    utils.NewStats(),
		paused:   cfg.StartPaused,
		lastStep: time.Now(),
	}
	if cfg.ShouldSeed() {
		world.Seed(cfg.Seed, cfg.RandomDensity, cfg.SeedPatterns)
	}
	s.history.Push(world.Hash())
	return s, nil
}

// World exposes the simulated world for rendering
func (s *Session) World() *model.World { return s.world }

// Stats returns the running statistics
func (s *Session) Stats() *utils.Stats { return s.stats }

// Paused reports whether the session is in editing mode
func (s *Session) Paused() bool { return s.paused }

// SetPaused switches between editing and running
func (s *Session) SetPaused(paused bool) {
	if s.paused && !paused {
		s.lastStep = time.Now()
	}
	s.paused = paused
}

// TogglePause flips between editing and running
func (s *Session) TogglePause() { s.SetPaused(!s.paused) }

// StagnantFor returns how many consecutive generations repeated a recent one
func (s *Session) StagnantFor() int { return s.stagnant }

// Tick advances one generation when running and reports whether it did
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	now := time.Now()
	s.advance(now.Sub(s.lastStep))
	s.lastStep = now
	return true
}

// StepOnce advances a single generation while paused. Manual steps leave the
// generation rate untouched.
func (s *Session) StepOnce() bool {
	if !s.paused {
		return false
	}
	s.advance(0)
	return true
}

// advance steps the world and records it in the history and stats.
// A zero elapsed keeps the last generation rate.
func (s *Session) advance(elapsed time.Duration) {
	s.world.Step()

	hash := s.world.Hash()
	if s.history.IsStagnant(hash) {
		s.stagnant++
	} else {
		s.stagnant = 0
	}
	s.history.Push(hash)

	births, deaths := s.world.LastChanges()
	s.stats.Update(s.world.Generation(), s.world.CountLivingCells(), births, deaths, elapsed)
}

// Paint sets the cell at index while paused. Indices outside the world and
// edits while running are ignored and reported as false.
func (s *Session) Paint(index int, alive bool) bool {
	if !s.paused || !s.world.Contains(index) {
		return false
	}
	if s.world.IsAlive(index) == alive {
		return false
	}
	s.world.SetCell(index, alive)
	s.edited()
	return true
}

// Toggle flips the cell at index while paused
func (s *Session) Toggle(index int) bool {
	if !s.paused || !s.world.Contains(index) {
		return false
	}
	s.world.ToggleCell(index)
	s.edited()
	return true
}

// Clear kills every cell
func (s *Session) Clear() {
	s.world.Clear()
	s.edited()
}

// Reseed rebuilds the starting life described by the config, or an empty
// world when the config asks for none
func (s *Session) Reseed() {
	if s.config.ShouldSeed() {
		s.world.Seed(s.config.Seed, s.config.RandomDensity, s.config.SeedPatterns)
	} else {
		s.world.Clear()
	}
	s.edited()
}

// edited drops stagnation tracking after a manual change
func (s *Session) edited() {
	s.history.Reset()
	s.history.Push(s.world.Hash())
	s.stagnant = 0
}

// Status summarizes the current generation
func (s *Session) Status() Status {
	var (
		living         = s.world.CountLivingCells()
		total          = s.world.Total()
		births, deaths = s.world.LastChanges()
	)

	state := StateRunning
	switch {
	case s.paused:
		state = StatePaused
	case living == 0:
		state = StateExtinct
	case s.stagnant > 0:
		state = StateStagnant
	}

	return Status{
		Generation: s.world.Generation(),
		Living:     living,
		Total:      total,
		Density:    float64(living) / float64(total) * 100,
		Births:     births,
		Deaths:     deaths,
		State:      state,
	}
}
