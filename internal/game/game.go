// Package game builds the simulation context, registers every window and runs the driver loop.
package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/trailsim/internal/config"
	"github.com/samdwyer/trailsim/internal/gamedata"
	"github.com/samdwyer/trailsim/internal/random"
	"github.com/samdwyer/trailsim/internal/save"
	"github.com/samdwyer/trailsim/internal/screens/newgame"
	"github.com/samdwyer/trailsim/internal/screens/tombstone"
	"github.com/samdwyer/trailsim/internal/screens/travel"
	"github.com/samdwyer/trailsim/internal/sim"
	"github.com/samdwyer/trailsim/internal/telemetry"
	"github.com/samdwyer/trailsim/internal/ui"
	"github.com/samdwyer/trailsim/internal/window"
)

// Game owns the simulation and, when running interactively, the terminal.
type Game struct {
	cfg     config.Config
	sim     *sim.Context
	archive *save.Archive
	runID   uuid.UUID
	tracer  trace.Tracer

	screen   *ui.Screen
	renderer *ui.Renderer
	editor   ui.LineEditor
	running  bool
}

// New creates a game from configuration. Archived tombstones from earlier runs
// are placed in the graveyard before the entry window is added.
//
// runID tags the game's spans; telemetry should already be set up with the same ID.
func New(ctx context.Context, cfg config.Config, runID uuid.UUID) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		runID:   runID,
		tracer:  telemetry.Tracer("game"),
		archive: save.NewArchive(cfg.Save.Path),
	}

	_, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	catalogue, err := gamedata.LoadCatalogue()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	s := sim.New(random.New(cfg.Seed), catalogue)
	s.Archive = g.archive
	s.Travel = sim.TravelConfig{
		MinMiles:       cfg.Travel.MinMiles,
		MaxMiles:       cfg.Travel.MaxMiles,
		AttritionOneIn: cfg.Travel.AttritionOneIn,
		WearPerLeg:     cfg.Travel.WearPerLeg,
	}
	s.Windows.Register(window.TypeTravel, travel.Factory(s))
	s.Windows.Register(window.TypeNewGame, newgame.Factory(s))
	s.Windows.Register(window.TypeTombstone, tombstone.Factory(s))
	g.sim = s

	stones, err := g.archive.Load()
	if err != nil {
		log.Printf("Warning: tombstone archive not loaded: %v", err)
	}
	for _, t := range stones {
		s.Graveyard.Add(t)
	}

	s.Start()

	span.SetAttributes(
		attribute.String("run.id", g.runID.String()),
		attribute.Int("graveyard.size", s.Graveyard.Len()),
		attribute.Int("trail.length", s.Trail.Length()),
		attribute.Int64("seed", cfg.Seed),
	)
	return g, nil
}

// Sim returns the simulation context.
func (g *Game) Sim() *sim.Context { return g.sim }

// RunID identifies this process's play session.
func (g *Game) RunID() uuid.UUID { return g.runID }

// Step advances the simulation one tick.
func (g *Game) Step(ctx context.Context) {
	g.sim.Windows.Tick(ctx)
}

// Send delivers a completed line of input to the topmost window.
func (g *Game) Send(ctx context.Context, line string) {
	g.sim.Windows.SendInput(ctx, line)
}

// Frame returns the text of the topmost window.
func (g *Game) Frame() string {
	return g.sim.Windows.Render()
}

// Run opens the terminal and runs the driver loop until the player quits.
// The simulation ticks on a timer so silent forms advance without input.
func (g *Game) Run(ctx context.Context) error {
	theme, err := ui.ParseTheme(g.cfg.UI.Foreground, g.cfg.UI.Background)
	if err != nil {
		log.Printf("Warning: invalid theme, using default: %v", err)
		theme = ui.DefaultTheme
	}

	screen, err := ui.NewScreen(theme)
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	g.running = true

	quit := make(chan struct{})
	events := screen.Events(quit)
	ticker := time.NewTicker(time.Duration(g.cfg.UI.TickMS) * time.Millisecond)
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case <-ticker.C:
			g.Step(ctx)
			g.draw()
		case ev, ok := <-events:
			if !ok {
				g.running = false
				continue
			}
			g.handleEvent(ctx, ev)
			g.draw()
		}
	}

	g.Close()
	close(quit)
	return nil
}

func (g *Game) draw() {
	text := g.Frame()
	g.renderer.Render(text, g.editor.Buffer(), g.sim.Windows.Policy())
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			g.running = false
			return
		}
		if line, done := g.editor.HandleKey(ev, g.sim.Windows.Policy()); done {
			g.Send(ctx, line)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
