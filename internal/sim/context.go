// Package sim holds the explicit context every window and form is built with:
// the window stack, the long-lived modules, the random source and static game data.
package sim

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/trailsim/internal/entity"
	"github.com/samdwyer/trailsim/internal/gamedata"
	"github.com/samdwyer/trailsim/internal/module"
	"github.com/samdwyer/trailsim/internal/random"
	"github.com/samdwyer/trailsim/internal/telemetry"
	"github.com/samdwyer/trailsim/internal/window"
	"github.com/samdwyer/trailsim/internal/world"
)

// Archive persists committed tombstones outside the process.
type Archive interface {
	Append(t entity.Tombstone) error
}

// TravelConfig tunes the travel screen.
type TravelConfig struct {
	// MinMiles and MaxMiles bound the distance covered per "continue" (max exclusive).
	MinMiles int
	MaxMiles int
	// AttritionOneIn is the 1-in-N chance a living passenger dies on each leg. 0 disables it.
	AttritionOneIn int
	// WearPerLeg is the health every living passenger loses per leg.
	WearPerLeg int
}

// DefaultTravelConfig returns the travel settings used when nothing is configured.
func DefaultTravelConfig() TravelConfig {
	return TravelConfig{MinMiles: 10, MaxMiles: 30, AttritionOneIn: 6, WearPerLeg: 1}
}

// Context is shared by every window and form. It is created once per process.
type Context struct {
	Windows   *window.Manager
	Graveyard *module.Graveyard
	Vehicle   *module.Vehicle
	Trail     *world.Trail
	Random    *random.Source

	Names       []string
	Professions *gamedata.ProfessionRegistry

	// Archive is optional; nil disables persistence of new tombstones.
	Archive Archive
	Travel  TravelConfig

	// Entry is the window type the stack is reset to on Restart.
	Entry window.Type
}

// New builds a context with fresh modules over the given catalogue.
func New(rng *random.Source, catalogue *gamedata.Catalogue) *Context {
	return &Context{
		Windows:     window.NewManager(),
		Graveyard:   module.NewGraveyard(),
		Vehicle:     module.NewVehicle(),
		Trail:       world.NewTrail(catalogue.Landmarks),
		Random:      rng,
		Names:       catalogue.DefaultNames,
		Professions: catalogue.Professions,
		Travel:      DefaultTravelConfig(),
		Entry:       window.TypeTravel,
	}
}

// Modules returns every long-lived module in reset order.
func (c *Context) Modules() []module.Module {
	return []module.Module{c.Graveyard, c.Vehicle, c.Trail}
}

// Start pushes the entry window onto an empty stack.
func (c *Context) Start() window.Window {
	return c.Windows.Add(c.Entry, nil)
}

// Restart reinitializes the whole simulation: every module is reset, the window
// stack is emptied and the entry window is added again.
func (c *Context) Restart() {
	_, span := telemetry.Tracer("sim").Start(context.Background(), "sim.restart")
	defer span.End()

	span.SetAttributes(
		attribute.Int("graveyard.size", c.Graveyard.Len()),
		attribute.Int("vehicle.odometer", c.Vehicle.Odometer()),
		attribute.Int("windows.depth", c.Windows.Len()),
	)

	for _, m := range c.Modules() {
		m.Reset()
	}
	c.Windows.Clear()
	c.Start()
}

// ArchiveTombstone hands a committed tombstone to the archive, if one is set.
func (c *Context) ArchiveTombstone(t entity.Tombstone) error {
	if c.Archive == nil {
		return nil
	}
	return c.Archive.Append(t)
}
