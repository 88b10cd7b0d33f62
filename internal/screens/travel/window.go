// Package travel implements the base window: the party moving along the trail.
package travel

import (
	"fmt"
	"strings"

	"github.com/samdwyer/trailsim/internal/entity"
	"github.com/samdwyer/trailsim/internal/random"
	"github.com/samdwyer/trailsim/internal/sim"
	"github.com/samdwyer/trailsim/internal/window"
)

// Causes of death picked from when trail attrition strikes.
var Causes = []string{"dysentery", "cholera", "typhoid", "measles", "a snakebite", "exhaustion"}

// Window is the travel screen. It has no form most of the time and drives itself.
type Window struct {
	window.Base
	ctx *sim.Context

	// visited remembers graves already shown so each is only shown once per run.
	visited map[int]bool
	message string
}

// Factory returns the constructor registered for window.TypeTravel.
func Factory(ctx *sim.Context) window.Factory {
	return func(any) window.Window {
		return &Window{
			Base:    window.NewBase(window.TypeTravel, true),
			ctx:     ctx,
			visited: make(map[int]bool),
		}
	}
}

// Tick hands off to whatever needs the player's attention: a new party, the
// game over flow, or a grave at the current mile.
func (w *Window) Tick() {
	v := w.ctx.Vehicle
	switch {
	case v.PassengerCount() == 0:
		w.ctx.Windows.Add(window.TypeNewGame, nil)
	case v.LivingCount() == 0:
		w.SetForm(&gameFail{w: w})
	default:
		mile := v.Odometer()
		if _, ok := w.ctx.Graveyard.Find(mile); ok && !w.visited[mile] {
			w.visited[mile] = true
			w.ctx.Windows.Add(window.TypeTombstone, nil)
		}
	}
}

// Render shows the trail position and the travel menu.
func (w *Window) Render() string {
	v := w.ctx.Vehicle
	var b strings.Builder

	if w.message != "" {
		b.WriteString(w.message + "\n\n")
	}
	fmt.Fprintf(&b, "Mile %d of %d\n", v.Odometer(), w.ctx.Trail.Length())
	if i := w.ctx.Trail.CurrentIndex(); i >= 0 {
		fmt.Fprintf(&b, "Last landmark: %s\n", w.ctx.Trail.Locations[i].Name)
	}
	if next, ok := w.ctx.Trail.Next(); ok {
		fmt.Fprintf(&b, "Next landmark: %s (%d miles)\n", next.Name, next.Mile-v.Odometer())
	}
	fmt.Fprintf(&b, "Party: %s\n\n", strings.Join(v.Living(), ", "))

	if w.ctx.Trail.Finished() {
		b.WriteString("Your party has reached the end of the trail.\n1. Start a new journey")
		return b.String()
	}
	b.WriteString("1. Continue on the trail\n2. Check party status")
	return b.String()
}

// Input handles the travel menu.
func (w *Window) Input(line string) {
	switch strings.TrimSpace(line) {
	case "1":
		if w.ctx.Trail.Finished() {
			w.ctx.Restart()
			return
		}
		w.travel()
	case "2":
		w.SetForm(&partyStatus{w: w})
	}
}

// travel covers one leg of the trail.
func (w *Window) travel() {
	cfg := w.ctx.Travel
	v := w.ctx.Vehicle

	miles := w.ctx.Random.NextInt(cfg.MinMiles, cfg.MaxMiles)
	if next, ok := w.ctx.Trail.Next(); ok && v.Odometer()+miles > next.Mile {
		// Stop at landmarks rather than driving past them.
		miles = next.Mile - v.Odometer()
	}
	v.Advance(miles)
	w.message = fmt.Sprintf("You traveled %d miles.", miles)

	if i := w.ctx.Trail.Update(v.Odometer()); i >= 0 {
		w.message += fmt.Sprintf(" You have arrived at %s.", w.ctx.Trail.Locations[i].Name)
	}

	for _, name := range v.Wear(cfg.WearPerLeg, "exhaustion") {
		w.bury(name, "exhaustion")
	}

	if !w.ctx.Random.Chance(cfg.AttritionOneIn) {
		return
	}
	name, ok := random.PickOne(w.ctx.Random, v.Living())
	if !ok {
		return
	}
	cause, _ := random.PickOne(w.ctx.Random, Causes)
	v.Kill(name, cause)
	w.bury(name, cause)
}

// bury reports a death and leaves a grave at the current mile. When the whole
// party is gone the grave is composed by the player on the memorial screen instead.
func (w *Window) bury(name, cause string) {
	w.message += fmt.Sprintf("\n%s has died of %s.", name, cause)
	if w.ctx.Vehicle.LivingCount() > 0 {
		w.ctx.Graveyard.Add(entity.Tombstone{Name: name, Cause: cause, MileMarker: w.ctx.Vehicle.Odometer()})
	}
}
