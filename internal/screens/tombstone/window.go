// Package tombstone implements the memorial window. It shows either a grave found
// along the trail or, when the whole party has died, the party's own death notice.
package tombstone

import (
	"log"

	"github.com/samdwyer/trailsim/internal/sim"
	"github.com/samdwyer/trailsim/internal/window"
)

// Window is the memorial screen.
type Window struct {
	window.Base
	ctx *sim.Context
}

// Factory returns the constructor registered for window.TypeTombstone.
func Factory(ctx *sim.Context) window.Factory {
	return func(any) window.Window {
		return &Window{
			Base: window.NewBase(window.TypeTombstone, true),
			ctx:  ctx,
		}
	}
}

// Activate picks the flow: a dead party first gets to write an epitaph.
func (w *Window) Activate() {
	if w.partyDead() {
		w.SetForm(window.NewDialog(&epitaphQuestion{w: w}))
		return
	}
	w.SetForm(&view{w: w})
}

func (w *Window) partyDead() bool {
	return w.ctx.Vehicle.LivingCount() == 0
}

// finish leaves the memorial. For a dead party the tombstone is committed and
// the grave kept at that mile is archived, then the whole simulation starts over.
func (w *Window) finish() {
	if !w.partyDead() {
		w.RemoveNextTick()
		return
	}

	g := w.ctx.Graveyard
	if g.HasTemp() {
		g.Add(*g.Temp())
		// An earlier grave at the same mile wins; archive what the graveyard kept.
		stone, _ := g.Find(g.Temp().MileMarker)
		if err := w.ctx.ArchiveTombstone(stone); err != nil {
			log.Printf("Warning: failed to archive tombstone for %s: %v", stone.Name, err)
		}
	}
	g.ClearTemp()
	w.ctx.Restart()
}
