// Package newgame implements the new-game wizard: four party names, each confirmed,
// then a profession for the party leader.
package newgame

import (
	"github.com/samdwyer/trailsim/internal/entity"
	"github.com/samdwyer/trailsim/internal/gamedata"
	"github.com/samdwyer/trailsim/internal/sim"
	"github.com/samdwyer/trailsim/internal/window"
)

// PartySize is the number of name slots the wizard fills.
const PartySize = 4

// UserData is the wizard's state. It lives as long as the window.
type UserData struct {
	Names      [PartySize]string
	Profession *gamedata.ProfessionDef
}

// Party returns the confirmed names in slot order, skipping empty slots.
func (d *UserData) Party() []string {
	names := make([]string, 0, PartySize)
	for _, n := range d.Names {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Window is the new-game wizard.
type Window struct {
	window.Base
	ctx  *sim.Context
	data *UserData
}

// Factory returns the constructor registered for window.TypeNewGame.
func Factory(ctx *sim.Context) window.Factory {
	return func(any) window.Window {
		return &Window{
			Base: window.NewBase(window.TypeNewGame, true),
			ctx:  ctx,
			data: &UserData{},
		}
	}
}

// Activate starts the wizard at the party leader's name.
func (w *Window) Activate() {
	w.SetForm(newInputName(w, 0))
}

// Data exposes the wizard's state.
func (w *Window) Data() *UserData { return w.data }

// nameStep moves to the name slot after index, or back to index itself when retrying.
// Past the last slot the party confirmation follows. Retrying past the last slot
// cannot come from a legitimate transition and panics.
func (w *Window) nameStep(index int, retrying bool) {
	next := index
	if !retrying {
		next++
	}

	switch {
	case next < PartySize:
		w.SetForm(newInputName(w, next))
	case !retrying:
		w.SetForm(window.NewDialog(&confirmParty{w: w}))
	default:
		panic("newgame: retry requested for name slot past the party size")
	}
}

// start puts the party in the vehicle and hands control back to the window beneath.
func (w *Window) start() {
	profession := entity.ProfessionBanker
	money := 0
	if def := w.data.Profession; def != nil {
		if p, ok := entity.ProfessionFromID(def.ID); ok {
			profession = p
		}
		money = def.Money
	}

	for i, name := range w.data.Party() {
		w.ctx.Vehicle.AddPerson(entity.NewPerson(name, profession, i == 0))
	}
	w.ctx.Vehicle.SetMoney(money)

	w.ClearForm()
	w.RemoveNextTick()
}
