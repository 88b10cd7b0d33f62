package tombstone

import (
	"fmt"
	"strings"

	"github.com/samdwyer/trailsim/internal/window"
)

// epitaphQuestion offers the player the chance to write an epitaph.
type epitaphQuestion struct {
	w *Window
}

func (d *epitaphQuestion) Prompt() string {
	return fmt.Sprintf("Here lies %s.\nWould you like to write an epitaph? Y/N", d.w.ctx.Graveyard.Temp().Name)
}

func (d *epitaphQuestion) Accept() { d.w.SetForm(&epitaphInput{w: d.w}) }
func (d *epitaphQuestion) Reject() { d.w.SetForm(&view{w: d.w}) }

// epitaphInput takes the epitaph text. A blank line means no epitaph.
type epitaphInput struct {
	w *Window
}

func (f *epitaphInput) Policy() window.InputPolicy { return window.PolicyText }

func (f *epitaphInput) Render() string { return "What would you like your epitaph to say?" }

func (f *epitaphInput) Input(line string) {
	text := strings.TrimSpace(line)
	if text == "" {
		f.w.ctx.Graveyard.Temp().Epitaph = ""
		f.w.SetForm(&view{w: f.w})
		return
	}
	f.w.ctx.Graveyard.Temp().Epitaph = text
	f.w.SetForm(window.NewDialog(&epitaphConfirm{w: f.w}))
}

// epitaphConfirm shows the epitaph back before it is carved.
type epitaphConfirm struct {
	w *Window
}

func (d *epitaphConfirm) Prompt() string {
	return fmt.Sprintf("Your epitaph will read:\n%q\nDoes this look correct? Y/N", d.w.ctx.Graveyard.Temp().Epitaph)
}

func (d *epitaphConfirm) Accept() { d.w.SetForm(&view{w: d.w}) }

func (d *epitaphConfirm) Reject() {
	d.w.ctx.Graveyard.Temp().Epitaph = ""
	d.w.SetForm(&epitaphInput{w: d.w})
}

// view shows the tombstone. Confirming leaves the memorial.
type view struct {
	w *Window
}

func (f *view) Policy() window.InputPolicy { return window.PolicyConfirm }

func (f *view) Render() string {
	ctx := f.w.ctx
	var b strings.Builder

	if f.w.partyDead() {
		b.WriteString(ctx.Graveyard.Temp().String())
		b.WriteString("\n\nAll the members of your party have died.")
	} else if stone, ok := ctx.Graveyard.Find(ctx.Vehicle.Odometer()); ok {
		b.WriteString(stone.String())
	} else {
		fmt.Fprintf(&b, "There is no marker at mile %d.", ctx.Vehicle.Odometer())
	}

	b.WriteString("\n\nPress ENTER to continue")
	return b.String()
}

func (f *view) Input(string) { f.w.finish() }

var (
	_ window.Form          = (*epitaphInput)(nil)
	_ window.Form          = (*view)(nil)
	_ window.DialogHandler = (*epitaphQuestion)(nil)
	_ window.DialogHandler = (*epitaphConfirm)(nil)
)
