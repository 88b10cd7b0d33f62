package travel

import (
	"fmt"
	"strings"

	"github.com/samdwyer/trailsim/internal/window"
)

// partyStatus lists every passenger. Any key returns to the travel menu.
type partyStatus struct {
	w *Window
}

func (f *partyStatus) Policy() window.InputPolicy { return window.PolicyConfirm }

func (f *partyStatus) Render() string {
	v := f.w.ctx.Vehicle
	var b strings.Builder
	fmt.Fprintf(&b, "Money: $%d\n", v.Money())
	for _, p := range v.Passengers() {
		status := fmt.Sprintf("%d/%d", p.HP, p.MaxHP)
		if !p.IsAlive() {
			status = "died of " + p.Cause
		}
		if p.Leader {
			fmt.Fprintf(&b, "%s (leader, %s): %s\n", p.Name, p.Profession, status)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", p.Name, status)
	}
	b.WriteString("\nPress ENTER to continue")
	return b.String()
}

func (f *partyStatus) Input(string) {
	f.w.ClearForm()
}

// gameFail runs once the whole party is dead. It takes no input: rendering it
// writes the leader's tombstone and brings up the memorial window.
type gameFail struct {
	w     *Window
	fired bool
}

func (f *gameFail) Policy() window.InputPolicy { return window.PolicySilent }

func (f *gameFail) Render() string {
	if f.fired {
		return ""
	}
	f.fired = true

	ctx := f.w.ctx
	stone := ctx.Graveyard.Temp()
	stone.MileMarker = ctx.Vehicle.Odometer()
	if leader, ok := ctx.Vehicle.Leader(); ok {
		stone.Name = leader.Name
		stone.Cause = leader.Cause
	}

	ctx.Windows.Add(window.TypeTombstone, nil)
	return ""
}

func (f *gameFail) Input(string) {}

var (
	_ window.Form = (*partyStatus)(nil)
	_ window.Form = (*gameFail)(nil)
)
