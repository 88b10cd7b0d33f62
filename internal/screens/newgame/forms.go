package newgame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/trailsim/internal/random"
	"github.com/samdwyer/trailsim/internal/window"
)

var namePrompts = [PartySize]string{
	"Party leader name?",
	"Party member two name?",
	"Party member three name?",
	"Party member four name?",
}

// inputName asks for the name in one party slot.
type inputName struct {
	w     *Window
	index int
}

func newInputName(w *Window, index int) *inputName {
	return &inputName{w: w, index: index}
}

func (f *inputName) Policy() window.InputPolicy { return window.PolicyText }

func (f *inputName) Render() string { return namePrompts[f.index] }

// Input accepts any non-blank name. A blank line picks one of the default names,
// and stays on the prompt when there are none to pick from.
func (f *inputName) Input(line string) {
	name := strings.TrimSpace(line)
	if name == "" {
		var ok bool
		if name, ok = random.PickOne(f.w.ctx.Random, f.w.ctx.Names); !ok || name == "" {
			return
		}
	}
	f.w.SetForm(window.NewDialog(&confirmName{w: f.w, index: f.index, value: name}))
}

// confirmName asks whether the entered name is right before storing it.
type confirmName struct {
	w     *Window
	index int
	value string
}

func (d *confirmName) Prompt() string {
	return fmt.Sprintf("You entered %s for player slot %d.\nDoes this look correct? Y/N", d.value, d.index+1)
}

func (d *confirmName) Accept() {
	d.w.data.Names[d.index] = d.value
	d.w.nameStep(d.index, false)
}

func (d *confirmName) Reject() {
	d.w.nameStep(d.index, true)
}

// confirmParty lists the whole party with the leader marked.
type confirmParty struct {
	w *Window
}

func (d *confirmParty) Prompt() string {
	var b strings.Builder
	b.WriteString("Your Party Members:\n")
	for i, name := range d.w.data.Party() {
		fmt.Fprintf(&b, "%d). %s", i+1, name)
		if i == 0 {
			b.WriteString(" (leader)")
		}
		b.WriteString("\n")
	}
	b.WriteString("Does this look correct? Y/N")
	return b.String()
}

func (d *confirmParty) Accept() {
	d.w.SetForm(&selectProfession{w: d.w})
}

func (d *confirmParty) Reject() {
	d.w.data.Names = [PartySize]string{}
	d.w.SetForm(newInputName(d.w, 0))
}

// selectProfession picks the leader's profession with a single keystroke.
type selectProfession struct {
	w *Window
}

func (f *selectProfession) Policy() window.InputPolicy { return window.PolicyImmediate }

func (f *selectProfession) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "What profession is %s?\n", f.w.data.Names[0])
	for i, p := range f.w.ctx.Professions.All() {
		fmt.Fprintf(&b, "%d). %s\n", i+1, p.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Input ignores anything that is not a listed choice, so the menu is shown again.
func (f *selectProfession) Input(line string) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return
	}
	def, err := f.w.ctx.Professions.Choice(n)
	if err != nil {
		return
	}
	f.w.data.Profession = def
	f.w.SetForm(window.NewDialog(&confirmProfession{w: f.w}))
}

// confirmProfession asks whether the chosen profession is right, then starts the game.
type confirmProfession struct {
	w *Window
}

func (d *confirmProfession) Prompt() string {
	def := d.w.data.Profession
	return fmt.Sprintf("You selected %s.\n%s\nDoes this look correct? Y/N", def.Name, def.Description)
}

func (d *confirmProfession) Accept() {
	d.w.start()
}

func (d *confirmProfession) Reject() {
	d.w.data.Profession = nil
	d.w.SetForm(&selectProfession{w: d.w})
}

var (
	_ window.Form          = (*inputName)(nil)
	_ window.Form          = (*selectProfession)(nil)
	_ window.DialogHandler = (*confirmName)(nil)
	_ window.DialogHandler = (*confirmParty)(nil)
	_ window.DialogHandler = (*confirmProfession)(nil)
)
