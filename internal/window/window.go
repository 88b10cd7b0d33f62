package window

import "github.com/google/uuid"

// Window is a top-level mode: zero or one current form, mode-scoped data, and lifecycle hooks.
//
// Only the topmost window is ticked and receives input. When it has a form the form
// handles input; otherwise the window's own Tick, Render and Input run.
type Window interface {
	Type() Type
	ID() uuid.UUID

	// AcceptsInput reports whether input is routed to this window at all.
	AcceptsInput() bool
	// Policy is the input policy used while the window has no form.
	Policy() InputPolicy

	Form() Form
	SetForm(f Form)
	ClearForm()

	ShouldRemove() bool
	RemoveNextTick()

	Tick()
	Render() string
	Input(line string)

	// PostCreate runs right after the window is pushed onto the stack.
	PostCreate()
	// Activate runs after PostCreate.
	Activate()
	// Added runs when the window above this one is removed and this one is topmost again.
	Added()
	// Removed runs when the Manager drops the window.
	Removed()
}

// Base implements the bookkeeping every window shares. Concrete windows embed it
// and override Tick, Render, Input and the hooks they need.
type Base struct {
	kind         Type
	id           uuid.UUID
	acceptsInput bool
	form         Form
	shouldRemove bool
}

// NewBase creates the shared window state.
func NewBase(kind Type, acceptsInput bool) Base {
	return Base{
		kind:         kind,
		id:           uuid.New(),
		acceptsInput: acceptsInput,
	}
}

// Type returns the window's kind.
func (b *Base) Type() Type { return b.kind }

// ID returns the window instance identifier.
func (b *Base) ID() uuid.UUID { return b.id }

// AcceptsInput reports whether input is routed to this window.
func (b *Base) AcceptsInput() bool { return b.acceptsInput }

// Policy defaults to free text submitted with Enter.
func (b *Base) Policy() InputPolicy { return PolicyText }

// Form returns the current form, or nil.
func (b *Base) Form() Form { return b.form }

// SetForm replaces the current form.
func (b *Base) SetForm(f Form) { b.form = f }

// ClearForm hands control back to the window itself.
func (b *Base) ClearForm() { b.form = nil }

// ShouldRemove reports whether the window is waiting to be removed.
func (b *Base) ShouldRemove() bool { return b.shouldRemove }

// RemoveNextTick flags the window; the Manager removes it on its next Tick.
func (b *Base) RemoveNextTick() { b.shouldRemove = true }

func (b *Base) Tick()             {}
func (b *Base) Render() string    { return "" }
func (b *Base) Input(line string) {}
func (b *Base) PostCreate()       {}
func (b *Base) Activate()         {}
func (b *Base) Added()            {}
func (b *Base) Removed()          {}
