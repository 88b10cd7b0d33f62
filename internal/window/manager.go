package window

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/trailsim/internal/telemetry"
)

// Factory builds a window of one registered type from constructor arguments.
type Factory func(arg any) Window

// Manager owns the ordered stack of active windows. The last window is topmost:
// it is the only one ticked and the only one receiving input.
//
// The stack is only mutated by the Manager, at well-defined points: Add appends,
// and removal happens at the start of a Tick after a window flagged itself.
// That keeps a form that both handles input and asks for its own removal from
// ever seeing the stack change underneath it.
type Manager struct {
	factories map[Type]Factory
	windows   []Window
	tracer    trace.Tracer
}

// NewManager creates an empty manager with no registered window types.
func NewManager() *Manager {
	return &Manager{
		factories: make(map[Type]Factory),
		windows:   make([]Window, 0),
		tracer:    telemetry.Tracer("window"),
	}
}

// Register associates a window type with the factory that builds it.
func (m *Manager) Register(t Type, f Factory) {
	m.factories[t] = f
}

// Add builds a window of the given type and makes it topmost, then runs its
// PostCreate and Activate hooks. Adding an unregistered type is a programmer error and panics.
func (m *Manager) Add(t Type, arg any) Window {
	factory, ok := m.factories[t]
	if !ok {
		panic(fmt.Sprintf("window: no factory registered for window type %s", t))
	}

	w := factory(arg)
	m.windows = append(m.windows, w)

	_, span := m.tracer.Start(context.Background(), "window.add")
	span.SetAttributes(
		attribute.String("window.type", t.String()),
		attribute.String("window.id", w.ID().String()),
		attribute.Int("window.depth", len(m.windows)),
	)
	span.End()

	w.PostCreate()
	w.Activate()
	return w
}

// Tick advances the simulation one step.
//
// If the topmost window is flagged for removal it is removed, the window beneath
// gets its Added hook, and nothing else runs this step. Otherwise the topmost
// window's form is ticked, or the window itself when it has no form.
func (m *Manager) Tick(ctx context.Context) {
	top := m.Top()
	if top == nil {
		return
	}

	if top.ShouldRemove() {
		m.removeTop(ctx)
		if next := m.Top(); next != nil {
			next.Added()
		}
		return
	}

	if f := top.Form(); f != nil {
		if ticker, ok := f.(Ticker); ok {
			ticker.Tick()
		}
		return
	}
	top.Tick()
}

// RemoveTopNextTick flags the topmost window. It is removed on the next Tick, never immediately.
func (m *Manager) RemoveTopNextTick() {
	if top := m.Top(); top != nil {
		top.RemoveNextTick()
	}
}

// SendInput routes a completed line of input to the topmost window.
// Input is dropped when the window does not accept input or its form does not allow it.
func (m *Manager) SendInput(ctx context.Context, line string) {
	top := m.Top()
	if top == nil || !m.Policy().AllowsInput() {
		return
	}

	_, span := m.tracer.Start(ctx, "window.input")
	span.SetAttributes(
		attribute.String("window.type", top.Type().String()),
		attribute.Int("input.length", len(line)),
	)
	defer span.End()

	if f := top.Form(); f != nil {
		span.SetAttributes(attribute.String("form", fmt.Sprintf("%T", f)))
		f.Input(line)
		return
	}
	top.Input(line)
}

// Render returns the text of the topmost form, or of the topmost window when it has no form.
func (m *Manager) Render() string {
	top := m.Top()
	if top == nil {
		return ""
	}
	if f := top.Form(); f != nil {
		return f.Render()
	}
	return top.Render()
}

// Policy returns the input policy the driver should use for the topmost window.
func (m *Manager) Policy() InputPolicy {
	top := m.Top()
	if top == nil || !top.AcceptsInput() {
		return PolicySilent
	}
	if f := top.Form(); f != nil {
		return f.Policy()
	}
	return top.Policy()
}

// Top returns the topmost window, or nil when the stack is empty.
func (m *Manager) Top() Window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[len(m.windows)-1]
}

// Len returns the number of active windows.
func (m *Manager) Len() int { return len(m.windows) }

// Types returns the window types on the stack, bottom first.
func (m *Manager) Types() []Type {
	types := make([]Type, len(m.windows))
	for i, w := range m.windows {
		types[i] = w.Type()
	}
	return types
}

// Clear drops every window, topmost first. Used when the whole simulation restarts.
func (m *Manager) Clear() {
	for len(m.windows) > 0 {
		m.removeTop(context.Background())
	}
}

func (m *Manager) removeTop(ctx context.Context) {
	top := m.windows[len(m.windows)-1]
	m.windows[len(m.windows)-1] = nil
	m.windows = m.windows[:len(m.windows)-1]

	_, span := m.tracer.Start(ctx, "window.remove")
	span.SetAttributes(
		attribute.String("window.type", top.Type().String()),
		attribute.String("window.id", top.ID().String()),
		attribute.Int("window.depth", len(m.windows)),
	)
	span.End()

	top.Removed()
}
