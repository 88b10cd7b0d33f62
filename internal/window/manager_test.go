package window

import (
	"context"
	"strings"
	"testing"
)

// fakeWindow records hook calls and input so tests can assert routing.
type fakeWindow struct {
	Base
	name   string
	log    *[]string
	inputs []string
	ticks  int
}

func (w *fakeWindow) record(event string) {
	*w.log = append(*w.log, w.name+"."+event)
}

func (w *fakeWindow) Tick()             { w.ticks++ }
func (w *fakeWindow) Render() string    { return "window " + w.name }
func (w *fakeWindow) Input(line string) { w.inputs = append(w.inputs, line) }
func (w *fakeWindow) PostCreate()       { w.record("post_create") }
func (w *fakeWindow) Activate()         { w.record("activate") }
func (w *fakeWindow) Added()            { w.record("added") }
func (w *fakeWindow) Removed()          { w.record("removed") }

// fakeForm is a minimal form with a configurable policy.
type fakeForm struct {
	policy InputPolicy
	inputs []string
	ticks  int
	text   string
}

func (f *fakeForm) Policy() InputPolicy { return f.policy }
func (f *fakeForm) Render() string      { return f.text }
func (f *fakeForm) Input(line string)   { f.inputs = append(f.inputs, line) }

type tickingForm struct {
	fakeForm
}

func (f *tickingForm) Tick() { f.ticks++ }

type args struct {
	name         string
	acceptsInput bool
}

func newTestManager(log *[]string) *Manager {
	m := NewManager()
	factory := func(kind Type) Factory {
		return func(arg any) Window {
			a := arg.(args)
			return &fakeWindow{Base: NewBase(kind, a.acceptsInput), name: a.name, log: log}
		}
	}
	m.Register(TypeTravel, factory(TypeTravel))
	m.Register(TypeNewGame, factory(TypeNewGame))
	m.Register(TypeTombstone, factory(TypeTombstone))
	return m
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		kind     Type
		expected string
	}{
		{TypeTravel, "travel"},
		{TypeNewGame, "new_game"},
		{TypeTombstone, "tombstone"},
		{Type(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Type(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestAddRunsHooksInOrder(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	w := m.Add(TypeTravel, args{name: "a", acceptsInput: true})

	if m.Top() != w {
		t.Error("added window should be topmost")
	}
	want := []string{"a.post_create", "a.activate"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("hooks = %v, want %v", log, want)
	}
	if w.ID().String() == "" {
		t.Error("window should have an instance ID")
	}
}

func TestAddUnregisteredTypePanics(t *testing.T) {
	m := NewManager()

	defer func() {
		if recover() == nil {
			t.Error("Add of an unregistered type should panic")
		}
	}()
	m.Add(TypeTombstone, nil)
}

func TestTickEmptyIsNoop(t *testing.T) {
	m := NewManager()
	m.Tick(context.Background())
	m.SendInput(context.Background(), "ignored")
	m.RemoveTopNextTick()
	if m.Render() != "" || m.Len() != 0 {
		t.Error("empty manager should render nothing and stay empty")
	}
	if m.Policy() != PolicySilent {
		t.Errorf("empty manager Policy() = %v, want silent", m.Policy())
	}
}

func TestTickOnlyTopmost(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	bottom := m.Add(TypeTravel, args{name: "bottom", acceptsInput: true}).(*fakeWindow)
	top := m.Add(TypeNewGame, args{name: "top", acceptsInput: true}).(*fakeWindow)

	m.Tick(ctx)
	m.Tick(ctx)

	if top.ticks != 2 {
		t.Errorf("topmost ticks = %d, want 2", top.ticks)
	}
	if bottom.ticks != 0 {
		t.Errorf("bottom ticks = %d, want 0", bottom.ticks)
	}
}

func TestTickDelegatesToForm(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	w := m.Add(TypeTravel, args{name: "w", acceptsInput: true}).(*fakeWindow)
	form := &tickingForm{}
	w.SetForm(form)

	m.Tick(ctx)
	if form.ticks != 1 || w.ticks != 0 {
		t.Errorf("form ticks = %d, window ticks = %d; want 1, 0", form.ticks, w.ticks)
	}

	// A form without Tick swallows the step; the window's own logic does not run.
	w.SetForm(&fakeForm{})
	m.Tick(ctx)
	if w.ticks != 0 {
		t.Errorf("window ticked while it had a form: %d", w.ticks)
	}

	w.ClearForm()
	m.Tick(ctx)
	if w.ticks != 1 {
		t.Errorf("window ticks after ClearForm = %d, want 1", w.ticks)
	}
}

func TestRemovalIsDeferredOneTick(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	bottom := m.Add(TypeTravel, args{name: "bottom", acceptsInput: true}).(*fakeWindow)
	top := m.Add(TypeTombstone, args{name: "top", acceptsInput: true}).(*fakeWindow)
	log = nil

	// Tick N: the window flags itself while it is being ticked.
	m.Tick(ctx)
	top.RemoveNextTick()
	if m.Top() != top {
		t.Fatal("flagged window must stay topmost until the next tick")
	}

	// Tick N+1: removal consumes the whole tick.
	m.Tick(ctx)
	if m.Top() != bottom {
		t.Fatal("flagged window should be gone after the next tick")
	}
	if bottom.ticks != 0 {
		t.Errorf("removal tick also ticked the window beneath: %d", bottom.ticks)
	}
	want := []string{"top.removed", "bottom.added"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("hooks = %v, want %v", log, want)
	}

	m.Tick(ctx)
	if bottom.ticks != 1 {
		t.Errorf("bottom ticks after removal = %d, want 1", bottom.ticks)
	}
}

func TestAtMostOneRemovalPerTick(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	m.Add(TypeTravel, args{name: "a", acceptsInput: true})
	b := m.Add(TypeNewGame, args{name: "b", acceptsInput: true})
	c := m.Add(TypeTombstone, args{name: "c", acceptsInput: true})
	b.RemoveNextTick()
	c.RemoveNextTick()

	for i, wantLen := range []int{2, 1, 1} {
		before := m.Len()
		m.Tick(ctx)
		if before-m.Len() > 1 {
			t.Fatalf("tick %d removed %d windows", i, before-m.Len())
		}
		if m.Len() != wantLen {
			t.Errorf("after tick %d Len() = %d, want %d", i, m.Len(), wantLen)
		}
	}
}

func TestRemoveTopNextTick(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	m.Add(TypeTravel, args{name: "a", acceptsInput: true})
	top := m.Add(TypeTombstone, args{name: "b", acceptsInput: true})

	m.RemoveTopNextTick()
	if !top.ShouldRemove() || m.Len() != 2 {
		t.Fatal("RemoveTopNextTick should only flag the topmost window")
	}
	m.Tick(context.Background())
	if m.Len() != 1 || m.Top().Type() != TypeTravel {
		t.Errorf("stack after removal = %v", m.Types())
	}
}

func TestSendInputRouting(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	w := m.Add(TypeTravel, args{name: "w", acceptsInput: true}).(*fakeWindow)

	m.SendInput(ctx, "to window")
	if len(w.inputs) != 1 || w.inputs[0] != "to window" {
		t.Errorf("window inputs = %v", w.inputs)
	}

	form := &fakeForm{policy: PolicyText}
	w.SetForm(form)
	m.SendInput(ctx, "to form")
	if len(form.inputs) != 1 || form.inputs[0] != "to form" {
		t.Errorf("form inputs = %v", form.inputs)
	}
	if len(w.inputs) != 1 {
		t.Errorf("window received input while it had a form: %v", w.inputs)
	}
}

func TestSendInputDroppedWhenWindowRejectsInput(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	ctx := context.Background()

	w := m.Add(TypeTravel, args{name: "mute", acceptsInput: false}).(*fakeWindow)
	form := &fakeForm{policy: PolicyText, text: "prompt"}
	w.SetForm(form)

	beforeRender := m.Render()
	beforeForm := w.Form()

	m.SendInput(ctx, "hello")

	if len(form.inputs) != 0 || len(w.inputs) != 0 {
		t.Error("input reached a window that does not accept input")
	}
	if w.Form() != beforeForm || m.Render() != beforeRender || w.ShouldRemove() {
		t.Error("dropped input changed window state")
	}
	if m.Policy() != PolicySilent {
		t.Errorf("Policy() = %v, want silent", m.Policy())
	}
}

func TestSendInputDroppedForSilentForm(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	w := m.Add(TypeTravel, args{name: "w", acceptsInput: true})
	form := &fakeForm{policy: PolicySilent}
	w.SetForm(form)

	m.SendInput(context.Background(), "x")
	if len(form.inputs) != 0 {
		t.Errorf("silent form received input: %v", form.inputs)
	}
}

func TestRenderTopmost(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	m.Add(TypeTravel, args{name: "a", acceptsInput: true})
	b := m.Add(TypeNewGame, args{name: "b", acceptsInput: true})

	if got := m.Render(); got != "window b" {
		t.Errorf("Render() = %q, want %q", got, "window b")
	}
	b.SetForm(&fakeForm{text: "form text"})
	if got := m.Render(); got != "form text" {
		t.Errorf("Render() = %q, want %q", got, "form text")
	}
}

func TestPolicyFollowsFormThenWindow(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	w := m.Add(TypeTravel, args{name: "a", acceptsInput: true})
	if m.Policy() != PolicyText {
		t.Errorf("formless window Policy() = %v, want text", m.Policy())
	}
	w.SetForm(&fakeForm{policy: PolicyImmediate})
	if m.Policy() != PolicyImmediate {
		t.Errorf("Policy() = %v, want immediate", m.Policy())
	}
}

func TestClear(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	m.Add(TypeTravel, args{name: "a", acceptsInput: true})
	m.Add(TypeNewGame, args{name: "b", acceptsInput: true})
	log = nil

	m.Clear()

	if m.Len() != 0 || m.Top() != nil {
		t.Errorf("Clear() left %d windows", m.Len())
	}
	want := []string{"b.removed", "a.removed"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("hooks = %v, want %v", log, want)
	}
}

func TestTypes(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	m.Add(TypeTravel, args{name: "a"})
	m.Add(TypeTombstone, args{name: "b"})

	types := m.Types()
	if len(types) != 2 || types[0] != TypeTravel || types[1] != TypeTombstone {
		t.Errorf("Types() = %v", types)
	}
}
