package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/trailsim/internal/window"
)

// LineEditor turns key events into input lines according to the topmost form's policy.
type LineEditor struct {
	buf []rune
}

// Buffer returns the text typed so far.
func (e *LineEditor) Buffer() string { return string(e.buf) }

// Reset discards the typed text.
func (e *LineEditor) Reset() { e.buf = e.buf[:0] }

// HandleKey applies one key event. It returns the line to dispatch and true when
// the policy says the input is complete.
//
//   - silent: every key is ignored
//   - confirm: nothing is buffered, Enter dispatches an empty line
//   - text: runes are buffered, Enter dispatches the buffer
//   - immediate: each rune is dispatched as soon as it is typed
func (e *LineEditor) HandleKey(ev *tcell.EventKey, policy window.InputPolicy) (string, bool) {
	if !policy.AllowsInput() {
		e.Reset()
		return "", false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		line := ""
		if policy.FillsBuffer() {
			line = e.Buffer()
		}
		e.Reset()
		return line, true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}

	case tcell.KeyRune:
		if !policy.FillsBuffer() {
			return "", false
		}
		if policy.Immediate() {
			e.Reset()
			return string(ev.Rune()), true
		}
		e.buf = append(e.buf, ev.Rune())
	}
	return "", false
}
