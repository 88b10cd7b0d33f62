package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/trailsim/internal/window"
)

// Renderer handles drawing the topmost window's text to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the text, wrapped to the terminal width, with an input line at
// the bottom when the policy buffers typed text.
func (r *Renderer) Render(text, buffer string, policy window.InputPolicy) {
	r.screen.Clear()
	width, height := r.screen.Size()

	lines := Wrap(text, width)
	rows := height
	if policy.FillsBuffer() {
		rows = height - 2
	}
	for y, line := range lines {
		if y >= rows {
			break
		}
		r.drawLine(0, y, line, r.screen.Style())
	}

	if policy.FillsBuffer() && height > 0 {
		prompt := r.screen.Style().Bold(true)
		r.drawLine(0, height-1, "> "+buffer+"_", prompt)
	}

	r.screen.Show()
}

// drawLine draws one grapheme cluster per cell, advancing two cells for wide glyphs.
func (r *Renderer) drawLine(x, y int, s string, style tcell.Style) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += gr.Width()
	}
}

// Wrap splits text into lines no wider than width terminal cells. Words wider
// than the line are broken between grapheme clusters.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		cells := 0
		flush := func() {
			out = append(out, line.String())
			line.Reset()
			cells = 0
		}

		for _, word := range strings.Fields(para) {
			w := uniseg.StringWidth(word)
			if w > width {
				if cells > 0 {
					flush()
				}
				gr := uniseg.NewGraphemes(word)
				for gr.Next() {
					if cells > 0 && cells+gr.Width() > width {
						flush()
					}
					line.WriteString(gr.Str())
					cells += gr.Width()
				}
				continue
			}

			switch {
			case cells == 0:
			case cells+1+w <= width:
				line.WriteByte(' ')
				cells++
			default:
				flush()
			}
			line.WriteString(word)
			cells += w
		}
		out = append(out, line.String())
	}
	return out
}
