// Package ui provides terminal rendering and line editing using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreen creates and initializes a new terminal screen in the given theme.
func NewScreen(theme Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s, theme)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen in tests.
func NewScreenFrom(s tcell.Screen, theme Theme) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	style := theme.Style()
	s.SetStyle(style)
	s.Clear()
	return &Screen{screen: s, style: style}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Events pumps terminal events into a channel until quit is closed or the screen is finalized.
// The driver reads it alongside its tick timer so the simulation advances without input.
func (s *Screen) Events(quit <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event)
	go func() {
		defer close(ch)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-quit:
				return
			}
		}
	}()
	return ch
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
// combc holds any combining runes drawn in the same cell.
func (s *Screen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	s.screen.SetContent(x, y, mainc, combc, style)
}

// Style returns the theme's base style.
func (s *Screen) Style() tcell.Style { return s.style }

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
