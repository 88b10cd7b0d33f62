package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme is the pair of colours every screen is drawn in.
type Theme struct {
	Foreground tcell.Color
	Background tcell.Color
}

// DefaultTheme is light grey on black.
var DefaultTheme = Theme{Foreground: tcell.ColorSilver, Background: tcell.ColorBlack}

// ParseTheme builds a theme from two hex colours.
func ParseTheme(foreground, background string) (Theme, error) {
	fg, err := ParseHexColor(foreground)
	if err != nil {
		return Theme{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseHexColor(background)
	if err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}
	return Theme{Foreground: fg, Background: bg}, nil
}

// Style returns the base tcell style for the theme.
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
