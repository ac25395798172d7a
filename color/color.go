// Package color holds the pure color math used by theming and the terminal colors built on it.
package color

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// New wraps a terminal color spec: an ANSI index such as "5" or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Terminal returns the true-color terminal form of c.
func Terminal(c RGB) lipgloss.Color {
	return New(c.Hex())
}

// TextOn returns the readable text color for content drawn on a c background.
func TextOn(c RGB) lipgloss.Color {
	return New(ContrastText(c))
}

// Status colors use the terminal's own palette so output follows the user's scheme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// Bright returns the high-intensity variant of a basic ANSI color.
// Anything else is returned unchanged.
func Bright(c lipgloss.Color) lipgloss.Color {
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 0 || n > 7 {
		return c
	}
	return New(strconv.Itoa(n + 8))
}
