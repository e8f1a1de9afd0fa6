package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

// Symbols holds the status markers for one symbol set.
type Symbols struct {
	OK     string
	Fail   string
	Warn   string
	Bullet string
}

var unicodeSymbols = Symbols{
	OK:     "✓",
	Fail:   "✗",
	Warn:   "⚠",
	Bullet: "•",
}

// ASCII-safe fallback for terminals without unicode glyphs
var asciiSymbols = Symbols{
	OK:     "[OK]",
	Fail:   "[ERROR]",
	Warn:   "[WARN]",
	Bullet: "-",
}

var currentSymbols = unicodeSymbols

// Configure sets color and the symbol set ("unicode" or "ascii").
// Unknown symbol sets fall back to unicode.
func Configure(color bool, symbols string) {
	colorEnabled = color
	if symbols == "ascii" {
		currentSymbols = asciiSymbols
	} else {
		currentSymbols = unicodeSymbols
	}
}

// DetectColor reports whether w can render colors, honoring NO_COLOR and
// non-terminal outputs.
func DetectColor(w io.Writer) bool {
	switch colorprofile.Detect(w, os.Environ()) {
	case colorprofile.NoTTY, colorprofile.Ascii:
		return false
	default:
		return true
	}
}

// CurrentSymbols returns the active symbol set.
func CurrentSymbols() Symbols {
	return currentSymbols
}

// OK returns text prefixed with the success marker.
func OK(text string) string {
	return Render(SuccessStyle, currentSymbols.OK) + " " + text
}

// Fail returns text prefixed with the failure marker.
func Fail(text string) string {
	return Render(ErrorStyle, currentSymbols.Fail) + " " + text
}

// Warn returns text prefixed with the warning marker.
func Warn(text string) string {
	return Render(WarningStyle, currentSymbols.Warn) + " " + text
}

// Bullet returns text prefixed with the list marker.
func Bullet(text string) string {
	return Render(MutedStyle, currentSymbols.Bullet) + " " + text
}
