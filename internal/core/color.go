package core

// Color represents a foreground color for a screen cell.
// Platforms map these to ANSI 256-color codes or RGB values.
type Color uint8

// Palette used by the game renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightWhite
)
