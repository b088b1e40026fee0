package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield and its HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed   // Traffic
	ColorBrightCyan  // Player car
	ColorBrightWhite // Score
)
