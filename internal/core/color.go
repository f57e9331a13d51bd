package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to a terminal style.
type Color uint8

// Colors used by the game screen.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
