package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the games. ColorDefault leaves the terminal color untouched.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorDarkRed
	ColorGold
)
