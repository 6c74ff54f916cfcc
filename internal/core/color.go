package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// NumberColor returns the conventional minesweeper color for a neighbor count.
func NumberColor(n int) Color {
	switch n {
	case 1:
		return ColorBrightBlue
	case 2:
		return ColorGreen
	case 3:
		return ColorBrightRed
	case 4:
		return ColorBlue
	case 5:
		return ColorRed
	case 6:
		return ColorCyan
	case 7:
		return ColorMagenta
	default:
		return ColorGray
	}
}
