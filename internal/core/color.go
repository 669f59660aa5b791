package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Colors used by the letter field.
const (
	ColorDefault Color = iota
	ColorWhite         // falling letters
	ColorGreen         // hit letters
	ColorRed           // missed letters
	ColorCyan          // hit line
	ColorYellow        // combo counter
	ColorGray          // tolerance band, hints
	ColorMagenta       // titles
)
