package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorBrightYellow
	ColorBrightRed
	ColorLightGray
	ColorGray
	ColorDarkGray
	ColorDimGray
)

// grayRamp orders the gray colors from brightest to darkest.
var grayRamp = []Color{
	ColorBrightWhite,
	ColorWhite,
	ColorLightGray,
	ColorGray,
	ColorDarkGray,
	ColorDimGray,
}

// GrayFromShade maps an 8-bit gray level (255 = white) onto the gray ramp.
func GrayFromShade(shade uint8) Color {
	steps := len(grayRamp)
	idx := (255 - int(shade)) * steps / 256
	return grayRamp[Clamp(idx, 0, steps-1)]
}
