package colour

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	// upperHalfBlock paints the top half of a cell in the foreground colour.
	upperHalfBlock = "▀"
)

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// ColourPreviewWithText returns a colour preview with centred text overlay.
// The text colour is chosen to have good contrast with the background.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg(c) + fg(ContrastText(c)) + displayText + ansiReset
}

// ContrastText picks black or white, whichever reads better on c.
func ContrastText(c RGB) RGB {
	cf, _ := colorful.MakeColor(c.RGBA())
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

// HalfBlock renders two vertically stacked pixels in a single terminal cell.
func HalfBlock(top, bottom RGB) string {
	return fg(top) + bg(bottom) + upperHalfBlock
}

// Reset returns the ANSI attribute reset sequence.
func Reset() string {
	return ansiReset
}

// Swatches renders every colour as a labelled block on one line.
func Swatches(colours []RGB, width int) string {
	var sb strings.Builder
	for i, c := range colours {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ColourPreviewWithText(c, strings.TrimPrefix(c.Hex(), "#"), width))
	}
	return sb.String()
}
