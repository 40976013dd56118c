package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	SplashSnake = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))  // Bright green
	SplashFood  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")) // Pink

	SetupTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple

	HighScore = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Board glyphs. The head, body and tail segments are drawn with distinct
// characters so the crawl direction reads at a glance.
const (
	GlyphHead  = "@"
	GlyphBody  = "O"
	GlyphTail  = "o"
	GlyphFood  = "●"
	GlyphEmpty = " "
)

// RGB is a 0-255 color triple.
type RGB struct {
	R int
	G int
	B int
}

var (
	snakeColor = RGB{0, 255, 0}
	foodColor  = RGB{255, 64, 160}
)

// Board holds the styles used to draw one frame of the play area.
type Board struct {
	Head lipgloss.Style
	Body lipgloss.Style
	Tail lipgloss.Style
	Food lipgloss.Style
}

// hexColor formats r, g, b (0-255 each) as a #RRGGBB string.
func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// dimFloor keeps night-dimmed colors readable against the background.
const dimFloor = 72

// scale dims a color channel by ambient light intensity in [0.0, 1.0].
func scale(c int, intensity float64) int {
	if c == 0 {
		return 0
	}
	v := dimFloor + int(float64(c-dimFloor)*intensity)
	if v > 255 {
		v = 255
	}
	if v < dimFloor {
		v = dimFloor
	}
	return v
}

// NewBoard returns board styles dimmed by ambient light intensity:
// 1.0 is full daylight, 0.0 is night.
func NewBoard(intensity float64) Board {
	snake := lipgloss.Color(hexColor(
		scale(snakeColor.R, intensity),
		scale(snakeColor.G, intensity),
		scale(snakeColor.B, intensity),
	))
	food := lipgloss.Color(hexColor(
		scale(foodColor.R, intensity),
		scale(foodColor.G, intensity),
		scale(foodColor.B, intensity),
	))
	return Board{
		Head: lipgloss.NewStyle().Bold(true).Foreground(snake),
		Body: lipgloss.NewStyle().Foreground(snake),
		Tail: lipgloss.NewStyle().Faint(true).Foreground(snake),
		Food: lipgloss.NewStyle().Foreground(food),
	}
}
