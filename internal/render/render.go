package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/style"
)

// Page renders a screen with a slash pattern and title at the top, the
// content block vertically centered, and the footer at the bottom. The
// content's own styling is left intact. When the terminal size is known the
// whole page is centered within it.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
