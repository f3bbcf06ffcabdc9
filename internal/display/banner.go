package display

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// RenderBanner returns title centred between two rules spanning width
// columns.
func RenderBanner(title string, width int) string {
	if width <= 0 {
		width = termWidth()
	}
	title = strings.TrimSpace(title)
	rule := sepStyle.Render(strings.Repeat("─", width))

	pad := 0
	if w := lipgloss.Width(title); width > w {
		pad = (width - w) / 2
	}

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(BannerStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(rule)
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
