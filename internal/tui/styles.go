package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/xmastree/internal/tree"
)

var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff69b4")).
			Padding(0, 2)

	LyricStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fff5f5")).
			Italic(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// TreeWidth is the widest row in units.
func TreeWidth(rows [][]tree.Unit) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Paint renders canvas rows as colored text, each row centered within width.
func Paint(rows [][]tree.Unit, width int) string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder
	for i, row := range rows {
		if pad := (width - len(row)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		for _, u := range row {
			if u.Kind == tree.KindBlank {
				b.WriteByte(' ')
				continue
			}
			st, ok := styles[u.Color]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(u.Color))
				styles[u.Color] = st
			}
			b.WriteString(st.Render(string(u.Glyph)))
		}
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
