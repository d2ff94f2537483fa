package host

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Render draws buf line by line. Painted lines get their background across the full width.
// A width of zero or less disables truncation and padding.
func (m *Memory) Render(buf Buffer, width int) string {
	var (
		b      strings.Builder
		lines  = m.Lines(buf)
		normal = lipgloss.NewStyle()
	)

	if style, err := m.Style(NormalStyle); err == nil {
		if bg, ok := style.Background.Get(); ok {
			normal = normal.Background(bg.Lipgloss())
		}
	}

	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		s := normal
		if bg, ok := m.BackgroundAt(buf, i).Get(); ok {
			s = lipgloss.NewStyle().Background(bg.Lipgloss())
		}

		if width > 0 {
			line = truncate.String(line, uint(width))
			s = s.Width(width)
		}

		b.WriteString(s.Render(line))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
