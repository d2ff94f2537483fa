package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nestshade/nestshade/style"
	"github.com/nestshade/nestshade/util"
)

func (b *previewBubble) View() string {
	theme := "light"
	if b.dark {
		theme = "dark"
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		style.Title(b.options.Title),
		" ",
		style.Faint(fmt.Sprintf("%s · %s theme", util.Quantify(len(b.regions), "region", "regions"), theme)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, b.viewportC.View(), b.helpC.View(b.keymap))
}
