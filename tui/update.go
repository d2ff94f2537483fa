package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *previewBubble) Init() tea.Cmd {
	return nil
}

func (b *previewBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit, b.keymap.forceQuit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.toggleTheme):
			b.toggleTheme()
			return b, nil
		case key.Matches(msg, b.keymap.toggleColors):
			b.toggleColors()
			return b, nil
		case key.Matches(msg, b.keymap.top):
			b.viewportC.GotoTop()
			return b, nil
		case key.Matches(msg, b.keymap.bottom):
			b.viewportC.GotoBottom()
			return b, nil
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			b.resize(b.width, b.height)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.viewportC, cmd = b.viewportC.Update(msg)
	return b, cmd
}
