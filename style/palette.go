package style

import "github.com/charmbracelet/lipgloss"

// Palette used for previewer chrome.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")
	Yellow   = lipgloss.Color("#f9e2af")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	WarningColor   = Yellow
	FaintColor     = Overlay
)
