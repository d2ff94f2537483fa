// Package tui provides the interactive previewer: a scrollable buffer with region backgrounds and live re-theming.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/highlight"
	"github.com/nestshade/nestshade/region"
)

// Options encapsulates the runtime configuration for the previewer.
type Options struct {
	Title      string
	Lines      []string
	Highlight  highlight.Options
	Delimiters region.Delimiters
	Dark       bool
	// Themes holds the editor backgrounds toggled between, dark first.
	Themes [2]color.Hex
}

// Run starts the previewer and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
