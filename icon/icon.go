// Package icon renders the small status symbols printed by the CLI.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode squares
// depending on user preference.
package icon

import (
	"github.com/nestshade/nestshade/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Warn
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", squares: "◫"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", squares: "◩"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
