// Package host defines what the highlighting core needs from an editor and provides an in-memory editor that satisfies it.
package host

import (
	"errors"

	"github.com/nestshade/nestshade/color"
	"github.com/samber/mo"
)

// Buffer identifies an editor buffer.
type Buffer int

// Namespace groups line marks so they can be cleared together.
type Namespace int

// Preference is the editor's global light/dark setting.
type Preference string

const (
	Dark  Preference = "dark"
	Light Preference = "light"
)

// Well-known style names queried for the base background.
const (
	NormalStyle   = "Normal"
	InactiveStyle = "NormalNC"
)

// Style is the resolved view of a named style.
type Style struct {
	Background mo.Option[color.Hex]
}

// StyleDef describes a background-only style definition.
type StyleDef struct {
	Background color.Hex
	// Overridable marks the definition as a default that yields to an explicit user definition.
	Overridable bool
}

// Mark describes a full-line background applied to a line span.
type Mark struct {
	StyleName string
	Priority  int
}

// ErrUnknownBuffer is returned for buffers the host does not know.
var ErrUnknownBuffer = errors.New("unknown buffer")

// ErrInvalidRange is returned when a line span does not fit the buffer.
var ErrInvalidRange = errors.New("invalid line range")

// Host is the editor surface used by the highlighting core.
// Every fallible call reports failure through its error.
type Host interface {
	// Style returns the named style. An unset background is reported as mo.None.
	Style(name string) (Style, error)
	// BackgroundPreference returns the global light/dark setting.
	BackgroundPreference() Preference
	// DefineStyle creates or replaces a named style.
	DefineStyle(name string, def StyleDef) error
	// CreateNamespace returns the namespace for tag, creating it on first use.
	CreateNamespace(tag string) (Namespace, error)
	// MarkLines applies mark to the 0-based lines [start, end) of buf.
	MarkLines(buf Buffer, ns Namespace, start, end int, mark Mark) error
	// ClearNamespace removes every mark of ns in buf.
	ClearNamespace(buf Buffer, ns Namespace) error
	// Warn shows a non-fatal message to the user.
	Warn(message string)
}
