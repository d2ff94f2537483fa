// Package registry keeps one named editor style per nesting level and redefines it only when its color changes.
package registry

import (
	"fmt"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/constant"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Entry is the last definition made for a level.
type Entry struct {
	Name  string
	Color color.Hex
}

// Registry caches level styles defined on a host.
// It is not safe for concurrent use; the editor delivers events serially.
type Registry struct {
	host    host.Host
	entries map[int]Entry
}

// New returns an empty registry for h.
func New(h host.Host) *Registry {
	return &Registry{host: h, entries: make(map[int]Entry)}
}

// Name returns the style name used for level.
func Name(level int) string {
	return fmt.Sprintf("%s%d", constant.StylePrefix, level)
}

// Ensure makes sure the style for level has color c and returns its name.
// It returns mo.None when c is absent or the editor refused the definition.
func (r *Registry) Ensure(level int, c mo.Option[color.Hex]) mo.Option[string] {
	want, ok := c.Get()
	if !ok {
		return mo.None[string]()
	}

	name := Name(level)
	if entry, ok := r.entries[level]; ok && entry.Color == want {
		return mo.Some(entry.Name)
	}

	err := host.Guard(func() error {
		return r.host.DefineStyle(name, host.StyleDef{Background: want, Overridable: true})
	})
	if err != nil {
		log.Warnf("define style %s as %s: %s", name, want, err)
		return mo.None[string]()
	}

	r.entries[level] = Entry{Name: name, Color: want}
	log.Debugf("defined style %s as %s", name, want)
	return mo.Some(name)
}

// Lookup returns the cached entry for level.
func (r *Registry) Lookup(level int) mo.Option[Entry] {
	entry, ok := r.entries[level]
	return lo.Ternary(ok, mo.Some(entry), mo.None[Entry]())
}

// Len returns the number of cached levels.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset forgets every cached definition so the next Ensure redefines from scratch.
func (r *Registry) Reset() {
	clear(r.entries)
}
