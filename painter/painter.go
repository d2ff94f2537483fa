// Package painter applies level styles as full-line backgrounds over region interiors.
package painter

import (
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/constant"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/mo"
)

// DefaultPriority keeps region backgrounds below other decorations.
const DefaultPriority = 10

// Colorer returns the color for a nesting level.
type Colorer interface {
	Enabled() bool
	ColorFor(level int) mo.Option[color.Hex]
}

// Styler registers level styles.
type Styler interface {
	Ensure(level int, c mo.Option[color.Hex]) mo.Option[string]
	Reset()
}

// Painter marks region interiors on a host. Every host failure ends in "nothing painted".
type Painter struct {
	host     host.Host
	colors   Colorer
	styles   Styler
	priority int
	ns       mo.Option[host.Namespace]
}

// New returns a painter drawing at the given priority.
func New(h host.Host, colors Colorer, styles Styler, priority int) *Painter {
	return &Painter{
		host:     h,
		colors:   colors,
		styles:   styles,
		priority: priority,
		ns:       mo.None[host.Namespace](),
	}
}

// SetPriority changes the priority used for subsequent marks.
func (p *Painter) SetPriority(priority int) {
	p.priority = priority
}

// Priority returns the priority used for marks.
func (p *Painter) Priority() int {
	return p.priority
}

// Interior returns the 0-based, end-exclusive span strictly between the delimiter lines of a region.
// start and end are the 1-based lines holding the opening and closing markers.
func Interior(start, end int) (from, to int, ok bool) {
	from, to = start, end-1
	return from, to, from < to
}

// Paint highlights the interior of the region delimited by the 1-based lines start and end.
// Regions without interior lines are never painted.
func (p *Painter) Paint(buf host.Buffer, start, end, level int) {
	if !p.colors.Enabled() {
		return
	}

	c := p.colors.ColorFor(level)
	if c.IsAbsent() {
		return
	}

	name, ok := p.styles.Ensure(level, c).Get()
	if !ok {
		return
	}

	from, to, ok := Interior(start, end)
	if !ok {
		return
	}

	ns, ok := p.namespace().Get()
	if !ok {
		return
	}

	err := host.Guard(func() error {
		return p.host.MarkLines(buf, ns, from, to, host.Mark{StyleName: name, Priority: p.priority})
	})
	if err != nil {
		log.Debugf("mark lines %d-%d in buffer %d: %s", from, to, buf, err)
	}
}

// Clear removes every mark this painter placed in buf and resets the style cache.
func (p *Painter) Clear(buf host.Buffer) {
	defer p.styles.Reset()

	ns, ok := p.namespace().Get()
	if !ok {
		return
	}

	err := host.Guard(func() error {
		return p.host.ClearNamespace(buf, ns)
	})
	if err != nil {
		log.Warnf("clear buffer %d: %s", buf, err)
	}
}

func (p *Painter) namespace() mo.Option[host.Namespace] {
	if p.ns.IsPresent() {
		return p.ns
	}

	var ns host.Namespace
	err := host.Guard(func() (err error) {
		ns, err = p.host.CreateNamespace(constant.Namespace)
		return err
	})
	if err != nil {
		log.Warnf("create namespace %s: %s", constant.Namespace, err)
		return mo.None[host.Namespace]()
	}

	p.ns = mo.Some(ns)
	return p.ns
}
