// Package highlight wires the background resolver, level color policy, style registry
// and painter into one subsystem bound to an editor host.
package highlight

import (
	"sort"

	"github.com/nestshade/nestshade/background"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/log"
	"github.com/nestshade/nestshade/painter"
	"github.com/nestshade/nestshade/policy"
	"github.com/nestshade/nestshade/region"
	"github.com/nestshade/nestshade/registry"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Options configures a Highlighter.
type Options struct {
	Policy   policy.Options
	Priority int
}

// Highlighter owns the per-session state: the style cache and the set of buffers it painted.
type Highlighter struct {
	host     host.Host
	resolver *background.Resolver
	policy   *policy.Policy
	registry *registry.Registry
	painter  *painter.Painter
	painted  map[host.Buffer]struct{}
}

// New initializes the subsystem for h.
func New(h host.Host, options Options) *Highlighter {
	var (
		res = background.New(h)
		pol = policy.New(options.Policy, res, h)
		reg = registry.New(h)
	)

	return &Highlighter{
		host:     h,
		resolver: res,
		policy:   pol,
		registry: reg,
		painter:  painter.New(h, pol, reg, options.Priority),
		painted:  make(map[host.Buffer]struct{}),
	}
}

// Background returns the editor background colors are currently derived from.
func (hl *Highlighter) Background() color.Hex {
	return hl.resolver.Resolve()
}

// ColorFor returns the color used for level under the current theme.
func (hl *Highlighter) ColorFor(level int) mo.Option[color.Hex] {
	return hl.policy.ColorFor(level)
}

// StyleFor returns the style name currently registered for level.
func (hl *Highlighter) StyleFor(level int) mo.Option[string] {
	entry, ok := hl.registry.Lookup(level).Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(entry.Name)
}

// Paint highlights the interior of the region delimited by the 1-based lines start and end.
func (hl *Highlighter) Paint(buf host.Buffer, start, end, level int) {
	hl.painted[buf] = struct{}{}
	hl.painter.Paint(buf, start, end, level)
}

// PaintRegions paints every region, outermost first so nested regions are drawn over their parents.
func (hl *Highlighter) PaintRegions(buf host.Buffer, regions []region.Region) {
	ordered := append([]region.Region(nil), regions...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Level < ordered[j].Level
	})

	for _, r := range ordered {
		hl.Paint(buf, r.Start, r.End, r.Level)
	}
}

// Clear removes every highlight from buf and resets the style cache.
func (hl *Highlighter) Clear(buf host.Buffer) {
	delete(hl.painted, buf)
	hl.painter.Clear(buf)
}

// Retheme clears every buffer painted so far and returns them for repainting.
// It is the only way to react to a theme change; there is no incremental update.
func (hl *Highlighter) Retheme() []host.Buffer {
	bufs := lo.Keys(hl.painted)
	sort.Slice(bufs, func(i, j int) bool { return bufs[i] < bufs[j] })

	for _, buf := range bufs {
		hl.Clear(buf)
	}
	hl.registry.Reset()

	log.Infof("retheme: cleared %d buffers", len(bufs))
	return bufs
}

// SetOptions applies new configuration. Cached styles are dropped since colors may change.
func (hl *Highlighter) SetOptions(options Options) {
	hl.policy.SetOptions(options.Policy)
	hl.painter.SetPriority(options.Priority)
	hl.registry.Reset()
}

// Options returns the active configuration.
func (hl *Highlighter) Options() Options {
	return Options{Policy: hl.policy.Options(), Priority: hl.painter.Priority()}
}
