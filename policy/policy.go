// Package policy maps region nesting levels to background colors.
//
// A configured palette is cycled through by level. Without a palette, colors are derived
// from the editor background by shifting its lightness one step per level.
package policy

import (
	"fmt"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Generation shapes procedurally generated colors.
type Generation struct {
	LightnessStep float64
	MinLightness  float64
	MaxLightness  float64
	// Saturation replaces the background's saturation when present.
	Saturation mo.Option[float64]
}

// Options is the configuration the policy reads.
type Options struct {
	Enabled    bool
	Palette    []color.Hex
	Generation Generation
}

// DefaultGeneration lightens by 5% per level across the whole lightness range.
var DefaultGeneration = Generation{
	LightnessStep: 0.05,
	MinLightness:  0,
	MaxLightness:  1,
	Saturation:    mo.None[float64](),
}

// Background supplies the base background color.
type Background interface {
	Resolve() color.Hex
}

// Warner receives user-visible warnings.
type Warner interface {
	Warn(message string)
}

// Policy derives the color for a nesting level.
type Policy struct {
	options    Options
	background Background
	warner     Warner
}

// New returns a policy over the given options.
func New(options Options, background Background, warner Warner) *Policy {
	return &Policy{options: options, background: background, warner: warner}
}

// Options returns the active options.
func (p *Policy) Options() Options {
	return p.options
}

// SetOptions replaces the active options.
func (p *Policy) SetOptions(options Options) {
	p.options = options
}

// Enabled reports whether highlighting is turned on.
func (p *Policy) Enabled() bool {
	return p.options.Enabled
}

// ColorFor returns the color for level, or mo.None when highlighting is disabled.
// For fixed options and background it is a pure function of level.
func (p *Policy) ColorFor(level int) mo.Option[color.Hex] {
	if !p.options.Enabled {
		return mo.None[color.Hex]()
	}

	if n := len(p.options.Palette); n > 0 {
		return mo.Some(p.options.Palette[paletteIndex(level, n)])
	}

	return mo.Some(p.generate(level))
}

// paletteIndex maps 1-based levels onto the palette so level 1 is the first entry.
func paletteIndex(level, n int) int {
	return ((level-1)%n + n) % n
}

func (p *Policy) generate(level int) color.Hex {
	base := p.background.Resolve()

	hsl, err := p.derive(base, level)
	if err != nil {
		p.warn(fmt.Sprintf("nestshade: cannot derive level colors from background %q: %s", base, err))
		return p.firstFallback(base)
	}

	return color.RGBToHex(color.HSLToRGB(hsl))
}

// Derive returns the unrounded HSL generated for level against the current background.
func (p *Policy) Derive(level int) (color.HSL, error) {
	return p.derive(p.background.Resolve(), level)
}

func (p *Policy) derive(base color.Hex, level int) (color.HSL, error) {
	rgb, err := color.HexToRGB(string(base))
	if err != nil {
		return color.HSL{}, err
	}

	hsl := color.RGBToHSL(rgb)
	gen := p.options.Generation

	hsl.L = lo.Clamp(hsl.L+float64(level)*gen.LightnessStep, gen.MinLightness, gen.MaxLightness)
	if s, ok := gen.Saturation.Get(); ok {
		hsl.S = lo.Clamp(s, 0, 1)
	}

	return hsl, nil
}

// firstFallback walks the fallbacks for a background that cannot be converted.
func (p *Policy) firstFallback(base color.Hex) color.Hex {
	fallbacks := []func() mo.Option[color.Hex]{
		func() mo.Option[color.Hex] {
			if len(p.options.Palette) == 0 {
				return mo.None[color.Hex]()
			}
			return mo.Some(p.options.Palette[0])
		},
		func() mo.Option[color.Hex] {
			return mo.Some(base)
		},
	}

	for _, fallback := range fallbacks {
		if c, ok := fallback().Get(); ok {
			return c
		}
	}

	return base
}

func (p *Policy) warn(message string) {
	log.Warn(message)
	if p.warner == nil {
		return
	}

	_ = host.Guard(func() error {
		p.warner.Warn(message)
		return nil
	})
}
