// Package background resolves the editor's base background color.
package background

import (
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/mo"
)

// Producer yields a background candidate, or mo.None when it has nothing to offer.
type Producer func() mo.Option[color.Hex]

// Resolver walks an ordered list of producers and returns the first valid color.
type Resolver struct {
	producers []Producer
	fallback  color.Hex
}

// New returns the standard chain for h: the Normal style, then the inactive-window style,
// then a fixed default picked by the editor's light/dark preference.
func New(h host.Host) *Resolver {
	return &Resolver{
		producers: []Producer{
			FromStyle(h, host.NormalStyle),
			FromStyle(h, host.InactiveStyle),
			FromPreference(h),
		},
		fallback: color.DarkBackground,
	}
}

// Chain returns a resolver over producers. If none of them yields a valid color, fallback is used.
func Chain(fallback color.Hex, producers ...Producer) *Resolver {
	return &Resolver{producers: producers, fallback: fallback}
}

// Resolve returns the current base background. It is recomputed on every call since the theme may change at any time.
func (r *Resolver) Resolve() color.Hex {
	for _, produce := range r.producers {
		candidate, ok := produce().Get()
		if !ok {
			continue
		}

		normalized, err := color.Normalize(string(candidate))
		if err != nil {
			log.Debugf("skipping background candidate %q: %s", candidate, err)
			continue
		}

		return normalized
	}

	return r.fallback
}

// FromStyle reads the background of the named style. Query failures count as "unset".
func FromStyle(h host.Host, name string) Producer {
	return func() mo.Option[color.Hex] {
		var style host.Style
		err := host.Guard(func() (err error) {
			style, err = h.Style(name)
			return err
		})
		if err != nil {
			log.Debugf("query style %s: %s", name, err)
			return mo.None[color.Hex]()
		}

		return style.Background
	}
}

// FromPreference maps the global light/dark preference to a fixed background.
// A failing preference query yields nothing.
func FromPreference(h host.Host) Producer {
	return func() mo.Option[color.Hex] {
		var pref host.Preference
		err := host.Guard(func() error {
			pref = h.BackgroundPreference()
			return nil
		})
		if err != nil {
			log.Debugf("query background preference: %s", err)
			return mo.None[color.Hex]()
		}

		if pref == host.Light {
			return mo.Some(color.LightBackground)
		}

		return mo.Some(color.DarkBackground)
	}
}
