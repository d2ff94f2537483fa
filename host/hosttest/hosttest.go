// Package hosttest provides a call-counting host with injectable failures.
package hosttest

import (
	"errors"

	"github.com/nestshade/nestshade/host"
)

// ErrInjected is returned by calls configured to fail.
var ErrInjected = errors.New("injected host failure")

// Fake wraps a host.Memory, counting mutations and failing on demand.
type Fake struct {
	*host.Memory

	FailStyle     bool
	PanicOnStyle  bool
	PanicOnPref   bool
	PanicOnWarn   bool
	FailDefine    bool
	FailNamespace bool
	FailMark      bool
	FailClear     bool
	PanicOnMark   bool

	Defines    []string
	MarkCalls  int
	ClearCalls int
}

// New returns a Fake over a fresh dark-preference memory host.
func New() *Fake {
	return &Fake{Memory: host.NewMemory(host.Dark)}
}

// Mutations returns the number of style definitions, mark and clear calls seen so far.
func (f *Fake) Mutations() int {
	return len(f.Defines) + f.MarkCalls + f.ClearCalls
}

func (f *Fake) Style(name string) (host.Style, error) {
	if f.PanicOnStyle {
		panic("style query exploded")
	}
	if f.FailStyle {
		return host.Style{}, ErrInjected
	}
	return f.Memory.Style(name)
}

func (f *Fake) BackgroundPreference() host.Preference {
	if f.PanicOnPref {
		panic("preference query exploded")
	}
	return f.Memory.BackgroundPreference()
}

func (f *Fake) Warn(message string) {
	if f.PanicOnWarn {
		panic("warn exploded")
	}
	f.Memory.Warn(message)
}

func (f *Fake) DefineStyle(name string, def host.StyleDef) error {
	f.Defines = append(f.Defines, name)
	if f.FailDefine {
		return ErrInjected
	}
	return f.Memory.DefineStyle(name, def)
}

func (f *Fake) CreateNamespace(tag string) (host.Namespace, error) {
	if f.FailNamespace {
		return 0, ErrInjected
	}
	return f.Memory.CreateNamespace(tag)
}

func (f *Fake) MarkLines(buf host.Buffer, ns host.Namespace, start, end int, mark host.Mark) error {
	f.MarkCalls++
	if f.PanicOnMark {
		panic("mark exploded")
	}
	if f.FailMark {
		return ErrInjected
	}
	return f.Memory.MarkLines(buf, ns, start, end, mark)
}

func (f *Fake) ClearNamespace(buf host.Buffer, ns host.Namespace) error {
	f.ClearCalls++
	if f.FailClear {
		return ErrInjected
	}
	return f.Memory.ClearNamespace(buf, ns)
}
