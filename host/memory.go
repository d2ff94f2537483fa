package host

import (
	"fmt"
	"sort"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Span is a mark applied to the 0-based lines [Start, End) of a buffer.
type Span struct {
	Namespace Namespace
	Start     int
	End       int
	Mark      Mark
	seq       int
}

type definedStyle struct {
	def  StyleDef
	user bool
}

// Memory is an editor held entirely in memory. It backs the CLI previewer and tests.
// It is not safe for concurrent use.
type Memory struct {
	preference Preference
	styles     map[string]definedStyle
	namespaces map[string]Namespace
	buffers    map[Buffer][]string
	marks      map[Buffer][]Span
	warnings   []string
	nextBuffer Buffer
	seq        int
}

// NewMemory returns an empty in-memory editor with the given light/dark preference.
func NewMemory(preference Preference) *Memory {
	return &Memory{
		preference: preference,
		styles:     make(map[string]definedStyle),
		namespaces: make(map[string]Namespace),
		buffers:    make(map[Buffer][]string),
		marks:      make(map[Buffer][]Span),
		nextBuffer: 1,
	}
}

// OpenBuffer registers lines as a new buffer.
func (m *Memory) OpenBuffer(lines []string) Buffer {
	buf := m.nextBuffer
	m.nextBuffer++
	m.buffers[buf] = lines
	return buf
}

// Lines returns the content of buf.
func (m *Memory) Lines(buf Buffer) []string {
	return m.buffers[buf]
}

// Buffers returns every open buffer in ascending order.
func (m *Memory) Buffers() []Buffer {
	bufs := lo.Keys(m.buffers)
	sort.Slice(bufs, func(i, j int) bool { return bufs[i] < bufs[j] })
	return bufs
}

// SetPreference changes the global light/dark setting.
func (m *Memory) SetPreference(p Preference) {
	m.preference = p
}

// SetUserStyle sets a style the way a user theme would. An overridable definition never replaces it.
// Passing mo.None removes the style.
func (m *Memory) SetUserStyle(name string, background mo.Option[color.Hex]) {
	bg, ok := background.Get()
	if !ok {
		delete(m.styles, name)
		return
	}

	m.styles[name] = definedStyle{def: StyleDef{Background: bg}, user: true}
}

// Marks returns the spans applied to buf, in application order.
func (m *Memory) Marks(buf Buffer) []Span {
	return append([]Span(nil), m.marks[buf]...)
}

// Warnings returns every message passed to Warn.
func (m *Memory) Warnings() []string {
	return m.warnings
}

func (m *Memory) Style(name string) (Style, error) {
	s, ok := m.styles[name]
	if !ok || s.def.Background == "" {
		return Style{Background: mo.None[color.Hex]()}, nil
	}

	return Style{Background: mo.Some(s.def.Background)}, nil
}

func (m *Memory) BackgroundPreference() Preference {
	return m.preference
}

func (m *Memory) DefineStyle(name string, def StyleDef) error {
	if !def.Background.Valid() {
		return fmt.Errorf("define style %s: %w: %q", name, color.ErrInvalidFormat, def.Background)
	}

	if existing, ok := m.styles[name]; ok && existing.user && def.Overridable {
		log.Debugf("style %s is user defined, keeping it", name)
		return nil
	}

	m.styles[name] = definedStyle{def: def}
	return nil
}

func (m *Memory) CreateNamespace(tag string) (Namespace, error) {
	if tag == "" {
		return 0, fmt.Errorf("create namespace: empty tag")
	}

	if ns, ok := m.namespaces[tag]; ok {
		return ns, nil
	}

	ns := Namespace(len(m.namespaces) + 1)
	m.namespaces[tag] = ns
	return ns, nil
}

func (m *Memory) MarkLines(buf Buffer, ns Namespace, start, end int, mark Mark) error {
	lines, ok := m.buffers[buf]
	if !ok {
		return fmt.Errorf("mark lines: %w: %d", ErrUnknownBuffer, buf)
	}

	if start < 0 || start >= len(lines) || end <= start {
		return fmt.Errorf("mark lines %d-%d: %w", start, end, ErrInvalidRange)
	}

	m.seq++
	m.marks[buf] = append(m.marks[buf], Span{
		Namespace: ns,
		Start:     start,
		End:       min(end, len(lines)),
		Mark:      mark,
		seq:       m.seq,
	})
	return nil
}

func (m *Memory) ClearNamespace(buf Buffer, ns Namespace) error {
	if _, ok := m.buffers[buf]; !ok {
		return fmt.Errorf("clear namespace: %w: %d", ErrUnknownBuffer, buf)
	}

	m.marks[buf] = lo.Reject(m.marks[buf], func(s Span, _ int) bool {
		return s.Namespace == ns
	})
	return nil
}

func (m *Memory) Warn(message string) {
	m.warnings = append(m.warnings, message)
}

// BackgroundAt returns the background painted on the 0-based line of buf.
// The highest priority span wins; among equal priorities the latest one does.
func (m *Memory) BackgroundAt(buf Buffer, line int) mo.Option[color.Hex] {
	covering := lo.Filter(m.marks[buf], func(s Span, _ int) bool {
		return line >= s.Start && line < s.End
	})
	if len(covering) == 0 {
		return mo.None[color.Hex]()
	}

	top := lo.MaxBy(covering, func(a, b Span) bool {
		if a.Mark.Priority != b.Mark.Priority {
			return a.Mark.Priority > b.Mark.Priority
		}
		return a.seq > b.seq
	})

	return lo.Must(m.Style(top.Mark.StyleName)).Background
}
