package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/highlight"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/region"
	"github.com/samber/mo"
)

// previewBubble holds the editor, the highlighter bound to it and the view components.
type previewBubble struct {
	options *Options
	editor  *host.Memory
	hl      *highlight.Highlighter
	buf     host.Buffer
	regions []region.Region
	dark    bool

	keymap    *keymap
	viewportC viewport.Model
	helpC     help.Model

	width, height int
}

func newBubble(options *Options) *previewBubble {
	editor := host.NewMemory(host.Light)
	b := &previewBubble{
		options:   options,
		editor:    editor,
		buf:       editor.OpenBuffer(options.Lines),
		regions:   region.Multiline(region.Scan(options.Lines, options.Delimiters)),
		dark:      options.Dark,
		keymap:    newKeymap(),
		viewportC: viewport.New(0, 0),
		helpC:     help.New(),
	}

	b.applyTheme()
	b.hl = highlight.New(editor, options.Highlight)
	b.paint()
	return b
}

// applyTheme pushes the current light/dark theme into the editor.
func (b *previewBubble) applyTheme() {
	bg := b.options.Themes[1]
	pref := host.Light
	if b.dark {
		bg, pref = b.options.Themes[0], host.Dark
	}

	b.editor.SetPreference(pref)
	b.editor.SetUserStyle(host.NormalStyle, mo.Some[color.Hex](bg))
}

func (b *previewBubble) paint() {
	b.hl.Clear(b.buf)
	b.hl.PaintRegions(b.buf, b.regions)
	b.refresh()
}

func (b *previewBubble) refresh() {
	b.viewportC.SetContent(b.editor.Render(b.buf, b.width))
}

func (b *previewBubble) toggleTheme() {
	b.dark = !b.dark
	b.applyTheme()
	b.hl.Retheme()
	b.paint()
}

func (b *previewBubble) toggleColors() {
	opts := b.hl.Options()
	opts.Policy.Enabled = !opts.Policy.Enabled
	b.hl.Clear(b.buf)
	b.hl.SetOptions(opts)
	b.paint()
}

func (b *previewBubble) resize(width, height int) {
	b.width, b.height = width, height
	b.helpC.Width = width
	b.viewportC.Width = width
	b.viewportC.Height = max(1, height-2)
	b.refresh()
}
