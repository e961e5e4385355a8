package counterapp

import (
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-store/backend"
	"github.com/odvcencio/furry-store/runtime"
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/store"
	"github.com/odvcencio/furry-store/widgets"
)

const (
	labelWidth  = 10
	swatchWidth = 4
	colorRow    = 4
	lastRow     = 5
)

// recentWindow is how long the last mutation stays highlighted.
const recentWindow = 750 * time.Millisecond

const helpText = `# furry-store

Keys

- ` + "`+`" + ` or ` + "`=`" + ` increase the counter
- ` + "`-`" + ` decrease the counter
- ` + "`c`" + ` cycle the color code
- ` + "`?`" + ` toggle this help
- ` + "`q`" + `, Esc or Ctrl-C quit
`

// CounterView shows a store's state and maps keys to its actions.
// It reads only through the store's View and CounterSquared.
type CounterView struct {
	widgets.Component
	store   *store.Store
	view    store.View
	squared state.View[int]
	palette []string
	logger  *log.Logger
	color   *widgets.SignalLabel
	help    *widgets.Markdown
}

// NewCounterView creates a view over s. The palette is what 'c' cycles
// through; it may be empty, in which case 'c' does nothing.
func NewCounterView(s *store.Store, palette []string, logger *log.Logger) *CounterView {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	view := s.State()
	v := &CounterView{
		store:   s,
		view:    view,
		squared: s.SquaredGetter(),
		palette: append([]string(nil), palette...),
		logger:  logger,
		color:   widgets.NewSignalLabel(view.ColorCodeValue(), nil),
		help:    widgets.NewMarkdown(helpText),
	}
	v.color.OnChange(v.Invalidate)
	v.help.DismissOn('?')
	return v
}

// Help returns the help overlay widget.
func (v *CounterView) Help() *widgets.Markdown {
	return v.help
}

// ChildWidgets returns the color label so it is bound and mounted with the view.
func (v *CounterView) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{v.color}
}

// Mount starts observing the store. Mounting again while already
// observing is a no-op.
func (v *CounterView) Mount() {
	if v.Subs.Len() > 0 {
		return
	}
	v.Observe(v.view, v.Invalidate)
	v.Observe(v.squared, v.Invalidate)
	v.Subs.Add(v.store.OnMutation(v.logMutation))
}

// Unmount stops observing the store.
func (v *CounterView) Unmount() {
	v.Subs.Clear()
}

// Render draws the state panel.
func (v *CounterView) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil {
		return
	}
	bounds := v.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := backend.DefaultStyle()
	ctx.Sub(bounds).Clear(style)

	last, recent := "none", false
	if m, ok := v.store.LastMutation(); ok {
		last = m.Action.String() + " " + m.ID.String()
		recent = v.store.Now().Sub(m.At) < recentWindow
	}
	lines := []string{
		"furry-store",
		"",
		row("Counter", strconv.Itoa(v.view.Counter())),
		row("Squared", strconv.Itoa(v.squared.Get())),
		row("Color", ""),
		row("Last", last),
		"",
		"+/- counter  c color  ? help  q quit",
	}
	for i, line := range lines {
		if i >= bounds.Height {
			break
		}
		lineStyle := style
		switch {
		case i == 0:
			lineStyle = style.Bold(true)
		case i == lastRow && recent:
			lineStyle = style.Reverse(true)
		}
		ctx.Buffer.SetString(bounds.X, bounds.Y+i, runewidth.Truncate(line, bounds.Width, ""), lineStyle)
	}
	if colorRow < bounds.Height {
		v.renderColor(ctx, bounds)
	}
	v.MarkRendered()
}

func (v *CounterView) renderColor(ctx runtime.RenderContext, bounds runtime.Rect) {
	code := v.view.ColorCode()
	avail := bounds.Width - labelWidth
	if avail <= 0 {
		return
	}
	width := min(runewidth.StringWidth(code), avail)
	v.color.Layout(runtime.Rect{X: bounds.X + labelWidth, Y: bounds.Y + colorRow, Width: width, Height: 1})
	v.color.Render(ctx)

	c, ok := backend.ResolveColor(code)
	if !ok {
		return
	}
	x := bounds.X + labelWidth + width + 1
	w := min(swatchWidth, bounds.X+bounds.Width-x)
	if w > 0 {
		ctx.Buffer.Fill(runtime.Rect{X: x, Y: bounds.Y + colorRow, Width: w, Height: 1}, ' ', backend.SwatchStyle(c))
	}
}

// HandleMessage maps keys to store actions.
func (v *CounterView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	if key.Ctrl && key.Rune == 'c' {
		return runtime.WithCommand(runtime.Quit{})
	}
	switch key.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return runtime.WithCommand(runtime.Quit{})
	case tcell.KeyRune:
		return v.handleRune(key.Rune)
	}
	return runtime.Unhandled()
}

func (v *CounterView) handleRune(r rune) runtime.HandleResult {
	switch r {
	case '+', '=':
		v.store.IncreaseCounter()
	case '-':
		v.store.DecreaseCounter()
	case 'c':
		next, ok := nextColor(v.palette, v.view.ColorCode())
		if !ok {
			return runtime.Unhandled()
		}
		v.store.SetColorCode(next)
	case '?':
		return runtime.WithCommand(runtime.PushOverlay{Widget: v.help, Modal: true})
	case 'q':
		return runtime.WithCommand(runtime.Quit{})
	default:
		return runtime.Unhandled()
	}
	v.Invalidate()
	v.Services.After(recentWindow, runtime.InvalidateMsg{})
	return runtime.Handled()
}

func (v *CounterView) logMutation(m store.Mutation) {
	v.logger.Printf("mutation id=%s action=%s counter=%d colorCode=%q",
		m.ID, m.Action, m.State.Counter, m.State.ColorCode)
}

// nextColor returns the palette entry after current, wrapping around.
// A current value outside the palette restarts at the first entry.
func nextColor(palette []string, current string) (string, bool) {
	if len(palette) == 0 {
		return "", false
	}
	for i, c := range palette {
		if c == current {
			return palette[(i+1)%len(palette)], true
		}
	}
	return palette[0], true
}

func row(label, value string) string {
	return label + strings.Repeat(" ", max(0, labelWidth-len(label))) + value
}
