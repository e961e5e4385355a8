package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-store/backend"
	"github.com/odvcencio/furry-store/runtime"
	"github.com/odvcencio/furry-store/scroll"
)

// MarkdownLine is one rendered line of a Markdown widget.
type MarkdownLine struct {
	Text    string
	Heading bool
}

// Markdown renders a small markdown document as styled text lines.
// Headings are bold, list items get a bullet, and inline markup is
// flattened to its text. Text taller than the bounds scrolls with the
// arrow, page, home and end keys; long lines are clipped.
type Markdown struct {
	Base
	lines        []MarkdownLine
	style        backend.Style
	headingStyle backend.Style
	dismissKeys  []rune
	viewport     scroll.Viewport
	scrollbar    scroll.Scrollbar
}

// NewMarkdown parses source into a Markdown widget.
func NewMarkdown(source string) *Markdown {
	style := backend.DefaultStyle()
	m := &Markdown{
		lines:        ParseMarkdown(source),
		style:        style,
		headingStyle: style.Bold(true),
		scrollbar:    scroll.NewScrollbar(),
	}
	m.viewport.SetContentHeight(len(m.lines))
	return m
}

// Viewport returns the scroll state.
func (m *Markdown) Viewport() *scroll.Viewport {
	return &m.viewport
}

// Layout stores the bounds and resizes the viewport.
func (m *Markdown) Layout(bounds runtime.Rect) {
	m.Base.Layout(bounds)
	m.viewport.SetViewHeight(bounds.Height)
}

// Lines returns the parsed lines.
func (m *Markdown) Lines() []MarkdownLine {
	return m.lines
}

// DismissOn makes the widget emit PopOverlay for any of keys, so it can be
// shown as an overlay. Escape always dismisses once keys are set.
func (m *Markdown) DismissOn(keys ...rune) {
	m.dismissKeys = keys
}

// Measure returns the size of the parsed text.
func (m *Markdown) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, line := range m.lines {
		width = max(width, len([]rune(line.Text)))
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: len(m.lines)})
}

// Render draws the lines inside the widget bounds.
func (m *Markdown) Render(ctx runtime.RenderContext) {
	bounds := m.bounds
	if ctx.Buffer == nil || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', m.style)
	width := bounds.Width
	if m.viewport.Scrollable() {
		width--
		m.scrollbar.Render(ctx.Buffer, bounds.X+width, bounds.Y, bounds.Height, &m.viewport)
	}
	start, end := m.viewport.Visible()
	for i, line := range m.lines[start:end] {
		style := m.style
		if line.Heading {
			style = m.headingStyle
		}
		ctx.Buffer.SetString(bounds.X, bounds.Y+i, truncateString(line.Text, width), style)
	}
	m.MarkRendered()
}

// HandleMessage scrolls, and dismisses the overlay on a configured key.
func (m *Markdown) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	if m.scroll(key.Key) {
		m.needsRender = true
		return runtime.Handled()
	}
	if len(m.dismissKeys) == 0 {
		return runtime.Unhandled()
	}
	if key.Key == tcell.KeyEscape {
		return runtime.WithCommand(runtime.PopOverlay{})
	}
	for _, r := range m.dismissKeys {
		if key.Rune == r {
			return runtime.WithCommand(runtime.PopOverlay{})
		}
	}
	return runtime.Unhandled()
}

func (m *Markdown) scroll(key tcell.Key) bool {
	if !m.viewport.Scrollable() {
		return false
	}
	switch key {
	case tcell.KeyUp:
		m.viewport.ScrollBy(-1)
	case tcell.KeyDown:
		m.viewport.ScrollBy(1)
	case tcell.KeyPgUp:
		m.viewport.PageBy(-1)
	case tcell.KeyPgDn:
		m.viewport.PageBy(1)
	case tcell.KeyHome:
		m.viewport.ScrollToStart()
	case tcell.KeyEnd:
		m.viewport.ScrollToEnd()
	default:
		return false
	}
	return true
}

// ParseMarkdown flattens source into display lines.
func ParseMarkdown(source string) []MarkdownLine {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		lines   []MarkdownLine
		current strings.Builder
		heading bool
		prefix  string
	)
	flush := func() {
		lines = append(lines, MarkdownLine{Text: prefix + current.String(), Heading: heading})
		current.Reset()
		heading = false
		prefix = ""
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				if len(lines) > 0 {
					lines = append(lines, MarkdownLine{})
				}
				heading = true
			} else {
				flush()
			}
		case *ast.ListItem:
			if entering {
				prefix = "• "
			}
		case *ast.Paragraph, *ast.TextBlock:
			if !entering {
				flush()
			}
		case *ast.Text:
			if entering {
				current.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					current.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				current.Write(node.Value)
			}
		}
		return ast.WalkContinue, nil
	})
	return lines
}
