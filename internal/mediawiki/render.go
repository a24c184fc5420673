package mediawiki

import (
	"strings"

	"github.com/alnah/go-ankiexport/internal/markup"
)

// BreakTag is the line break written for <br> and newlines.
const BreakTag = "<br />\n"

type renderer struct {
	b     strings.Builder
	deck  string
	state *ColorState
	// styles holds the open quote and underline markup, outermost first.
	// After a break they stay closed until more content is written, since
	// quote markup does not continue past the end of a line.
	styles    []markup.Style
	suspended bool
}

// Render converts one card field to MediaWiki markup. deck names the image
// links, and state is shared by all fields of a document. A nil state starts
// from black.
func Render(field, deck string, state *ColorState) string {
	if state == nil {
		state = NewColorState()
	}
	r := renderer{deck: deck, state: state}
	for _, n := range markup.Parse(field) {
		r.top(n)
	}
	r.flushColor()
	return normalize(r.b.String())
}

// top renders a root-level node. Colored spans with content keep their
// wrapper open so the next span of the same color can join it.
func (r *renderer) top(n markup.Node) {
	s, ok := n.(markup.Span)
	if !ok || !s.Style.HasColor() || !s.HasContent() {
		r.flushColor()
		r.node(n)
		return
	}

	color := s.Style.Color
	wrap := r.state.enter(color)
	switch {
	case r.state.open == color:
	case wrap:
		r.flushColor()
		r.b.WriteString(openColor(color))
		r.state.open = color
	default:
		r.flushColor()
	}
	r.styled(s.Style, s.Children)
}

func (r *renderer) flushColor() {
	if r.state.open != "" {
		r.b.WriteString(closeColor)
		r.state.open = ""
	}
}

func (r *renderer) nodes(nodes []markup.Node) {
	for _, n := range nodes {
		r.node(n)
	}
}

func (r *renderer) node(n markup.Node) {
	switch n := n.(type) {
	case markup.Text:
		r.text(n.Value)
	case markup.Span:
		r.span(n)
	case markup.Break:
		r.lineBreak()
	case markup.Image:
		r.resume()
		r.b.WriteString("[[Image:anki_" + r.deck + "_" + n.Src + "]]")
	case markup.FormulaImage:
		r.resume()
		r.b.WriteString("<math>" + stripDelims(n.Formula()) + "</math>")
	case markup.Math:
		open, closing := n.Kind.Delims()
		r.resume()
		r.b.WriteString(open)
		r.text(n.Body)
		r.resume()
		r.b.WriteString(closing)
	case markup.Sound:
	}
}

func (r *renderer) text(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			r.lineBreak()
		}
		if line != "" {
			r.resume()
			r.b.WriteString(Escape(line))
		}
	}
}

// lineBreak closes the open styles innermost first and writes a break.
func (r *renderer) lineBreak() {
	if !r.suspended {
		for i := len(r.styles) - 1; i >= 0; i-- {
			r.b.WriteString(closeStyle(r.styles[i]))
		}
		r.suspended = len(r.styles) > 0
	}
	r.b.WriteString(BreakTag)
}

// resume reopens the styles closed by a break, outermost first.
func (r *renderer) resume() {
	if !r.suspended {
		return
	}
	for _, st := range r.styles {
		r.b.WriteString(openStyle(st))
	}
	r.suspended = false
}

// span renders a nested or uncolored span. Blank spans lose their markup.
func (r *renderer) span(s markup.Span) {
	if !s.HasContent() {
		r.nodes(s.Children)
		return
	}
	if s.Style.HasColor() && r.state.enter(s.Style.Color) {
		r.resume()
		r.b.WriteString(openColor(s.Style.Color))
		r.styled(s.Style, s.Children)
		r.b.WriteString(closeColor)
		return
	}
	r.styled(s.Style, s.Children)
}

// styled wraps children in underline, italic and bold markup, outermost
// first. The color wrapper is handled by the caller.
func (r *renderer) styled(s markup.Style, children []markup.Node) {
	s = s.WithoutColor()
	if s.IsZero() {
		r.nodes(children)
		return
	}

	r.resume()
	r.b.WriteString(openStyle(s))
	r.styles = append(r.styles, s)
	r.nodes(children)
	r.styles = r.styles[:len(r.styles)-1]

	switch {
	case !r.suspended:
		r.b.WriteString(closeStyle(s))
	case len(r.styles) == 0:
		r.suspended = false
	}
}

func openStyle(s markup.Style) string {
	var b strings.Builder
	if s.Underline {
		b.WriteString("<u>")
	}
	if s.Italic {
		b.WriteString("''")
	}
	if s.Bold {
		b.WriteString("'''")
	}
	return b.String()
}

func closeStyle(s markup.Style) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("'''")
	}
	if s.Italic {
		b.WriteString("''")
	}
	if s.Underline {
		b.WriteString("</u>")
	}
	return b.String()
}

// normalize drops trailing breaks and whitespace, then trims every line.
func normalize(s string) string {
	for {
		trimmed := strings.TrimRight(s, " \t\r\n")
		trimmed = strings.TrimSuffix(trimmed, "<br />")
		if trimmed == s {
			break
		}
		s = trimmed
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// stripDelims removes the first and last character of a formula.
func stripDelims(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return ""
	}
	return string(runes[1 : len(runes)-1])
}
