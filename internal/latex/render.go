package latex

import (
	"fmt"
	"strings"

	"github.com/alnah/go-ankiexport/internal/markup"
)

const (
	// LineBreak ends a line outside of any styled span.
	LineBreak = ` \ \\` + "\n"

	// inside a span the styles are closed around the break
	inlineBreak = ` \ \\ `

	imageCommand = `\includegraphics*[scale=0.5]{`
)

type renderer struct {
	b      strings.Builder
	styles []markup.Style
}

// Render converts one card field from Anki HTML to LaTeX.
func Render(field string) string {
	return RenderNodes(markup.Parse(field))
}

// RenderNodes converts parsed nodes to LaTeX.
func RenderNodes(nodes []markup.Node) string {
	var r renderer
	r.nodes(nodes)
	return r.b.String()
}

func (r *renderer) nodes(nodes []markup.Node) {
	for _, n := range nodes {
		r.node(n)
	}
}

func (r *renderer) node(n markup.Node) {
	switch n := n.(type) {
	case markup.Text:
		if n.Code {
			r.b.WriteString(`\texttt{` + EscapeCode(n.Value) + "}")
			return
		}
		r.text(Escape(n.Value))
	case markup.Span:
		r.span(n)
	case markup.Break:
		r.lineBreak()
	case markup.Image:
		r.b.WriteString(imageCommand + n.Src + "}")
	case markup.FormulaImage:
		r.b.WriteString(decodeMath(n.Formula()))
	case markup.Math:
		r.math(n)
	case markup.Sound:
		// audio has no printed form
	}
}

// text writes escaped text. Leading spaces right after a closing brace are
// collapsed into a control space so LaTeX keeps them.
func (r *renderer) text(s string) {
	trimmed := strings.TrimLeft(s, " ")
	if trimmed != s && trimmed != "" && strings.HasSuffix(r.b.String(), "}") {
		r.b.WriteString(`\ `)
		r.b.WriteString(trimmed)
		return
	}
	r.b.WriteString(s)
}

func (r *renderer) span(s markup.Span) {
	if s.Style.IsZero() {
		r.nodes(s.Children)
		return
	}
	r.b.WriteString(openStyle(s.Style))
	r.styles = append(r.styles, s.Style)
	r.nodes(s.Children)
	r.styles = r.styles[:len(r.styles)-1]
	r.b.WriteString(closeStyle(s.Style))
}

// lineBreak ends the current line. Inside styled spans every open group is
// closed first and reopened after, since \\ cannot appear inside them.
func (r *renderer) lineBreak() {
	if len(r.styles) == 0 {
		r.b.WriteString(LineBreak)
		return
	}
	for i := len(r.styles) - 1; i >= 0; i-- {
		r.b.WriteString(closeStyle(r.styles[i]))
	}
	r.b.WriteString(inlineBreak)
	for _, st := range r.styles {
		r.b.WriteString(openStyle(st))
	}
}

func (r *renderer) math(m markup.Math) {
	body := decodeMath(m.Body)
	switch m.Kind {
	case markup.MathInline:
		r.b.WriteString("{$" + body + "$}")
	case markup.MathDisplay:
		r.b.WriteString(`{\begin{displaymath}` + body + `\end{displaymath}}`)
	default:
		r.b.WriteString("{" + body + "}")
	}
}

func openStyle(s markup.Style) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString(`\textbf{`)
	}
	if s.Italic {
		b.WriteString(`\textit{`)
	}
	if s.Underline {
		b.WriteString(`\underline{`)
	}
	if s.HasColor() {
		red, green, blue := s.RGB()
		fmt.Fprintf(&b, `{\color[RGB]{%d,%d,%d}`, red, green, blue)
	}
	return b.String()
}

func closeStyle(s markup.Style) string {
	n := 0
	for _, on := range []bool{s.Bold, s.Italic, s.Underline, s.HasColor()} {
		if on {
			n++
		}
	}
	return strings.Repeat("}", n)
}
