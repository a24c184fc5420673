package markup

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Tags rendered as spans with a fixed style.
var styleTags = map[string]Style{
	"b":      {Bold: true},
	"strong": {Bold: true},
	"i":      {Italic: true},
	"em":     {Italic: true},
	"u":      {Underline: true},
}

// Tags whose end marks a line break.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

type frame struct {
	tag      string
	style    Style
	children []Node
}

type parser struct {
	root  []Node
	stack []frame
	pre   int
	code  int
}

// Parse converts one card field into nodes. It never fails: stray end tags
// are ignored and unclosed spans end with the field.
func Parse(field string) []Node {
	toks := tokenize(norm.NFC.String(field))

	p := &parser{}
	for i, t := range toks {
		switch t.kind {
		case tokText:
			if p.pre == 0 && isLayoutWhitespace(toks, i) {
				continue
			}
			p.text(html.UnescapeString(t.raw))
		case tokMarker:
			p.add(t.node)
		case tokStartTag:
			p.startTag(t)
		case tokEndTag:
			p.endTag(t.name)
		}
	}
	return p.finish()
}

// isLayoutWhitespace reports whether toks[i] is blank text holding a newline
// between two tags, as HTML generators emit between block elements.
func isLayoutWhitespace(toks []token, i int) bool {
	t := toks[i]
	if strings.TrimSpace(t.raw) != "" || !strings.Contains(t.raw, "\n") {
		return false
	}
	if i == 0 || i == len(toks)-1 {
		return false
	}
	isTag := func(k tokenKind) bool { return k == tokStartTag || k == tokEndTag }
	return isTag(toks[i-1].kind) && isTag(toks[i+1].kind)
}

func (p *parser) add(n Node) {
	if len(p.stack) > 0 {
		top := &p.stack[len(p.stack)-1]
		top.children = append(top.children, n)
		return
	}
	p.root = append(p.root, n)
}

func (p *parser) text(s string) {
	if s == "" {
		return
	}
	code := p.pre > 0 || p.code > 0
	if p.pre == 0 {
		p.add(Text{Value: s, Code: code})
		return
	}
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			p.add(Break{})
		}
		if line != "" {
			p.add(Text{Value: line, Code: code})
		}
	}
}

func (p *parser) startTag(t token) {
	switch t.name {
	case "span":
		if !t.selfClosing {
			p.stack = append(p.stack, frame{tag: t.name, style: ParseStyle(t.attrs["style"])})
		}
	case "b", "strong", "i", "em", "u":
		if !t.selfClosing {
			p.stack = append(p.stack, frame{tag: t.name, style: styleTags[t.name]})
		}
	case "img":
		src, alt := t.attrs["src"], t.attrs["alt"]
		if isFormula(src, alt) {
			p.add(FormulaImage{Src: src, Alt: alt})
		} else if src != "" {
			p.add(Image{Src: src})
		}
	case "br", "hr":
		p.add(Break{})
	case "pre":
		p.pre++
	case "code":
		p.code++
	}
}

func (p *parser) endTag(name string) {
	switch {
	case name == "span" || styleTags[name] != (Style{}):
		for i := len(p.stack) - 1; i >= 0; i-- {
			if p.stack[i].tag == name {
				for len(p.stack) > i {
					p.pop()
				}
				return
			}
		}
	case name == "pre":
		if p.pre > 0 {
			p.pre--
		}
	case name == "code":
		if p.code > 0 {
			p.code--
		}
	case blockTags[name]:
		p.add(Break{})
	}
}

func (p *parser) pop() {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.add(Span{Style: f.style, Children: f.children})
}

func (p *parser) finish() []Node {
	for len(p.stack) > 0 {
		p.pop()
	}
	return p.root
}

// isFormula reports whether an image was rendered from a formula: Anki names
// those latex-<hash>.png, and formulas in alt text are wrapped in dollars.
func isFormula(src, alt string) bool {
	if alt == "" {
		return false
	}
	if strings.HasPrefix(path.Base(src), "latex-") {
		return true
	}
	return len(alt) >= 2 && alt[0] == '$' && alt[len(alt)-1] == '$'
}
