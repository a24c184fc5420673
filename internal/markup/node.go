package markup

import (
	"regexp"
	"strings"
)

// Node is one element of a parsed field.
type Node interface {
	node()
}

// Text is a run of decoded text. Code is set inside <pre> and <code>.
type Text struct {
	Value string
	Code  bool
}

// Span applies a Style to its children.
type Span struct {
	Style    Style
	Children []Node
}

// Image is an <img> that is not a rendered formula.
type Image struct {
	Src string
}

// FormulaImage is an image Anki generated from a formula; Alt holds the source.
type FormulaImage struct {
	Src string
	Alt string
}

// MathKind selects the delimiters of a math marker.
type MathKind int

const (
	// MathRaw is [latex]...[/latex].
	MathRaw MathKind = iota
	// MathInline is [$]...[/$].
	MathInline
	// MathDisplay is [$$]...[/$$].
	MathDisplay
)

// Delims returns the marker's opening and closing delimiters.
func (k MathKind) Delims() (open, closing string) {
	switch k {
	case MathInline:
		return "[$]", "[/$]"
	case MathDisplay:
		return "[$$]", "[/$$]"
	default:
		return "[latex]", "[/latex]"
	}
}

// Math is a math marker. Body has <br> turned into newlines, other tags
// removed and entities decoded.
type Math struct {
	Kind MathKind
	Body string
}

// Break is a forced line break.
type Break struct{}

// Sound is a [sound:...] reference.
type Sound struct {
	Ref string
}

func (Text) node()         {}
func (Span) node()         {}
func (Image) node()        {}
func (FormulaImage) node() {}
func (Math) node()         {}
func (Break) node()        {}
func (Sound) node()        {}

var altBreakPattern = regexp.MustCompile(`(?i)<br\s*/?\s*>`)

// Formula returns the alt text with <br> as newlines and \$ unescaped.
func (f FormulaImage) Formula() string {
	s := altBreakPattern.ReplaceAllString(f.Alt, "\n")
	return strings.ReplaceAll(s, `\$`, "$")
}

// HasContent reports whether the span holds anything visible: non-blank
// text, an image or a math marker.
func (s Span) HasContent() bool {
	return hasContent(s.Children)
}

func hasContent(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			if strings.TrimSpace(n.Value) != "" {
				return true
			}
		case Span:
			if hasContent(n.Children) {
				return true
			}
		case Image, FormulaImage, Math:
			return true
		}
	}
	return false
}
