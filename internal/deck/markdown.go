package deck

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	xhtml "golang.org/x/net/html"

	"github.com/alnah/go-ankiexport"
)

// highlightStyle is the chroma style for fenced code in answers.
const highlightStyle = "github"

var (
	headingPattern = regexp.MustCompile(`(?s)^<h[1-6][^>]*>(.*)</h[1-6]>\s*$`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// newMarkdown returns a goldmark instance producing the HTML Anki would
// store: hard line breaks, raw HTML kept, and code colored with inline
// styles since the export has no stylesheet.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			html.WithUnsafe(),
		),
	)
}

// loadMarkdown reads a Markdown deck. The first level-1 heading names the
// deck; each level-2 heading starts a card and the blocks up to the next
// level-1 or level-2 heading form its answer. Content before the first card
// is ignored.
func loadMarkdown(path string) (*ankiexport.MemoryDeck, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckOpen, path, err)
	}

	md := newMarkdown()
	doc := md.Parser().Parse(text.NewReader(src))

	var (
		name   string
		cards  []ankiexport.Card
		answer strings.Builder
		open   bool
	)
	flush := func() {
		if open {
			cards[len(cards)-1].Answer = strings.TrimRight(answer.String(), "\n")
		}
		answer.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		rendered, err := renderNode(md, src, n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
		}

		if h, ok := n.(*ast.Heading); ok && h.Level <= 2 {
			flush()
			inner := headingInner(rendered)
			if h.Level == 1 {
				open = false
				if name == "" {
					name = strings.TrimSpace(xhtml.UnescapeString(tagPattern.ReplaceAllString(inner, "")))
				}
				continue
			}
			cards = append(cards, ankiexport.Card{ID: int64(len(cards) + 1), Question: inner})
			open = true
			continue
		}

		if open {
			answer.WriteString(strings.TrimRight(rendered, "\n"))
		}
	}
	flush()

	if name == "" {
		name = baseName(path)
	}
	return ankiexport.NewDeck(name, "", cards), nil
}

func renderNode(md goldmark.Markdown, src []byte, n ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headingInner strips the <hN> element around a rendered heading.
func headingInner(rendered string) string {
	if m := headingPattern.FindStringSubmatch(rendered); m != nil {
		return m[1]
	}
	return strings.TrimSpace(rendered)
}
