package ankiexport

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/alnah/go-ankiexport/internal/assets"
	"github.com/alnah/go-ankiexport/internal/latex"
	"github.com/alnah/go-ankiexport/internal/mediawiki"
)

// Separators written after each part of a card.
const (
	questionRule = ` \ \\ --- \ \\ ` + "\n"
	answerRule   = ` \ \\ \ \\ ` + "\n"
	cardRule     = ` \hrule \ \\ ` + "\n"

	wikiQuestionOpen  = "<big>"
	wikiQuestionClose = "</big><br /><br />\n\n"
	wikiCardSeparator = "\n\n----\n\n"
)

// preambleData is passed to the preamble template.
type preambleData struct {
	DeckName string
	// GraphicsPath is the media directory with forward slashes, or "".
	GraphicsPath string
}

// documentTemplates holds the parsed LaTeX wrapper templates.
type documentTemplates struct {
	preamble  *template.Template
	postamble *template.Template
}

// loadTemplates parses the preamble and postamble from loader.
func loadTemplates(loader assets.Loader) (*documentTemplates, error) {
	parse := func(name string) (*template.Template, error) {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Delims("<<", ">>").Option("missingkey=error").Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplate, name, err)
		}
		return tmpl, nil
	}

	pre, err := parse(assets.PreambleTemplate)
	if err != nil {
		return nil, err
	}
	post, err := parse(assets.PostambleTemplate)
	if err != nil {
		return nil, err
	}
	return &documentTemplates{preamble: pre, postamble: post}, nil
}

var defaultTemplates = mustLoadTemplates()

func mustLoadTemplates() *documentTemplates {
	t, err := loadTemplates(assets.NewEmbeddedLoader())
	if err != nil {
		panic(err)
	}
	return t
}

// sortedCards returns the cards by creation time, then ID.
func sortedCards(deck Deck) []Card {
	cards := slices.Clone(deck.Cards())
	slices.SortStableFunc(cards, func(a, b Card) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return cards
}

// graphicsPath converts a media directory to the form \graphicspath wants.
func graphicsPath(mediaDir string) string {
	if mediaDir == "" {
		return ""
	}
	return strings.ReplaceAll(filepath.Clean(mediaDir), `\`, "/")
}

// latex assembles the full LaTeX document for deck.
func (t *documentTemplates) latex(deck Deck) (string, error) {
	var b strings.Builder

	data := preambleData{DeckName: deck.Name(), GraphicsPath: graphicsPath(deck.MediaDir())}
	if err := t.preamble.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	b.WriteString("\n")

	for _, card := range sortedCards(deck) {
		b.WriteString(latex.Render(card.Question))
		b.WriteString(questionRule)
		b.WriteString(latex.Render(card.Answer))
		b.WriteString(answerRule)
		b.WriteString(cardRule)
	}

	b.WriteString("\n")
	if err := t.postamble.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	b.WriteString("\n")

	return b.String(), nil
}

// LaTeXDocument renders deck as a complete LaTeX document using the
// built-in templates.
func LaTeXDocument(deck Deck) (string, error) {
	if deck == nil {
		return "", ErrNilDeck
	}
	return defaultTemplates.latex(deck)
}

// MediaWikiDocument renders deck as MediaWiki markup. Color state carries
// from each field to the next.
func MediaWikiDocument(deck Deck) string {
	if deck == nil {
		return ""
	}

	state := mediawiki.NewColorState()
	var b strings.Builder
	for i, card := range sortedCards(deck) {
		if i > 0 {
			b.WriteString(wikiCardSeparator)
		}
		b.WriteString(wikiQuestionOpen)
		b.WriteString(mediawiki.Render(card.Question, deck.Name(), state))
		b.WriteString(wikiQuestionClose)
		b.WriteString(mediawiki.Render(card.Answer, deck.Name(), state))
	}
	return b.String()
}
