package ankiexport

import (
	"fmt"

	"github.com/alnah/go-ankiexport/internal/assets"
	"github.com/alnah/go-ankiexport/internal/fileutil"
)

// Exporter renders decks and writes them to disk.
type Exporter struct {
	assetPath string
	templates *documentTemplates
	compiler  *Compiler
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithAssetPath loads templates from path/templates, falling back to the
// built-in templates for files that are missing.
func WithAssetPath(path string) Option {
	return func(e *Exporter) {
		e.assetPath = path
	}
}

// WithCompiler sets the compiler used for FormatPDF.
func WithCompiler(c *Compiler) Option {
	return func(e *Exporter) {
		if c != nil {
			e.compiler = c
		}
	}
}

// NewExporter creates an Exporter. Returns ErrInvalidAssetPath if the asset
// path is set but unusable, or a template error if a custom template does
// not parse.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		templates: defaultTemplates,
		compiler:  NewCompiler(""),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.assetPath != "" {
		resolver, err := assets.NewResolver(e.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		e.templates, err = loadTemplates(resolver)
		if err != nil {
			return nil, fmt.Errorf("loading templates: %w", err)
		}
	}

	return e, nil
}

// Document renders deck in the given format. FormatPDF returns the LaTeX
// source that would be compiled.
func (e *Exporter) Document(deck Deck, f Format) (string, error) {
	if deck == nil {
		return "", ErrNilDeck
	}
	switch f {
	case FormatLaTeX, FormatPDF:
		return e.templates.latex(deck)
	case FormatMediaWiki:
		return MediaWikiDocument(deck), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Export writes deck to path in the given format. An empty path writes
// nothing. For FormatPDF a compiler failure is reported through
// Result.Written and Result.Log, not as an error.
func (e *Exporter) Export(deck Deck, f Format, path string) (Result, error) {
	res := Result{Path: path, Format: f}
	if path == "" {
		return res, nil
	}

	doc, err := e.Document(deck, f)
	if err != nil {
		return res, err
	}
	res.Cards = len(deck.Cards())

	if f == FormatPDF {
		compiled, err := e.compiler.Compile(doc, path)
		compiled.Format = f
		compiled.Cards = res.Cards
		return compiled, err
	}

	if err := fileutil.WriteFile(path, doc); err != nil {
		return res, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	res.Written = true
	return res, nil
}
