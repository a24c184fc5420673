package ankiexport

import (
	"github.com/alnah/go-ankiexport/internal/latex"
	"github.com/alnah/go-ankiexport/internal/mediawiki"
)

// Escape protects plain text for the target format. LaTeX escaping keeps
// existing commands and is idempotent. Unknown formats return text unchanged.
func Escape(text string, f Format) string {
	switch f {
	case FormatLaTeX, FormatPDF:
		return latex.Escape(text)
	case FormatMediaWiki:
		return mediawiki.Escape(text)
	default:
		return text
	}
}

// ConvertField renders one card field for the target format. Colors in
// MediaWiki output start from black, as at the top of a document.
func ConvertField(field string, f Format, deckName string) (string, error) {
	switch f {
	case FormatLaTeX, FormatPDF:
		return latex.Render(field), nil
	case FormatMediaWiki:
		return mediawiki.Render(field, deckName, mediawiki.NewColorState()), nil
	default:
		return "", ErrUnsupportedFormat
	}
}
