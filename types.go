package ankiexport

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the document an export produces.
type Format int

// Export formats.
const (
	FormatLaTeX Format = iota + 1
	FormatPDF
	FormatMediaWiki
)

// ParseFormat accepts latex, tex, pdf, wiki and mediawiki, in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latex", "tex":
		return FormatLaTeX, nil
	case "pdf":
		return FormatPDF, nil
	case "wiki", "mediawiki":
		return FormatMediaWiki, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be latex, pdf, or wiki)", ErrUnsupportedFormat, s)
	}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatLaTeX:
		return "latex"
	case FormatPDF:
		return "pdf"
	case FormatMediaWiki:
		return "wiki"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension used for default output names.
func (f Format) Extension() string {
	switch f {
	case FormatLaTeX:
		return "tex"
	case FormatPDF:
		return "pdf"
	case FormatMediaWiki:
		return "txt"
	default:
		return ""
	}
}

// Card is one flashcard. Question and Answer hold Anki's HTML.
type Card struct {
	ID       int64
	Created  time.Time
	Question string
	Answer   string
}

// Deck is a named collection of cards with an optional media directory.
type Deck interface {
	Name() string
	MediaDir() string
	Cards() []Card
}

// MemoryDeck is a Deck held in memory.
type MemoryDeck struct {
	name     string
	mediaDir string
	cards    []Card
}

// NewDeck creates a MemoryDeck holding a copy of cards.
func NewDeck(name, mediaDir string, cards []Card) *MemoryDeck {
	return &MemoryDeck{
		name:     name,
		mediaDir: mediaDir,
		cards:    append([]Card(nil), cards...),
	}
}

// Name returns the deck name.
func (d *MemoryDeck) Name() string { return d.name }

// MediaDir returns the directory holding the deck's images, or "".
func (d *MemoryDeck) MediaDir() string { return d.mediaDir }

// Cards returns a copy of the cards.
func (d *MemoryDeck) Cards() []Card { return append([]Card(nil), d.cards...) }

// Result reports what an export wrote.
type Result struct {
	Path    string
	Format  Format
	Written bool
	Cards   int
	// Pages is the page count of a written PDF, 0 if it could not be read.
	Pages int
	// Log is the compiler output of a PDF export.
	Log string
}
