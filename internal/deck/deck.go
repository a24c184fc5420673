// Package deck reads flashcard decks from disk.
//
// Supported sources, chosen by file extension:
//
//	.yaml, .yml   cards listed in YAML
//	.md .markdown Markdown: "# " names the deck, each "## " heading is a
//	              question and the blocks below it are the answer
//	.anki         Anki 1.x collection (SQLite, cards table)
//	.anki2        Anki 2.x collection (SQLite, notes table)
package deck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-ankiexport"
	"github.com/alnah/go-ankiexport/internal/fileutil"
)

// Sentinel errors for deck loading.
var (
	ErrUnsupportedSource = errors.New("unsupported deck source")
	ErrDeckOpen          = errors.New("failed to open deck")
	ErrDeckParse         = errors.New("failed to parse deck")
)

// Extensions lists the deck file extensions Load accepts.
var Extensions = []string{".yaml", ".yml", ".md", ".markdown", ".anki", ".anki2"}

// Load reads the deck at path.
func Load(path string) (*ankiexport.MemoryDeck, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s: no such file", ErrDeckOpen, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".md", ".markdown":
		return loadMarkdown(path)
	case ".anki":
		return loadAnki1(path)
	case ".anki2":
		return loadAnki2(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}

// baseName returns the file name of path without its extension.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// existingDir returns dir if it is a directory, "" otherwise.
func existingDir(dir string) string {
	if dir != "" && fileutil.DirExists(dir) {
		return dir
	}
	return ""
}
