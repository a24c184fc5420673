package deck

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alnah/go-ankiexport"
	"github.com/alnah/go-ankiexport/internal/yamlutil"
)

type yamlDeck struct {
	Name     string     `yaml:"name"`
	MediaDir string     `yaml:"mediaDir"`
	Cards    []yamlCard `yaml:"cards"`
}

type yamlCard struct {
	ID       int64     `yaml:"id"`
	Created  time.Time `yaml:"created"`
	Question string    `yaml:"question"`
	Answer   string    `yaml:"answer"`
}

// loadYAML reads a YAML deck. Cards without an id are numbered by position,
// and a relative mediaDir is taken from the deck file's directory.
func loadYAML(path string) (*ankiexport.MemoryDeck, error) {
	var doc yamlDeck
	if err := yamlutil.ReadFileStrict(path, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
	}

	name := doc.Name
	if name == "" {
		name = baseName(path)
	}

	mediaDir := doc.MediaDir
	if mediaDir != "" && !filepath.IsAbs(mediaDir) {
		mediaDir = filepath.Join(filepath.Dir(path), mediaDir)
	}

	cards := make([]ankiexport.Card, 0, len(doc.Cards))
	for i, c := range doc.Cards {
		id := c.ID
		if id == 0 {
			id = int64(i + 1)
		}
		cards = append(cards, ankiexport.Card{
			ID:       id,
			Created:  c.Created,
			Question: c.Question,
			Answer:   c.Answer,
		})
	}

	return ankiexport.NewDeck(name, existingDir(mediaDir), cards), nil
}
