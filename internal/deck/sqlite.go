package deck

import (
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alnah/go-ankiexport"
)

// fieldSeparator splits the fields of an Anki 2 note.
const fieldSeparator = "\x1f"

func openCollection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckOpen, path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckOpen, path, err)
	}
	return db, nil
}

func hasColumn(db *sql.DB, table, column string) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	return n > 0, err
}

// loadAnki1 reads an Anki 1.x collection, where each card row stores its
// rendered question and answer. Media lives in <name>.media next to it.
func loadAnki1(path string) (*ankiexport.MemoryDeck, error) {
	db, err := openCollection(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	ok, err := hasColumn(db, "cards", "question")
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s: not an Anki 1 collection", ErrDeckParse, path)
	}

	rows, err := db.Query(`SELECT id, created, question, answer FROM cards ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
	}
	defer func() { _ = rows.Close() }()

	var cards []ankiexport.Card
	for rows.Next() {
		var (
			c       ankiexport.Card
			created float64
		)
		if err := rows.Scan(&c.ID, &created, &c.Question, &c.Answer); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
		}
		c.Created = fromEpochSeconds(created)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
	}

	media := strings.TrimSuffix(path, filepath.Ext(path)) + ".media"
	return ankiexport.NewDeck(baseName(path), existingDir(media), cards), nil
}

// loadAnki2 reads an Anki 2.x collection. The first note field is the
// question and the second the answer; a note's id is its creation time in
// milliseconds. Media lives in collection.media next to it.
func loadAnki2(path string) (*ankiexport.MemoryDeck, error) {
	db, err := openCollection(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	ok, err := hasColumn(db, "notes", "flds")
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s: not an Anki 2 collection", ErrDeckParse, path)
	}

	rows, err := db.Query(`SELECT id, flds FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
	}
	defer func() { _ = rows.Close() }()

	var cards []ankiexport.Card
	for rows.Next() {
		var (
			id     int64
			fields string
		)
		if err := rows.Scan(&id, &fields); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
		}
		parts := strings.SplitN(fields, fieldSeparator, 3)
		c := ankiexport.Card{ID: id, Created: time.UnixMilli(id).UTC(), Question: parts[0]}
		if len(parts) > 1 {
			c.Answer = parts[1]
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, path, err)
	}

	media := filepath.Join(filepath.Dir(path), "collection.media")
	return ankiexport.NewDeck(baseName(path), existingDir(media), cards), nil
}

func fromEpochSeconds(s float64) time.Time {
	sec, frac := math.Modf(s)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
