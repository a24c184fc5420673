package mediawiki

import "strings"

const black = "000000"

// ColorState carries the color context from one field to the next. Use one
// state per document.
type ColorState struct {
	black bool
	open  string
}

// NewColorState returns the state at the start of a document.
func NewColorState() *ColorState {
	return &ColorState{black: true}
}

// enter records a span of the given color and reports whether it needs a
// color wrapper. Black only needs one when the text is not already black.
func (c *ColorState) enter(color string) bool {
	wrap := color != black || !c.black
	c.black = color == black
	return wrap
}

func openColor(color string) string {
	return "<span style='color:#" + strings.ToUpper(color) + "'>"
}

const closeColor = "</span>"
