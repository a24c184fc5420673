package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Style is the subset of CSS the renderers understand.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	// Color is six lowercase hex digits, or empty.
	Color string
}

var (
	fontWeightPattern = regexp.MustCompile(`(?i)font-weight\s*:\s*([^;]+)`)
	colorPattern      = regexp.MustCompile(`(?i)(?:^|[;\s])color\s*:\s*#([0-9a-f]{6}|[0-9a-f]{3})\b`)
)

// Weights that do not render bold.
var lightWeights = map[string]bool{
	"normal":  true,
	"lighter": true,
	"100":     true,
	"200":     true,
	"300":     true,
	"400":     true,
}

// ParseStyle reads a style attribute. Matching is case-insensitive and
// background-color is not taken as the text color.
func ParseStyle(attr string) Style {
	var s Style

	if m := fontWeightPattern.FindStringSubmatch(attr); m != nil {
		weight := strings.ToLower(strings.TrimSpace(m[1]))
		s.Bold = !lightWeights[weight]
	}

	lower := strings.ToLower(attr)
	s.Italic = strings.Contains(lower, "italic")
	s.Underline = strings.Contains(lower, "underline")

	if m := colorPattern.FindStringSubmatch(attr); m != nil {
		hex := strings.ToLower(m[1])
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		s.Color = hex
	}

	return s
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// HasColor reports whether a text color is set.
func (s Style) HasColor() bool {
	return s.Color != ""
}

// RGB returns the color components in 0..255.
func (s Style) RGB() (r, g, b int) {
	if len(s.Color) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s.Color, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// WithoutColor returns a copy of s with the color cleared.
func (s Style) WithoutColor() Style {
	s.Color = ""
	return s
}
