// Package markup parses the HTML stored in Anki card fields into a small
// node tree shared by the LaTeX and MediaWiki renderers.
//
// Fields are normalized to NFC, lexed with golang.org/x/net/html and scanned
// for the Anki math markers [latex]..[/latex], [$]..[/$], [$$]..[/$$] and
// the [sound:..] reference. Markers are only recognized in text, never inside
// a tag's attributes, and may contain tags such as <br>.
//
// Unknown tags are dropped. Styling tags (span, b, strong, i, em, u) become
// Span nodes, and block boundaries (p, div, li, headings, hr) become Breaks.
package markup
