package markup

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokStartTag
	tokEndTag
	tokMarker
	tokOther
)

// token is one lexeme of a field. raw is the exact source text, so the
// tokens of a field concatenate back to it.
type token struct {
	kind        tokenKind
	raw         string
	start       int
	name        string
	attrs       map[string]string
	selfClosing bool
	node        Node
}

func (t token) end() int {
	return t.start + len(t.raw)
}

var markerPattern = regexp.MustCompile(
	`(?is)\[latex\](.+?)\[/latex\]|\[\$\](.+?)\[/\$\]|\[\$\$\](.+?)\[/\$\$\]|\[sound:(.+?)\]`)

// tokenize lexes src and replaces every marker, together with any tags it
// spans, by a single tokMarker.
func tokenize(src string) []token {
	toks := lex(src)
	marks := findMarkers(src, toks)
	if len(marks) == 0 {
		return toks
	}

	out := make([]token, 0, len(toks)+2*len(marks))
	mi := 0
	for _, t := range toks {
		pos := t.start
		for pos < t.end() {
			if mi < len(marks) && marks[mi].start < t.end() {
				m := marks[mi]
				if m.start > pos {
					out = append(out, textToken(src, pos, m.start))
					pos = m.start
				}
				if pos == m.start {
					out = append(out, m)
				}
				if m.end() <= t.end() {
					pos = m.end()
					mi++
				} else {
					pos = t.end()
				}
				continue
			}
			if pos == t.start {
				out = append(out, t)
			} else {
				out = append(out, textToken(src, pos, t.end()))
			}
			pos = t.end()
		}
	}
	return out
}

func textToken(src string, from, to int) token {
	return token{kind: tokText, raw: src[from:to], start: from}
}

func lex(src string) []token {
	z := html.NewTokenizer(strings.NewReader(src))
	var toks []token
	pos := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// An unterminated tag or comment at the end is not returned by
			// the tokenizer; keep it as text.
			if pos < len(src) {
				toks = append(toks, textToken(src, pos, len(src)))
			}
			return toks
		}
		// Raw must be copied before TagName, which lowercases the buffer.
		t := token{raw: string(z.Raw()), start: pos}
		pos += len(t.raw)

		switch tt {
		case html.TextToken:
			t.kind = tokText
		case html.StartTagToken, html.SelfClosingTagToken:
			t.kind = tokStartTag
			t.selfClosing = tt == html.SelfClosingTagToken
			t.name, t.attrs = tagOf(z)
		case html.EndTagToken:
			t.kind = tokEndTag
			t.name, _ = tagOf(z)
		case html.CommentToken:
			// A comment cut off by the end of the field is text.
			t.kind = tokOther
			if !strings.HasSuffix(t.raw, ">") {
				t.kind = tokText
			}
		default:
			t.kind = tokOther
		}
		toks = append(toks, t)
	}
}

func tagOf(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	var attrs map[string]string
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[string(key)] = string(val)
	}
	return string(name), attrs
}

// findMarkers returns the markers of src in order. A match that starts or
// ends inside a tag is skipped and the search resumes one byte later.
func findMarkers(src string, toks []token) []token {
	var marks []token
	from := 0
	for from < len(src) {
		loc := markerPattern.FindStringSubmatchIndex(src[from:])
		if loc == nil {
			break
		}
		start, end := from+loc[0], from+loc[1]
		if insideTag(toks, start) || insideTag(toks, end-1) {
			from = start + 1
			continue
		}

		group := func(i int) string {
			return src[from+loc[2*i] : from+loc[2*i+1]]
		}
		var n Node
		switch {
		case loc[2] >= 0:
			n = Math{Kind: MathRaw, Body: decodeBody(group(1))}
		case loc[4] >= 0:
			n = Math{Kind: MathInline, Body: decodeBody(group(2))}
		case loc[6] >= 0:
			n = Math{Kind: MathDisplay, Body: decodeBody(group(3))}
		default:
			n = Sound{Ref: group(4)}
		}
		marks = append(marks, token{kind: tokMarker, raw: src[start:end], start: start, node: n})
		from = end
	}
	return marks
}

func insideTag(toks []token, pos int) bool {
	i := sort.Search(len(toks), func(i int) bool { return toks[i].end() > pos })
	if i == len(toks) {
		return false
	}
	return toks[i].start <= pos && toks[i].kind != tokText
}

// decodeBody keeps the text of a marker body, turning <br> into newlines.
func decodeBody(raw string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	pos := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if pos < len(raw) {
				b.WriteString(html.UnescapeString(raw[pos:]))
			}
			return b.String()
		}
		pos += len(z.Raw())
		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
