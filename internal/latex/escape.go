package latex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lowercase Greek from U+03B1, in code point order.
var greekNames = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "", "pi", "rho", "varsigma",
	"sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

var replacements = buildReplacements()

func buildReplacements() map[rune]string {
	m := map[rune]string{
		'#':      `\#`,
		'&':      `\&`,
		'%':      `\%`,
		'$':      `\$`,
		'^':      `\^{}`,
		'"':      "''",
		'\u00a0': "~",
		'\u0251': `\ensuremath{\alpha}`,
		'\u00b5': `\ensuremath{\mu}`,
		'\u2190': `\ensuremath{\leftarrow}`,
		'\u2191': `\ensuremath{\uparrow}`,
		'\u2192': `\ensuremath{\rightarrow}`,
		'\u2193': `\ensuremath{\downarrow}`,
		'\u00b0': `\textdegree{}`,
		'\u00b9': `\textsuperscript{1}`,
		'\u00b2': `\textsuperscript{2}`,
		'\u00b3': `\textsuperscript{3}`,
		'\u20ac': `\ensuremath{\in}`,
		'\u00a3': `\textsterling{}`,
		'\u00a5': "Y",
	}
	for i, name := range greekNames {
		r := rune(0x03b1 + i)
		if name == "" {
			// Omicron looks like a Latin o and has no math command.
			m[r] = "o"
			continue
		}
		m[r] = `\ensuremath{\` + name + `}`
	}
	return m
}

// Escape makes card text safe for LaTeX while keeping commands the author
// wrote: a backslash and the character after it are copied unchanged. Since
// every replacement starts with a backslash or contains no special
// character, escaping twice gives the same result as escaping once.
//
// A run of underscores becomes one \char95 per underscore followed by a
// single space, and a [ at the start of the output or after whitespace is
// braced so it cannot be read as the optional argument of a preceding \\.
func Escape(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			b.WriteRune(r)
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
		case r == '_':
			for i < len(runes) && runes[i] == '_' {
				b.WriteString(`\char95`)
				i++
			}
			b.WriteByte(' ')
			i--
		case r == '[' && afterSpace(b.String()):
			b.WriteString("{[}")
		default:
			if rep, ok := replacements[r]; ok {
				b.WriteString(rep)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// afterSpace reports whether out is empty or ends in whitespace.
func afterSpace(out string) bool {
	if out == "" {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(out)
	return unicode.IsSpace(last)
}

var codeReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"#", `\#`,
	"_", `\_`,
	"%", `\%`,
	"^", `\^{}`,
	"~", `\textasciitilde{}`,
	" ", "~",
	"\t", "~~~~",
)

// EscapeCode escapes every special character of source code, backslash
// included, and keeps its spacing.
func EscapeCode(s string) string {
	return codeReplacer.Replace(s)
}

// decodeMath prepares a formula body: straight quotes become '' and a degree
// sign becomes a superscript circle. Bare percent signs are escaped so they
// do not comment out the rest of the line.
func decodeMath(body string) string {
	body = strings.ReplaceAll(body, `"`, "''")
	body = strings.ReplaceAll(body, "\u00b0", `^{\circ}`)

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '%' && (i == 0 || body[i-1] != '\\') {
			b.WriteByte('\\')
		}
		b.WriteByte(body[i])
	}
	return b.String()
}
