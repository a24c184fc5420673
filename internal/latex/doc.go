// Package latex renders parsed card fields as LaTeX fragments for the body
// of an article document.
package latex
