// Package ankiexport turns Anki flashcard decks into printable documents.
//
// # Quick Start
//
// Build a deck, create an exporter, and export:
//
//	deck := ankiexport.NewDeck("Biology", "/path/to/Biology.media", []ankiexport.Card{
//	    {ID: 1, Question: "What is <b>ATP</b>?", Answer: "Energy currency"},
//	})
//
//	exp, err := ankiexport.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := exp.Export(deck, ankiexport.FormatPDF, "biology.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Written {
//	    log.Printf("pdflatex produced no PDF:\n%s", result.Log)
//	}
//
// # Formats
//
// FormatLaTeX writes a standalone article document with one block per card.
// FormatPDF writes the same document to a work directory, runs the LaTeX
// compiler there and copies the resulting PDF. FormatMediaWiki writes wiki
// markup with one section per card separated by horizontal rules.
//
// Card fields hold the HTML Anki stores. Spans with bold, italic, underline
// and color styles, line breaks, images, formula images and the [latex],
// [$] and [$$] markers are translated; other tags are dropped.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := ankiexport.NewExporter(
//	    ankiexport.WithAssetPath("/path/to/templates"),
//	    ankiexport.WithCompiler(ankiexport.NewCompiler("xelatex", "-halt-on-error")),
//	)
//
// WithAssetPath points at a directory holding templates/preamble.tex and
// templates/postamble.tex; missing files fall back to the built-in ones.
package ankiexport
