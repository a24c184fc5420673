package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// deckFlags override what the deck file says about itself.
type deckFlags struct {
	name     string
	mediaDir string
	noMedia  bool
}

// latexFlags select the compiler and templates.
type latexFlags struct {
	compiler     string
	compilerArgs []string
	assetPath    string
}

// exportFlags holds all flags for the latex, pdf and wiki commands.
type exportFlags struct {
	common commonFlags
	output string
	deck   deckFlags
	latex  latexFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show card count and compiler log")
}

// addDeckFlags adds deck override flags to a FlagSet.
func addDeckFlags(fs *flag.FlagSet, f *deckFlags) {
	fs.StringVar(&f.name, "deck-name", "", "deck name used in titles and image names")
	fs.StringVar(&f.mediaDir, "media-dir", "", "directory holding the deck's images")
	fs.BoolVar(&f.noMedia, "no-media", false, "ignore the deck's media directory")
}

// addLaTeXFlags adds compiler and template flags to a FlagSet.
func addLaTeXFlags(fs *flag.FlagSet, f *latexFlags) {
	fs.StringVar(&f.compiler, "compiler", "", "LaTeX compiler program (default pdflatex)")
	fs.StringArrayVar(&f.compilerArgs, "compiler-arg", nil, "argument passed to the compiler (repeatable)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/preamble.tex and postamble.tex")
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(name string, args []string, usage io.Writer) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")

	addCommonFlags(fs, &f.common)
	addDeckFlags(fs, &f.deck)
	addLaTeXFlags(fs, &f.latex)

	fs.Usage = func() { printExportUsage(usage, name) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses the config command flags.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
