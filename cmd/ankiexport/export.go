package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-ankiexport"
	"github.com/alnah/go-ankiexport/internal/config"
	"github.com/alnah/go-ankiexport/internal/deck"
	"github.com/alnah/go-ankiexport/internal/fileutil"
	"github.com/alnah/go-ankiexport/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoInput = errors.New("no deck file specified")
	ErrNoPDF   = errors.New("compiler produced no PDF")
)

// defaultOutputPrefix starts every default output file name.
const defaultOutputPrefix = "anki_"

// runExport loads a deck and writes it in format f.
func runExport(f ankiexport.Format, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags(f.String(), args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch len(positional) {
	case 0:
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForDeckFormat(deck.Extensions))
	case 1:
	default:
		return fmt.Errorf("%w: expected one deck file, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	d, err := loadDeck(positional[0], cfg, flags.deck.noMedia)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Deck %q: %d cards\n", d.Name(), len(d.Cards()))
		if d.MediaDir() != "" {
			fmt.Fprintf(env.Stderr, "Media: %s\n", d.MediaDir())
		}
	}

	compiler := &ankiexport.Compiler{
		Binary:  cfg.LaTeX.Compiler,
		Args:    cfg.LaTeX.Args,
		Runner:  env.Runner,
		WorkDir: env.WorkDir,
	}
	exporter, err := ankiexport.NewExporter(
		ankiexport.WithAssetPath(cfg.Assets.BasePath),
		ankiexport.WithCompiler(compiler),
	)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForTemplates())
	}

	outPath := resolveOutputPath(flags.output, cfg, d.Name(), f)
	res, err := exporter.Export(d, f, outPath)
	if err != nil {
		if errors.Is(err, ankiexport.ErrWriteOutput) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	if f == ankiexport.FormatPDF {
		if flags.common.verbose && res.Log != "" {
			fmt.Fprintln(env.Stderr, strings.TrimRight(res.Log, "\n"))
		}
		if !res.Written {
			_, lookErr := env.LookPath(compiler.Binary)
			return fmt.Errorf("%w: %s%s", ErrNoPDF, outPath, hints.ForCompiler(compiler.Binary, lookErr == nil))
		}
	}

	if flags.common.quiet {
		return nil
	}
	if flags.common.verbose && res.Pages > 0 {
		fmt.Fprintf(env.Stdout, "Created %s (%d cards, %d pages)\n", res.Path, res.Cards, res.Pages)
		return nil
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", res.Path)
	return nil
}

// loadConfig returns the default config when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configCandidates(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configCandidates lists the files a named config could live in.
func configCandidates(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	var paths []string
	for _, dir := range config.SearchDirs() {
		paths = append(paths, filepath.Join(dir, name+".yaml"))
	}
	return paths
}

// mergeFlags copies explicitly set flags over the config (CLI wins).
func mergeFlags(flags *exportFlags, cfg *config.Config) {
	if flags.deck.name != "" {
		cfg.Deck.Name = flags.deck.name
	}
	if flags.deck.mediaDir != "" {
		cfg.Deck.MediaDir = flags.deck.mediaDir
	}
	if flags.latex.compiler != "" {
		cfg.LaTeX.Compiler = flags.latex.compiler
		cfg.LaTeX.Args = nil
	}
	if len(flags.latex.compilerArgs) > 0 {
		cfg.LaTeX.Args = flags.latex.compilerArgs
	}
	if flags.latex.assetPath != "" {
		cfg.Assets.BasePath = flags.latex.assetPath
	}
}

// loadDeck reads the deck file and applies the name and media overrides.
func loadDeck(path string, cfg *config.Config, noMedia bool) (*ankiexport.MemoryDeck, error) {
	d, err := deck.Load(path)
	if err != nil {
		if errors.Is(err, deck.ErrUnsupportedSource) {
			return nil, fmt.Errorf("%w%s", err, hints.ForDeckFormat(deck.Extensions))
		}
		return nil, err
	}

	name, mediaDir := d.Name(), d.MediaDir()
	if cfg.Deck.Name != "" {
		name = cfg.Deck.Name
	}
	if cfg.Deck.MediaDir != "" {
		mediaDir = cfg.Deck.MediaDir
	}
	if noMedia {
		mediaDir = ""
	}
	if name == d.Name() && mediaDir == d.MediaDir() {
		return d, nil
	}
	return ankiexport.NewDeck(name, mediaDir, d.Cards()), nil
}

// resolveOutputPath picks the destination file. An explicit file path is
// used as is; a directory, or no output at all, gets anki_<deck>.<ext>.
func resolveOutputPath(flagOutput string, cfg *config.Config, deckName string, f ankiexport.Format) string {
	fileName := defaultOutputPrefix + fileutil.SafeName(deckName) + "." + f.Extension()

	if flagOutput != "" {
		if fileutil.DirExists(flagOutput) || strings.HasSuffix(flagOutput, string(filepath.Separator)) {
			return filepath.Join(flagOutput, fileName)
		}
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, fileName)
	}
	return fileName
}
