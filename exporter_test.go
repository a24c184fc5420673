package ankiexport

// Notes:
// - PDF tests use a fake CommandRunner and a per-test work directory; no
//   LaTeX installation is needed. The process-wide work directory is only
//   exercised by TestProcessWorkDir.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records the call and optionally produces tmp.pdf.
type fakeRunner struct {
	writePDF bool
	output   string
	err      error

	dir  string
	name string
	args []string
	tex  string
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	f.dir, f.name, f.args = dir, name, args
	if data, err := os.ReadFile(filepath.Join(dir, "tmp.tex")); err == nil {
		f.tex = string(data)
	}
	if f.writePDF {
		if err := os.WriteFile(filepath.Join(dir, "tmp.pdf"), []byte("%PDF-1.4 fake"), 0o600); err != nil {
			return "", err
		}
	}
	return f.output, f.err
}

func testCompiler(t *testing.T, runner CommandRunner) *Compiler {
	t.Helper()

	dir := t.TempDir()
	c := NewCompiler("")
	c.Runner = runner
	c.WorkDir = func() (string, error) { return dir, nil }
	c.PageCounter = func(string) (int, error) { return 3, nil }
	return c
}

// ---------------------------------------------------------------------------
// TestExporter_Export - Text formats
// ---------------------------------------------------------------------------

func TestExporter_Export_TextFormats(t *testing.T) {
	t.Parallel()

	exp, err := NewExporter()
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	tests := []struct {
		name   string
		format Format
		check  string
	}{
		{name: "latex", format: FormatLaTeX, check: `\begin{document}`},
		{name: "wiki", format: FormatMediaWiki, check: "<big>Q1</big>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out", "deck."+tt.format.Extension())
			res, err := exp.Export(twoCardDeck(), tt.format, path)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if !res.Written || res.Cards != 2 || res.Path != path {
				t.Errorf("Export() result = %+v", res)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if !strings.Contains(string(data), tt.check) {
				t.Errorf("output missing %q", tt.check)
			}
		})
	}
}

func TestExporter_Export_EmptyPath(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{writePDF: true}
	exp, err := NewExporter(WithCompiler(testCompiler(t, runner)))
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []Format{FormatLaTeX, FormatPDF, FormatMediaWiki} {
		res, err := exp.Export(twoCardDeck(), f, "")
		if err != nil || res.Written {
			t.Errorf("Export(%v, \"\") = %+v, %v; want no-op", f, res, err)
		}
	}
	if runner.name != "" {
		t.Error("compiler ran for an empty path")
	}
}

func TestExporter_Export_Errors(t *testing.T) {
	t.Parallel()

	exp, err := NewExporter()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := exp.Export(twoCardDeck(), Format(9), filepath.Join(t.TempDir(), "x")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := exp.Export(nil, FormatLaTeX, filepath.Join(t.TempDir(), "x")); !errors.Is(err, ErrNilDeck) {
		t.Errorf("nil deck error = %v, want ErrNilDeck", err)
	}

	// A directory where the file should go cannot be replaced.
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	if err := os.MkdirAll(filepath.Join(target, "child"), 0o750); err != nil {
		t.Fatal(err)
	}
	if _, err := exp.Export(twoCardDeck(), FormatLaTeX, target); !errors.Is(err, ErrWriteOutput) {
		t.Errorf("write error = %v, want ErrWriteOutput", err)
	}
}

// ---------------------------------------------------------------------------
// TestExporter_Export_PDF - Compiler integration through a fake runner
// ---------------------------------------------------------------------------

func TestExporter_Export_PDF(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{writePDF: true, output: "Output written on tmp.pdf"}
	compiler := testCompiler(t, runner)
	exp, err := NewExporter(WithCompiler(compiler))
	if err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "deck.pdf")
	res, err := exp.Export(twoCardDeck(), FormatPDF, dest)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !res.Written || res.Pages != 3 || res.Format != FormatPDF || res.Cards != 2 {
		t.Errorf("Export() result = %+v", res)
	}
	if res.Log != "Output written on tmp.pdf" {
		t.Errorf("Log = %q", res.Log)
	}

	if runner.name != "pdflatex" {
		t.Errorf("compiler = %q, want pdflatex", runner.name)
	}
	if strings.Join(runner.args, " ") != "-interaction=nonstopmode tmp.tex" {
		t.Errorf("args = %v", runner.args)
	}
	if !strings.Contains(runner.tex, "Q1 \\ \\\\ ---") {
		t.Error("tmp.tex did not hold the rendered deck")
	}

	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "%PDF-1.4 fake" {
		t.Errorf("copied PDF = %q, %v", data, err)
	}
}

func TestExporter_Export_PDFFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{writePDF: true}
	compiler := testCompiler(t, runner)
	exp, err := NewExporter(WithCompiler(compiler))
	if err != nil {
		t.Fatal(err)
	}

	first := filepath.Join(t.TempDir(), "first.pdf")
	if res, err := exp.Export(twoCardDeck(), FormatPDF, first); err != nil || !res.Written {
		t.Fatalf("first Export() = %+v, %v", res, err)
	}

	// The next run fails; the PDF of the first run must not be copied.
	runner.writePDF = false
	runner.err = errors.New("exit status 1")
	runner.output = "! Undefined control sequence."

	second := filepath.Join(t.TempDir(), "second.pdf")
	res, err := exp.Export(twoCardDeck(), FormatPDF, second)
	if err != nil {
		t.Fatalf("Export() error = %v, want nil for compiler failure", err)
	}
	if res.Written {
		t.Error("Written = true after compiler failure")
	}
	if !strings.Contains(res.Log, "Undefined control sequence") || !strings.Contains(res.Log, "exit status 1") {
		t.Errorf("Log = %q", res.Log)
	}
	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Errorf("output exists after failure: %v", err)
	}
}

func TestCompiler_WorkDirError(t *testing.T) {
	t.Parallel()

	c := NewCompiler("xelatex")
	c.Runner = &fakeRunner{}
	c.WorkDir = func() (string, error) { return "", errors.New("no space") }

	_, err := c.Compile("doc", filepath.Join(t.TempDir(), "x.pdf"))
	if !errors.Is(err, ErrCompilerWorkDir) {
		t.Errorf("Compile() error = %v, want ErrCompilerWorkDir", err)
	}
}

func TestNewCompiler(t *testing.T) {
	t.Parallel()

	def := NewCompiler("")
	if def.Binary != "pdflatex" || len(def.Args) != 1 || def.Args[0] != "-interaction=nonstopmode" {
		t.Errorf("NewCompiler(\"\") = %+v", def)
	}
	def.Args[0] = "changed"
	if DefaultCompilerArgs[0] != "-interaction=nonstopmode" {
		t.Error("NewCompiler shares DefaultCompilerArgs")
	}

	custom := NewCompiler("lualatex")
	if custom.Binary != "lualatex" || len(custom.Args) != 0 {
		t.Errorf("NewCompiler(lualatex) = %+v", custom)
	}
}

func TestProcessWorkDir(t *testing.T) {
	t.Parallel()

	a, err := processWorkDir()
	if err != nil {
		t.Fatalf("processWorkDir() error = %v", err)
	}
	b, _ := processWorkDir()
	if a != b {
		t.Errorf("work dir changed between calls: %q != %q", a, b)
	}
	if !strings.HasPrefix(filepath.Base(a), "anki") {
		t.Errorf("work dir %q lacks anki prefix", a)
	}
}

// ---------------------------------------------------------------------------
// TestNewExporter - Template options
// ---------------------------------------------------------------------------

func TestNewExporter_WithAssetPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatal(err)
	}
	preamble := `\documentclass{minimal}<< if .GraphicsPath >>% media << .GraphicsPath >><< end >>
\begin{document}
% deck << .DeckName >>
`
	if err := os.WriteFile(filepath.Join(base, "templates", "preamble.tex"), []byte(preamble), 0o600); err != nil {
		t.Fatal(err)
	}

	exp, err := NewExporter(WithAssetPath(base))
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	doc, err := exp.Document(twoCardDeck(), FormatLaTeX)
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if !strings.HasPrefix(doc, "\\documentclass{minimal}\n\\begin{document}\n% deck Bio\n") {
		t.Errorf("custom preamble not used: %q", doc[:60])
	}
	if !strings.Contains(doc, `\end{document}`) {
		t.Error("embedded postamble not used as fallback")
	}
}

func TestNewExporter_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewExporter(WithAssetPath("/nonexistent/path/abc123xyz")); !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("invalid asset path error = %v, want ErrInvalidAssetPath", err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "templates", "postamble.tex"), []byte("<< if >>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewExporter(WithAssetPath(base)); !errors.Is(err, ErrTemplate) {
		t.Errorf("broken template error = %v, want ErrTemplate", err)
	}
}

func TestPageCount_InvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := PageCount(path); err == nil {
		t.Error("PageCount() expected error for invalid PDF")
	}
}
