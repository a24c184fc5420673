// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-ankiexport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForCompiler returns hints for a PDF export that produced no file. found
// tells whether the compiler binary is on PATH.
func ForCompiler(binary string, found bool) string {
	if found {
		return format("run with --verbose to see the " + binary + " log")
	}

	var hints []string
	if IsInContainer() {
		hints = append(hints, "install texlive-latex-recommended in the image")
	} else {
		hints = append(hints, "install TeX Live or MiKTeX so "+binary+" is on PATH")
	}
	hints = append(hints, "or set latex.compiler in the config")
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-ankiexport/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-ankiexport") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDeckFormat lists the deck file types that can be read.
func ForDeckFormat(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("supported deck files: " + strings.Join(extensions, ", "))
}

// ForTemplates explains where custom templates are looked up.
func ForTemplates() string {
	return format("custom templates go in <basePath>/templates/preamble.tex and postamble.tex")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
