package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ankiexport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  latex      Export a deck as a LaTeX document (alias: tex)")
	fmt.Fprintln(w, "  pdf        Export a deck as PDF through a LaTeX compiler")
	fmt.Fprintln(w, "  wiki       Export a deck as MediaWiki markup (alias: mediawiki)")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  doctor     Check the LaTeX toolchain")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ankiexport help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the latex, pdf and wiki commands.
func printExportUsage(w io.Writer, cmd string) {
	fmt.Fprintf(w, "Usage: ankiexport %s <deck> [flags]\n", cmd)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  deck    Deck file: .yaml, .yml, .md, .markdown, .anki, .anki2")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default anki_<deck>.<ext>)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "      --deck-name <s>       Deck name used in titles and image names")
	fmt.Fprintln(w, "      --media-dir <path>    Directory holding the deck's images")
	fmt.Fprintln(w, "      --no-media            Ignore the deck's media directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "LaTeX:")
	fmt.Fprintln(w, "      --compiler <prog>     Compiler program (default pdflatex)")
	fmt.Fprintln(w, "      --compiler-arg <s>    Compiler argument, repeatable")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/preamble.tex, postamble.tex")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show card count and compiler log")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ankiexport config [--config <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration an export would use, as YAML.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ankiexport doctor [--json] [--compiler <prog>] [--config <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the LaTeX compiler is installed and the temp directory is writable.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "latex", "tex", "pdf", "wiki", "mediawiki":
		printExportUsage(env.Stdout, args[0])
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: ankiexport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: ankiexport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
