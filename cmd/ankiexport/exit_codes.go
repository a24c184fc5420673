package main

import (
	"errors"
	"os"

	"github.com/alnah/go-ankiexport"
	"github.com/alnah/go-ankiexport/internal/config"
	"github.com/alnah/go-ankiexport/internal/deck"
)

// Exit codes for the ankiexport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Export written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, deck format or template
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitNoPDF   = 4 // Compiler produced no PDF
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrNoPDF) {
		return ExitNoPDF
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, deck.ErrDeckOpen) ||
		errors.Is(err, ankiexport.ErrWriteOutput) ||
		errors.Is(err, ankiexport.ErrCompilerWorkDir) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, deck.ErrUnsupportedSource) ||
		errors.Is(err, deck.ErrDeckParse) ||
		errors.Is(err, ankiexport.ErrUnsupportedFormat) ||
		errors.Is(err, ankiexport.ErrInvalidAssetPath) ||
		errors.Is(err, ankiexport.ErrTemplate) {
		return ExitUsage
	}

	return ExitGeneral
}
