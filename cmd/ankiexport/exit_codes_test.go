package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config and deck
//   packages, plus wrapped errors to verify the errors.Is chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and that custom codes stay below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-ankiexport"
	"github.com/alnah/go-ankiexport/internal/config"
	"github.com/alnah/go-ankiexport/internal/deck"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// No PDF (exit 4)
		{"no pdf", ErrNoPDF, ExitNoPDF},
		{"wrapped no pdf", fmt.Errorf("%w: out.pdf", ErrNoPDF), ExitNoPDF},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"deck open", deck.ErrDeckOpen, ExitIO},
		{"write output", ankiexport.ErrWriteOutput, ExitIO},
		{"work dir", ankiexport.ErrCompilerWorkDir, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"unsupported source", deck.ErrUnsupportedSource, ExitUsage},
		{"deck parse", deck.ErrDeckParse, ExitUsage},
		{"unsupported format", ankiexport.ErrUnsupportedFormat, ExitUsage},
		{"asset path", ankiexport.ErrInvalidAssetPath, ExitUsage},
		{"template", ankiexport.ErrTemplate, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"nil deck", ankiexport.ErrNilDeck, ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard codes changed: success=%d general=%d usage=%d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitNoPDF} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
