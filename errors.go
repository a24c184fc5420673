package ankiexport

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrWriteOutput       = errors.New("failed to write output")
	ErrCompilerWorkDir   = errors.New("failed to create compiler work directory")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrTemplate          = errors.New("document template failed")
	ErrNilDeck           = errors.New("deck cannot be nil")
)
