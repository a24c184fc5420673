package assets

// Template names known to the exporter.
const (
	PreambleTemplate  = "preamble"
	PostambleTemplate = "postamble"
)

// Loader defines the contract for loading LaTeX templates.
type Loader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
