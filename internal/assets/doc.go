// Package assets provides the LaTeX templates wrapped around exported decks.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the exporter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when a template is
// not found, so a user can override the preamble and keep the postamble.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    ├── preamble.tex    # document class, packages, \begin{document}
//	    └── postamble.tex   # closing environments
//
// Templates are parsed with text/template using << and >> as delimiters,
// since LaTeX uses braces everywhere.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
