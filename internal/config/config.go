// Package config loads the YAML configuration of the ankiexport command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-ankiexport/internal/fileutil"
	"github.com/alnah/go-ankiexport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxDeckNameLength = 200
	MaxPathLength     = 4096
	MaxCompilerLength = 255
	MaxArgLength      = 255
	MaxArgs           = 32
)

// DefaultCompiler and DefaultCompilerArgs drive the PDF export.
const DefaultCompiler = "pdflatex"

// DefaultCompilerArgs keeps the compiler from waiting on stdin after an error.
var DefaultCompilerArgs = []string{"-interaction=nonstopmode"}

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-ankiexport"

// Config holds all configuration for an export.
type Config struct {
	Deck   DeckConfig   `yaml:"deck"`
	Output OutputConfig `yaml:"output"`
	LaTeX  LaTeXConfig  `yaml:"latex"`
	Assets AssetsConfig `yaml:"assets"`
}

// DeckConfig overrides what the deck file says about itself.
type DeckConfig struct {
	Name     string `yaml:"name"`     // Empty = name from the deck file
	MediaDir string `yaml:"mediaDir"` // Empty = media next to the deck
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// LaTeXConfig selects the program that turns LaTeX into PDF.
type LaTeXConfig struct {
	Compiler string   `yaml:"compiler"`
	Args     []string `yaml:"args"`
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// Validate checks field lengths and the compiler name.
func (c *Config) Validate() error {
	if err := validateFieldLength("deck.name", c.Deck.Name, MaxDeckNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("deck.mediaDir", c.Deck.MediaDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("latex.compiler", c.LaTeX.Compiler, MaxCompilerLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.LaTeX.Compiler, " \t\n") {
		return fmt.Errorf("%w: latex.compiler %q must be a program, arguments go in latex.args", ErrInvalidField, c.LaTeX.Compiler)
	}
	if len(c.LaTeX.Args) > MaxArgs {
		return fmt.Errorf("%w: latex.args (%d entries, max %d)", ErrFieldTooLong, len(c.LaTeX.Args), MaxArgs)
	}
	for i, arg := range c.LaTeX.Args {
		if err := validateFieldLength(fmt.Sprintf("latex.args[%d]", i), arg, MaxArgLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LaTeX: LaTeXConfig{
			Compiler: DefaultCompiler,
			Args:     append([]string(nil), DefaultCompilerArgs...),
		},
	}
}

// applyDefaults fills the compiler settings a file left out. An explicit
// empty args list is kept.
func (c *Config) applyDefaults() {
	if c.LaTeX.Compiler == "" {
		c.LaTeX.Compiler = DefaultCompiler
		if c.LaTeX.Args == nil {
			c.LaTeX.Args = append([]string(nil), DefaultCompilerArgs...)
		}
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchDirs returns the directories searched for named configs, in order.
func SearchDirs() []string {
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, configDirName))
	}
	return dirs
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-ankiexport/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var triedPaths []string

	for _, dir := range SearchDirs() {
		for _, ext := range extensions {
			candidate := name + ext
			if dir != "." {
				candidate = filepath.Join(dir, candidate)
			}
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			triedPaths = append(triedPaths, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
