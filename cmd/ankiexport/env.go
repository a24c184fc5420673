package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/alnah/go-ankiexport"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	// LookPath finds the compiler binary.
	LookPath func(file string) (string, error)
	// Runner executes the compiler.
	Runner ankiexport.CommandRunner
	// WorkDir is where PDFs are compiled. Nil means the process-wide
	// temporary directory.
	WorkDir func() (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
		Runner:   &ankiexport.ExecRunner{},
	}
}
