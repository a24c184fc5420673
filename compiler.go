package ankiexport

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"

	"github.com/alnah/go-ankiexport/internal/fileutil"
)

// Compiler defaults and the fixed file names used in the work directory.
const (
	DefaultCompiler = "pdflatex"
	workDirPrefix   = "anki"
	texFileName     = "tmp.tex"
	pdfFileName     = "tmp.pdf"
)

// DefaultCompilerArgs keeps the compiler from waiting on stdin after an error.
var DefaultCompilerArgs = []string{"-interaction=nonstopmode"}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	// Run executes name in dir and returns its combined output.
	Run(dir, name string, args ...string) (output string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes the command and waits for it; there is no timeout.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- compiler is user-configured
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}

// The work directory is created once per process and reused by every PDF
// export. It is not removed.
var (
	workDirOnce sync.Once
	workDir     string
	workDirErr  error
)

func processWorkDir() (string, error) {
	workDirOnce.Do(func() {
		workDir, workDirErr = os.MkdirTemp("", workDirPrefix)
	})
	return workDir, workDirErr
}

// Compiler turns a LaTeX document into a PDF with an external program.
type Compiler struct {
	// Binary is the program to run, looked up on PATH.
	Binary string
	// Args come before the input file name.
	Args []string
	// Runner executes the program. Nil means ExecRunner.
	Runner CommandRunner
	// WorkDir returns the directory the document is compiled in. Nil means
	// a temporary directory shared by the whole process.
	WorkDir func() (string, error)
	// PageCounter reads the page count of the copied PDF. Nil means pdfcpu.
	PageCounter func(path string) (int, error)
}

// NewCompiler creates a Compiler. An empty binary selects pdflatex with
// DefaultCompilerArgs.
func NewCompiler(binary string, args ...string) *Compiler {
	if binary == "" {
		binary = DefaultCompiler
		if args == nil {
			args = DefaultCompilerArgs
		}
	}
	return &Compiler{Binary: binary, Args: slices.Clone(args)}
}

// Compile writes doc to tmp.tex in the work directory, runs the compiler on
// it and copies tmp.pdf to dest. A compiler that fails or is missing is not
// an error: the result reports Written false and carries the output.
func (c *Compiler) Compile(doc, dest string) (Result, error) {
	res := Result{Path: dest, Format: FormatPDF}
	if dest == "" {
		return res, nil
	}

	dir, err := c.workDir()
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrCompilerWorkDir, err)
	}
	texPath := filepath.Join(dir, texFileName)
	pdfPath := filepath.Join(dir, pdfFileName)

	// A PDF left by an earlier export must not be mistaken for this one.
	if err := os.Remove(pdfPath); err != nil && !os.IsNotExist(err) {
		return res, fmt.Errorf("%w: removing stale %s: %v", ErrWriteOutput, pdfFileName, err)
	}
	if err := fileutil.WriteFile(texPath, doc); err != nil {
		return res, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	args := append(slices.Clone(c.Args), texFileName)
	out, runErr := c.runner().Run(dir, c.binary(), args...)
	res.Log = out
	if runErr != nil {
		res.Log += fmt.Sprintf("\n%s: %v\n", c.binary(), runErr)
	}

	if !fileutil.FileExists(pdfPath) {
		return res, nil
	}
	if err := fileutil.CopyFile(pdfPath, dest); err != nil {
		return res, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	res.Written = true

	if pages, err := c.pageCounter()(dest); err == nil {
		res.Pages = pages
	}
	return res, nil
}

func (c *Compiler) binary() string {
	if c.Binary == "" {
		return DefaultCompiler
	}
	return c.Binary
}

func (c *Compiler) runner() CommandRunner {
	if c.Runner == nil {
		return &ExecRunner{}
	}
	return c.Runner
}

func (c *Compiler) workDir() (string, error) {
	if c.WorkDir == nil {
		return processWorkDir()
	}
	return c.WorkDir()
}

func (c *Compiler) pageCounter() func(string) (int, error) {
	if c.PageCounter == nil {
		return PageCount
	}
	return c.PageCounter
}
