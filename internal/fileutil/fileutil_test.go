package fileutil_test

// Notes:
// - Write and copy failures caused by a full disk are not tested; they are
//   platform-specific. Permission failures are covered where the test does
//   not run as root.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-ankiexport/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFile - Atomic document writes
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "deck.tex")
		if err := fileutil.WriteFile(path, "ünïcode"); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "ünïcode" {
			t.Errorf("content = %q, want %q", got, "ünïcode")
		}
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "deck.txt")
		if err := fileutil.WriteFile(path, "old"); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFile(path, "new"); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.WriteFile("", "x"); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("WriteFile(\"\") error = %v, want ErrEmptyPath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCopyFile - Copying compiled documents
// ---------------------------------------------------------------------------

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "tmp.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatal(err)
	}
	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, past, past); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "out", "deck.pdf")
	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "%PDF-1.4" {
		t.Errorf("content = %q", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), past)
	}

	if err := fileutil.CopyFile(src, src); !errors.Is(err, fileutil.ErrSameFile) {
		t.Errorf("CopyFile(src, src) error = %v, want ErrSameFile", err)
	}
	if err := fileutil.CopyFile(filepath.Join(dir, "missing"), dst); err == nil {
		t.Error("CopyFile(missing) expected error")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists / TestIsFilePath / TestSafeName
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"work", false},
		{"my-config", false},
		{"./work.yaml", true},
		{"/etc/work.yaml", true},
		{`C:\work.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSafeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Biology", "Biology"},
		{"Bio/Chem", "Bio_Chem"},
		{`a:b\c`, "a_b_c"},
		{"  ", "deck"},
	}

	for _, tt := range tests {
		if got := fileutil.SafeName(tt.input); got != tt.want {
			t.Errorf("SafeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
