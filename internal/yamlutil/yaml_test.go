package yamlutil_test

// Notes:
// - MaxInputSize is a package variable; no test changes it, so the size
//   tests build inputs just over the default limit.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-ankiexport/internal/yamlutil"
)

type testConfig struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		wantAny bool
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\ntags: [a, b]"),
			dest: &testConfig{},
		},
		{
			name:    "unknown field",
			data:    []byte("name: test\nextra: 1"),
			dest:    &testConfig{},
			wantAny: true,
		},
		{
			name:    "empty data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "too large",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantAny:
				if err == nil {
					t.Error("UnmarshalStrict() expected error")
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() error = %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || len(cfg.Tags) != 2 {
					t.Errorf("decoded = %+v", cfg)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadFileStrict - Decoding from disk
// ---------------------------------------------------------------------------

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(path, []byte("name: disk\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	if err := yamlutil.ReadFileStrict(path, &cfg); err != nil {
		t.Fatalf("ReadFileStrict() error = %v", err)
	}
	if cfg.Name != "disk" {
		t.Errorf("Name = %q, want %q", cfg.Name, "disk")
	}

	err := yamlutil.ReadFileStrict(filepath.Join(dir, "missing.yaml"), &cfg)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFileStrict(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testConfig{Name: "x", Count: 1})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "name: x") {
		t.Errorf("Marshal() = %q", out)
	}
}
