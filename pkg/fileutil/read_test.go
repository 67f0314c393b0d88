package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/yamlint/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	tempDir := t.TempDir()
	const limit = 64

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 10, false},
		{"exact limit", limit, false},
		{"too large", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.Truncate(tt.size); err != nil {
				t.Fatal(err)
			}
			f.Close()

			data, err := ReadFileWithLimit(path, limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFileWithLimit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFileTooLarge) {
				t.Errorf("expected ErrFileTooLarge, got %v", err)
			}
			if !tt.wantErr && int64(len(data)) != tt.size {
				t.Errorf("read %d bytes, want %d", len(data), tt.size)
			}
		})
	}
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope.yaml"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestReadAllWithLimit(t *testing.T) {
	data, err := ReadAllWithLimit(strings.NewReader("a: 1\n"), 0)
	if err != nil || string(data) != "a: 1\n" {
		t.Fatalf("ReadAllWithLimit() = %q, %v", data, err)
	}

	_, err = ReadAllWithLimit(strings.NewReader(strings.Repeat("x", 11)), 10)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}
