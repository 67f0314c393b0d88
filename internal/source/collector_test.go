package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/pkg/fileutil"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func ids(sources []Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCollector_Collect(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.yaml":              "b: 1\n",
		"a.yml":               "a: 1\n",
		"notes.txt":           "not yaml",
		"nested/c.YAML":       "c: 1\n",
		"vendor/d.yaml":       "d: 1\n",
		"skip.gen.yaml":       "x: 1\n",
		"ignored/e.yaml":      "e: 1\n",
		"nested/ignored.yaml": "f: 1\n",
		".gitignore":          "ignored/\nnested/ignored.yaml\n",
	})

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults walk lexically",
			opts: Options{},
			want: []string{"a.yml", "b.yaml", "ignored/e.yaml", "nested/c.YAML", "nested/ignored.yaml", "skip.gen.yaml", "vendor/d.yaml"},
		},
		{
			name: "exclude globs",
			opts: Options{Exclude: []string{"vendor", "*.gen.yaml"}},
			want: []string{"a.yml", "b.yaml", "ignored/e.yaml", "nested/c.YAML", "nested/ignored.yaml"},
		},
		{
			name: "gitignore",
			opts: Options{RespectGitignore: true},
			want: []string{"a.yml", "b.yaml", "nested/c.YAML", "skip.gen.yaml", "vendor/d.yaml"},
		},
		{
			name: "custom extensions",
			opts: Options{Extensions: []string{"txt"}},
			want: []string{"notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = logging.ForTest(t)
			got, err := NewCollector(tt.opts).Collect([]string{root})
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.Join(root, filepath.FromSlash(w))
			}
			if !equalStrings(ids(got), want) {
				t.Errorf("Collect() = %v, want %v", ids(got), want)
			}
		})
	}
}

func TestCollector_ExplicitFileIgnoresExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"config.conf": "k: v\n"})
	path := filepath.Join(root, "config.conf")

	got, err := NewCollector(Options{}).Collect([]string{path})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != path || string(got[0].Content) != "k: v\n" {
		t.Errorf("Collect() = %+v", got)
	}
}

func TestCollector_PreservesArgumentOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"z.yaml": "", "a.yaml": ""})
	z, a := filepath.Join(root, "z.yaml"), filepath.Join(root, "a.yaml")

	got, err := NewCollector(Options{}).Collect([]string{z, a})
	if err != nil {
		t.Fatal(err)
	}
	if !equalStrings(ids(got), []string{z, a}) {
		t.Errorf("Collect() order = %v", ids(got))
	}
}

func TestCollector_Symlinks(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"real.yaml":          "a: 1\n",
		"target.d/inner.txt": "x",
	})
	if err := os.Symlink(filepath.Join(root, "real.yaml"), filepath.Join(root, "link.yaml")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "target.d"), filepath.Join(root, "dir.yaml")); err != nil {
		t.Fatal(err)
	}

	got, err := NewCollector(Options{Logger: logging.ForTest(t)}).Collect([]string{root})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{filepath.Join(root, "link.yaml"), filepath.Join(root, "real.yaml")}
	if !equalStrings(ids(got), want) {
		t.Errorf("Collect() = %v, want %v", ids(got), want)
	}
	for _, src := range got {
		if src.Err != nil {
			t.Errorf("%s: unexpected read error %v", src.ID, src.Err)
		}
	}
}

func TestCollector_MissingPath(t *testing.T) {
	_, err := NewCollector(Options{}).Collect([]string{filepath.Join(t.TempDir(), "absent")})
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Collect() error = %v, want ErrPathNotFound", err)
	}
}

func TestCollector_OversizeFileBecomesSourceError(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"big.yaml": strings.Repeat("a", 32)})

	got, err := NewCollector(Options{MaxFileSize: 16}).Collect([]string{root})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d sources, want 1", len(got))
	}
	if !errors.Is(got[0].Err, fileutil.ErrFileTooLarge) {
		t.Errorf("Source.Err = %v, want ErrFileTooLarge", got[0].Err)
	}
}

func TestCollector_Filter(t *testing.T) {
	c := NewCollector(Options{Exclude: []string{"secret*"}})
	got := c.Filter([]string{"a.yaml", "b.json", "dir/secret.yml", "c.YML"})
	want := []string{"a.yaml", "c.YML"}
	if !equalStrings(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestReadStdin(t *testing.T) {
	src, err := ReadStdin(strings.NewReader("a: 1\n"))
	if err != nil {
		t.Fatalf("ReadStdin() error = %v", err)
	}
	if !src.IsStdin() || string(src.Content) != "a: 1\n" {
		t.Errorf("ReadStdin() = %+v", src)
	}

	c := NewCollector(Options{MaxFileSize: 2})
	if _, err := c.ReadStdin(strings.NewReader("abc")); !errors.Is(err, fileutil.ErrFileTooLarge) {
		t.Errorf("Collector.ReadStdin() error = %v, want ErrFileTooLarge", err)
	}
}
