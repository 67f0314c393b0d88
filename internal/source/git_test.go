package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestChangedFiles(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	if err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	writeFiles(t, root, map[string]string{
		"stable.yaml":     "a: 1\n",
		"edited.yaml":     "b: 1\n",
		"removed.yaml":    "c: 1\n",
		"sub/stable.yaml": "d: 1\n",
	})
	for _, name := range []string{"stable.yaml", "edited.yaml", "removed.yaml", "sub/stable.yaml"} {
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
	}
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	writeFiles(t, root, map[string]string{
		"edited.yaml":  "b: 2\n",
		"new.yaml":     "e: 1\n",
		"sub/new.yaml": "f: 1\n",
	})
	if err := os.Remove(filepath.Join(root, "removed.yaml")); err != nil {
		t.Fatal(err)
	}

	t.Run("whole repository", func(t *testing.T) {
		got, err := ChangedFiles(root)
		if err != nil {
			t.Fatalf("ChangedFiles() error = %v", err)
		}
		want := []string{
			filepath.Join(root, "edited.yaml"),
			filepath.Join(root, "new.yaml"),
			filepath.Join(root, "sub", "new.yaml"),
		}
		if !equalStrings(got, want) {
			t.Errorf("ChangedFiles() = %v, want %v", got, want)
		}
	})

	t.Run("subdirectory", func(t *testing.T) {
		sub := filepath.Join(root, "sub")
		got, err := ChangedFiles(sub)
		if err != nil {
			t.Fatalf("ChangedFiles() error = %v", err)
		}
		want := []string{filepath.Join(sub, "new.yaml")}
		if !equalStrings(got, want) {
			t.Errorf("ChangedFiles() = %v, want %v", got, want)
		}
	})
}

func TestChangedFiles_NotARepository(t *testing.T) {
	if _, err := ChangedFiles(t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}

func TestRepoRoot(t *testing.T) {
	root := t.TempDir()
	if _, err := git.PlainInit(root, false); err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := RepoRoot(sub)
	if err != nil {
		t.Fatalf("RepoRoot() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("RepoRoot() = %q, want %q", got, root)
	}

	if _, err := RepoRoot(t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}
