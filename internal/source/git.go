package source

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/thoreinstein/yamlint/internal/errors"
)

// RepoRoot returns the root of the git work tree enclosing path.
func RepoRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrap(err, "opening git repository")
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "opening work tree")
	}
	return wt.Filesystem.Root(), nil
}

// ChangedFiles lists files under repoPath that the enclosing git work tree
// reports as modified, added, renamed or untracked. Deleted files are
// omitted. Returned paths are joined onto repoPath and sorted.
func ChangedFiles(repoPath string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrap(err, "opening git repository")
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "opening work tree")
	}

	status, err := wt.Status()
	if err != nil {
		return nil, errors.Wrap(err, "reading work tree status")
	}

	absRepo, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolving path")
	}
	root := wt.Filesystem.Root()

	var files []string
	for name, st := range status {
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}

		rel, err := filepath.Rel(absRepo, filepath.Join(root, filepath.FromSlash(name)))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		files = append(files, filepath.Join(repoPath, rel))
	}

	sort.Strings(files)
	return files, nil
}
