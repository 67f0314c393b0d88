package source

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/pkg/fileutil"
)

// DefaultExtensions are the file extensions collected from directories.
var DefaultExtensions = []string{".yaml", ".yml"}

// Options configures a Collector.
type Options struct {
	// Extensions selects files found while walking directories. Explicit
	// file arguments are collected regardless of extension.
	Extensions []string

	// Exclude holds glob patterns matched against base names. A matching
	// directory is skipped entirely.
	Exclude []string

	// RespectGitignore applies the .gitignore at the root of each walked
	// directory.
	RespectGitignore bool

	// MaxFileSize bounds each read. Zero uses fileutil.DefaultMaxFileSize.
	MaxFileSize int64

	Logger *slog.Logger
}

// Collector resolves paths into Sources.
type Collector struct {
	extensions map[string]struct{}
	exclude    []string
	gitignore  bool
	maxSize    int64
	logger     *slog.Logger
}

// NewCollector creates a Collector from opts.
func NewCollector(opts Options) *Collector {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	c := &Collector{
		extensions: make(map[string]struct{}, len(exts)),
		exclude:    opts.Exclude,
		gitignore:  opts.RespectGitignore,
		maxSize:    opts.MaxFileSize,
		logger:     opts.Logger,
	}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.extensions[ext] = struct{}{}
	}
	if c.logger == nil {
		c.logger = logging.NewDiscard()
	}
	return c
}

// Collect resolves each path in order. Files are used as given; directories
// are walked recursively in lexical order.
func (c *Collector) Collect(paths []string) ([]Source, error) {
	var sources []Source

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(ErrPathNotFound, "%s", path)
			}
			return nil, errors.Wrapf(err, "inspecting %s", path)
		}

		if !info.IsDir() {
			sources = append(sources, c.read(path))
			continue
		}

		found, err := c.walk(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}

	return sources, nil
}

// ReadStdin reads standard input using the collector's size limit.
func (c *Collector) ReadStdin(r io.Reader) (Source, error) {
	return readStdin(r, c.maxSize)
}

// Filter keeps the paths a directory walk would have selected: a wanted
// extension and no matching exclude pattern.
func (c *Collector) Filter(paths []string) []string {
	var kept []string
	for _, p := range paths {
		if c.wantsFile(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Read turns already-resolved file paths into Sources.
func (c *Collector) Read(paths []string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, c.read(p))
	}
	return sources
}

func (c *Collector) walk(root string) ([]Source, error) {
	matcher := c.loadGitignore(root)

	var sources []Source
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if d.Name() == ".git" || c.excluded(d.Name()) || ignoredDir(matcher, rel) {
				c.logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			// WalkDir does not follow links; a link to a directory is not a file.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				c.logger.Debug("skipping symlinked directory", "path", path)
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if !c.wantsFile(path) {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			c.logger.Debug("skipping gitignored file", "path", path)
			return nil
		}

		sources = append(sources, c.read(path))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}

	return sources, nil
}

func (c *Collector) loadGitignore(root string) *ignore.GitIgnore {
	if !c.gitignore {
		return nil
	}

	path := filepath.Join(root, ".gitignore")
	matcher, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("ignoring unreadable .gitignore", "path", path, "error", err)
		}
		return nil
	}
	return matcher
}

func ignoredDir(matcher *ignore.GitIgnore, rel string) bool {
	if matcher == nil {
		return false
	}
	return matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/")
}

func (c *Collector) wantsFile(path string) bool {
	if _, ok := c.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}
	return !c.excluded(filepath.Base(path))
}

func (c *Collector) excluded(name string) bool {
	for _, pattern := range c.exclude {
		if pattern == name {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (c *Collector) read(path string) Source {
	data, err := fileutil.ReadFileWithLimit(path, c.maxSize)
	if err != nil {
		c.logger.Debug("read failed", "path", path, "error", err)
		return Source{ID: path, Err: err}
	}
	return Source{ID: path, Content: data}
}
