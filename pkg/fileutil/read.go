package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/yamlint/internal/errors"
)

// DefaultMaxFileSize is the read limit used when none is configured (1MB).
const DefaultMaxFileSize int64 = 1024 * 1024

// ErrFileTooLarge indicates that input exceeded the configured size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads a file of at most limit bytes. A limit <= 0 uses
// DefaultMaxFileSize.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	limit = normalizeLimit(limit)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large.
	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%d bytes (limit %d)", info.Size(), limit)
	}

	return ReadAllWithLimit(f, limit)
}

// ReadAllWithLimit reads r until EOF, failing once more than limit bytes
// arrive. A limit <= 0 uses DefaultMaxFileSize.
func ReadAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	limit = normalizeLimit(limit)

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "limit %d", limit)
	}
	return data, nil
}

func normalizeLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultMaxFileSize
	}
	return limit
}
