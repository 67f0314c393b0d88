package source

import (
	"io"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/pkg/fileutil"
)

// StdinID is the Source ID used for standard input.
const StdinID = ""

// ErrPathNotFound is returned when a requested path does not exist.
var ErrPathNotFound = errors.New("path not found")

// Source is one YAML input. Err is set when the content could not be read.
type Source struct {
	ID      string
	Content []byte
	Err     error
}

// IsStdin reports whether the source was read from standard input.
func (s Source) IsStdin() bool {
	return s.ID == StdinID
}

// ReadStdin reads a single stream from r with the default size limit.
func ReadStdin(r io.Reader) (Source, error) {
	return readStdin(r, fileutil.DefaultMaxFileSize)
}

func readStdin(r io.Reader, limit int64) (Source, error) {
	data, err := fileutil.ReadAllWithLimit(r, limit)
	if err != nil {
		return Source{}, errors.Wrap(err, "reading stdin")
	}
	return Source{ID: StdinID, Content: data}, nil
}
