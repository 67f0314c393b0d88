package parser

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/yamlint/internal/errors"
)

// ParseFailure describes why a document was rejected.
type ParseFailure struct {
	// Line is 1-based, or 0 when it could not be determined.
	Line    int
	Message string
	// Deprecation is set when the failure was promoted from a deprecation warning.
	Deprecation bool
}

func (f *ParseFailure) Error() string {
	if f.Line > 0 {
		return "line " + strconv.Itoa(f.Line) + ": " + f.Message
	}
	return f.Message
}

var linePrefix = regexp.MustCompile(`^line (\d+): (.*)$`)

// readerProblems are yaml.v3 reader errors. They carry no position, so the
// first-line fallback must not apply to them.
var readerProblems = []string{
	"invalid leading UTF-8 octet",
	"invalid trailing UTF-8 octet",
	"incomplete UTF-8 octet sequence",
	"invalid length of a UTF-8 sequence",
	"invalid Unicode character",
	"control characters are not allowed",
	"input error",
}

// syntaxFailure converts an error returned while scanning and parsing.
// yaml.v3 omits the position when the problem sits on the first line.
func syntaxFailure(err error) *ParseFailure {
	var pf *ParseFailure
	if errors.As(err, &pf) {
		return pf
	}
	f := failureFromText(strings.TrimPrefix(err.Error(), "yaml: "))
	if f.Line == 0 && !isReaderProblem(f.Message) {
		f.Line = 1
	}
	return f
}

// decodeFailure converts an error returned while decoding a parsed node.
func decodeFailure(err error) *ParseFailure {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		return failureFromText(typeErr.Errors[0])
	}
	return failureFromText(strings.TrimPrefix(err.Error(), "yaml: "))
}

func failureFromText(s string) *ParseFailure {
	s = strings.TrimSpace(s)
	if m := linePrefix.FindStringSubmatch(s); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ParseFailure{Line: line, Message: m[2]}
	}
	return &ParseFailure{Message: s}
}

func isReaderProblem(msg string) bool {
	for _, p := range readerProblems {
		if strings.HasPrefix(msg, p) {
			return true
		}
	}
	return false
}
