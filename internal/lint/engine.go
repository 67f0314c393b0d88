package lint

import (
	"fmt"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/parser"
)

// Engine validates sources through a single parser adapter. An Engine is
// not safe for concurrent use.
type Engine struct {
	adapter *parser.Adapter
}

// NewEngine creates an Engine whose adapter's parser is built with opts.
func NewEngine(opts ...parser.Option) *Engine {
	return &Engine{adapter: parser.NewAdapter(opts...)}
}

// Validate parses content and reports the outcome for file. It never
// panics and never returns an error: every failure is folded into the
// Result.
func (e *Engine) Validate(content, file string, allowCustomTags bool) (res Result) {
	res = Result{File: file}

	defer func() {
		if r := recover(); r != nil {
			res = Result{File: file, Message: fmt.Sprintf("internal parser error: %v", r)}
		}
	}()

	_, err := e.adapter.ValidateDocument(content, allowCustomTags)
	if err == nil {
		res.Valid = true
		return res
	}

	var failure *parser.ParseFailure
	if errors.As(err, &failure) {
		res.Line = failure.Line
		res.Message = failure.Message
	} else {
		res.Message = err.Error()
	}
	if res.Message == "" {
		res.Message = "invalid YAML"
	}
	return res
}
