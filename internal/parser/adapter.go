package parser

// Adapter validates one YAML stream at a time, promoting deprecation
// warnings to failures. The underlying Parser is created on first use and
// reused for every later call.
type Adapter struct {
	opts   []Option
	parser *Parser
}

// NewAdapter creates an Adapter whose parser is built with opts.
func NewAdapter(opts ...Option) *Adapter {
	return &Adapter{opts: opts}
}

func (a *Adapter) getParser() *Parser {
	if a.parser == nil {
		a.parser = New(a.opts...)
	}
	return a.parser
}

// ValidateDocument parses content and returns the decoded value: nil for an
// empty stream, the document value for a single document, or []any for a
// multi-document stream. Failures are returned as *ParseFailure.
//
// While the call runs, deprecation warnings fail the document with the
// warning's line and message. Other warnings reach whatever handler was
// installed before the call, and that handler is reinstated on return.
func (a *Adapter) ValidateDocument(content string, allowCustomTags bool) (any, error) {
	p := a.getParser()

	var prev WarningHandler
	prev = p.SetWarningHandler(func(w Warning) error {
		if w.Kind == KindDeprecation {
			return &ParseFailure{Line: w.Line, Message: w.Message, Deprecation: true}
		}
		if prev != nil {
			return prev(w)
		}
		p.logWarning(w)
		return nil
	})
	defer p.SetWarningHandler(prev)

	var flags Flags
	if allowCustomTags {
		flags |= FlagParseCustomTags
	}

	docs, err := p.Parse(content, flags)
	if err != nil {
		return nil, err
	}

	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return docs, nil
	}
}
