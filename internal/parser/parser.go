package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
)

// Flags alter how a stream is parsed.
type Flags uint8

const (
	// FlagParseCustomTags accepts application-defined tags such as !env.
	FlagParseCustomTags Flags = 1 << iota
)

// coreTags are the tags of the YAML type repository that yaml.v3 understands.
var coreTags = map[string]struct{}{
	"!!str":       {},
	"!!int":       {},
	"!!float":     {},
	"!!bool":      {},
	"!!null":      {},
	"!!map":       {},
	"!!seq":       {},
	"!!binary":    {},
	"!!timestamp": {},
	"!!merge":     {},
	"!!omap":      {},
	"!!set":       {},
	"!!pairs":     {},
	"!":           {},
}

const longTagPrefix = "tag:yaml.org,2002:"

// yaml11Booleans are plain words YAML 1.1 resolved to booleans. yaml.v3
// still honours them when decoding into bool fields.
var yaml11Booleans = map[string]struct{}{
	"yes": {}, "Yes": {}, "YES": {},
	"no": {}, "No": {}, "NO": {},
	"on": {}, "On": {}, "ON": {},
	"off": {}, "Off": {}, "OFF": {},
}

var legacyOctal = regexp.MustCompile(`^([-+]?)0([0-7]+)$`)

// Option configures a Parser.
type Option func(*Parser)

// WithWarningHandler sets the handler installed when the parser is created.
func WithWarningHandler(h WarningHandler) Option {
	return func(p *Parser) {
		p.handler = h
	}
}

// WithAllowedTags limits which custom tags FlagParseCustomTags accepts.
// Tags may be given with or without the leading "!". An empty list allows
// every custom tag.
func WithAllowedTags(tags ...string) Option {
	return func(p *Parser) {
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" || t == "*" {
				continue
			}
			if p.allowedTags == nil {
				p.allowedTags = make(map[string]struct{})
			}
			p.allowedTags[normalizeTag(t)] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for unhandled warnings and trace output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser decodes YAML streams and walks their node trees.
type Parser struct {
	handler     WarningHandler
	allowedTags map[string]struct{}
	logger      *slog.Logger
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetWarningHandler installs h and returns the handler it replaced.
// A nil handler logs warnings at debug level.
func (p *Parser) SetWarningHandler(h WarningHandler) WarningHandler {
	prev := p.handler
	p.handler = h
	return prev
}

// Parse decodes every document in content. An empty stream yields no
// documents and no error. Failures are returned as *ParseFailure.
func (p *Parser) Parse(content string, flags Flags) ([]any, error) {
	dec := yaml.NewDecoder(strings.NewReader(content))

	var docs []any
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, syntaxFailure(err)
		}

		w := &walker{parser: p, flags: flags, anchors: make(map[string]int)}
		if err := w.walk(&doc, roleValue); err != nil {
			return nil, err
		}

		var v any
		if err := doc.Decode(&v); err != nil {
			return nil, decodeFailure(err)
		}
		p.logger.Log(context.Background(), logging.LevelTrace, "decoded document",
			"index", len(docs), "line", doc.Line, "nodes", w.nodes)
		docs = append(docs, v)
	}

	return docs, nil
}

func (p *Parser) warn(w Warning) error {
	if p.handler != nil {
		return p.handler(w)
	}
	p.logWarning(w)
	return nil
}

func (p *Parser) logWarning(w Warning) {
	p.logger.Debug("yaml warning", "kind", w.Kind.String(), "line", w.Line, "message", w.Message)
}

type nodeRole int

const (
	roleValue nodeRole = iota
	roleKey
)

type walker struct {
	parser  *Parser
	flags   Flags
	anchors map[string]int
	nodes   int
}

func (w *walker) walk(n *yaml.Node, role nodeRole) error {
	if n == nil {
		return nil
	}
	w.nodes++

	if n.Anchor != "" {
		if first, ok := w.anchors[n.Anchor]; ok {
			err := w.parser.warn(Warning{
				Kind:    KindNotice,
				Line:    n.Line,
				Message: fmt.Sprintf("anchor %q redefined (first defined at line %d)", n.Anchor, first),
			})
			if err != nil {
				return err
			}
		}
		w.anchors[n.Anchor] = n.Line
	}

	if n.Style&yaml.TaggedStyle != 0 {
		if err := w.checkTag(n); err != nil {
			return err
		}
	}

	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			if err := w.walk(child, roleValue); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := w.walk(n.Content[i], roleKey); err != nil {
				return err
			}
			if err := w.walk(n.Content[i+1], roleValue); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		return w.checkScalar(n, role)
	case yaml.AliasNode:
		// Aliased content was walked at its anchor.
	}
	return nil
}

func (w *walker) checkTag(n *yaml.Node) error {
	tag := normalizeTag(n.Tag)
	if _, ok := coreTags[tag]; ok {
		return nil
	}

	if w.flags&FlagParseCustomTags == 0 {
		return &ParseFailure{
			Line:    n.Line,
			Message: fmt.Sprintf("custom tags are not enabled; pass --parse-tags to use %q", tag),
		}
	}

	if allowed := w.parser.allowedTags; len(allowed) > 0 {
		if _, ok := allowed[tag]; !ok {
			return &ParseFailure{
				Line:    n.Line,
				Message: fmt.Sprintf("custom tag %q is not in the allowed tag set", tag),
			}
		}
	}
	return nil
}

func (w *walker) checkScalar(n *yaml.Node, role nodeRole) error {
	// Only plain, untagged scalars are resolved implicitly.
	if n.Style != 0 {
		return nil
	}

	if n.Tag == "!!int" {
		if m := legacyOctal.FindStringSubmatch(n.Value); m != nil {
			return w.parser.warn(Warning{
				Kind:    KindDeprecation,
				Line:    n.Line,
				Message: fmt.Sprintf("support for YAML 1.1 octal notation %q is deprecated; use %q instead", n.Value, m[1]+"0o"+m[2]),
			})
		}
	}

	if role == roleValue && n.Tag == "!!str" {
		if _, ok := yaml11Booleans[n.Value]; ok {
			return w.parser.warn(Warning{
				Kind:    KindDeprecation,
				Line:    n.Line,
				Message: fmt.Sprintf("implicit YAML 1.1 boolean %q is deprecated; quote it or use true/false", n.Value),
			})
		}
	}
	return nil
}

func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		return "!!" + strings.TrimPrefix(tag, longTagPrefix)
	}
	if !strings.HasPrefix(tag, "!") {
		return "!" + tag
	}
	return tag
}
