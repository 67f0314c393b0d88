package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
)

func newTestAdapter(t *testing.T, opts ...Option) *Adapter {
	t.Helper()
	return NewAdapter(append([]Option{WithLogger(logging.ForTest(t))}, opts...)...)
}

func requireFailure(t *testing.T, err error) *ParseFailure {
	t.Helper()
	if err == nil {
		t.Fatal("expected a parse failure, got nil")
	}
	var pf *ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("expected *ParseFailure, got %T: %v", err, err)
	}
	return pf
}

func TestAdapter_ValidateDocument_Valid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    any
	}{
		{
			name:    "json compatible mapping",
			content: `{"a":1,"e":5}`,
			want:    map[string]any{"a": 1, "e": 5},
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "block sequence",
			content: "- one\n- two\n",
			want:    []any{"one", "two"},
		},
		{
			name:    "yaml 1.2 octal",
			content: "mode: 0o755\n",
			want:    map[string]any{"mode": 493},
		},
		{
			name:    "quoted yaml 1.1 boolean word",
			content: "answer: \"yes\"\n",
			want:    map[string]any{"answer": "yes"},
		},
		{
			name:    "boolean word used as key",
			content: "on: push\n",
			want:    map[string]any{"on": "push"},
		},
		{
			name:    "explicit core tag",
			content: "port: !!str 8080\n",
			want:    map[string]any{"port": "8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t)
			got, err := a.ValidateDocument(tt.content, false)
			if err != nil {
				t.Fatalf("ValidateDocument() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateDocument() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAdapter_ValidateDocument_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantLine    int
		wantMessage string
	}{
		{
			name:        "unterminated flow sequence",
			content:     "a: [1, 2",
			wantLine:    1,
			wantMessage: "expected",
		},
		{
			name:        "nested mapping on first line",
			content:     "a: b: c\n",
			wantLine:    1,
			wantMessage: "mapping values are not allowed",
		},
		{
			name:        "bad indentation on third line",
			content:     "a: 1\nb: 2\n  c: 3\n",
			wantLine:    3,
			wantMessage: "mapping values are not allowed",
		},
		{
			name:        "duplicate key",
			content:     "a: 1\na: 2\n",
			wantLine:    2,
			wantMessage: "already defined",
		},
		{
			name:        "error in a later document",
			content:     "a: 1\n---\nb: 2\n  c: 3\n",
			wantLine:    4,
			wantMessage: "mapping values are not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t)
			_, err := a.ValidateDocument(tt.content, false)
			pf := requireFailure(t, err)

			if pf.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (message %q)", pf.Line, tt.wantLine, pf.Message)
			}
			if !strings.Contains(pf.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want it to contain %q", pf.Message, tt.wantMessage)
			}
			if strings.HasPrefix(pf.Message, "yaml:") {
				t.Errorf("Message should not keep the yaml: prefix, got %q", pf.Message)
			}
			if pf.Deprecation {
				t.Error("syntax errors must not be flagged as deprecations")
			}
		})
	}
}

func TestAdapter_ValidateDocument_DeprecationPromotion(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantLine    int
		wantMessage string
	}{
		{
			name:        "legacy octal",
			content:     "name: app\nmode: 0755\n",
			wantLine:    2,
			wantMessage: `"0o755"`,
		},
		{
			name:        "negative legacy octal",
			content:     "offset: -017\n",
			wantLine:    1,
			wantMessage: `"-0o17"`,
		},
		{
			name:        "yaml 1.1 boolean value",
			content:     "enabled: yes\n",
			wantLine:    1,
			wantMessage: "boolean",
		},
		{
			name:        "yaml 1.1 boolean in sequence",
			content:     "flags:\n  - true\n  - OFF\n",
			wantLine:    3,
			wantMessage: `"OFF"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t)
			_, err := a.ValidateDocument(tt.content, false)
			pf := requireFailure(t, err)

			if !pf.Deprecation {
				t.Error("expected failure to be flagged as a promoted deprecation")
			}
			if pf.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pf.Line, tt.wantLine)
			}
			if !strings.Contains(pf.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want it to contain %q", pf.Message, tt.wantMessage)
			}
		})
	}
}

func TestAdapter_RestoresWarningHandler(t *testing.T) {
	var seen []Warning
	base := func(w Warning) error {
		seen = append(seen, w)
		return nil
	}
	a := newTestAdapter(t, WithWarningHandler(base))

	_, err := a.ValidateDocument("mode: 0644\n", false)
	requireFailure(t, err)

	if len(seen) != 0 {
		t.Fatalf("deprecation leaked to the base handler: %v", seen)
	}

	_, err = a.ValidateDocument("a: &x 1\nb: &x 2\n", false)
	if err != nil {
		t.Fatalf("notice should not fail the document: %v", err)
	}

	if len(seen) != 1 {
		t.Fatalf("base handler received %d warnings, want 1", len(seen))
	}
	if seen[0].Kind != KindNotice || seen[0].Line != 2 {
		t.Errorf("unexpected warning %+v", seen[0])
	}

	// Once the call returns the base handler is back in place, so a direct
	// parse sees deprecations as plain warnings.
	if _, err := a.getParser().Parse("mode: 0644\n", 0); err != nil {
		t.Fatalf("Parse() with base handler error = %v", err)
	}
	if len(seen) != 2 || seen[1].Kind != KindDeprecation {
		t.Errorf("base handler should see the deprecation after restoration, got %v", seen)
	}
}

func TestAdapter_CustomTags(t *testing.T) {
	content := "home: !env HOME\n"

	t.Run("rejected when disabled", func(t *testing.T) {
		a := newTestAdapter(t)
		_, err := a.ValidateDocument(content, false)
		pf := requireFailure(t, err)
		if pf.Line != 1 {
			t.Errorf("Line = %d, want 1", pf.Line)
		}
		if !strings.Contains(pf.Message, `"!env"`) {
			t.Errorf("Message = %q, want it to name the tag", pf.Message)
		}
	})

	t.Run("accepted when enabled", func(t *testing.T) {
		a := newTestAdapter(t)
		if _, err := a.ValidateDocument(content, true); err != nil {
			t.Errorf("ValidateDocument() error = %v", err)
		}
	})

	t.Run("restricted to allowed set", func(t *testing.T) {
		a := newTestAdapter(t, WithAllowedTags("env", "!secret"))
		if _, err := a.ValidateDocument(content, true); err != nil {
			t.Errorf("allowed tag rejected: %v", err)
		}
		_, err := a.ValidateDocument("a: 1\nref: !ref other\n", true)
		pf := requireFailure(t, err)
		if pf.Line != 2 || !strings.Contains(pf.Message, "allowed tag set") {
			t.Errorf("unexpected failure %+v", pf)
		}
	})
}

func TestAdapter_Idempotent(t *testing.T) {
	a := newTestAdapter(t)
	for _, content := range []string{"a: [1, 2", "a: 1\n", "mode: 0755\n"} {
		v1, err1 := a.ValidateDocument(content, false)
		v2, err2 := a.ValidateDocument(content, false)
		if !reflect.DeepEqual(v1, v2) || !reflect.DeepEqual(err1, err2) {
			t.Errorf("ValidateDocument(%q) not idempotent: (%v, %v) vs (%v, %v)", content, v1, err1, v2, err2)
		}
	}
}

func TestAdapter_MultipleDocuments(t *testing.T) {
	a := newTestAdapter(t)
	got, err := a.ValidateDocument("a: 1\n---\nb: 2\n", false)
	if err != nil {
		t.Fatalf("ValidateDocument() error = %v", err)
	}
	want := []any{map[string]any{"a": 1}, map[string]any{"b": 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateDocument() = %#v, want %#v", got, want)
	}
}

func TestAdapter_ParserCreatedOnce(t *testing.T) {
	a := newTestAdapter(t)
	if a.parser != nil {
		t.Fatal("parser should be created lazily")
	}
	_, _ = a.ValidateDocument("a: 1", false)
	first := a.parser
	_, _ = a.ValidateDocument("b: 2", false)
	if a.parser != first {
		t.Error("parser should be reused across calls")
	}
}
