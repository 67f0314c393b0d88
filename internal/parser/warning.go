package parser

// Kind classifies a parser warning.
type Kind int

const (
	// KindNotice is informational and never fails a document.
	KindNotice Kind = iota
	// KindDeprecation flags a construct scheduled for removal. Adapters
	// promote it to a parse failure.
	KindDeprecation
)

func (k Kind) String() string {
	switch k {
	case KindNotice:
		return "notice"
	case KindDeprecation:
		return "deprecation"
	default:
		return "unknown"
	}
}

// Warning is raised while a document is walked.
type Warning struct {
	Kind Kind
	// Line is 1-based, or 0 when the node position is unknown.
	Line    int
	Message string
}

// WarningHandler receives warnings during Parse. Returning a non-nil error
// aborts the parse with that error.
type WarningHandler func(Warning) error
