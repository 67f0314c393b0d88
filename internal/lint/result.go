package lint

// Result is the outcome of validating one source. File is empty for
// standard input and Line is zero when no line is known.
type Result struct {
	File    string `json:"file,omitempty"`
	Valid   bool   `json:"valid"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message,omitempty"`
}

// HasLine reports whether the failure carries a line number.
func (r Result) HasLine() bool {
	return r.Line > 0
}

// Summary counts a batch of Results.
type Summary struct {
	Total   int `json:"total"`
	Errored int `json:"errored"`
}

// Passed returns the number of valid results.
func (s Summary) Passed() int {
	return s.Total - s.Errored
}

// Summarize counts results and derives the exit code: 0 when every result
// is valid, 1 otherwise.
func Summarize(results []Result) (Summary, int) {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if !r.Valid {
			s.Errored++
		}
	}
	return s, min(s.Errored, 1)
}
