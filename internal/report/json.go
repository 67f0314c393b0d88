package report

import (
	"encoding/json"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
)

// JSON renders results as an indented array. Absent fields are omitted.
type JSON struct{}

// Format implements Formatter.
func (JSON) Format(results []lint.Result, _ lint.Summary) (string, error) {
	if results == nil {
		results = []lint.Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding JSON report")
	}
	return string(data) + "\n", nil
}
