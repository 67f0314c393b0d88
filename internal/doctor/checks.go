package doctor

import (
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
	"github.com/thoreinstein/yamlint/internal/source"
)

// ConfigCheck reports whether the configuration file loaded and validated.
type ConfigCheck struct {
	// File is the configuration file that was read, or empty when none was found.
	File string

	// Err is the error returned while loading the configuration.
	Err error
}

var _ Check = (*ConfigCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the configuration check.
func (c *ConfigCheck) Run() *CheckResult {
	switch {
	case c.Err != nil:
		res := &CheckResult{
			Status:  SeverityError,
			Message: c.Err.Error(),
			FixHint: "fix the file or run 'yamlint config init --force' to replace it",
		}
		if errors.Is(c.Err, errors.ErrNotFound) {
			res.FixHint = "check the --config path"
		}
		return res
	case c.File == "":
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no configuration file found, using defaults",
			FixHint: "run 'yamlint config init' to create one",
		}
	default:
		return &CheckResult{
			Status:  SeverityPass,
			Message: "configuration loaded",
			Details: map[string]any{"file": c.File},
		}
	}
}

// GitCheck reports whether Dir lies inside a git work tree, which
// 'lint --changed' requires.
type GitCheck struct {
	Dir string
}

var _ Check = (*GitCheck)(nil)

// Name returns the unique identifier for this check.
func (c *GitCheck) Name() string { return "git-worktree" }

// Category returns the grouping for this check.
func (c *GitCheck) Category() string { return "git" }

// Run executes the work tree check.
func (c *GitCheck) Run() *CheckResult {
	root, err := source.RepoRoot(c.Dir)
	if err != nil {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "not inside a git work tree, --changed is unavailable",
			Details: map[string]any{"dir": c.Dir},
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "git work tree found",
		Details: map[string]any{"root": root},
	}
}

// selfTest pairs a document with the outcome the engine must produce.
type selfTest struct {
	content string
	valid   bool
}

var selfTests = []selfTest{
	{content: "key: value\nlist:\n  - 1\n  - 2\n", valid: true},
	{content: "a: [1, 2\n", valid: false},
	{content: "mode: 0755\n", valid: false},
}

// ParserCheck runs a few fixed documents through an engine and verifies
// each one is accepted or rejected as expected.
type ParserCheck struct {
	Engine *lint.Engine
}

var _ Check = (*ParserCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ParserCheck) Name() string { return "parser-self-test" }

// Category returns the grouping for this check.
func (c *ParserCheck) Category() string { return "parser" }

// Run executes the parser self-test.
func (c *ParserCheck) Run() *CheckResult {
	engine := c.Engine
	if engine == nil {
		engine = lint.NewEngine()
	}

	var failed []string
	for _, tc := range selfTests {
		if res := engine.Validate(tc.content, "", false); res.Valid != tc.valid {
			failed = append(failed, tc.content)
		}
	}
	if len(failed) > 0 {
		return &CheckResult{
			Status:  SeverityError,
			Message: "parser produced unexpected results",
			Details: map[string]any{"documents": failed},
			FixHint: "reinstall yamlint",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "parser self-test passed",
		Details: map[string]any{"documents": len(selfTests)},
	}
}

// TerminalCheck reports how output will be rendered on the current terminal.
type TerminalCheck struct {
	Interactive bool
	Color       bool
}

var _ Check = (*TerminalCheck)(nil)

// Name returns the unique identifier for this check.
func (c *TerminalCheck) Name() string { return "terminal" }

// Category returns the grouping for this check.
func (c *TerminalCheck) Category() string { return "output" }

// Run executes the terminal check.
func (c *TerminalCheck) Run() *CheckResult {
	msg := "output is not a terminal, progress bars are disabled"
	if c.Interactive {
		msg = "interactive terminal"
	}
	return &CheckResult{
		Status:  SeverityInfo,
		Message: msg,
		Details: map[string]any{"interactive": c.Interactive, "color": c.Color},
	}
}
