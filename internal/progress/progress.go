// Package progress reports lint progress on an interactive terminal.
package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Manager creates progress tasks.
type Manager interface {
	StartTask(description string, total int) Task
	IsInteractive() bool
	Close()
}

// Task tracks one unit of work.
type Task interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// New returns a bar-backed Manager writing to w when enabled and
// interactive, and a no-op Manager otherwise.
func New(w io.Writer, enabled, interactive bool) Manager {
	if enabled && interactive {
		return &barManager{writer: w}
	}
	return NoOp()
}

type barManager struct {
	writer io.Writer
	tasks  []*progressbar.ProgressBar
}

func (m *barManager) StartTask(description string, total int) Task {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(m.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	m.tasks = append(m.tasks, bar)
	return &barTask{bar: bar}
}

func (m *barManager) IsInteractive() bool { return true }

func (m *barManager) Close() {
	for _, bar := range m.tasks {
		_ = bar.Finish()
	}
	m.tasks = nil
}

type barTask struct {
	bar *progressbar.ProgressBar
}

func (t *barTask) Increment(n int)             { _ = t.bar.Add(n) }
func (t *barTask) Describe(description string) { t.bar.Describe(description) }
func (t *barTask) Complete()                   { _ = t.bar.Finish() }

// NoOp returns a Manager that discards all progress.
func NoOp() Manager { return noopManager{} }

type noopManager struct{}

func (noopManager) StartTask(string, int) Task { return noopTask{} }
func (noopManager) IsInteractive() bool        { return false }
func (noopManager) Close()                     {}

type noopTask struct{}

func (noopTask) Increment(int)   {}
func (noopTask) Describe(string) {}
func (noopTask) Complete()       {}
