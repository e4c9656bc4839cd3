package output

import (
	"fmt"

	"gitflow.dev/gitflow/internal/git"
)

// ProgressReporter prints transfer progress. On a terminal the current stage
// is redrawn in place; otherwise only completed stages are printed.
type ProgressReporter struct {
	splog *Splog
	tty   bool
	stage string
}

// NewProgressReporter creates a ProgressReporter writing through splog
func NewProgressReporter(splog *Splog, tty bool) *ProgressReporter {
	return &ProgressReporter{splog: splog, tty: tty}
}

// Report handles one progress event
func (p *ProgressReporter) Report(ev git.Progress) {
	line := FormatProgress(ev)
	if p.tty {
		if p.stage != "" && p.stage != ev.Stage {
			p.splog.Newline()
		}
		p.splog.Page("\r" + line)
		p.stage = ev.Stage
		return
	}
	if ev.Total > 0 && ev.Current == ev.Total {
		p.splog.Info("%s", line)
	}
}

// Done terminates an in-place progress line
func (p *ProgressReporter) Done() {
	if p.tty && p.stage != "" {
		p.splog.Newline()
		p.stage = ""
	}
}

// FormatProgress renders an event as "<stage>: <pct>% (<cur>/<total>)"
func FormatProgress(ev git.Progress) string {
	pct := 0
	if ev.Total > 0 {
		pct = ev.Current * 100 / ev.Total
	}
	line := fmt.Sprintf("%s: %3d%% (%d/%d)", ev.Stage, pct, ev.Current, ev.Total)
	if ev.Bytes > 0 {
		line += ", " + formatBytes(ev.Bytes)
	}
	return line
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
