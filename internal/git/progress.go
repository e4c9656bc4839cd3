package git

import (
	"regexp"
	"strconv"
	"strings"
)

// progressLine matches sideband lines such as
// "Receiving objects:  45% (9/20), 1.20 KiB | 1.00 MiB/s"
var progressLine = regexp.MustCompile(`^(?:remote:\s*)?([A-Za-z][A-Za-z ]*?):\s+\d+%\s+\((\d+)/(\d+)\)(?:,\s+([\d.]+)\s+(bytes|KiB|MiB|GiB))?`)

// ProgressWriter turns a sideband progress stream into Progress events.
// Events for a stage never go backwards.
type ProgressWriter struct {
	fn      ProgressFunc
	buf     strings.Builder
	last    map[string]Progress
	current string
}

// NewProgressWriter creates a ProgressWriter that reports to fn
func NewProgressWriter(fn ProgressFunc) *ProgressWriter {
	return &ProgressWriter{fn: fn, last: make(map[string]Progress)}
}

// Write implements io.Writer
func (w *ProgressWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\r' || b == '\n' {
			w.emit(w.buf.String())
			w.buf.Reset()
			continue
		}
		w.buf.WriteByte(b)
	}
	return len(p), nil
}

// Flush reports any buffered partial line
func (w *ProgressWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *ProgressWriter) emit(line string) {
	ev, ok := ParseProgress(line)
	if !ok {
		return
	}
	prev, seen := w.last[ev.Stage]
	if seen {
		if ev.Current < prev.Current {
			return
		}
		if ev.Bytes < prev.Bytes {
			ev.Bytes = prev.Bytes
		}
		if ev.Current == prev.Current && ev.Bytes == prev.Bytes && ev.Total == prev.Total {
			return
		}
	}
	w.last[ev.Stage] = ev
	w.fn(ev)
}

// ParseProgress parses one sideband progress line
func ParseProgress(line string) (Progress, bool) {
	m := progressLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Progress{}, false
	}
	current, err := strconv.Atoi(m[2])
	if err != nil {
		return Progress{}, false
	}
	total, err := strconv.Atoi(m[3])
	if err != nil {
		return Progress{}, false
	}
	ev := Progress{Stage: strings.TrimSpace(m[1]), Current: current, Total: total}
	if m[4] != "" {
		ev.Bytes = parseSize(m[4], m[5])
	}
	return ev, true
}

func parseSize(value, unit string) int64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	switch unit {
	case "KiB":
		f *= 1 << 10
	case "MiB":
		f *= 1 << 20
	case "GiB":
		f *= 1 << 30
	}
	return int64(f)
}
