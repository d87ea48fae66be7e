package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thmsn/ffrenc/internal/ffmpeg"
	"github.com/thmsn/ffrenc/internal/term"
)

// ProgressPrinter renders per-job progress as it happens. Human mode keeps
// a single status line alive with carriage returns; JSON mode emits one
// self-contained record per event for machine consumers.
type ProgressPrinter struct {
	w      io.Writer
	json   bool
	active bool // a \r status line is on screen and needs a closing newline
}

// NewProgressPrinter writes progress to w, as JSON records when jsonMode.
func NewProgressPrinter(w io.Writer, jsonMode bool) *ProgressPrinter {
	return &ProgressPrinter{w: w, json: jsonMode}
}

// progressRecord is the JSON shape of one progress event.
type progressRecord struct {
	Job     string  `json:"job"`
	Input   string  `json:"input"`
	Elapsed float64 `json:"elapsed_seconds"`
	Percent float64 `json:"percent"`
	ETA     string  `json:"eta,omitempty"`
}

// Update renders one progress event for the named job.
func (p *ProgressPrinter) Update(jobID, name string, ev ffmpeg.Event) {
	if p.json {
		rec := progressRecord{
			Job:     jobID,
			Input:   name,
			Elapsed: ev.Elapsed,
			Percent: ev.Percent,
		}
		if ev.ETA > 0 {
			rec.ETA = FormatDuration(ev.ETA)
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return
		}
		fmt.Fprintf(p.w, "%s\n", b)
		return
	}

	line := fmt.Sprintf("\r  %s%s%s %5.1f%%", term.Cyan, name, term.NC, ev.Percent)
	if ev.ETA > 0 {
		line += fmt.Sprintf(" %seta %s%s", term.Dim, FormatDuration(ev.ETA), term.NC)
	}
	fmt.Fprint(p.w, line)
	p.active = true
}

// JobDone terminates the live status line, if any, so the next log line
// starts on a fresh row.
func (p *ProgressPrinter) JobDone() {
	if p.active {
		fmt.Fprintln(p.w)
		p.active = false
	}
}
