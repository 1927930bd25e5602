// Package timeline is the subtitle timing engine: it clips a transcript to a
// chosen window, splits entries into caption chunks and per-word highlight
// spans, and assembles the render-ready overlay timeline. Every function is a
// pure transformation over immutable inputs; all I/O stays with callers.
package timeline

import (
	"errors"
	"fmt"

	"github.com/mahmedraza1/clipify/internal/types"
)

// ErrInvalidWindow reports a clip window whose end does not lie after its
// start; no clipping is meaningful against such a window.
var ErrInvalidWindow = errors.New("invalid clip window")

// Clip selects the entries overlapping the window, re-bases their times to
// window-local zero, and clamps them to the window bounds. Output preserves
// entry order. Entries that barely graze a boundary and collapse to zero or
// negative duration are dropped with a warning.
func Clip(entries []types.SubtitleEntry, w types.ClipWindow) ([]types.ClippedEntry, []types.Warning, error) {
	if w.End <= w.Start {
		return nil, nil, fmt.Errorf("%w: start=%.3f end=%.3f", ErrInvalidWindow, w.Start, w.End)
	}
	dur := w.Duration()

	var out []types.ClippedEntry
	var warns []types.Warning
	for _, e := range entries {
		// Strict half-open overlap: an entry ending exactly at the window
		// start, or starting exactly at the window end, is outside.
		if e.End <= w.Start || e.Start >= w.End {
			continue
		}
		start := e.Start - w.Start
		if start < 0 {
			start = 0
		}
		end := e.End - w.Start
		if end > dur {
			end = dur
		}
		if end <= start || end <= 0 {
			warns = append(warns, types.Warning{
				Code:   types.WarnBoundaryDrop,
				Detail: fmt.Sprintf("entry [%.3f, %.3f] degenerates at window boundary", e.Start, e.End),
			})
			continue
		}
		out = append(out, types.ClippedEntry{Start: start, End: end, Text: e.Text})
	}
	return out, warns, nil
}
