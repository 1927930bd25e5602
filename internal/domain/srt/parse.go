// Package srt parses the conventional numbered-block subtitle track format
// into timed entries. Individual malformed blocks are skipped with a warning;
// the parse itself never fails.
package srt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mahmedraza1/clipify/internal/domain/timecode"
	"github.com/mahmedraza1/clipify/internal/types"
)

var (
	blockSep = regexp.MustCompile(`\n\s*\n`)
	timingRE = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`)
)

// Parse turns a raw track into entries in source order. Entries are never
// re-sorted by time: a disordered source track passes through as-is so its
// ordering defects stay visible downstream.
func Parse(raw string) ([]types.SubtitleEntry, []types.Warning) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, nil
	}

	var entries []types.SubtitleEntry
	var warns []types.Warning
	for i, block := range blockSep.Split(content, -1) {
		lines := nonBlankLines(block)
		// Index-only or otherwise truncated blocks are tolerated silently so a
		// trailing stub does not abort the whole parse.
		if len(lines) < 3 {
			continue
		}
		// lines[0] is the ordinal; ordering is positional, so it is ignored.
		m := timingRE.FindStringSubmatch(lines[1])
		if m == nil {
			warns = append(warns, types.Warning{
				Code:   types.WarnBadTimingLine,
				Block:  i + 1,
				Detail: lines[1],
			})
			continue
		}
		start, err1 := timecode.ParseTrack(m[1])
		end, err2 := timecode.ParseTrack(m[2])
		if err1 != nil || err2 != nil {
			warns = append(warns, types.Warning{
				Code:   types.WarnBadTimingLine,
				Block:  i + 1,
				Detail: lines[1],
			})
			continue
		}
		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" || end <= start {
			warns = append(warns, types.Warning{
				Code:   types.WarnDegenerateTime,
				Block:  i + 1,
				Detail: fmt.Sprintf("start=%s end=%s text=%q", m[1], m[2], text),
			})
			continue
		}
		entries = append(entries, types.SubtitleEntry{Start: start, End: end, Text: text})
	}
	return entries, warns
}

// Text extracts just the spoken text from a raw track, joined with single
// spaces, for transcript-level analysis.
func Text(raw string) string {
	entries, _ := Parse(raw)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Text)
	}
	return strings.Join(parts, " ")
}

func nonBlankLines(block string) []string {
	var out []string
	for _, l := range strings.Split(block, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
