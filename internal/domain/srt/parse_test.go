package srt

import (
	"testing"

	"github.com/mahmedraza1/clipify/internal/types"
)

const sampleTrack = "1\n00:00:02,000 --> 00:00:06,000\nThis is a test\nsentence here\n\n" +
	"2\n00:00:07,500 --> 00:00:09,000\nSecond line\n\n" +
	"3\n"

func TestParse_JoinsTextLines(t *testing.T) {
	entries, warns := Parse(sampleTrack)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %+v", warns)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	want := types.SubtitleEntry{Start: 2, End: 6, Text: "This is a test sentence here"}
	if entries[0] != want {
		t.Fatalf("entry[0] = %+v, want %+v", entries[0], want)
	}
	if entries[1].Start != 7.5 || entries[1].End != 9 {
		t.Fatalf("entry[1] timing = [%v, %v]", entries[1].Start, entries[1].End)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	entries, warns := Parse("   \n\n  ")
	if entries != nil || warns != nil {
		t.Fatalf("expected nil results for blank input, got %v / %v", entries, warns)
	}
}

func TestParse_ShortBlocksIgnoredSilently(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\n\n" + // no text line
		"17\n\n" + // ordinal only
		"2\n00:00:03,000 --> 00:00:04,000\nok\n"
	entries, warns := Parse(raw)
	if len(warns) != 0 {
		t.Fatalf("short blocks must not warn, got %+v", warns)
	}
	if len(entries) != 1 || entries[0].Text != "ok" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParse_BadTimingLineWarns(t *testing.T) {
	raw := "1\nnot a timing line\nhello\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nok\n"
	entries, warns := Parse(raw)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if len(warns) != 1 || warns[0].Code != types.WarnBadTimingLine || warns[0].Block != 1 {
		t.Fatalf("unexpected warnings: %+v", warns)
	}
}

func TestParse_DegenerateTimingDropped(t *testing.T) {
	raw := "1\n00:00:05,000 --> 00:00:05,000\nzero width\n\n" +
		"2\n00:00:06,000 --> 00:00:04,000\nreversed\n\n" +
		"3\n00:00:07,000 --> 00:00:08,000\nok\n"
	entries, warns := Parse(raw)
	if len(entries) != 1 || entries[0].Text != "ok" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if len(warns) != 2 {
		t.Fatalf("expected 2 warnings, got %+v", warns)
	}
	for _, w := range warns {
		if w.Code != types.WarnDegenerateTime {
			t.Fatalf("unexpected warning code: %+v", w)
		}
	}
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	// Machine-generated tracks can be out of order; the parser passes the
	// disorder through instead of silently re-sorting.
	raw := "1\n00:00:10,000 --> 00:00:12,000\nlate\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nearly\n"
	entries, _ := Parse(raw)
	if len(entries) != 2 || entries[0].Text != "late" || entries[1].Text != "early" {
		t.Fatalf("expected pass-through order, got %+v", entries)
	}
}

func TestText(t *testing.T) {
	got := Text(sampleTrack)
	want := "This is a test sentence here Second line"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}
