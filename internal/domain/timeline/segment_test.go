package timeline

import (
	"math"
	"testing"

	"github.com/mahmedraza1/clipify/internal/types"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestSegmentCaptions_ShortTextSingleSegment(t *testing.T) {
	e := types.ClippedEntry{Start: 1, End: 3, Text: "  just   four  small words "}
	segs := SegmentCaptions(e, 5)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %+v", segs)
	}
	want := types.CaptionSegment{Start: 1, End: 3, Text: "just four small words"}
	if segs[0] != want {
		t.Fatalf("segment = %+v, want %+v", segs[0], want)
	}
}

func TestSegmentCaptions_ProportionalSplit(t *testing.T) {
	// Six words over four seconds with a five-word bound: the first chunk
	// carries 5/6 of the duration, the second the remaining 1/6.
	e := types.ClippedEntry{Start: 2, End: 6, Text: "This is a test sentence here"}
	split := 2 + 4*5.0/6
	segs := SegmentCaptions(e, 5)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %+v", segs)
	}
	if segs[0].Text != "This is a test sentence" || segs[1].Text != "here" {
		t.Fatalf("unexpected chunk texts: %q, %q", segs[0].Text, segs[1].Text)
	}
	if !almostEqual(segs[0].Start, 2.0) || !almostEqual(segs[0].End, split) {
		t.Fatalf("segment[0] spans [%v, %v], want [2, %v]", segs[0].Start, segs[0].End, split)
	}
	if !almostEqual(segs[1].Start, split) || segs[1].End != 6.0 {
		t.Fatalf("segment[1] spans [%v, %v], want [%v, 6]", segs[1].Start, segs[1].End, split)
	}
}

func TestSegmentCaptions_ExactTiling(t *testing.T) {
	e := types.ClippedEntry{Start: 0.37, End: 11.13, Text: "a b c d e f g h i j k l m"}
	segs := SegmentCaptions(e, 5)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Start != e.Start {
		t.Fatalf("first segment start %v, want %v", segs[0].Start, e.Start)
	}
	if segs[len(segs)-1].End != e.End {
		t.Fatalf("last segment end %v, want exactly %v", segs[len(segs)-1].End, e.End)
	}
	var sum float64
	for i, s := range segs {
		sum += s.End - s.Start
		if i > 0 && !almostEqual(segs[i-1].End, s.Start) {
			t.Fatalf("gap between segment %d and %d: %v vs %v", i-1, i, segs[i-1].End, s.Start)
		}
	}
	if !almostEqual(sum, e.Duration()) {
		t.Fatalf("segments cover %v, want %v", sum, e.Duration())
	}
}

func TestSegmentCaptions_EmptyText(t *testing.T) {
	if segs := SegmentCaptions(types.ClippedEntry{Start: 0, End: 1, Text: "   "}, 5); segs != nil {
		t.Fatalf("expected nil for blank text, got %+v", segs)
	}
}

func TestSegmentCaptions_ZeroMaxWordsUsesDefault(t *testing.T) {
	e := types.ClippedEntry{Start: 0, End: 6, Text: "one two three four five six"}
	segs := SegmentCaptions(e, 0)
	if len(segs) != 2 {
		t.Fatalf("expected default bound of %d to produce 2 segments, got %d", DefaultMaxWords, len(segs))
	}
}

func TestHighlightWords_EqualDivision(t *testing.T) {
	e := types.ClippedEntry{Start: 2, End: 6, Text: "This is a test sentence here"}
	hs := HighlightWords(e)
	if len(hs) != 6 {
		t.Fatalf("expected 6 highlights, got %d", len(hs))
	}
	per := e.Duration() / 6
	for i, h := range hs {
		if !almostEqual(h.End-h.Start, per) {
			t.Fatalf("highlight[%d] duration %v, want %v", i, h.End-h.Start, per)
		}
		if h.Start < e.Start-eps || h.End > e.End+eps {
			t.Fatalf("highlight[%d] outside entry bounds: %+v", i, h)
		}
		if i > 0 && hs[i-1].End > h.Start+eps {
			t.Fatalf("highlight[%d] overlaps previous: %+v then %+v", i, hs[i-1], h)
		}
	}
	if hs[0].Word != "This" || hs[5].Word != "here" {
		t.Fatalf("word order broken: %+v", hs)
	}
}

func TestHighlightWords_FinalSpanClamped(t *testing.T) {
	e := types.ClippedEntry{Start: 0, End: 1, Text: "a b c"}
	hs := HighlightWords(e)
	if len(hs) != 3 {
		t.Fatalf("expected 3 highlights, got %d", len(hs))
	}
	if hs[2].End > e.End {
		t.Fatalf("final highlight end %v exceeds entry end %v", hs[2].End, e.End)
	}
}

func TestHighlightWords_DegenerateEntrySkipsAllSpans(t *testing.T) {
	// A zero-duration entry divides into zero-length spans; every one must be
	// skipped rather than emitted as an instantaneous event.
	if hs := HighlightWords(types.ClippedEntry{Start: 5, End: 5, Text: "a b c"}); len(hs) != 0 {
		t.Fatalf("expected no highlights for zero-duration entry, got %+v", hs)
	}
}

func TestHighlightWords_EmptyText(t *testing.T) {
	if hs := HighlightWords(types.ClippedEntry{Start: 0, End: 1, Text: ""}); hs != nil {
		t.Fatalf("expected nil for empty text, got %+v", hs)
	}
}
