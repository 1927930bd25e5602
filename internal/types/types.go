package types

// SubtitleEntry is one transcript line in absolute track time (seconds).
// Invariant: End > Start, Text non-empty after trimming.
type SubtitleEntry struct {
	Start float64
	End   float64
	Text  string
}

// ClipWindow is the absolute time interval selected for extraction.
type ClipWindow struct {
	Start float64
	End   float64
}

func (w ClipWindow) Duration() float64 { return w.End - w.Start }

// ClippedEntry is a SubtitleEntry re-based to window-local time.
// Invariant: 0 <= Start < End <= window duration.
type ClippedEntry struct {
	Start float64
	End   float64
	Text  string
}

func (e ClippedEntry) Duration() float64 { return e.End - e.Start }

// CaptionSegment is one on-screen caption chunk, window-local time.
type CaptionSegment struct {
	Start float64
	End   float64
	Text  string
}

// HighlightSegment is the span during which a single word is emphasized.
type HighlightSegment struct {
	Start float64
	End   float64
	Word  string
}

type Layer string

const (
	LayerCaption   Layer = "caption"
	LayerHighlight Layer = "highlight"
)

// Event is one renderable element of the overlay timeline.
type Event struct {
	Layer Layer
	Text  string
	Start float64
	End   float64
}

// Timeline is the engine output: all caption and highlight events across the
// clip, ordered by start time.
type Timeline struct {
	Events []Event
}

// Empty reports the distinguished "render without captions" state.
func (t Timeline) Empty() bool { return len(t.Events) == 0 }

// Warning codes for recoverable per-block and per-entry conditions.
const (
	WarnBadTimingLine  = "bad_timing_line"
	WarnDegenerateTime = "degenerate_timing"
	WarnBoundaryDrop   = "boundary_drop"
	WarnEmptyResult    = "empty_result"
)

// Warning is a structured diagnostic for an input problem that was recovered
// locally instead of aborting the pipeline.
type Warning struct {
	Code   string
	Block  int // 1-based source block index, 0 when not block-scoped
	Detail string
}

// ClipSuggestion is the clip-window descriptor produced by the suggestion
// collaborator and consumed by the subtitle pipeline. Start and End use the
// HH:MM:SS clock form.
type ClipSuggestion struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason,omitempty"`
}
