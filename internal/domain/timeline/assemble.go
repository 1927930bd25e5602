package timeline

import (
	"sort"

	"github.com/mahmedraza1/clipify/internal/types"
)

// Assemble merges the caption and highlight layers into one timeline ordered
// by start time. The sort is stable and captions are placed ahead of
// highlights in the input, so for equal start times a caption precedes the
// highlight of the same source entry. Two empty layers assemble into a valid
// empty timeline.
func Assemble(captions []types.CaptionSegment, highlights []types.HighlightSegment) types.Timeline {
	events := make([]types.Event, 0, len(captions)+len(highlights))
	for _, c := range captions {
		events = append(events, types.Event{Layer: types.LayerCaption, Text: c.Text, Start: c.Start, End: c.End})
	}
	for _, h := range highlights {
		events = append(events, types.Event{Layer: types.LayerHighlight, Text: h.Word, Start: h.Start, End: h.End})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start < events[j].Start })
	return types.Timeline{Events: events}
}

// Build runs the whole engine: clip the entries to the window, derive caption
// and highlight segments from each surviving entry, and assemble the overlay
// timeline. An empty result is a valid "render without captions" outcome
// reported through a warning, never through the error.
func Build(entries []types.SubtitleEntry, w types.ClipWindow, cfg Config) (types.Timeline, []types.Warning, error) {
	clipped, warns, err := Clip(entries, w)
	if err != nil {
		return types.Timeline{}, warns, err
	}

	var captions []types.CaptionSegment
	var highlights []types.HighlightSegment
	for _, e := range clipped {
		captions = append(captions, SegmentCaptions(e, cfg.maxWords())...)
		highlights = append(highlights, HighlightWords(e)...)
	}

	tl := Assemble(captions, highlights)
	if tl.Empty() {
		warns = append(warns, types.Warning{
			Code:   types.WarnEmptyResult,
			Detail: "no caption events within clip window",
		})
	}
	return tl, warns, nil
}
