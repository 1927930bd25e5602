package timeline

import (
	"strings"

	"github.com/mahmedraza1/clipify/internal/types"
)

// DefaultMaxWords bounds caption length for readability on vertical video.
const DefaultMaxWords = 5

// Config carries timing policy. Rendering policy (fonts, colors, positions)
// deliberately lives elsewhere.
type Config struct {
	// MaxWords is the caption chunk bound; zero means DefaultMaxWords.
	MaxWords int
}

func (c Config) maxWords() int {
	if c.MaxWords > 0 {
		return c.MaxWords
	}
	return DefaultMaxWords
}

// SegmentCaptions splits an entry's text into caption chunks of at most
// maxWords words, distributing the entry's duration across chunks in
// proportion to word count. The chunks exactly tile [entry.Start, entry.End):
// the final chunk's end is pinned to the entry end rather than recomputed, so
// floating-point drift cannot open a gap there.
func SegmentCaptions(e types.ClippedEntry, maxWords int) []types.CaptionSegment {
	words := strings.Fields(e.Text)
	if len(words) == 0 {
		return nil
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if len(words) <= maxWords {
		return []types.CaptionSegment{{Start: e.Start, End: e.End, Text: strings.Join(words, " ")}}
	}

	dur := e.Duration()
	total := float64(len(words))
	out := make([]types.CaptionSegment, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		j := i + maxWords
		if j > len(words) {
			j = len(words)
		}
		start := e.Start + dur*float64(i)/total
		end := e.Start + dur*float64(j)/total
		if j == len(words) {
			end = e.End
		}
		out = append(out, types.CaptionSegment{Start: start, End: end, Text: strings.Join(words[i:j], " ")})
	}
	return out
}

// HighlightWords divides an entry's duration evenly across its words,
// producing one emphasis span per word for karaoke-style rendering. The final
// span is clamped to the entry end; spans that clamp to non-positive duration
// are skipped.
func HighlightWords(e types.ClippedEntry) []types.HighlightSegment {
	words := strings.Fields(e.Text)
	if len(words) == 0 {
		return nil
	}
	per := e.Duration() / float64(len(words))
	out := make([]types.HighlightSegment, 0, len(words))
	for i, w := range words {
		start := e.Start + float64(i)*per
		end := e.Start + float64(i+1)*per
		if end > e.End {
			end = e.End
		}
		if end-start <= 0 {
			continue
		}
		out = append(out, types.HighlightSegment{Start: start, End: end, Word: w})
	}
	return out
}
