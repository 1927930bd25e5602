// Package render turns the engine's overlay timeline into an ASS subtitle
// document that the burn-in collaborator consumes. Timing is decided upstream
// by the timeline engine; this package only applies visual styling.
package render

import (
	"fmt"
	"strings"

	"github.com/mahmedraza1/clipify/internal/types"
)

// Style is rendering policy: fonts, colors and placement for both overlay
// layers. Zero fields fall back to the defaults tuned for 9:16 shorts.
type Style struct {
	Font string

	CaptionColour   string // ASS &HAABBGGRR
	HighlightColour string
	OutlineColour   string

	// Font size per layer is min(cap, frameWidth/div).
	CaptionFontCap   int
	CaptionFontDiv   int
	HighlightFontCap int
	HighlightFontDiv int

	// Vertical anchors as fractions of frame height.
	CaptionY   float64
	HighlightY float64
}

// DefaultStyle mirrors the hand-tuned shorts styling: white captions low in
// frame, gold highlight word slightly above them.
func DefaultStyle() Style {
	return Style{
		Font:             "Liberation Sans",
		CaptionColour:    "&H00FFFFFF",
		HighlightColour:  "&H0000D7FF", // gold #FFD700 in BGR
		OutlineColour:    "&H00000000",
		CaptionFontCap:   70,
		CaptionFontDiv:   12,
		HighlightFontCap: 100,
		HighlightFontDiv: 10,
		CaptionY:         0.82,
		HighlightY:       0.75,
	}
}

func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Font == "" {
		s.Font = d.Font
	}
	if s.CaptionColour == "" {
		s.CaptionColour = d.CaptionColour
	}
	if s.HighlightColour == "" {
		s.HighlightColour = d.HighlightColour
	}
	if s.OutlineColour == "" {
		s.OutlineColour = d.OutlineColour
	}
	if s.CaptionFontCap <= 0 {
		s.CaptionFontCap = d.CaptionFontCap
	}
	if s.CaptionFontDiv <= 0 {
		s.CaptionFontDiv = d.CaptionFontDiv
	}
	if s.HighlightFontCap <= 0 {
		s.HighlightFontCap = d.HighlightFontCap
	}
	if s.HighlightFontDiv <= 0 {
		s.HighlightFontDiv = d.HighlightFontDiv
	}
	if s.CaptionY <= 0 || s.CaptionY >= 1 {
		s.CaptionY = d.CaptionY
	}
	if s.HighlightY <= 0 || s.HighlightY >= 1 {
		s.HighlightY = d.HighlightY
	}
	return s
}

// Document renders the timeline as an ASS script sized for a frameW x frameH
// surface. Caption events draw on layer 0, highlight events on layer 1 so the
// emphasized word stays above the caption text.
func Document(tl types.Timeline, frameW, frameH int, st Style) string {
	st = st.withDefaults()
	if frameW <= 0 {
		frameW = 1080
	}
	if frameH <= 0 {
		frameH = 1920
	}

	captionSize := fontSize(frameW, st.CaptionFontCap, st.CaptionFontDiv)
	highlightSize := fontSize(frameW, st.HighlightFontCap, st.HighlightFontDiv)
	captionMargin := int(float64(frameH) * (1 - st.CaptionY))
	highlightMargin := int(float64(frameH) * (1 - st.HighlightY))

	var b strings.Builder
	fmt.Fprintf(&b, "[Script Info]\nScriptType: v4.00+\nPlayResX: %d\nPlayResY: %d\nScaledBorderAndShadow: yes\n\n", frameW, frameH)
	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(&b, "Style: Caption, %s, %d, %s, %s, %s, &H64000000, 1,0,0,0,100,100,0,0,1,3,1,2, 40,40,%d,1\n",
		st.Font, captionSize, st.CaptionColour, st.CaptionColour, st.OutlineColour, captionMargin)
	fmt.Fprintf(&b, "Style: Highlight, %s, %d, %s, %s, %s, &H64000000, 1,0,0,0,100,100,0,0,1,4,1,2, 40,40,%d,1\n",
		st.Font, highlightSize, st.HighlightColour, st.HighlightColour, st.OutlineColour, highlightMargin)

	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, ev := range tl.Events {
		layer, style := 0, "Caption"
		if ev.Layer == types.LayerHighlight {
			layer, style = 1, "Highlight"
		}
		fmt.Fprintf(&b, "Dialogue: %d,%s,%s,%s,,0,0,0,,%s\n",
			layer, assTime(ev.Start), assTime(ev.End), style, sanitize(ev.Text))
	}
	return b.String()
}

func fontSize(frameW, limit, div int) int {
	size := frameW / div
	if size > limit {
		size = limit
	}
	if size < 1 {
		size = 1
	}
	return size
}

// assTime formats window-local seconds as H:MM:SS.cc.
func assTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	cs := int(sec*100 + 0.5)
	h := cs / 360000
	cs -= h * 360000
	m := cs / 6000
	cs -= m * 6000
	s := cs / 100
	cs -= s * 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}
