package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mahmedraza1/clipify/internal/render"
)

// Overlay is the optional style file: the knobs that were scattered as
// process-wide constants now travel as one explicit value. Omitted fields
// keep the built-in shorts defaults.
type Overlay struct {
	MaxWords int `yaml:"max_words"`

	Font            string `yaml:"font"`
	CaptionColour   string `yaml:"caption_colour"`
	HighlightColour string `yaml:"highlight_colour"`
	OutlineColour   string `yaml:"outline_colour"`

	CaptionFontCap   int `yaml:"caption_font_cap"`
	CaptionFontDiv   int `yaml:"caption_font_div"`
	HighlightFontCap int `yaml:"highlight_font_cap"`
	HighlightFontDiv int `yaml:"highlight_font_div"`

	CaptionY   float64 `yaml:"caption_y"`
	HighlightY float64 `yaml:"highlight_y"`
}

// LoadOverlay reads and validates a style file. An empty path is the
// all-defaults overlay, not an error.
func LoadOverlay(path string) (Overlay, error) {
	if path == "" {
		return Overlay{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, fmt.Errorf("read style file: %w", err)
	}
	var o Overlay
	if err := yaml.Unmarshal(b, &o); err != nil {
		return Overlay{}, fmt.Errorf("parse style file: %w", err)
	}
	if err := o.validate(); err != nil {
		return Overlay{}, fmt.Errorf("style file %s: %w", path, err)
	}
	return o, nil
}

func (o Overlay) validate() error {
	if o.MaxWords < 0 {
		return fmt.Errorf("max_words must not be negative")
	}
	for name, v := range map[string]float64{"caption_y": o.CaptionY, "highlight_y": o.HighlightY} {
		if v < 0 || v >= 1 {
			return fmt.Errorf("%s must be a fraction of frame height in [0, 1)", name)
		}
	}
	for name, v := range map[string]int{
		"caption_font_cap":   o.CaptionFontCap,
		"caption_font_div":   o.CaptionFontDiv,
		"highlight_font_cap": o.HighlightFontCap,
		"highlight_font_div": o.HighlightFontDiv,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// Style maps the overlay file onto rendering policy.
func (o Overlay) Style() render.Style {
	return render.Style{
		Font:             o.Font,
		CaptionColour:    o.CaptionColour,
		HighlightColour:  o.HighlightColour,
		OutlineColour:    o.OutlineColour,
		CaptionFontCap:   o.CaptionFontCap,
		CaptionFontDiv:   o.CaptionFontDiv,
		HighlightFontCap: o.HighlightFontCap,
		HighlightFontDiv: o.HighlightFontDiv,
		CaptionY:         o.CaptionY,
		HighlightY:       o.HighlightY,
	}
}
