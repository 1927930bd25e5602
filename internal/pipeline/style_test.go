package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverlay_EmptyPathIsDefaults(t *testing.T) {
	o, err := LoadOverlay("")
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if o != (Overlay{}) {
		t.Fatalf("expected zero overlay, got %+v", o)
	}
	st := o.Style()
	if st.Font != "" {
		t.Fatalf("zero overlay must defer font choice to the renderer, got %q", st.Font)
	}
}

func TestLoadOverlay_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	data := "max_words: 4\nfont: Inter\nhighlight_colour: \"&H0000FF00\"\ncaption_y: 0.8\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if o.MaxWords != 4 || o.Font != "Inter" || o.CaptionY != 0.8 {
		t.Fatalf("unexpected overlay: %+v", o)
	}
	if o.Style().HighlightColour != "&H0000FF00" {
		t.Fatalf("style mapping lost highlight colour: %+v", o.Style())
	}
}

func TestLoadOverlay_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"negative max words": "max_words: -1\n",
		"anchor out of range": "caption_y: 1.5\n",
		"negative font cap":   "caption_font_cap: -10\n",
		"not yaml":            "max_words: [\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "style.yaml")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadOverlay(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLoadOverlay_MissingFile(t *testing.T) {
	if _, err := LoadOverlay(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing style file")
	}
}

func TestConfigValidateSubtitles(t *testing.T) {
	dir := t.TempDir()
	ok := Config{ShortsDir: dir, SubtitlesDir: dir, MaxConcurrent: 2}
	if err := ok.ValidateSubtitles(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := ok
	bad.MaxConcurrent = 0
	if err := bad.ValidateSubtitles(); err == nil {
		t.Fatal("expected error for zero concurrency")
	}

	bad = ok
	bad.ShortsDir = filepath.Join(dir, "missing")
	if err := bad.ValidateSubtitles(); err == nil {
		t.Fatal("expected error for missing shorts dir")
	}
}

func TestConfigValidateLLM(t *testing.T) {
	ok := Config{SubtitlesDir: "subs", OpenRouterAPIKey: "k"}
	if err := ok.ValidateLLM(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Config{SubtitlesDir: "subs"}).ValidateLLM(); err == nil {
		t.Fatal("expected error for missing API key")
	}
	bad := ok
	bad.OpenRouterBaseURL = "http://openrouter.ai"
	if err := bad.ValidateLLM(); err == nil {
		t.Fatal("expected error for plain-http base URL")
	}
}
