package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/mahmedraza1/clipify/internal/ports/adapters/openrouter"
)

type Config struct {
	// ShortsDir holds the *_short.mp4 clips; overlaid output lands beside them.
	ShortsDir string
	// SubtitlesDir holds transcripts (.srt/.txt) and clip descriptors (.clip.json).
	SubtitlesDir string

	// MaxWords overrides the caption chunk bound; zero defers to the style
	// file, then to the engine default.
	MaxWords int
	// StylePath is an optional YAML overlay style file.
	StylePath string
	// MaxConcurrent bounds how many videos are processed at once.
	MaxConcurrent int

	FFmpegPath  string
	FFprobePath string

	OpenRouterAPIKey       string
	OpenRouterModel        string
	OpenRouterBaseURL      string
	OpenRouterAllowedHosts []string
	RateLimitPerMin        int
}

// ValidateSubtitles checks the fields the overlay batch needs.
func (c Config) ValidateSubtitles() error {
	if err := c.validateDirs(); err != nil {
		return err
	}
	if c.MaxWords < 0 {
		return fmt.Errorf("max words must not be negative")
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("concurrency must be > 0")
	}
	if _, err := os.Stat(c.ShortsDir); err != nil {
		return fmt.Errorf("stat shorts dir: %w", err)
	}
	return nil
}

// ValidateLLM checks the fields the suggestion and romanization batches need.
func (c Config) ValidateLLM() error {
	if c.SubtitlesDir == "" {
		return errors.New("subtitles dir is empty")
	}
	if c.OpenRouterAPIKey == "" {
		return errors.New("OPENROUTER_API_KEY is required (set it in .env)")
	}
	return openrouter.ValidateBaseURL(c.OpenRouterBaseURL, c.OpenRouterAllowedHosts)
}

func (c Config) validateDirs() error {
	if c.ShortsDir == "" {
		return errors.New("shorts dir is empty")
	}
	if c.SubtitlesDir == "" {
		return errors.New("subtitles dir is empty")
	}
	return nil
}
