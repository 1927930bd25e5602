// Package pipeline wires the adapters to the usecases and drives batches over
// whole directories of videos and transcripts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mahmedraza1/clipify/internal/domain/timeline"
	"github.com/mahmedraza1/clipify/internal/ports"
	"github.com/mahmedraza1/clipify/internal/ports/adapters/ffmpeg"
	"github.com/mahmedraza1/clipify/internal/ports/adapters/openrouter"
	"github.com/mahmedraza1/clipify/internal/usecase"
)

// RunSubtitles overlays every *_short.mp4 in the shorts dir with its caption
// timeline. One broken video never aborts the batch; videos with missing
// companion files are skipped with a warning.
func RunSubtitles(ctx context.Context, cfg Config) error {
	if err := cfg.ValidateSubtitles(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	overlay, err := LoadOverlay(cfg.StylePath)
	if err != nil {
		return err
	}

	shorts, err := filepath.Glob(filepath.Join(cfg.ShortsDir, "*_short.mp4"))
	if err != nil {
		return err
	}
	if len(shorts) == 0 {
		return fmt.Errorf("no short videos found in %s", cfg.ShortsDir)
	}
	slog.Info("processing shorts", "count", len(shorts), "dir", cfg.ShortsDir)

	maxWords := cfg.MaxWords
	if maxWords == 0 {
		maxWords = overlay.MaxWords
	}
	uc := usecase.New(usecase.Deps{Video: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)})

	var done, failed, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrent)
	for _, video := range shorts {
		video := video
		g.Go(func() error {
			base := strings.TrimSuffix(filepath.Base(video), "_short.mp4")
			trackPath := filepath.Join(cfg.SubtitlesDir, base+".srt")
			clipPath := filepath.Join(cfg.SubtitlesDir, base+".clip.json")
			for _, companion := range []string{trackPath, clipPath} {
				if _, err := os.Stat(companion); err != nil {
					slog.Warn("companion file missing, skipping video",
						"video", filepath.Base(video), "missing", filepath.Base(companion))
					skipped.Add(1)
					return nil
				}
			}

			in := usecase.SubtitleInput{
				VideoPath: video,
				TrackPath: trackPath,
				ClipPath:  clipPath,
				OutPath:   filepath.Join(cfg.ShortsDir, base+"_with_subtitles.mp4"),
				Timing:    timeline.Config{MaxWords: maxWords},
				Style:     overlay.Style(),
			}
			if err := uc.AddSubtitles(gctx, in); err != nil {
				slog.Error("overlay failed", "video", filepath.Base(video), "err", err)
				failed.Add(1)
				return nil
			}
			done.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("subtitle batch complete",
		"done", done.Load(), "failed", failed.Load(), "skipped", skipped.Load())
	if done.Load() == 0 && failed.Load() > 0 {
		return fmt.Errorf("all %d videos failed", failed.Load())
	}
	return nil
}

// RunSuggest produces a clip descriptor for every transcript in the subtitles
// dir. SRT tracks are preferred over plain-text transcripts when both exist.
func RunSuggest(ctx context.Context, cfg Config) error {
	if err := cfg.ValidateLLM(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	files, err := discoverTranscripts(cfg.SubtitlesDir)
	if err != nil {
		return err
	}
	uc := usecase.New(usecase.Deps{LLM: newLLM(cfg)})

	slog.Info("analyzing transcripts", "count", len(files))
	var failed int
	for _, f := range files {
		out := strings.TrimSuffix(f, filepath.Ext(f)) + ".clip.json"
		if err := uc.SuggestClip(ctx, f, out); err != nil {
			if ctx.Err() != nil {
				return err
			}
			slog.Error("clip suggestion failed", "transcript", filepath.Base(f), "err", err)
			failed++
		}
	}
	if failed == len(files) {
		return fmt.Errorf("all %d transcripts failed", failed)
	}
	return nil
}

// RunRomanize rewrites every predominantly Urdu/Hindi transcript in place.
func RunRomanize(ctx context.Context, cfg Config) error {
	if err := cfg.ValidateLLM(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(cfg.SubtitlesDir, "*.txt"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no transcripts found in %s", cfg.SubtitlesDir)
	}
	uc := usecase.New(usecase.Deps{LLM: newLLM(cfg)})

	slog.Info("romanizing transcripts", "count", len(files))
	for _, f := range files {
		if err := uc.Romanize(ctx, f); err != nil {
			if ctx.Err() != nil {
				return err
			}
			slog.Error("romanization failed", "transcript", filepath.Base(f), "err", err)
		}
	}
	return nil
}

func newLLM(cfg Config) ports.LLM {
	return openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.OpenRouterBaseURL, cfg.RateLimitPerMin)
}

func discoverTranscripts(dir string) ([]string, error) {
	srts, err := filepath.Glob(filepath.Join(dir, "*.srt"))
	if err != nil {
		return nil, err
	}
	if len(srts) > 0 {
		return srts, nil
	}
	txts, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	if len(txts) == 0 {
		return nil, fmt.Errorf("no transcripts found in %s", dir)
	}
	return txts, nil
}
