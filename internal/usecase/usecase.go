package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahmedraza1/clipify/internal/domain/romanize"
	"github.com/mahmedraza1/clipify/internal/domain/srt"
	"github.com/mahmedraza1/clipify/internal/domain/timecode"
	"github.com/mahmedraza1/clipify/internal/domain/timeline"
	"github.com/mahmedraza1/clipify/internal/ports"
	"github.com/mahmedraza1/clipify/internal/render"
	"github.com/mahmedraza1/clipify/internal/types"
)

// Transcripts shorter than this carry too little signal for clip analysis.
const minTranscriptChars = 100

type Deps struct {
	Video ports.VideoTool
	LLM   ports.LLM
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type SubtitleInput struct {
	VideoPath string
	TrackPath string
	ClipPath  string
	OutPath   string
	Timing    timeline.Config
	Style     render.Style
}

// AddSubtitles overlays one short with its caption and word-highlight
// timeline. Per-block transcript problems are logged and skipped; a window
// descriptor problem fails the whole request.
func (u Usecase) AddSubtitles(ctx context.Context, in SubtitleInput) error {
	rawTrack, err := os.ReadFile(in.TrackPath)
	if err != nil {
		return fmt.Errorf("read track: %w", err)
	}
	window, err := loadWindow(in.ClipPath)
	if err != nil {
		return err
	}

	entries, warns := srt.Parse(string(rawTrack))
	logWarnings(in.TrackPath, warns)

	tl, warns, err := timeline.Build(entries, window, in.Timing)
	if err != nil {
		return err
	}
	logWarnings(in.TrackPath, warns)

	if tl.Empty() {
		slog.Warn("no captions within clip window, encoding without overlay",
			"video", filepath.Base(in.VideoPath))
		return u.d.Video.BurnOverlay(ctx, in.VideoPath, "", in.OutPath)
	}

	// The rendered clip can be shorter than the requested window when the
	// source ran out; drop events the media cannot display.
	videoDur, err := u.d.Video.ProbeDuration(ctx, in.VideoPath)
	if err != nil {
		return err
	}
	tl = truncateToMedia(tl, videoDur)
	if tl.Empty() {
		slog.Warn("all caption events fall past the media end, encoding without overlay",
			"video", filepath.Base(in.VideoPath), "media_seconds", videoDur)
		return u.d.Video.BurnOverlay(ctx, in.VideoPath, "", in.OutPath)
	}

	w, h, err := u.d.Video.ProbeSize(ctx, in.VideoPath)
	if err != nil {
		return err
	}

	doc := render.Document(tl, w, h, in.Style)
	assPath := strings.TrimSuffix(in.OutPath, filepath.Ext(in.OutPath)) + ".ass"
	if err := os.WriteFile(assPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write overlay: %w", err)
	}

	slog.Info("burning subtitles",
		"video", filepath.Base(in.VideoPath),
		"events", len(tl.Events),
		"window_seconds", window.Duration())
	return u.d.Video.BurnOverlay(ctx, in.VideoPath, assPath, in.OutPath)
}

// SuggestClip analyzes a transcript and persists the suggested clip window
// next to it as JSON. Too-short transcripts are skipped, not failed, so one
// stub file does not abort a batch.
func (u Usecase) SuggestClip(ctx context.Context, trackPath, outPath string) error {
	raw, err := os.ReadFile(trackPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	transcript := strings.TrimSpace(string(raw))
	if strings.EqualFold(filepath.Ext(trackPath), ".srt") {
		transcript = srt.Text(transcript)
	}
	if len(transcript) < minTranscriptChars {
		slog.Warn("transcript too short for analysis", "path", filepath.Base(trackPath), "chars", len(transcript))
		return nil
	}

	s, err := u.d.LLM.SuggestClip(ctx, transcript)
	if err != nil {
		return fmt.Errorf("suggest clip for %s: %w", filepath.Base(trackPath), err)
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return fmt.Errorf("write suggestion: %w", err)
	}
	slog.Info("clip suggestion saved", "path", outPath, "start", s.Start, "end", s.End)
	return nil
}

// Romanize rewrites a transcript file in place when its text is predominantly
// Urdu/Hindi script; Latin-script files are left untouched.
func (u Usecase) Romanize(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	content := strings.TrimSpace(string(raw))
	if content == "" {
		slog.Warn("transcript is empty", "path", filepath.Base(path))
		return nil
	}
	if !romanize.Needed(content) {
		slog.Info("no romanization needed", "path", filepath.Base(path))
		return nil
	}

	out, err := u.d.LLM.Romanize(ctx, content)
	if err != nil {
		return fmt.Errorf("romanize %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write romanized transcript: %w", err)
	}
	slog.Info("romanized transcript saved", "path", filepath.Base(path))
	return nil
}

func loadWindow(clipPath string) (types.ClipWindow, error) {
	raw, err := os.ReadFile(clipPath)
	if err != nil {
		return types.ClipWindow{}, fmt.Errorf("read clip descriptor: %w", err)
	}
	var s types.ClipSuggestion
	if err := json.Unmarshal(raw, &s); err != nil {
		return types.ClipWindow{}, fmt.Errorf("decode clip descriptor: %w", err)
	}
	start, err := timecode.Parse(s.Start)
	if err != nil {
		return types.ClipWindow{}, fmt.Errorf("clip descriptor start: %w", err)
	}
	end, err := timecode.Parse(s.End)
	if err != nil {
		return types.ClipWindow{}, fmt.Errorf("clip descriptor end: %w", err)
	}
	return types.ClipWindow{Start: start, End: end}, nil
}

func truncateToMedia(tl types.Timeline, mediaSeconds float64) types.Timeline {
	if mediaSeconds <= 0 {
		return tl
	}
	kept := make([]types.Event, 0, len(tl.Events))
	for _, ev := range tl.Events {
		if ev.Start < mediaSeconds && ev.End <= mediaSeconds {
			kept = append(kept, ev)
		}
	}
	return types.Timeline{Events: kept}
}

func logWarnings(source string, warns []types.Warning) {
	for _, w := range warns {
		slog.Warn("transcript diagnostic",
			"source", filepath.Base(source),
			"code", w.Code,
			"block", w.Block,
			"detail", w.Detail)
	}
}
