package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) BurnOverlay(ctx context.Context, inMP4, assPath, outMP4 string) error {
	args := []string{
		"-y",
		"-i", inMP4,
	}
	if assPath != "" {
		args = append(args, "-vf", "subtitles="+escapeFilterPath(assPath))
	}
	// High-quality settings: shorts are re-encoded once and uploaded as-is.
	args = append(args,
		"-c:v", "libx264",
		"-preset", "slower",
		"-b:v", "8000k",
		"-r", "60",
		"-c:a", "aac",
		"-b:a", "320k",
		outMP4,
	)
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg burn overlay: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, in string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		in,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func (a *Adapter) ProbeSize(ctx context.Context, in string) (int, int, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=s=x:p=0",
		in,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe size: %w\n%s", err, string(b))
	}
	dims := strings.Split(strings.TrimSpace(string(b)), "x")
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("ffprobe size: unexpected output %q", strings.TrimSpace(string(b)))
	}
	w, err := strconv.Atoi(dims[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse width %q: %w", dims[0], err)
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse height %q: %w", dims[1], err)
	}
	return w, h, nil
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
