package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahmedraza1/clipify/internal/pipeline"
)

func subtitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtitles",
		Short: "Overlay caption and word-highlight subtitles onto shorts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := baseConfig(cmd)
			cfg.MaxWords, _ = cmd.Flags().GetInt("max-words")
			cfg.StylePath, _ = cmd.Flags().GetString("style")
			cfg.MaxConcurrent, _ = cmd.Flags().GetInt("jobs")
			cfg.FFmpegPath, _ = cmd.Flags().GetString("ffmpeg")
			cfg.FFprobePath, _ = cmd.Flags().GetString("ffprobe")

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
			defer cancel()
			return pipeline.RunSubtitles(ctx, cfg)
		},
	}
	cmd.Flags().Int("max-words", 0, "Maximum words per caption (0 = default)")
	cmd.Flags().String("style", "", "YAML overlay style file")
	cmd.Flags().Int("jobs", 2, "Videos processed concurrently")
	cmd.Flags().String("ffmpeg", "ffmpeg", "ffmpeg binary")
	cmd.Flags().String("ffprobe", "ffprobe", "ffprobe binary")
	return cmd
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a viral clip window for each transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
			defer cancel()
			return pipeline.RunSuggest(ctx, llmConfig(cmd))
		},
	}
	addLLMFlags(cmd)
	return cmd
}

func romanizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "romanize",
		Short: "Romanize Urdu/Hindi transcripts in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
			defer cancel()
			return pipeline.RunRomanize(ctx, llmConfig(cmd))
		},
	}
	addLLMFlags(cmd)
	return cmd
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rate-limit", 20, "OpenRouter requests per minute")
}

func baseConfig(cmd *cobra.Command) pipeline.Config {
	shortsDir, _ := cmd.Flags().GetString("shorts-dir")
	subtitlesDir, _ := cmd.Flags().GetString("subtitles-dir")
	return pipeline.Config{
		ShortsDir:    shortsDir,
		SubtitlesDir: subtitlesDir,
	}
}

func llmConfig(cmd *cobra.Command) pipeline.Config {
	cfg := baseConfig(cmd)
	cfg.OpenRouterAPIKey = os.Getenv("OPENROUTER_API_KEY")
	cfg.OpenRouterModel = getenvDefault("OPENROUTER_MODEL", "deepseek/deepseek-chat")
	cfg.OpenRouterBaseURL = getenvDefault("OPENROUTER_BASE_URL", "https://openrouter.ai")
	if hosts := os.Getenv("OPENROUTER_ALLOWED_HOSTS"); hosts != "" {
		cfg.OpenRouterAllowedHosts = strings.Split(hosts, ",")
	}
	cfg.RateLimitPerMin, _ = cmd.Flags().GetInt("rate-limit")
	return cfg
}
