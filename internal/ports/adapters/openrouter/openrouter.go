package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mahmedraza1/clipify/internal/domain/timecode"
	"github.com/mahmedraza1/clipify/internal/types"
)

const (
	requestTimeout = 90 * time.Second

	// Suggestion bounds: anything shorter makes no clip, anything longer is
	// no longer a short.
	minClipSeconds = 15
	maxClipSeconds = 120
)

type Adapter struct {
	key     string
	model   string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// New builds an adapter; rpm bounds request pacing against the provider
// (zero means unlimited).
func New(apiKey, model, baseURL string, rpm int) *Adapter {
	if model == "" {
		model = "deepseek/deepseek-chat"
	}
	limit := rate.Inf
	if rpm > 0 {
		limit = rate.Limit(float64(rpm) / 60.0)
	}
	return &Adapter{
		key:     apiKey,
		model:   model,
		baseURL: normalizeBaseURL(baseURL),
		client:  &http.Client{Timeout: 5 * time.Minute},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// SuggestClip asks the model for one viral segment of the transcript and
// returns its window descriptor after validating the timestamps.
func (a *Adapter) SuggestClip(ctx context.Context, transcript string) (types.ClipSuggestion, error) {
	prompt := "Analyze the following video transcript and suggest ONE short clip segment (30-90 seconds) " +
		"that would be most viral or engaging for social media.\n\n" +
		"Please provide your response in this exact JSON format:\n" +
		"{\n    \"start\": \"HH:MM:SS\",\n    \"end\": \"HH:MM:SS\",\n    \"reason\": \"Brief explanation why this segment is viral/engaging\"\n}\n\n" +
		"Look for:\n- Emotional moments\n- Key insights or revelations\n- Funny or surprising content\n" +
		"- Actionable advice\n- Dramatic moments\n- Quotable statements\n\n" +
		"Transcript:\n" + transcript

	content, err := a.chat(ctx, prompt, 500, 0.3)
	if err != nil {
		return types.ClipSuggestion{}, err
	}
	clean, err := extractJSONObject(content)
	if err != nil {
		return types.ClipSuggestion{}, err
	}
	var s types.ClipSuggestion
	if err := json.Unmarshal([]byte(clean), &s); err != nil {
		return types.ClipSuggestion{}, fmt.Errorf("openrouter: decode suggestion: %w", err)
	}
	if err := ValidateSuggestion(s); err != nil {
		return types.ClipSuggestion{}, err
	}
	return s, nil
}

// Romanize transliterates Urdu/Hindi text into Roman script.
func (a *Adapter) Romanize(ctx context.Context, text string) (string, error) {
	prompt := "Please romanize the following Urdu/Hindi text into Roman script (English letters).\n" +
		"Keep the meaning intact and use commonly accepted romanization conventions.\n" +
		"Only return the romanized text, nothing else.\n\n" +
		"Text to romanize:\n" + text

	content, err := a.chat(ctx, prompt, 4000, 0.1)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(content)
	if out == "" {
		return "", errors.New("openrouter: empty romanization result")
	}
	return out, nil
}

// ValidateSuggestion checks a window descriptor the way a caller about to cut
// a clip would: decodable clock timecodes, start before end, duration within
// the shorts bounds.
func ValidateSuggestion(s types.ClipSuggestion) error {
	start, err := timecode.ParseClock(s.Start)
	if err != nil {
		return fmt.Errorf("suggestion start: %w", err)
	}
	end, err := timecode.ParseClock(s.End)
	if err != nil {
		return fmt.Errorf("suggestion end: %w", err)
	}
	if start >= end {
		return fmt.Errorf("suggestion window [%s, %s]: start must be before end", s.Start, s.End)
	}
	dur := end - start
	if dur < minClipSeconds {
		return fmt.Errorf("suggested clip too short: %.0fs (minimum %ds)", dur, minClipSeconds)
	}
	if dur > maxClipSeconds {
		return fmt.Errorf("suggested clip too long: %.0fs (maximum %ds)", dur, maxClipSeconds)
	}
	return nil
}

func (a *Adapter) chat(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload := map[string]any{
		"model": a.model,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "POST", a.baseURL+"/api/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("openrouter timeout after %s (model=%s)", requestTimeout, a.model)
		}
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("openrouter status %d and read body failed: %v", resp.StatusCode, readErr)
		}
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode, truncate(redactSecrets(string(rb), a.key), 400))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content any `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Choices) == 0 {
		return "", errors.New("openrouter: no choices in response")
	}
	return messageContentToString(raw.Choices[0].Message.Content)
}

func messageContentToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []any:
		// Some providers return an array of {type,text} parts.
		var b strings.Builder
		for _, it := range x {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			if t, ok := m["text"].(string); ok {
				b.WriteString(t)
			}
		}
		s := b.String()
		if strings.TrimSpace(s) == "" {
			return "", errors.New("openrouter: empty content")
		}
		return s, nil
	default:
		return "", fmt.Errorf("openrouter: unexpected content type %T", v)
	}
}

func extractJSONObject(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("openrouter: empty content")
	}

	// Strip markdown code fences.
	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i >= 0 {
			t = t[i+1:]
		}
		if j := strings.LastIndex(t, "```"); j >= 0 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}

	// Best-effort: take the outermost JSON object found.
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start >= 0 && end > start {
		return t[start : end+1], nil
	}
	return "", fmt.Errorf("openrouter: could not locate JSON object in: %q", truncate(t, 200))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var (
	bearerTokenRE = regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._-]+\b`)
	authHeaderRE  = regexp.MustCompile(`(?i)(authorization\s*[:=]\s*)([^\n\r,;]+)`)
	apiKeyFieldRE = regexp.MustCompile(`(?i)(api[_-]?key\s*[:=]\s*)([^\n\r,;]+)`)
)

func redactSecrets(s, apiKey string) string {
	if s == "" {
		return s
	}
	out := s
	if apiKey != "" {
		out = strings.ReplaceAll(out, apiKey, "[REDACTED]")
	}
	out = bearerTokenRE.ReplaceAllString(out, "Bearer [REDACTED]")
	out = authHeaderRE.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyFieldRE.ReplaceAllString(out, "${1}[REDACTED]")
	return out
}
