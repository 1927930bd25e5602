package ports

import (
	"context"

	"github.com/mahmedraza1/clipify/internal/types"
)

// VideoTool is the media collaborator: probing and overlay burn-in are
// delegated entirely, the timing engine never touches media.
type VideoTool interface {
	// BurnOverlay re-encodes inMP4 with the ASS overlay burned in. An empty
	// assPath re-encodes without an overlay (the "no captions" path).
	BurnOverlay(ctx context.Context, inMP4, assPath, outMP4 string) error
	ProbeDuration(ctx context.Context, in string) (float64, error)
	ProbeSize(ctx context.Context, in string) (w, h int, err error)
}

// LLM is the remote inference collaborator used for clip suggestion and
// transcript romanization.
type LLM interface {
	SuggestClip(ctx context.Context, transcript string) (types.ClipSuggestion, error)
	Romanize(ctx context.Context, text string) (string, error)
}
