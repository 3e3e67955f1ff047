package detect

import (
	"context"
	"fmt"
	"image"
)

// Engine variant names accepted by New.
const (
	VariantGrid   = "grid"
	VariantRegion = "region"
)

// Detector finds the panels of a single comic page.
//
// Implementations are stateless between calls and safe for concurrent use.
type Detector interface {
	// Name returns the engine variant identifier.
	Name() string

	// Detect analyzes one page image and returns the panels in reading
	// order for dir. Detect never panics and never returns an error value;
	// failures are reported through the Result's failure variant. The
	// context is checked between pipeline stages, so cancellation aborts
	// a detection mid-page.
	Detect(ctx context.Context, img image.Image, dir Direction) Result
}

// New returns the detection engine registered under variant. The empty
// variant selects the grid engine.
func New(variant string, cfg Config) (Detector, error) {
	switch variant {
	case VariantGrid, "":
		return NewGridDetector(cfg), nil
	case VariantRegion:
		return NewRegionDetector(cfg), nil
	default:
		return nil, fmt.Errorf("unknown detector variant: %q", variant)
	}
}

// interrupted reports whether ctx is done, converting the cause into a
// failure Result.
func interrupted(ctx context.Context) (Result, bool) {
	if err := ctx.Err(); err != nil {
		return failure("detection interrupted: %v", err), true
	}
	return Result{}, false
}
