package detect

// Config holds the tunable thresholds shared by the detection engines.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// EdgeThreshold is the Sobel gradient magnitude above which a pixel
	// counts as an edge (grid engine).
	EdgeThreshold int

	// MinGutterRatio is the fraction of the scan line that the longest
	// non-edge run must exceed for the line to count as a gutter.
	MinGutterRatio float64

	// MarginPixels is the width of the page border excluded from the
	// gutter scan. Gutters hugging the page edge duplicate the implicit
	// border gutters and would only split off slivers.
	MarginPixels int

	// MinPanelSize is the minimum panel width and height in pixels.
	// Gutter lines closer than this to the previously accepted line are
	// suppressed, and smaller panels are dropped by the filter stage.
	MinPanelSize int

	// MinPanelAreaRatio and MaxPanelAreaRatio bound the panel area as a
	// fraction of the page area.
	MinPanelAreaRatio float64
	MaxPanelAreaRatio float64

	// GutterPadding shrinks each grid cell on all four sides so panel
	// bounds do not include gutter pixels.
	GutterPadding int

	// MergeOverlapThreshold is the overlap ratio (intersection over the
	// smaller area) above which two panels are merged.
	MergeOverlapThreshold float64

	// DilationSize is the side of the square structuring element used to
	// close small gaps before component labeling (region engine).
	DilationSize int
}

// DefaultConfig returns the thresholds tuned for scanned comic pages at
// typical web resolutions (roughly 800-2500 px on the long side).
func DefaultConfig() Config {
	return Config{
		EdgeThreshold:         50,
		MinGutterRatio:        0.6,
		MarginPixels:          10,
		MinPanelSize:          100,
		MinPanelAreaRatio:     0.02,
		MaxPanelAreaRatio:     0.95,
		GutterPadding:         5,
		MergeOverlapThreshold: 0.3,
		DilationSize:          3,
	}
}
