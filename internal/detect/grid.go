package detect

import (
	"context"
	"image"
	"math"
	"sort"
)

// Sobel 3x3 kernels for horizontal and vertical gradients.
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// GridDetector finds panels separated by blank gutters running the full
// width or height of the page. It is the default engine and the right one
// for conventional grid layouts.
type GridDetector struct {
	cfg Config
}

// NewGridDetector returns a grid engine using the given thresholds.
func NewGridDetector(cfg Config) *GridDetector {
	return &GridDetector{cfg: cfg}
}

// Name implements Detector.
func (d *GridDetector) Name() string { return VariantGrid }

// Detect implements Detector. An empty page (no cell survives filtering)
// falls back to a single panel covering the whole image, so the grid engine
// always returns at least one panel for a non-degenerate image.
func (d *GridDetector) Detect(ctx context.Context, img image.Image, dir Direction) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure("grid detection panic: %v", r)
		}
	}()

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return success(nil)
	}

	gray, w, h := grayscale(img)
	if res, done := interrupted(ctx); done {
		return res
	}

	edges := sobelEdges(gray, w, h, d.cfg.EdgeThreshold)
	if res, done := interrupted(ctx); done {
		return res
	}

	rows := gutterLines(d.horizontalGutters(edges, w, h), h)
	cols := gutterLines(d.verticalGutters(edges, w, h), w)
	if res, done := interrupted(ctx); done {
		return res
	}

	panels := d.filterPanels(d.cellPanels(rows, cols), w*h)
	panels = mergeOverlapping(panels, d.cfg.MergeOverlapThreshold)
	if res, done := interrupted(ctx); done {
		return res
	}

	if len(panels) == 0 {
		// Nothing panel-sized between the gutters. Treat the page as one
		// full-bleed panel rather than reporting an empty page.
		return success([]Panel{{
			Bounds:     Bounds{X1: 0, Y1: 0, X2: w, Y2: h},
			Confidence: 0.5,
		}})
	}

	for i := range panels {
		panels[i].Confidence = gridConfidence(panels[i].Bounds, w*h)
	}
	orderPanels(panels, dir, gridRowFactor)
	return success(panels)
}

// sobelEdges thresholds the Sobel gradient magnitude of a flat luminance
// buffer into a boolean edge map. The one-pixel border is never an edge
// because the kernel does not fit there.
func sobelEdges(gray []uint8, w, h, threshold int) []bool {
	edges := make([]bool, w*h)
	if w < 3 || h < 3 {
		return edges
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var gx, gy int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := int(gray[(y+ky)*w+(x+kx)])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag := math.Sqrt(float64(gx*gx + gy*gy))
			if mag > 255 {
				mag = 255
			}
			if mag > float64(threshold) {
				edges[y*w+x] = true
			}
		}
	}
	return edges
}

// horizontalGutters returns the y coordinates of rows whose longest run of
// non-edge pixels exceeds MinGutterRatio of the width. Scanning top to
// bottom, a candidate closer than MinPanelSize to the previously accepted
// row is suppressed, so each gutter band contributes one line.
func (d *GridDetector) horizontalGutters(edges []bool, w, h int) []int {
	minRun := float64(w) * d.cfg.MinGutterRatio
	last := -(d.cfg.MinPanelSize + 1)
	var rows []int
	for y := d.cfg.MarginPixels; y < h-d.cfg.MarginPixels; y++ {
		run, longest := 0, 0
		for x := 0; x < w; x++ {
			if edges[y*w+x] {
				run = 0
				continue
			}
			run++
			if run > longest {
				longest = run
			}
		}
		if float64(longest) > minRun && y-last > d.cfg.MinPanelSize {
			rows = append(rows, y)
			last = y
		}
	}
	return rows
}

// verticalGutters is the column analogue of horizontalGutters.
func (d *GridDetector) verticalGutters(edges []bool, w, h int) []int {
	minRun := float64(h) * d.cfg.MinGutterRatio
	last := -(d.cfg.MinPanelSize + 1)
	var cols []int
	for x := d.cfg.MarginPixels; x < w-d.cfg.MarginPixels; x++ {
		run, longest := 0, 0
		for y := 0; y < h; y++ {
			if edges[y*w+x] {
				run = 0
				continue
			}
			run++
			if run > longest {
				longest = run
			}
		}
		if float64(longest) > minRun && x-last > d.cfg.MinPanelSize {
			cols = append(cols, x)
			last = x
		}
	}
	return cols
}

// gutterLines adds the implicit gutters at the page border (0 and limit) to
// the detected lines and returns the result sorted and deduplicated.
func gutterLines(found []int, limit int) []int {
	lines := make([]int, 0, len(found)+2)
	lines = append(lines, 0)
	lines = append(lines, found...)
	lines = append(lines, limit)
	sort.Ints(lines)
	uniq := lines[:1]
	for _, v := range lines[1:] {
		if v != uniq[len(uniq)-1] {
			uniq = append(uniq, v)
		}
	}
	return uniq
}

// cellPanels builds one candidate panel per grid cell between consecutive
// gutter lines, shrunk by GutterPadding on every side. Cells collapsed to
// nothing by the shrink are dropped. Cells are emitted row by row, left to
// right, which fixes the order seen by the merge pass.
func (d *GridDetector) cellPanels(rows, cols []int) []Panel {
	pad := d.cfg.GutterPadding
	var panels []Panel
	id := 0
	for i := 0; i+1 < len(rows); i++ {
		for j := 0; j+1 < len(cols); j++ {
			b := Bounds{
				X1: cols[j] + pad,
				Y1: rows[i] + pad,
				X2: cols[j+1] - pad,
				Y2: rows[i+1] - pad,
			}
			if b.X2 <= b.X1 || b.Y2 <= b.Y1 {
				continue
			}
			panels = append(panels, Panel{ID: id, Bounds: b})
			id++
		}
	}
	return panels
}

// filterPanels drops candidates outside the configured area band or not
// exceeding MinPanelSize on both axes.
func (d *GridDetector) filterPanels(panels []Panel, imageArea int) []Panel {
	kept := panels[:0]
	for _, p := range panels {
		ratio := float64(p.Bounds.Area()) / float64(imageArea)
		if ratio < d.cfg.MinPanelAreaRatio || ratio > d.cfg.MaxPanelAreaRatio {
			continue
		}
		if p.Bounds.Width() <= d.cfg.MinPanelSize || p.Bounds.Height() <= d.cfg.MinPanelSize {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// gridConfidence scores a panel by its share of the page area. Panels
// between 5% and 50% of the page are the common case and score highest.
func gridConfidence(b Bounds, imageArea int) float64 {
	ratio := float64(b.Area()) / float64(imageArea)
	switch {
	case ratio < 0.02:
		return 0.3
	case ratio < 0.05:
		return 0.6
	case ratio < 0.50:
		return 0.9
	case ratio < 0.80:
		return 0.7
	default:
		return 0.5
	}
}
