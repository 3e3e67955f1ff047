package detect

import (
	"context"
	"image"
)

// RegionDetector finds panels as connected regions of dark content. It
// handles irregular and overlapping layouts that break the grid engine's
// gutter assumption, at the cost of fusing panels whose artwork touches.
type RegionDetector struct {
	cfg Config
}

// NewRegionDetector returns a region engine using the given thresholds.
func NewRegionDetector(cfg Config) *RegionDetector {
	return &RegionDetector{cfg: cfg}
}

// Name implements Detector.
func (d *RegionDetector) Name() string { return VariantRegion }

// Detect implements Detector. Unlike the grid engine there is no full-page
// fallback: a page without panel-sized content yields the no-panels variant.
func (d *RegionDetector) Detect(ctx context.Context, img image.Image, dir Direction) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure("region detection panic: %v", r)
		}
	}()

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return noPanels()
	}

	gray, w, h := grayscale(img)
	if res, done := interrupted(ctx); done {
		return res
	}

	threshold := otsuThreshold(gray)
	binary := make([]bool, w*h)
	for i, v := range gray {
		binary[i] = int(v) < threshold
	}
	if res, done := interrupted(ctx); done {
		return res
	}

	dilated := dilate(binary, w, h, d.cfg.DilationSize)
	if res, done := interrupted(ctx); done {
		return res
	}

	panels := d.components(dilated, w, h)
	if len(panels) == 0 {
		return noPanels()
	}
	if res, done := interrupted(ctx); done {
		return res
	}

	panels = mergeOverlapping(panels, d.cfg.MergeOverlapThreshold)
	for i := range panels {
		panels[i].Confidence = regionConfidence(panels[i].Bounds, w, h)
	}
	orderPanels(panels, dir, regionRowFactor)
	return success(panels)
}

// otsuThreshold picks the luminance cutoff that maximizes the between-class
// variance of the histogram. A candidate cutoff t splits pixels into
// {lum < t} and {lum >= t}; cutoffs leaving either class empty are skipped.
// Scanning t upward with a strict comparison keeps the lowest maximizing
// cutoff, so on a clean bimodal histogram the cutoff lands just above the
// dark mode. Binarization treats {lum < t} as foreground (dark ink is
// content).
func otsuThreshold(gray []uint8) int {
	var hist [256]int
	for _, v := range gray {
		hist[v]++
	}
	total := len(gray)

	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	best := 0
	bestVar := -1.0
	wDark := 0
	sumDark := 0.0
	for t := 1; t < 256; t++ {
		wDark += hist[t-1]
		sumDark += float64(t-1) * float64(hist[t-1])
		wLight := total - wDark
		if wDark == 0 || wLight == 0 {
			continue
		}
		meanDark := sumDark / float64(wDark)
		meanLight := (sum - sumDark) / float64(wLight)
		diff := meanDark - meanLight
		v := float64(wDark) * float64(wLight) * diff * diff
		if v > bestVar {
			bestVar = v
			best = t
		}
	}
	return best
}

// dilate grows the foreground by a square structuring element of the given
// size. The reach is size/2 pixels in each direction (Chebyshev distance);
// the window is clipped at the image border. Sizes below 2 return a copy.
func dilate(src []bool, w, h, size int) []bool {
	out := make([]bool, len(src))
	radius := size / 2
	if radius < 1 {
		copy(out, src)
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
		window:
			for wy := y0; wy <= y1; wy++ {
				for wx := x0; wx <= x1; wx++ {
					if src[wy*w+wx] {
						out[y*w+x] = true
						break window
					}
				}
			}
		}
	}
	return out
}

// components labels 4-connected foreground regions by breadth-first fill and
// returns their bounding rectangles, discarding regions whose rectangle is
// below MinPanelAreaRatio of the page. The outer scan runs row-major, so
// regions come out ordered by their topmost-leftmost pixel.
func (d *RegionDetector) components(binary []bool, w, h int) []Panel {
	visited := make([]bool, w*h)
	minArea := d.cfg.MinPanelAreaRatio * float64(w) * float64(h)
	queue := make([]int, 0, 1024)
	var panels []Panel
	id := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := y*w + x
			if !binary[start] || visited[start] {
				continue
			}
			minX, minY, maxX, maxY := x, y, x, y
			queue = append(queue[:0], start)
			visited[start] = true
			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				cx, cy := cur%w, cur/w
				if cx < minX {
					minX = cx
				}
				if cx > maxX {
					maxX = cx
				}
				if cy < minY {
					minY = cy
				}
				if cy > maxY {
					maxY = cy
				}
				if cx > 0 && binary[cur-1] && !visited[cur-1] {
					visited[cur-1] = true
					queue = append(queue, cur-1)
				}
				if cx < w-1 && binary[cur+1] && !visited[cur+1] {
					visited[cur+1] = true
					queue = append(queue, cur+1)
				}
				if cy > 0 && binary[cur-w] && !visited[cur-w] {
					visited[cur-w] = true
					queue = append(queue, cur-w)
				}
				if cy < h-1 && binary[cur+w] && !visited[cur+w] {
					visited[cur+w] = true
					queue = append(queue, cur+w)
				}
			}
			b := Bounds{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}
			if float64(b.Area()) >= minArea {
				panels = append(panels, Panel{ID: id, Bounds: b})
				id++
			}
		}
	}
	return panels
}

// regionConfidence multiplies an aspect-ratio score by an area-share score.
// Extreme slivers and regions dominating the page are the usual false
// positives, so both ends are marked down.
func regionConfidence(b Bounds, w, h int) float64 {
	aspect := float64(b.Width()) / float64(b.Height())
	shape := 1.0
	switch {
	case aspect < 0.2 || aspect > 5:
		shape = 0.5
	case aspect < 0.5 || aspect > 2:
		shape = 0.8
	}

	ratio := float64(b.Area()) / (float64(w) * float64(h))
	size := 1.0
	switch {
	case ratio < 0.05:
		size = 0.5
	case ratio < 0.10:
		size = 0.8
	case ratio > 0.80:
		size = 0.6
	}
	return shape * size
}
