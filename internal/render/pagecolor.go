package render

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorEstimate is the estimated page background color.
type ColorEstimate struct {
	Hex   string `json:"hex"`
	R     uint8  `json:"r"`
	G     uint8  `json:"g"`
	B     uint8  `json:"b"`
	// Share is the fraction of border samples belonging to the winning
	// color cluster.
	Share float64 `json:"share"`
}

// labDistanceSameColor is the CIE-Lab distance under which two samples
// count as the same paper color. 0.08 groups scanner noise and JPEG
// artifacts without fusing distinct inks.
const labDistanceSameColor = 0.08

// PageColor estimates the page background color by sampling a band along
// the image border and clustering the samples by perceptual distance. The
// winner feeds reader letterboxing, so mid-page artwork must not influence
// it; panels rarely reach the outer 2% of a page.
func PageColor(img image.Image) ColorEstimate {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return ColorEstimate{Hex: "#000000"}
	}

	bandX := max(w/50, 1)
	bandY := max(h/50, 1)
	step := max(max(w, h)/256, 1)

	type cluster struct {
		rep     colorful.Color
		sumR    float64
		sumG    float64
		sumB    float64
		samples int
	}
	var clusters []*cluster
	total := 0

	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			inBand := x < bandX || x >= w-bandX || y < bandY || y >= h-bandY
			if !inBand {
				continue
			}
			c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				continue
			}
			total++

			placed := false
			for _, cl := range clusters {
				if c.DistanceLab(cl.rep) < labDistanceSameColor {
					cl.sumR += c.R
					cl.sumG += c.G
					cl.sumB += c.B
					cl.samples++
					placed = true
					break
				}
			}
			if !placed {
				clusters = append(clusters, &cluster{rep: c, sumR: c.R, sumG: c.G, sumB: c.B, samples: 1})
			}
		}
	}
	if total == 0 {
		return ColorEstimate{Hex: "#000000"}
	}

	best := clusters[0]
	for _, cl := range clusters[1:] {
		if cl.samples > best.samples {
			best = cl
		}
	}

	n := float64(best.samples)
	mean := colorful.Color{R: best.sumR / n, G: best.sumG / n, B: best.sumB / n}
	return ColorEstimate{
		Hex:   mean.Hex(),
		R:     uint8(math.Round(mean.R * 255)),
		G:     uint8(math.Round(mean.G * 255)),
		B:     uint8(math.Round(mean.B * 255)),
		Share: n / float64(total),
	}
}
