package detect

import (
	"image"
	"math"
)

// grayscale converts img to a flat row-major luminance buffer using the
// BT.601 weights (0.299 R + 0.587 G + 0.114 B), rounded to the nearest
// integer. Alpha is ignored.
func grayscale(img image.Image) ([]uint8, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray[y*w+x] = uint8(math.Round(lum))
		}
	}
	return gray, w, h
}
