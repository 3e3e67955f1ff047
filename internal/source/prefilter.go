package source

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// Prefilter transforms a decoded page before detection sees it.
type Prefilter func(image.Image) image.Image

// Denoise returns a Gaussian blur prefilter. Halftone dots and scanner
// grain read as edges at gutter-scan scale; a light blur (radius 1-2)
// removes them without moving panel borders.
func Denoise(radius float64) Prefilter {
	return func(img image.Image) image.Image {
		return blur.Gaussian(img, radius)
	}
}

// Sharpen returns a sharpening prefilter for soft, low-contrast scans
// whose panel borders would otherwise fall under the edge threshold.
func Sharpen() Prefilter {
	return func(img image.Image) image.Image {
		return effect.Sharpen(img)
	}
}

// Chain combines prefilters into one, applied left to right.
func Chain(filters ...Prefilter) Prefilter {
	return func(img image.Image) image.Image {
		for _, f := range filters {
			img = f(img)
		}
		return img
	}
}
