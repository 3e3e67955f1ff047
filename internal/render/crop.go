package render

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/espaciosalter20/Comic-read/internal/detect"
)

// ExtractPanel crops one detected panel out of its page. A scale of 0 or 1
// keeps the original size; other values resize with Lanczos resampling.
func ExtractPanel(page image.Image, p detect.Panel, scale float64) (*image.NRGBA, error) {
	b := p.Bounds
	pb := page.Bounds()
	if b.X1 >= b.X2 || b.Y1 >= b.Y2 {
		return nil, fmt.Errorf("degenerate panel bounds %+v", b)
	}
	if b.X1 < 0 || b.Y1 < 0 || b.X2 > pb.Dx() || b.Y2 > pb.Dy() {
		return nil, fmt.Errorf("panel bounds %+v outside %dx%d page", b, pb.Dx(), pb.Dy())
	}
	if scale < 0 {
		return nil, fmt.Errorf("negative scale %v", scale)
	}

	rect := image.Rect(pb.Min.X+b.X1, pb.Min.Y+b.Y1, pb.Min.X+b.X2, pb.Min.Y+b.Y2)
	out := imaging.Crop(page, rect)

	if scale != 0 && scale != 1 {
		w := int(math.Round(float64(b.Width()) * scale))
		h := int(math.Round(float64(b.Height()) * scale))
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	return out, nil
}

// Thumbnail shrinks a page to fit inside a maxEdge square, preserving the
// aspect ratio. Pages already smaller are returned at their own size.
func Thumbnail(page image.Image, maxEdge int) (*image.NRGBA, error) {
	if maxEdge < 1 {
		return nil, fmt.Errorf("thumbnail edge must be positive, got %d", maxEdge)
	}
	return imaging.Fit(page, maxEdge, maxEdge, imaging.Lanczos), nil
}
