package detect

import (
	"image"
	"image/color"
	"testing"
)

// createPage creates a solid color test page
func createPage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// drawRect fills the rectangle [x1,y1)-(x2,y2) with c
func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.Set(x, y, c)
		}
	}
}

// createGridPage creates a white page with a 2x2 grid of dark panels
// separated by 10px gutters centered on x=400 and y=600.
func createGridPage() *image.RGBA {
	img := createPage(800, 1200, color.White)
	drawRect(img, 5, 5, 395, 595, color.Black)
	drawRect(img, 405, 5, 795, 595, color.Black)
	drawRect(img, 5, 605, 395, 1195, color.Black)
	drawRect(img, 405, 605, 795, 1195, color.Black)
	return img
}

// panicImage is an image whose pixel access panics, for exercising the
// recovery path in Detect.
type panicImage struct{}

func (panicImage) ColorModel() color.Model { return color.RGBAModel }
func (panicImage) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }
func (panicImage) At(x, y int) color.Color { panic("bad pixel data") }

// checkReadingOrder verifies that panels carry reading order 0..n-1 in
// slice order.
func checkReadingOrder(t *testing.T, panels []Panel) {
	t.Helper()
	for i, p := range panels {
		if p.ReadingOrder != i {
			t.Errorf("panel %d: ReadingOrder = %d, want %d", i, p.ReadingOrder, i)
		}
	}
}

// checkWithinImage verifies that every panel is a valid rectangle inside
// the image.
func checkWithinImage(t *testing.T, panels []Panel, w, h int) {
	t.Helper()
	for i, p := range panels {
		b := p.Bounds
		if b.X1 < 0 || b.Y1 < 0 || b.X2 > w || b.Y2 > h {
			t.Errorf("panel %d: bounds %+v outside %dx%d image", i, b, w, h)
		}
		if b.X1 >= b.X2 || b.Y1 >= b.Y2 {
			t.Errorf("panel %d: degenerate bounds %+v", i, b)
		}
	}
}

// near reports whether got is within tol of want
func near(got, want, tol int) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
