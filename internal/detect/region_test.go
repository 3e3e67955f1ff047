package detect

import (
	"context"
	"image/color"
	"testing"
)

func TestRegionDetector_TwoBlobs(t *testing.T) {
	img := createPage(500, 500, color.White)
	drawRect(img, 50, 50, 200, 200, color.Black)
	drawRect(img, 300, 50, 450, 200, color.Black)

	d := NewRegionDetector(DefaultConfig())
	result := d.Detect(context.Background(), img, LeftToRight)
	if result.Status != StatusOK {
		t.Fatalf("Status = %s, want %s (err: %s)", result.Status, StatusOK, result.Err)
	}
	if len(result.Panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(result.Panels))
	}

	checkReadingOrder(t, result.Panels)
	checkWithinImage(t, result.Panels, 500, 500)

	// Dilation grows each blob by one pixel on every side.
	left, right := result.Panels[0].Bounds, result.Panels[1].Bounds
	if !near(left.X1, 49, 2) || !near(left.Y1, 49, 2) || !near(left.X2, 201, 2) || !near(left.Y2, 201, 2) {
		t.Errorf("left panel bounds = %+v, want about (49,49)-(201,201)", left)
	}
	if !near(right.X1, 299, 2) || !near(right.X2, 451, 2) {
		t.Errorf("right panel bounds = %+v, want about (299,49)-(451,201)", right)
	}

	for i, p := range result.Panels {
		if p.Confidence != 0.8 {
			t.Errorf("panel %d: Confidence = %v, want 0.8", i, p.Confidence)
		}
	}

	rtl := d.Detect(context.Background(), img, RightToLeft)
	if len(rtl.Panels) != 2 {
		t.Fatalf("rtl: expected 2 panels, got %d", len(rtl.Panels))
	}
	if rtl.Panels[0].Bounds != right || rtl.Panels[1].Bounds != left {
		t.Errorf("rtl order: got %+v then %+v, want right panel first", rtl.Panels[0].Bounds, rtl.Panels[1].Bounds)
	}
}

func TestRegionDetector_UniformPage(t *testing.T) {
	d := NewRegionDetector(DefaultConfig())

	for _, tt := range []struct {
		name string
		c    color.Color
	}{
		{"light", color.White},
		{"gray", color.Gray{Y: 200}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			img := createPage(500, 500, tt.c)
			result := d.Detect(context.Background(), img, LeftToRight)
			if result.Status != StatusNoPanels {
				t.Errorf("Status = %s, want %s", result.Status, StatusNoPanels)
			}
			if len(result.Panels) != 0 {
				t.Errorf("expected no panels, got %d", len(result.Panels))
			}
		})
	}
}

func TestRegionDetector_ZeroArea(t *testing.T) {
	d := NewRegionDetector(DefaultConfig())
	result := d.Detect(context.Background(), createPage(0, 0, color.White), LeftToRight)
	if result.Status != StatusNoPanels {
		t.Errorf("Status = %s, want %s", result.Status, StatusNoPanels)
	}
}

func TestOtsuThreshold_Bimodal(t *testing.T) {
	gray := make([]uint8, 100)
	for i := 0; i < 50; i++ {
		gray[i] = 10
	}
	for i := 50; i < 100; i++ {
		gray[i] = 200
	}

	threshold := otsuThreshold(gray)
	if threshold <= 10 || threshold >= 200 {
		t.Fatalf("threshold = %d, want strictly between 10 and 200", threshold)
	}

	// The dark mode and only the dark mode is foreground.
	fg := 0
	for _, v := range gray {
		if int(v) < threshold {
			fg++
		}
	}
	if fg != 50 {
		t.Errorf("foreground count = %d, want 50", fg)
	}
}

func TestOtsuThreshold_Uniform(t *testing.T) {
	gray := make([]uint8, 100)
	for i := range gray {
		gray[i] = 128
	}
	if got := otsuThreshold(gray); got != 0 {
		t.Errorf("threshold = %d, want 0 for uniform input", got)
	}
}

func TestDilate(t *testing.T) {
	w, h := 5, 5
	src := make([]bool, w*h)
	src[2*w+2] = true

	out := dilate(src, w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if out[y*w+x] != want {
				t.Errorf("dilate(3) at (%d,%d) = %v, want %v", x, y, out[y*w+x], want)
			}
		}
	}

	// Size 1 has no reach and must return an identical copy.
	out = dilate(src, w, h, 1)
	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("dilate(1) changed pixel %d", i)
		}
	}

	// The window clips at the border instead of wrapping.
	src = make([]bool, w*h)
	src[0] = true
	out = dilate(src, w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := x <= 1 && y <= 1
			if out[y*w+x] != want {
				t.Errorf("corner dilate at (%d,%d) = %v, want %v", x, y, out[y*w+x], want)
			}
		}
	}
}

func TestComponents_MinArea(t *testing.T) {
	w, h := 100, 100
	binary := make([]bool, w*h)
	setRect := func(x1, y1, x2, y2 int) {
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				binary[y*w+x] = true
			}
		}
	}
	setRect(5, 5, 15, 15)   // 100 px, below 2% of the page
	setRect(50, 50, 70, 70) // 400 px, kept

	d := NewRegionDetector(DefaultConfig())
	panels := d.components(binary, w, h)
	if len(panels) != 1 {
		t.Fatalf("expected 1 component, got %d", len(panels))
	}
	want := Bounds{X1: 50, Y1: 50, X2: 70, Y2: 70}
	if panels[0].Bounds != want {
		t.Errorf("bounds = %+v, want %+v", panels[0].Bounds, want)
	}
}

func TestComponents_FourConnectivity(t *testing.T) {
	w, h := 20, 20
	binary := make([]bool, w*h)
	binary[10*w+10] = true
	binary[11*w+11] = true // diagonal neighbor, separate component

	cfg := DefaultConfig()
	cfg.MinPanelAreaRatio = 0
	d := NewRegionDetector(cfg)

	panels := d.components(binary, w, h)
	if len(panels) != 2 {
		t.Errorf("expected 2 components for diagonal pixels, got %d", len(panels))
	}
}

func TestRegionConfidence(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want float64
	}{
		{"sliver", Bounds{X1: 0, Y1: 0, X2: 600, Y2: 100}, 0.4},
		{"small square", Bounds{X1: 0, Y1: 0, X2: 100, Y2: 100}, 0.5},
		{"typical", Bounds{X1: 0, Y1: 0, X2: 400, Y2: 500}, 1.0},
		{"dominant", Bounds{X1: 0, Y1: 0, X2: 900, Y2: 900}, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := regionConfidence(tt.b, 1000, 1000); got != tt.want {
				t.Errorf("regionConfidence = %v, want %v", got, tt.want)
			}
		})
	}
}
