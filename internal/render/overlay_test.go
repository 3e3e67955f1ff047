package render

import (
	"image/color"
	"testing"

	"github.com/espaciosalter20/Comic-read/internal/detect"
)

func TestOverlay(t *testing.T) {
	page := createPage(200, 200, color.White)
	panels := []detect.Panel{
		{Bounds: detect.Bounds{X1: 20, Y1: 20, X2: 100, Y2: 100}, ReadingOrder: 0},
	}

	out, err := Overlay(page, panels, OverlayOptions{ColorHex: "#00FF00", Thickness: 2})
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
		t.Fatalf("dimensions: got %dx%d, want 200x200", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Outline pixels on the top edge, both thickness rows.
	for _, y := range []int{20, 21} {
		_, g, _, _ := out.At(50, y).RGBA()
		if g>>8 != 255 {
			t.Errorf("pixel (50,%d) green = %d, want 255", y, g>>8)
		}
		if r, _, _, _ := out.At(50, y).RGBA(); r>>8 != 0 {
			t.Errorf("pixel (50,%d) red = %d, want 0", y, r>>8)
		}
	}

	// Outside the rectangle stays white.
	r, g, b, _ := out.At(150, 150).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("pixel (150,150) = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestOverlay_Labels(t *testing.T) {
	page := createPage(200, 200, color.White)
	panels := []detect.Panel{
		{Bounds: detect.Bounds{X1: 10, Y1: 10, X2: 190, Y2: 190}, ReadingOrder: 0},
	}

	out, err := Overlay(page, panels, OverlayOptions{Labels: true})
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// The label background is a dark patch near the top-left corner; the
	// page is white, so any darkened pixel there proves the label drew.
	darkened := false
	for y := 10; y < 40 && !darkened; y++ {
		for x := 10; x < 40; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 < 250 && g>>8 < 250 && b>>8 < 250 {
				darkened = true
				break
			}
		}
	}
	if !darkened {
		t.Error("no label pixels drawn near the panel corner")
	}
}

func TestOverlay_BadColor(t *testing.T) {
	page := createPage(50, 50, color.White)
	if _, err := Overlay(page, nil, OverlayOptions{ColorHex: "#12345"}); err == nil {
		t.Fatal("expected error for malformed color")
	}
	if _, err := Overlay(page, nil, OverlayOptions{ColorHex: "#GGHHII"}); err == nil {
		t.Fatal("expected error for non-hex digits")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{R: 255, A: 255}, false},
		{"00FF00", color.RGBA{G: 255, A: 255}, false},
		{"#0000FF80", color.RGBA{B: 255, A: 128}, false},
		{"", color.RGBA{}, true},
		{"#12", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
