package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/espaciosalter20/Comic-read/internal/detect"
)

// OverlayOptions controls panel overlay rendering.
type OverlayOptions struct {
	// ColorHex is the outline color as "#RRGGBB" or "#RRGGBBAA". Empty
	// selects the default red.
	ColorHex string
	// Thickness is the outline width in pixels; values below 1 become 1.
	Thickness int
	// Labels draws each panel's reading position in its top-left corner.
	Labels bool
}

// Overlay copies the page and draws the detected panel rectangles on it.
// Labels show the 1-based reading position.
func Overlay(page image.Image, panels []detect.Panel, opts OverlayOptions) (*image.RGBA, error) {
	outline := color.RGBA{R: 255, A: 255}
	if opts.ColorHex != "" {
		var err error
		outline, err = parseHexColor(opts.ColorHex)
		if err != nil {
			return nil, fmt.Errorf("overlay color: %w", err)
		}
	}
	thickness := opts.Thickness
	if thickness < 1 {
		thickness = 1
	}

	bounds := page.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), page, bounds.Min, draw.Src)

	for _, p := range panels {
		drawRectOutline(result, p.Bounds, thickness, outline)
		if opts.Labels {
			labelX := p.Bounds.X1 + thickness + 2
			labelY := p.Bounds.Y1 + thickness + 2
			drawLabel(result, labelX, labelY, strconv.Itoa(p.ReadingOrder+1),
				color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{A: 200})
		}
	}
	return result, nil
}

// drawRectOutline draws the rectangle border, growing inward so the outline
// stays inside the panel bounds.
func drawRectOutline(img *image.RGBA, b detect.Bounds, thickness int, c color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	set := func(x, y int) {
		if x >= 0 && x < w && y >= 0 && y < h {
			img.Set(x, y, c)
		}
	}
	for t := 0; t < thickness; t++ {
		for x := b.X1; x < b.X2; x++ {
			set(x, b.Y1+t)
			set(x, b.Y2-1-t)
		}
		for y := b.Y1; y < b.Y2; y++ {
			set(b.X1+t, y)
			set(b.X2-1-t, y)
		}
	}
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the "#" is optional).
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	a := uint8(255)
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("hex color %q must be 6 or 8 digits", hex)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// glyphs is a 3x5 pixel font covering the digits used by panel labels.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// labelScale enlarges the font so labels stay readable on full-size pages.
const labelScale = 3

// drawLabel draws text on a filled background at the given position,
// clipping at the image border.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	set := func(px, py int, c color.RGBA) {
		if px >= 0 && px < w && py >= 0 && py < h {
			img.Set(px, py, c)
		}
	}

	charWidth := 4 * labelScale
	labelWidth := len(text) * charWidth
	labelHeight := 7 * labelScale

	for dy := -labelScale; dy < labelHeight; dy++ {
		for dx := -labelScale; dx < labelWidth; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for sy := 0; sy < labelScale; sy++ {
					for sx := 0; sx < labelScale; sx++ {
						set(cx+col*labelScale+sx, y+row*labelScale+sy, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
