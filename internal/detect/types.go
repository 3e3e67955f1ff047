package detect

import "fmt"

// Direction is the order in which panels on one row are read.
type Direction int

const (
	// LeftToRight is the western reading order.
	LeftToRight Direction = iota
	// RightToLeft is the manga reading order.
	RightToLeft
)

// String returns the identifier accepted by ParseDirection.
func (d Direction) String() string {
	switch d {
	case RightToLeft:
		return "rtl"
	default:
		return "ltr"
	}
}

// ParseDirection maps a direction identifier to its Direction value.
// Accepted identifiers are "ltr" and "rtl"; the empty string means
// LeftToRight.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr", "":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("unknown reading direction: %q", s)
	}
}

// Bounds is a rectangle in page pixel coordinates. The left and top edges
// (X1, Y1) are inclusive, the right and bottom edges (X2, Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the horizontal extent in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// Area returns Width * Height.
func (b Bounds) Area() int { return b.Width() * b.Height() }

// CenterY returns the vertical center of the rectangle.
func (b Bounds) CenterY() float64 { return float64(b.Y1+b.Y2) / 2 }

// Union returns the smallest rectangle containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}

// overlapRatio returns the intersection area divided by the area of the
// smaller rectangle, or 0 when the rectangles are disjoint or degenerate.
func overlapRatio(a, b Bounds) float64 {
	iw := min(a.X2, b.X2) - max(a.X1, b.X1)
	ih := min(a.Y2, b.Y2) - max(a.Y1, b.Y1)
	if iw <= 0 || ih <= 0 {
		return 0
	}
	smaller := min(a.Area(), b.Area())
	if smaller <= 0 {
		return 0
	}
	return float64(iw*ih) / float64(smaller)
}

// Panel is one detected panel of a comic page.
type Panel struct {
	// ID is the sequence number assigned during detection. It is not stable
	// across merges; use ReadingOrder to address panels.
	ID int `json:"id"`
	// Bounds is the panel rectangle in page pixel coordinates.
	Bounds Bounds `json:"bounds"`
	// ReadingOrder is the 0-based position of the panel in reading order.
	ReadingOrder int `json:"reading_order"`
	// Confidence is a heuristic score in [0,1]; larger means the panel
	// geometry looks more plausible.
	Confidence float64 `json:"confidence"`
}

// Status discriminates the variants of a Result.
type Status string

const (
	// StatusOK means detection ran and Panels holds the findings.
	StatusOK Status = "ok"
	// StatusNoPanels means the region engine found no panel-sized content.
	StatusNoPanels Status = "no_panels"
	// StatusError means detection failed; Err holds the message.
	StatusError Status = "error"
)

// Result is the outcome of one detection call.
type Result struct {
	Status Status  `json:"status"`
	Panels []Panel `json:"panels,omitempty"`
	Err    string  `json:"error,omitempty"`
}

func success(panels []Panel) Result {
	return Result{Status: StatusOK, Panels: panels}
}

func noPanels() Result {
	return Result{Status: StatusNoPanels}
}

func failure(format string, args ...interface{}) Result {
	return Result{Status: StatusError, Err: fmt.Sprintf(format, args...)}
}
