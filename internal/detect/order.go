package detect

import (
	"math"
	"sort"
)

// Row-clustering factors applied to the smallest panel height. The grid
// engine emits aligned cells, so half the height separates rows cleanly;
// region blobs are ragged and need the tighter factor to avoid gluing
// adjacent rows together.
const (
	gridRowFactor   = 0.5
	regionRowFactor = 0.3

	// fallbackRowThreshold stands in when no panel height is available.
	fallbackRowThreshold = 50.0
)

// orderPanels sorts panels into reading order in place and assigns
// consecutive ReadingOrder values starting at 0.
//
// Panels are grouped into rows by greedy clustering of vertical centers:
// after a stable sort by top edge, each panel joins the first row containing
// a member whose center is within the clustering threshold, or starts a new
// row. Rows are read top to bottom; panels within a row are sorted by left
// edge, ascending for LeftToRight and descending for RightToLeft. Stable
// sorts keep the pre-sort order for exact ties, so output is deterministic.
func orderPanels(panels []Panel, dir Direction, rowFactor float64) {
	if len(panels) == 0 {
		return
	}
	threshold := rowThreshold(panels, rowFactor)

	sort.SliceStable(panels, func(i, j int) bool {
		return panels[i].Bounds.Y1 < panels[j].Bounds.Y1
	})

	var rows [][]Panel
	for _, p := range panels {
		placed := false
	cluster:
		for ri := range rows {
			for _, member := range rows[ri] {
				if math.Abs(member.Bounds.CenterY()-p.Bounds.CenterY()) <= threshold {
					rows[ri] = append(rows[ri], p)
					placed = true
					break cluster
				}
			}
		}
		if !placed {
			rows = append(rows, []Panel{p})
		}
	}

	order := 0
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			if dir == RightToLeft {
				return row[i].Bounds.X1 > row[j].Bounds.X1
			}
			return row[i].Bounds.X1 < row[j].Bounds.X1
		})
		for _, p := range row {
			p.ReadingOrder = order
			panels[order] = p
			order++
		}
	}
}

// rowThreshold derives the clustering threshold from the smallest panel
// height present.
func rowThreshold(panels []Panel, factor float64) float64 {
	if len(panels) == 0 {
		return fallbackRowThreshold
	}
	minHeight := panels[0].Bounds.Height()
	for _, p := range panels[1:] {
		if h := p.Bounds.Height(); h < minHeight {
			minHeight = h
		}
	}
	return float64(minHeight) * factor
}
