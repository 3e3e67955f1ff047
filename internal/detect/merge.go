package detect

// mergeOverlapping collapses overlapping panels in a single forward pass.
// Each surviving panel scans the panels after it and absorbs any whose
// overlap ratio with the running union exceeds threshold; absorbed panels
// are consumed and never start a scan of their own.
//
// The pass is deliberately not transitive: once a later panel has been
// passed over, it is not revisited even if a subsequent absorption grows
// the union enough to overlap it. Chained unions on a busy page tend to
// swallow whole rows, which reads worse than an occasional split panel.
func mergeOverlapping(panels []Panel, threshold float64) []Panel {
	if len(panels) < 2 {
		return panels
	}
	consumed := make([]bool, len(panels))
	merged := make([]Panel, 0, len(panels))
	for i := range panels {
		if consumed[i] {
			continue
		}
		p := panels[i]
		for j := i + 1; j < len(panels); j++ {
			if consumed[j] {
				continue
			}
			if overlapRatio(p.Bounds, panels[j].Bounds) > threshold {
				p.Bounds = p.Bounds.Union(panels[j].Bounds)
				consumed[j] = true
			}
		}
		merged = append(merged, p)
	}
	return merged
}
