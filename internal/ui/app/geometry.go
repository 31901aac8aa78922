package app

import "math"

// cellWidths rounds fractional pane widths to whole terminal columns. Edges
// are rounded cumulatively so the columns always add up to the rounded total.
func cellWidths(widths []float64) []int {
	out := make([]int, len(widths))
	edge := 0.0
	prev := 0
	for i, w := range widths {
		edge += math.Max(w, 0)
		next := int(math.Round(edge))
		out[i] = max(next-prev, 0)
		prev = next
	}
	return out
}

// paneAt reports which pane owns column x.
func paneAt(cols []int, x int) (int, bool) {
	edge := 0
	for i, w := range cols {
		edge += w
		if x < edge {
			return i, true
		}
	}
	return 0, false
}

// dividerEdge converts the column of a divider glyph to the boundary the
// layout engine hit-tests against. The glyph is the last column of its pane.
func dividerEdge(x int) float64 {
	return float64(x + 1)
}
