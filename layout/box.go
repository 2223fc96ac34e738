package layout

import "math"

// box.go collects the small per-node geometry helpers (padding+border
// totals, content-box <-> border-box conversions) shared across the
// measurement, flex, cross-axis, and absolute-placement stages.

// paddingBorder returns the combined padding+border for one physical
// edge; children are positioned inside the padding box, but the quantity
// that reduces a container's available content space is padding+border
// together (spec §4.5: "Padding+border on one edge reduces available
// space on that edge").
func paddingBorder(n *Node, edge Edge, containingWidth float64) float64 {
	return paddingEdge(n, edge, containingWidth) + borderEdge(n, edge)
}

// paddingBorderAxis sums the leading+trailing padding+border for an
// entire physical axis (left+right, or top+bottom).
func paddingBorderAxis(n *Node, isRow bool, containingWidth float64) float64 {
	if isRow {
		return paddingBorder(n, EdgeLeft, containingWidth) + paddingBorder(n, EdgeRight, containingWidth)
	}
	return paddingBorder(n, EdgeTop, containingWidth) + paddingBorder(n, EdgeBottom, containingWidth)
}

// marginAxisResolved sums the leading+trailing margin for an axis,
// treating `auto` as 0 (used wherever auto-margin free-space absorption
// does not apply, e.g. computing a non-flexed hypothetical size).
func marginAxisResolved(n *Node, isRow bool, containingWidth float64) float64 {
	if isRow {
		return marginEdgeResolved(n, EdgeLeft, containingWidth) + marginEdgeResolved(n, EdgeRight, containingWidth)
	}
	return marginEdgeResolved(n, EdgeTop, containingWidth) + marginEdgeResolved(n, EdgeBottom, containingWidth)
}

// measureLeaf invokes a leaf's MeasureFunc, converting the border-box
// constraints offered by the caller into the content-box constraints the
// callback expects, then adding padding+border back onto its result to
// produce a border-box size (spec §3 "Measure callback").
func measureLeaf(n *Node, widthConstraint, heightConstraint resolvedAxisConstraint, containingWidth, containingHeight float64) (width, height float64) {
	pbLeft := paddingBorder(n, EdgeLeft, containingWidth)
	pbRight := paddingBorder(n, EdgeRight, containingWidth)
	pbTop := paddingBorder(n, EdgeTop, containingWidth)
	pbBottom := paddingBorder(n, EdgeBottom, containingWidth)

	contentAvailW := subtractInset(widthConstraint.avail, pbLeft+pbRight)
	contentAvailH := subtractInset(heightConstraint.avail, pbTop+pbBottom)

	// The border-box result is memoized by the caller's measurement
	// cache (layoutWithConstraints); a second cache here keyed on
	// content-box constraints would share n.cache's bounded entry list
	// under a different coordinate system and could evict or be evicted
	// by unrelated border-box entries.
	cw, ch := n.measure(contentAvailW, widthConstraint.mode, contentAvailH, heightConstraint.mode)
	if math.IsNaN(cw) || cw < 0 {
		cw = 0
	}
	if math.IsNaN(ch) || ch < 0 {
		ch = 0
	}
	return cw + pbLeft + pbRight, ch + pbTop + pbBottom
}

func subtractInset(avail, inset float64) float64 {
	if math.IsNaN(avail) {
		return math.NaN()
	}
	v := avail - inset
	if v < 0 {
		return 0
	}
	return v
}
