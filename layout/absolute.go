package layout

import "math"

// layoutAbsoluteChild places a position:absolute child against its
// container's padding box (spec §4.9): inset edges (left/top/right/
// bottom) are measured from the padding box's edges, an explicit
// width/height wins outright, and an auto size with both opposing insets
// set is computed by subtracting the insets and margins from the padding
// box (CSS §10.3.7 "over-constrained" resolution simplified to the
// common case: no conflicting explicit width+both-insets combination is
// resolved by dropping an inset, since margins/insets here are never
// jointly over-determined beyond this rule).
func layoutAbsoluteChild(container *Node, child *Node, paddingBoxWidth, paddingBoxHeight, originX, originY float64) {
	direction := effectiveDirection(child)
	left := positionEdge(child, EdgeLeft, paddingBoxWidth)
	right := positionEdge(child, EdgeRight, paddingBoxWidth)
	top := positionEdge(child, EdgeTop, paddingBoxHeight)
	bottom := positionEdge(child, EdgeBottom, paddingBoxHeight)
	if math.IsNaN(left) {
		if start := resolveEdgeValue(child.style.position, EdgeStart, direction); !start.IsUndefined() {
			left = start.Resolve(paddingBoxWidth)
		}
	}
	if math.IsNaN(right) {
		if end := resolveEdgeValue(child.style.position, EdgeEnd, direction); !end.IsUndefined() {
			right = end.Resolve(paddingBoxWidth)
		}
	}

	marginLeft := marginEdgeResolved(child, EdgeLeft, paddingBoxWidth)
	marginRight := marginEdgeResolved(child, EdgeRight, paddingBoxWidth)
	marginTop := marginEdgeResolved(child, EdgeTop, paddingBoxHeight)
	marginBottom := marginEdgeResolved(child, EdgeBottom, paddingBoxHeight)

	widthVal := child.style.dim(dimensionWidth)
	heightVal := child.style.dim(dimensionHeight)

	var offerW, offerH float64
	var offerWMode, offerHMode MeasureMode

	switch {
	case widthVal.kind == valuePoint:
		offerW, offerWMode = widthVal.value, MeasureModeExactly
	case widthVal.kind == valuePercent:
		offerW, offerWMode = widthVal.Resolve(paddingBoxWidth), MeasureModeExactly
	case !math.IsNaN(left) && !math.IsNaN(right):
		offerW = paddingBoxWidth - left - right - marginLeft - marginRight
		if offerW < 0 {
			offerW = 0
		}
		offerWMode = MeasureModeExactly
	default:
		offerW, offerWMode = paddingBoxWidth, MeasureModeAtMost
	}

	switch {
	case heightVal.kind == valuePoint:
		offerH, offerHMode = heightVal.value, MeasureModeExactly
	case heightVal.kind == valuePercent:
		offerH, offerHMode = heightVal.Resolve(paddingBoxHeight), MeasureModeExactly
	case !math.IsNaN(top) && !math.IsNaN(bottom):
		offerH = paddingBoxHeight - top - bottom - marginTop - marginBottom
		if offerH < 0 {
			offerH = 0
		}
		offerHMode = MeasureModeExactly
	default:
		offerH, offerHMode = paddingBoxHeight, MeasureModeAtMost
	}

	w, h := layoutNode(child, offerW, offerWMode, offerH, offerHMode, paddingBoxWidth, paddingBoxHeight, true)

	// originX/originY locate the content box; the padding box starts one
	// padding width before it, so inset positions are shifted back by that.
	padLeft := originX - borderEdge(container, EdgeLeft)
	padTop := originY - borderEdge(container, EdgeTop)

	var x, y float64
	switch {
	case !math.IsNaN(left):
		x = left + marginLeft - padLeft
	case !math.IsNaN(right):
		x = paddingBoxWidth - right - marginRight - w - padLeft
	default:
		x = marginLeft
	}
	switch {
	case !math.IsNaN(top):
		y = top + marginTop - padTop
	case !math.IsNaN(bottom):
		y = paddingBoxHeight - bottom - marginBottom - h - padTop
	default:
		y = marginTop
	}

	child.layout.Left = originX + x
	child.layout.Top = originY + y
	child.layout.Width = w
	child.layout.Height = h
	child.layout.Direction = direction
	child.dirty = false
}
