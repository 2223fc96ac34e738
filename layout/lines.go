package layout

import "math"

// flexItem carries the per-item working state threaded through the flex
// algorithm's line-forming, resolution, and placement stages (spec §4.6,
// §4.7).
type flexItem struct {
	node *Node

	marginMainLeading, marginMainTrailing   float64
	marginCrossLeading, marginCrossTrailing float64
	autoMarginMainLeading, autoMarginMainTrailing bool
	autoMarginCrossLeading, autoMarginCrossTrailing bool

	flexBasis float64 // clamped, border-box hypothetical main size
	mainSize  float64 // final resolved border-box main size
	crossSize float64 // final resolved border-box cross size

	frozen             bool
	violation          float64
	scaledShrinkFactor float64

	mainOffset     float64 // leading edge along the main axis, content-box relative
	crossOffset    float64 // leading edge along the cross axis, line-relative
	baselineOffset float64
}

// outerHypotheticalMain is the item's flex basis plus its non-auto main
// margins, the quantity line-breaking decisions are made against (spec
// §4.6: "auto margins count as 0 for the purpose of wrap decisions").
func (it *flexItem) outerHypotheticalMain() float64 {
	return it.flexBasis + it.marginMainLeading + it.marginMainTrailing
}

func (it *flexItem) marginMainAxis() float64 {
	return it.marginMainLeading + it.marginMainTrailing
}

func (it *flexItem) marginCrossAxis() float64 {
	return it.marginCrossLeading + it.marginCrossTrailing
}

// flexLine is one wrapped row/column of items (spec §4.6).
type flexLine struct {
	items []*flexItem

	mainContentSum float64 // sum of outer hypothetical mains + inter-item gaps
	crossSize      float64 // set by the cross-axis resolver
	crossOffset    float64 // line's offset from the content box's cross start
	baseline       float64 // max ascent among baseline-aligned items
}

// buildLines partitions in-flow items into flex lines per spec §4.6:
// items accumulate onto the current line until adding the next one would
// exceed mainInner, at which point a new line starts. A nowrap container,
// or one with an indefinite main size, always produces a single line. The
// first item on a line is never deferred, even if it alone overflows.
func buildLines(n *Node, items []*Node, isRow bool, mainInner float64, gapMain float64, childContentW, childContentH, availCrossBound float64) []*flexLine {
	canWrap := n.style.FlexWrap != WrapNoWrap && !math.IsNaN(mainInner)

	mainDim := dimensionWidth
	if !isRow {
		mainDim = dimensionHeight
	}
	containingMain := childContentW
	containingCross := childContentH
	if !isRow {
		containingMain, containingCross = childContentH, childContentW
	}

	var lines []*flexLine
	cur := &flexLine{}

	for _, child := range items {
		it := buildFlexItem(child, isRow, mainDim, containingMain, containingCross, availCrossBound, childContentW, childContentH)
		outer := it.outerHypotheticalMain()

		if canWrap && len(cur.items) > 0 {
			projected := cur.mainContentSum + gapMain + outer
			if projected > mainInner {
				lines = append(lines, cur)
				cur = &flexLine{}
			}
		}

		if len(cur.items) > 0 {
			cur.mainContentSum += gapMain
		}
		cur.mainContentSum += outer
		cur.items = append(cur.items, it)
	}
	lines = append(lines, cur)
	return lines
}

// buildFlexItem resolves one child's margins and flex-basis (spec §4.6,
// §4.1 "flex-basis resolution order": an explicit flex-basis wins, then
// the item's own main-dimension style, then its measured content size).
func buildFlexItem(child *Node, isRow bool, mainDim dimension, containingMain, containingCross, availCrossBound, containingWidth, containingHeight float64) *flexItem {
	it := &flexItem{node: child}

	leading, trailing := physicalEdgesForAxis(isRow)
	crossLeading, crossTrailing := physicalEdgesForAxis(!isRow)

	it.marginMainLeading, it.autoMarginMainLeading = resolveMarginForAxis(child, leading, containingWidth)
	it.marginMainTrailing, it.autoMarginMainTrailing = resolveMarginForAxis(child, trailing, containingWidth)
	it.marginCrossLeading, it.autoMarginCrossLeading = resolveMarginForAxis(child, crossLeading, containingWidth)
	it.marginCrossTrailing, it.autoMarginCrossTrailing = resolveMarginForAxis(child, crossTrailing, containingWidth)

	basisSource := child.style.FlexBasis
	if basisSource.IsAuto() || basisSource.IsUndefined() {
		basisSource = child.style.dim(mainDim)
	}

	var basis float64
	switch {
	case basisSource.kind == valuePoint:
		basis = basisSource.value
	case basisSource.kind == valuePercent && !math.IsNaN(containingMain):
		basis = basisSource.Resolve(containingMain)
	default:
		crossOffer := resolvedAxisConstraint{avail: containingCross, mode: MeasureModeExactly}
		switch {
		case !math.IsNaN(containingCross):
			// definite cross containing size: offer it exactly.
		case !math.IsNaN(availCrossBound):
			crossOffer = resolvedAxisConstraint{avail: availCrossBound, mode: MeasureModeAtMost}
		default:
			crossOffer = resolvedAxisConstraint{avail: math.NaN(), mode: MeasureModeUndefined}
		}
		var w, h float64
		if isRow {
			w, h = layoutNode(child, math.NaN(), MeasureModeUndefined, crossOffer.avail, crossOffer.mode, containingWidth, containingHeight, false)
		} else {
			w, h = layoutNode(child, crossOffer.avail, crossOffer.mode, math.NaN(), MeasureModeUndefined, containingWidth, containingHeight, false)
		}
		if isRow {
			basis = w
		} else {
			basis = h
		}
	}

	it.flexBasis = clampToStyle(child, mainDim, basis, containingMain)
	return it
}

// resolveMarginForAxis reports a margin edge's resolved value (0 for
// auto) and whether it is auto.
func resolveMarginForAxis(n *Node, physical Edge, containingWidth float64) (float64, bool) {
	v := marginEdge(n, physical, containingWidth)
	if v.IsAuto() {
		return 0, true
	}
	return v.Resolve(containingWidth), false
}
