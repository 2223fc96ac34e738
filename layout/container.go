package layout

import "math"

// pick returns a if isRow, else b — used throughout to swap a
// width/height pair onto a main/cross pair depending on flex-direction.
func pick(isRow bool, a, b float64) float64 {
	if isRow {
		return a
	}
	return b
}

// layoutFlexChildren implements the container body of the flex algorithm
// (spec §4.6–§4.9): form lines, resolve each line's flex factors, size
// the container itself, distribute lines across the cross axis, place
// every in-flow item, and finally place out-of-flow (absolutely
// positioned) children against the padding box.
func layoutFlexChildren(n *Node, widthConstraint, heightConstraint resolvedAxisConstraint, containingWidth, containingHeight float64, performLayout bool) (float64, float64) {
	isRow := isRowContainer(&n.style)
	direction := effectiveDirection(n)
	mainReversed := mainAxisReversed(&n.style, direction)
	crossHReversed := crossAxisHorizontalReversed(&n.style, direction)

	mainDim := dimensionWidth
	if !isRow {
		mainDim = dimensionHeight
	}
	crossDim := crossDimFor(mainDim)

	borderLeft, borderTop := borderEdge(n, EdgeLeft), borderEdge(n, EdgeTop)
	borderRight, borderBottom := borderEdge(n, EdgeRight), borderEdge(n, EdgeBottom)
	paddingLeft := paddingEdge(n, EdgeLeft, containingWidth)
	paddingRight := paddingEdge(n, EdgeRight, containingWidth)
	paddingTop := paddingEdge(n, EdgeTop, containingWidth)
	paddingBottom := paddingEdge(n, EdgeBottom, containingWidth)
	pbW := borderLeft + borderRight + paddingLeft + paddingRight
	pbH := borderTop + borderBottom + paddingTop + paddingBottom
	pbMain, pbCross := pbW, pbH
	if !isRow {
		pbMain, pbCross = pbH, pbW
	}

	ownInnerWidthAvail := subtractInset(widthConstraint.avail, pbW)
	ownInnerHeightAvail := subtractInset(heightConstraint.avail, pbH)

	childContentW := math.NaN()
	if widthConstraint.mode == MeasureModeExactly {
		childContentW = ownInnerWidthAvail
	}
	childContentH := math.NaN()
	if heightConstraint.mode == MeasureModeExactly {
		childContentH = ownInnerHeightAvail
	}

	var inFlow, absolute []*Node
	for i := 0; i < n.ChildCount(); i++ {
		c := n.GetChild(i)
		if c.style.Display == DisplayNone {
			layoutNode(c, 0, MeasureModeExactly, 0, MeasureModeExactly, childContentW, childContentH, performLayout)
			continue
		}
		if c.style.PositionType == PositionTypeAbsolute {
			absolute = append(absolute, c)
			continue
		}
		inFlow = append(inFlow, c)
	}

	gapColumn := gapFor(&n.style, GutterColumn, childContentW)
	gapRow := gapFor(&n.style, GutterRow, childContentH)
	gapMain, gapCross := gapColumn, gapRow
	if !isRow {
		gapMain, gapCross = gapRow, gapColumn
	}

	mainInner := pick(isRow, ownInnerWidthAvail, ownInnerHeightAvail)
	availCrossBound := pick(isRow, ownInnerHeightAvail, ownInnerWidthAvail)

	lines := buildLines(n, inFlow, isRow, mainInner, gapMain, childContentW, childContentH, availCrossBound)
	if n.style.FlexWrap == WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	// Resolve the container's own main-axis content size before
	// distributing flex factors: a definite main constraint fixes it
	// outright; otherwise it is the widest line, clamped to any
	// at-most bound and to the style's own min/max (spec §4.6 "auto
	// main size").
	maxLineMain := 0.0
	for _, l := range lines {
		if l.mainContentSum > maxLineMain {
			maxLineMain = l.mainContentSum
		}
	}
	mainConstraint := widthConstraint
	if !isRow {
		mainConstraint = heightConstraint
	}
	containerMainBorderBox := finalizeAxisSize(n, mainDim, mainConstraint, maxLineMain+pbMain, pick(isRow, containingWidth, containingHeight))
	containerMainContent := containerMainBorderBox - pbMain
	if containerMainContent < 0 {
		containerMainContent = 0
	}

	childMainContent := pick(isRow, childContentW, childContentH)
	for _, l := range lines {
		resolveLineFlex(l, mainDim, containerMainContent, gapMain, childMainContent)
		for _, it := range l.items {
			computeItemHypotheticalCross(it, mainDim, isRow, availCrossBound, childContentW, childContentH)
		}
		computeLineCrossSize(l, &n.style, isRow)
	}

	// Resolve the container's own cross-axis content size the same way.
	crossSum := 0.0
	for i, l := range lines {
		if i > 0 {
			crossSum += gapCross
		}
		crossSum += l.crossSize
	}
	crossConstraint := heightConstraint
	if !isRow {
		crossConstraint = widthConstraint
	}
	containerCrossBorderBox := finalizeAxisSize(n, crossDim, crossConstraint, crossSum+pbCross, pick(isRow, containingHeight, containingWidth))
	containerCrossContent := containerCrossBorderBox - pbCross
	if containerCrossContent < 0 {
		containerCrossContent = 0
	}

	distributeAlignContent(lines, containerCrossContent, gapCross, n.style.AlignContent)

	finalWidth, finalHeight := containerMainBorderBox, containerCrossBorderBox
	if !isRow {
		finalWidth, finalHeight = containerCrossBorderBox, containerMainBorderBox
	}

	if performLayout {
		n.layout.Width, n.layout.Height = finalWidth, finalHeight
		n.layout.Direction = direction

		originMain, originCross := borderLeft+paddingLeft, borderTop+paddingTop
		if !isRow {
			originMain, originCross = borderTop+paddingTop, borderLeft+paddingLeft
		}

		for _, l := range lines {
			freeSpace := lineRemainingFreeSpace(l, containerMainContent, gapMain)
			positionItemsMain(l, n.style.JustifyContent, freeSpace, gapMain)

			for _, it := range l.items {
				align := itemAlign(&n.style, &it.node.style)
				ownCross := it.node.style.dim(crossDim)
				var crossOffer resolvedAxisConstraint
				switch {
				case stretchApplies(align, ownCross, it.autoMarginCrossLeading, it.autoMarginCrossTrailing):
					stretched := l.crossSize - it.marginCrossAxis()
					if stretched < 0 {
						stretched = 0
					}
					crossOffer = resolvedAxisConstraint{avail: stretched, mode: MeasureModeExactly}
				case !math.IsNaN(availCrossBound):
					crossOffer = resolvedAxisConstraint{avail: availCrossBound, mode: MeasureModeAtMost}
				default:
					crossOffer = resolvedAxisConstraint{avail: math.NaN(), mode: MeasureModeUndefined}
				}

				w, h := layoutFlexItemFinal(it.node, mainDim, it.mainSize, crossOffer, childContentW, childContentH, true)
				if isRow {
					it.crossSize = h
				} else {
					it.crossSize = w
				}

				it.crossOffset = alignItemCrossOffset(align, l.crossSize, it.crossSize+it.marginCrossAxis(), it.autoMarginCrossLeading, it.autoMarginCrossTrailing, it.baselineOffset, l.baseline)

				physicalMain := originMain + it.mainOffset
				if mainReversed {
					physicalMain = originMain + mirrorMain(it.mainOffset, it.mainSize, containerMainContent)
				}
				crossPos := l.crossOffset + it.crossOffset
				physicalCross := originCross + crossPos
				if !isRow && crossHReversed {
					physicalCross = originCross + mirrorMain(crossPos, it.crossSize, containerCrossContent)
				}

				if isRow {
					it.node.layout.Left = physicalMain
					it.node.layout.Top = physicalCross
				} else {
					it.node.layout.Left = physicalCross
					it.node.layout.Top = physicalMain
				}
			}
		}

		paddingBoxWidth := finalWidth - borderLeft - borderRight
		paddingBoxHeight := finalHeight - borderTop - borderBottom
		for _, c := range absolute {
			layoutAbsoluteChild(n, c, paddingBoxWidth, paddingBoxHeight, borderLeft+paddingLeft, borderTop+paddingTop)
		}
	}

	return finalWidth, finalHeight
}

// computeItemHypotheticalCross measures an item's natural cross size at
// its (already flex-resolved) main size, ignoring stretch, for line
// cross-size computation (spec §4.8).
func computeItemHypotheticalCross(it *flexItem, mainDim dimension, isRow bool, availCrossBound, childContentW, childContentH float64) {
	var crossOffer resolvedAxisConstraint
	if !math.IsNaN(availCrossBound) {
		crossOffer = resolvedAxisConstraint{avail: availCrossBound, mode: MeasureModeAtMost}
	} else {
		crossOffer = resolvedAxisConstraint{avail: math.NaN(), mode: MeasureModeUndefined}
	}
	w, h := layoutFlexItemFinal(it.node, mainDim, it.mainSize, crossOffer, childContentW, childContentH, false)
	if isRow {
		it.crossSize = h
	} else {
		it.crossSize = w
	}
}
