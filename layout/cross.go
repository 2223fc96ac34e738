package layout

import "math"

// crossDimFor returns the dimension orthogonal to mainDim.
func crossDimFor(mainDim dimension) dimension {
	if mainDim == dimensionWidth {
		return dimensionHeight
	}
	return dimensionWidth
}

// itemAlign resolves align-self, falling back to the container's
// align-items when align-self is auto (spec §4.8).
func itemAlign(container *Style, item *Style) Align {
	if item.AlignSelf != AlignAuto {
		return item.AlignSelf
	}
	if container.AlignItems == AlignAuto {
		return AlignStretch
	}
	return container.AlignItems
}

// stretchApplies reports whether an item should be stretched to fill its
// line's cross size: the resolved alignment is stretch, the item's own
// cross-axis dimension is auto (an explicit size always wins), and
// neither cross margin is auto (spec §4.8, CSS §9.4 rule 4).
func stretchApplies(align Align, ownCross Value, autoLeading, autoTrailing bool) bool {
	if align != AlignStretch {
		return false
	}
	if autoLeading || autoTrailing {
		return false
	}
	return ownCross.IsAuto() || ownCross.IsUndefined()
}

// distributeAlignContent assigns each line a crossOffset within the
// container's resolved content-box cross size per spec §4.8's
// align-content table, and grows lines to fill leftover space under
// stretch.
func distributeAlignContent(lines []*flexLine, containerCrossSize, gapCross float64, align Align) {
	n := len(lines)
	if n == 0 {
		return
	}
	used := gapCross * float64(n-1)
	for _, l := range lines {
		used += l.crossSize
	}
	free := containerCrossSize - used
	if math.IsNaN(free) {
		free = 0
	}

	switch align {
	case AlignFlexEnd:
		offset := free
		for _, l := range lines {
			l.crossOffset = offset
			offset += l.crossSize + gapCross
		}
	case AlignCenter:
		offset := free / 2
		for _, l := range lines {
			l.crossOffset = offset
			offset += l.crossSize + gapCross
		}
	case AlignSpaceBetween:
		extra := 0.0
		if n > 1 && free > 0 {
			extra = free / float64(n-1)
		}
		offset := 0.0
		for _, l := range lines {
			l.crossOffset = offset
			offset += l.crossSize + gapCross + extra
		}
	case AlignSpaceAround:
		extra := 0.0
		if free > 0 {
			extra = free / float64(n)
		}
		offset := extra / 2
		for _, l := range lines {
			l.crossOffset = offset
			offset += l.crossSize + gapCross + extra
		}
	case AlignStretch, AlignAuto:
		extra := 0.0
		if free > 0 {
			extra = free / float64(n)
		}
		offset := 0.0
		for _, l := range lines {
			l.crossSize += extra
			l.crossOffset = offset
			offset += l.crossSize + gapCross
		}
	default: // FlexStart, Baseline (meaningless for align-content, treated as start)
		offset := 0.0
		for _, l := range lines {
			l.crossOffset = offset
			offset += l.crossSize + gapCross
		}
	}
}

// computeLineCrossSize sets line.crossSize and line.baseline from each
// item's hypothetical cross size (spec §4.8: "the cross size of a line is
// the largest of its items' hypothetical outer cross sizes", extended to
// account for baseline-aligned items whose shared baseline can demand
// more combined ascent+descent than any single item's outer cross size).
func computeLineCrossSize(line *flexLine, container *Style, isRow bool) {
	plainMax := 0.0
	maxAscent, maxDescent := 0.0, 0.0
	haveBaseline := false

	for _, it := range line.items {
		outer := it.crossSize + it.marginCrossAxis()
		if outer > plainMax {
			plainMax = outer
		}
		if itemAlign(container, &it.node.style) == AlignBaseline {
			ascent := it.crossSize
			if it.node.baseline != nil {
				if isRow {
					ascent = it.node.baseline(it.mainSize, it.crossSize)
				} else {
					ascent = it.node.baseline(it.crossSize, it.mainSize)
				}
			}
			it.baselineOffset = ascent
			haveBaseline = true
			if ascent > maxAscent {
				maxAscent = ascent
			}
			if d := outer - ascent; d > maxDescent {
				maxDescent = d
			}
		}
	}

	line.crossSize = plainMax
	if haveBaseline {
		line.baseline = maxAscent
		if combined := maxAscent + maxDescent; combined > line.crossSize {
			line.crossSize = combined
		}
	}
}

// alignItemCrossOffset computes an item's offset from its line's cross
// start to the leading edge of its margin box, per spec §4.8's
// align-items/align-self table. Auto cross margins absorb all the line's
// free space around the item and take priority over the alignment value
// (CSS §9.4 rule 3), splitting it evenly when both are auto.
func alignItemCrossOffset(align Align, lineCross, itemOuterCross float64, autoLeading, autoTrailing bool, baselineShift, lineBaseline float64) float64 {
	free := lineCross - itemOuterCross
	if free < 0 {
		free = 0
	}

	if autoLeading || autoTrailing {
		switch {
		case autoLeading && autoTrailing:
			return free / 2
		case autoLeading:
			return free
		default:
			return 0
		}
	}

	switch align {
	case AlignFlexEnd:
		return free
	case AlignCenter:
		return free / 2
	case AlignBaseline:
		return lineBaseline - baselineShift
	default: // FlexStart, Stretch (already sized to fill, offset 0)
		return 0
	}
}
