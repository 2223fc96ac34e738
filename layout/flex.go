package layout

import "math"

// resolveLineFlex implements the iterative flex-factor resolution loop
// for one line (spec §4.7, CSS Flexbox §9.7): items with flex-grow are
// stretched and items with flex-shrink are compressed to make the line's
// content exactly fill targetMainContent (the container's resolved inner
// main size, excluding gaps), honoring each item's min/max clamp and
// redistributing space away from items that clamp until the loop
// converges or every item is frozen.
func resolveLineFlex(line *flexLine, mainDim dimension, targetMainContent, gapMain, containingMain float64) {
	targetNoGaps := targetMainContent - gapMain*float64(len(line.items)-1)

	basisSum := 0.0
	for _, it := range line.items {
		basisSum += it.flexBasis + it.marginMainAxis()
		it.mainSize = it.flexBasis
	}
	growing := targetNoGaps > basisSum

	for _, it := range line.items {
		grow := it.node.style.resolvedFlexGrow()
		shrink := it.node.style.resolvedFlexShrink()
		switch {
		case targetNoGaps == basisSum:
			it.frozen = true
		case growing:
			it.frozen = grow == 0
		default:
			it.frozen = shrink == 0
		}
	}

	for {
		unfrozenCount := 0
		frozenSum := 0.0
		unfrozenBasisSum := 0.0
		for _, it := range line.items {
			if it.frozen {
				frozenSum += it.mainSize + it.marginMainAxis()
			} else {
				unfrozenCount++
				unfrozenBasisSum += it.flexBasis + it.marginMainAxis()
			}
		}
		if unfrozenCount == 0 {
			break
		}

		remaining := targetNoGaps - frozenSum - unfrozenBasisSum
		if remaining == 0 {
			break
		}

		if growing {
			sumGrow := 0.0
			for _, it := range line.items {
				if !it.frozen {
					sumGrow += it.node.style.resolvedFlexGrow()
				}
			}
			if sumGrow == 0 {
				break
			}
			for _, it := range line.items {
				if !it.frozen {
					it.mainSize = it.flexBasis + remaining*(it.node.style.resolvedFlexGrow()/sumGrow)
				}
			}
		} else {
			sumScaled := 0.0
			for _, it := range line.items {
				if !it.frozen {
					it.scaledShrinkFactor = it.node.style.resolvedFlexShrink() * it.flexBasis
					sumScaled += it.scaledShrinkFactor
				}
			}
			if sumScaled == 0 {
				break
			}
			for _, it := range line.items {
				if !it.frozen {
					it.mainSize = it.flexBasis + remaining*(it.scaledShrinkFactor/sumScaled)
				}
			}
		}

		totalViolation := 0.0
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			clamped := clampToStyle(it.node, mainDim, it.mainSize, containingMain)
			it.violation = clamped - it.mainSize
			it.mainSize = clamped
			totalViolation += it.violation
		}

		switch {
		case totalViolation == 0:
			for _, it := range line.items {
				it.frozen = true
			}
		case totalViolation > 0:
			for _, it := range line.items {
				if !it.frozen && it.violation > 0 {
					it.frozen = true
				}
			}
		default:
			for _, it := range line.items {
				if !it.frozen && it.violation < 0 {
					it.frozen = true
				}
			}
		}
	}
}

// lineRemainingFreeSpace computes the free space left on a line once every
// item has its final main size (spec §4.7 "remaining free space feeds
// justify-content and auto-margin absorption"). A negative result (items
// overflow the container) is returned as-is; positionItemsMain applies it
// unchanged for flex-end and center and treats it as zero for auto
// margins and the space-* values.
func lineRemainingFreeSpace(line *flexLine, targetMainContent, gapMain float64) float64 {
	used := gapMain * float64(len(line.items)-1)
	for _, it := range line.items {
		used += it.mainSize + it.marginMainAxis()
	}
	return targetMainContent - used
}

// countAutoMainMargins reports how many leading+trailing auto main
// margins exist on the line (spec §4.7: their presence suppresses
// justify-content in favor of splitting free space across them).
func countAutoMainMargins(line *flexLine) int {
	n := 0
	for _, it := range line.items {
		if it.autoMarginMainLeading {
			n++
		}
		if it.autoMarginMainTrailing {
			n++
		}
	}
	return n
}

func clampFreeSpaceForAutoMargins(freeSpace float64) float64 {
	if freeSpace < 0 || math.IsNaN(freeSpace) {
		return 0
	}
	return freeSpace
}

// positionItemsMain assigns each item's mainOffset — the logical (pre
// writing-direction-reversal) position of its border box's leading main
// edge, measured from the line's main-start — per spec §4.7/§4.8. Auto
// main margins, when present, absorb the line's free space and suppress
// justify-content entirely (CSS §8.1); otherwise justify-content
// distributes the free space per its table. Negative free space (content
// overflows the line) is allowed to push flex-end/center positions
// negative, but is treated as zero for the *-between/around/evenly
// gap-widening values, which simply fall back to packed placement (CSS
// §8.1 note).
func positionItemsMain(line *flexLine, justify Justify, freeSpace, gapMain float64) {
	if countAutoMainMargins(line) > 0 {
		share := clampFreeSpaceForAutoMargins(freeSpace) / float64(countAutoMainMargins(line))
		cursor := 0.0
		for i, it := range line.items {
			leading := it.marginMainLeading
			if it.autoMarginMainLeading {
				leading = share
			}
			trailing := it.marginMainTrailing
			if it.autoMarginMainTrailing {
				trailing = share
			}
			it.mainOffset = cursor + leading
			cursor = it.mainOffset + it.mainSize + trailing
			if i < len(line.items)-1 {
				cursor += gapMain
			}
		}
		return
	}

	n := len(line.items)
	var leadingOffset, between float64
	switch justify {
	case JustifyFlexEnd:
		leadingOffset, between = freeSpace, gapMain
	case JustifyCenter:
		leadingOffset, between = freeSpace/2, gapMain
	case JustifySpaceBetween:
		between = gapMain
		if n > 1 && freeSpace > 0 {
			between += freeSpace / float64(n-1)
		}
	case JustifySpaceAround:
		between = gapMain
		if freeSpace > 0 {
			extra := freeSpace / float64(n)
			leadingOffset = extra / 2
			between += extra
		}
	case JustifySpaceEvenly:
		between = gapMain
		if freeSpace > 0 {
			extra := freeSpace / float64(n+1)
			leadingOffset = extra
			between += extra
		}
	default: // JustifyFlexStart
		between = gapMain
	}

	cursor := leadingOffset
	for i, it := range line.items {
		it.mainOffset = cursor + it.marginMainLeading
		cursor = it.mainOffset + it.mainSize + it.marginMainTrailing
		if i < n-1 {
			cursor += between
		}
	}
}

// mirrorMain reflects a logical position across axisExtent, used to turn
// a logical (document-order) coordinate into a physical one when the
// main or cross axis runs in reverse (spec §4.5).
func mirrorMain(pos, size, axisExtent float64) float64 {
	return axisExtent - pos - size
}
