package layout

// axis.go implements spec §4.5: mapping logical main/cross axes to
// physical left/top/right/bottom given flex-direction and writing
// direction.

// isRowContainer reports whether a container's main axis is horizontal.
func isRowContainer(style *Style) bool {
	return style.FlexDirection.IsRow()
}

// mainAxisReversed reports whether the main axis runs from a high
// physical coordinate to a low one (right-to-left for row, bottom-to-top
// for column). For row containers this is the XOR of `*-reverse` and the
// writing direction being RTL — row-reverse under RTL cancels back out to
// normal left-to-right placement (spec §4.5).
func mainAxisReversed(style *Style, direction Direction) bool {
	reverseFlex := style.FlexDirection == FlexDirectionRowReverse || style.FlexDirection == FlexDirectionColumnReverse
	if isRowContainer(style) {
		return reverseFlex != (direction == DirectionRTL)
	}
	return reverseFlex
}

// crossAxisHorizontalReversed reports whether a column container's
// (horizontal) cross axis starts from the right instead of the left.
// Only the horizontal axis is sensitive to writing direction (spec §4.5:
// "only for axes along the writing direction"); a row container's cross
// axis is vertical and is never affected by direction.
func crossAxisHorizontalReversed(style *Style, direction Direction) bool {
	if isRowContainer(style) {
		return false
	}
	return direction == DirectionRTL
}

// physicalEdgesForAxis returns the physical start and end edges of an
// axis (left/right for a row, top/bottom for a column), without taking
// reversal into account.
func physicalEdgesForAxis(isRow bool) (start, end Edge) {
	if isRow {
		return EdgeLeft, EdgeRight
	}
	return EdgeTop, EdgeBottom
}

// leadingEdge / trailingEdge resolve to the physical edge that is
// "first"/"last" along an axis once reversal is taken into account.
func leadingEdge(isRow, reversed bool) Edge {
	start, end := physicalEdgesForAxis(isRow)
	if reversed {
		return end
	}
	return start
}

func trailingEdge(isRow, reversed bool) Edge {
	start, end := physicalEdgesForAxis(isRow)
	if reversed {
		return start
	}
	return end
}
