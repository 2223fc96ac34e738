// Package layout implements a Flexbox layout engine: given a tree of
// styled Nodes and an optional available width/height, it computes each
// node's position and size in its parent's coordinate space following the
// CSS Flexible Box Layout model.
package layout

// Direction selects the writing direction used to resolve logical
// start/end edges to physical left/right.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the orientation of a container's main axis.
type FlexDirection int

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// IsRow reports whether the direction runs along the horizontal axis.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReverse reports whether items are placed from the trailing edge inward.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// Wrap selects whether, and in which order, overflowing lines wrap.
type Wrap int

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapReverse
)

// Justify controls distribution of free space along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls cross-axis alignment, both per line (align-content) and
// per item (align-items / align-self).
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// PositionType selects whether a node participates in normal flex flow.
type PositionType int

const (
	PositionTypeStatic PositionType = iota
	PositionTypeRelative
	PositionTypeAbsolute
)

// Display selects whether a node contributes to layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Overflow records whether a container clips or scrolls content that
// exceeds its bounds. The engine does not clip or scroll and does not read
// the mode during layout; it only stores it for callers. Content that
// exceeds a container always overflows, whatever the mode.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Edge names a physical or logical side, or the "all" shorthand.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeAll
	edgeCount
)

// Gutter names a gap axis, or the "all" shorthand.
type Gutter int

const (
	GutterColumn Gutter = iota
	GutterRow
	GutterAll
	gutterCount
)

// MeasureMode constrains how a measured dimension relates to the
// available space passed into a measurement.
type MeasureMode int

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeAtMost
	MeasureModeExactly
)

// dimension indexes the two axes of a Style's Dimensions/Min/Max arrays.
type dimension int

const (
	dimensionWidth dimension = iota
	dimensionHeight
	dimensionCount
)

// physicalAxis names one of the two physical axes a resolved main/cross
// axis maps onto.
type physicalAxis int

const (
	axisHorizontal physicalAxis = iota
	axisVertical
)
