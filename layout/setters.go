package layout

import "math"

// SetFlexDirection, SetFlexWrap, SetJustifyContent, SetAlignItems,
// SetAlignSelf, SetAlignContent, SetPositionType, SetDisplay,
// SetOverflow, and SetDirection set the corresponding container/item
// style enum and mark the node (and ancestors) dirty (spec §6).
func (n *Node) SetFlexDirection(v FlexDirection) { n.style.FlexDirection = v; n.markDirty() }
func (n *Node) SetFlexWrap(v Wrap)               { n.style.FlexWrap = v; n.markDirty() }
func (n *Node) SetJustifyContent(v Justify)      { n.style.JustifyContent = v; n.markDirty() }
func (n *Node) SetAlignItems(v Align)            { n.style.AlignItems = v; n.markDirty() }
func (n *Node) SetAlignSelf(v Align)             { n.style.AlignSelf = v; n.markDirty() }
func (n *Node) SetAlignContent(v Align)          { n.style.AlignContent = v; n.markDirty() }
func (n *Node) SetPositionType(v PositionType)   { n.style.PositionType = v; n.markDirty() }
func (n *Node) SetDisplay(v Display)             { n.style.Display = v; n.markDirty() }
func (n *Node) SetOverflow(v Overflow)           { n.style.Overflow = v; n.markDirty() }
func (n *Node) SetDirection(v Direction)         { n.style.Direction = v; n.markDirty() }

// SetFlexGrow and SetFlexShrink set the non-negative flex factors. A NaN
// input clears the property back to its 0 default (spec §4.1, §9).
func (n *Node) SetFlexGrow(v float64) {
	if math.IsNaN(v) {
		n.style.FlexGrow = math.NaN()
	} else {
		n.style.FlexGrow = v
	}
	n.markDirty()
}

func (n *Node) SetFlexShrink(v float64) {
	if math.IsNaN(v) {
		n.style.FlexShrink = math.NaN()
	} else {
		n.style.FlexShrink = v
	}
	n.markDirty()
}

// SetFlexBasis, SetFlexBasisPercent, and SetFlexBasisAuto set the item's
// preferred main-axis size before growing/shrinking (spec §4.6 "flex
// basis").
func (n *Node) SetFlexBasis(points float64)    { n.style.FlexBasis = Point(points); n.markDirty() }
func (n *Node) SetFlexBasisPercent(pct float64) { n.style.FlexBasis = Percent(pct); n.markDirty() }
func (n *Node) SetFlexBasisAuto()              { n.style.FlexBasis = Auto; n.markDirty() }

func (n *Node) setDimension(d dimension, v Value) { n.style.setDim(d, v); n.markDirty() }
func (n *Node) setMinDimension(d dimension, v Value) { n.style.setMinDim(d, v); n.markDirty() }
func (n *Node) setMaxDimension(d dimension, v Value) { n.style.setMaxDim(d, v); n.markDirty() }

// SetWidth, SetWidthPercent, and SetWidthAuto set the node's preferred
// width. SetHeight and friends are the vertical-axis equivalents. Min/Max
// variants set the corresponding clamp (spec §6).
func (n *Node) SetWidth(points float64)     { n.setDimension(dimensionWidth, Point(points)) }
func (n *Node) SetWidthPercent(pct float64) { n.setDimension(dimensionWidth, Percent(pct)) }
func (n *Node) SetWidthAuto()               { n.setDimension(dimensionWidth, Auto) }

func (n *Node) SetHeight(points float64)     { n.setDimension(dimensionHeight, Point(points)) }
func (n *Node) SetHeightPercent(pct float64) { n.setDimension(dimensionHeight, Percent(pct)) }
func (n *Node) SetHeightAuto()               { n.setDimension(dimensionHeight, Auto) }

func (n *Node) SetMinWidth(points float64)     { n.setMinDimension(dimensionWidth, Point(points)) }
func (n *Node) SetMinWidthPercent(pct float64) { n.setMinDimension(dimensionWidth, Percent(pct)) }
func (n *Node) SetMinHeight(points float64)    { n.setMinDimension(dimensionHeight, Point(points)) }
func (n *Node) SetMinHeightPercent(pct float64) {
	n.setMinDimension(dimensionHeight, Percent(pct))
}

func (n *Node) SetMaxWidth(points float64)     { n.setMaxDimension(dimensionWidth, Point(points)) }
func (n *Node) SetMaxWidthPercent(pct float64) { n.setMaxDimension(dimensionWidth, Percent(pct)) }
func (n *Node) SetMaxHeight(points float64)    { n.setMaxDimension(dimensionHeight, Point(points)) }
func (n *Node) SetMaxHeightPercent(pct float64) {
	n.setMaxDimension(dimensionHeight, Percent(pct))
}

// SetMargin, SetMarginPercent, and SetMarginAuto set a margin edge.
// EdgeAll writes every physical edge at once but is overridden by a
// physical edge set afterwards or already set (spec §3 "An `all` edge
// writes to every edge at once but is overridden by a physical edge if
// both are set").
func (n *Node) SetMargin(edge Edge, points float64) {
	n.style.margin[edge] = Point(points)
	n.markDirty()
}

func (n *Node) SetMarginPercent(edge Edge, pct float64) {
	n.style.margin[edge] = Percent(pct)
	n.markDirty()
}

func (n *Node) SetMarginAuto(edge Edge) {
	n.style.margin[edge] = Auto
	n.markDirty()
}

// SetPadding and SetPaddingPercent set a padding edge (no `auto` form;
// padding never participates in free-space absorption).
func (n *Node) SetPadding(edge Edge, points float64) {
	n.style.padding[edge] = Point(points)
	n.markDirty()
}

func (n *Node) SetPaddingPercent(edge Edge, pct float64) {
	n.style.padding[edge] = Percent(pct)
	n.markDirty()
}

// SetBorder sets a border edge. A NaN width is a no-op, matching the
// `setBorder(EDGE_ALL, NaN)` idiom observed in fixtures (spec §4.2, §9).
func (n *Node) SetBorder(edge Edge, points float64) {
	if math.IsNaN(points) {
		return
	}
	n.style.border[edge] = Point(points)
	n.markDirty()
}

// SetPosition and SetPositionPercent set an inset edge used by absolute
// placement and by `relative` nudging. A NaN value clears the edge back
// to Undefined (spec §9: `setPosition(EDGE_LEFT, NaN)` means "clear").
func (n *Node) SetPosition(edge Edge, points float64) {
	n.style.position[edge] = Point(points)
	n.markDirty()
}

func (n *Node) SetPositionPercent(edge Edge, pct float64) {
	n.style.position[edge] = Percent(pct)
	n.markDirty()
}

// SetGap sets a gutter's spacing between flex lines/items.
func (n *Node) SetGap(gutter Gutter, points float64) {
	n.style.gap[gutter] = Point(points)
	n.markDirty()
}

func (n *Node) SetGapPercent(gutter Gutter, pct float64) {
	n.style.gap[gutter] = Percent(pct)
	n.markDirty()
}
