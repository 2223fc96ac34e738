package layout

import "math"

// Style is the per-node, immutable-after-set bag of layout properties
// (spec §2 "Style store", §3 Node.Style). A single Style covers both the
// properties that affect how a node lays out its own children (flex
// direction, justify-content, ...) and the properties that affect how the
// node itself is placed by its parent (flex-grow, margin, position, ...).
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	FlexWrap       Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	PositionType   PositionType
	Display        Display
	Overflow       Overflow

	FlexGrow   float64 // NaN means unset; resolves to 0
	FlexShrink float64 // NaN means unset; resolves to 0
	FlexBasis  Value

	dimensions    [dimensionCount]Value
	minDimensions [dimensionCount]Value
	maxDimensions [dimensionCount]Value

	margin   [edgeCount]Value
	padding  [edgeCount]Value
	border   [edgeCount]Value
	position [edgeCount]Value

	gap [gutterCount]Value
}

// NewStyle returns a Style with every property unset, matching the
// defaults a freshly created Node carries (spec §3 Lifecycle: "created by
// a factory (no required configuration)").
func NewStyle() Style {
	s := Style{
		FlexGrow:   math.NaN(),
		FlexShrink: math.NaN(),
		FlexBasis:  Auto,
		AlignItems: AlignStretch,
	}
	for i := range s.dimensions {
		s.dimensions[i] = Undefined
		s.minDimensions[i] = Undefined
		s.maxDimensions[i] = Undefined
	}
	for i := range s.margin {
		s.margin[i] = Undefined
		s.padding[i] = Undefined
		s.border[i] = Undefined
		s.position[i] = Undefined
	}
	for i := range s.gap {
		s.gap[i] = Undefined
	}
	return s
}

func (s *Style) dim(d dimension) Value    { return s.dimensions[d] }
func (s *Style) minDim(d dimension) Value { return s.minDimensions[d] }
func (s *Style) maxDim(d dimension) Value { return s.maxDimensions[d] }

func (s *Style) setDim(d dimension, v Value)    { s.dimensions[d] = v }
func (s *Style) setMinDim(d dimension, v Value) { s.minDimensions[d] = v }
func (s *Style) setMaxDim(d dimension, v Value) { s.maxDimensions[d] = v }

// resolvedFlexGrow returns FlexGrow, defaulting unset (NaN) to 0.
func (s *Style) resolvedFlexGrow() float64 {
	if math.IsNaN(s.FlexGrow) {
		return 0
	}
	return s.FlexGrow
}

// resolvedFlexShrink returns FlexShrink, defaulting unset (NaN) to 0.
func (s *Style) resolvedFlexShrink() float64 {
	if math.IsNaN(s.FlexShrink) {
		return 0
	}
	return s.FlexShrink
}

// effectiveDirection walks the inherited writing direction up to the
// nearest ancestor (or the node itself) that set an explicit LTR/RTL,
// defaulting to LTR at the root (spec §4.5).
func effectiveDirection(n *Node) Direction {
	for cur := n; cur != nil; cur = cur.owner {
		if cur.style.Direction != DirectionInherit {
			return cur.style.Direction
		}
	}
	return DirectionLTR
}

// logicalEdgeFor reports which logical edge (start/end), if any, applies
// to a physical side given the writing direction. Logical edges only
// apply to the axis the writing direction runs along (horizontal).
func logicalEdgeFor(physical Edge, direction Direction) (Edge, bool) {
	switch physical {
	case EdgeLeft:
		if direction == DirectionRTL {
			return EdgeEnd, true
		}
		return EdgeStart, true
	case EdgeRight:
		if direction == DirectionRTL {
			return EdgeStart, true
		}
		return EdgeEnd, true
	default:
		return 0, false
	}
}

// resolveEdgeValue implements the edge-resolution order from spec §4.2:
//  1. the physical edge itself, if set
//  2. else the logical start/end edge, if it applies to this physical
//     side under the effective direction
//  3. else the `all` shorthand, if set
//  4. else Undefined
func resolveEdgeValue(arr [edgeCount]Value, physical Edge, direction Direction) Value {
	if v := arr[physical]; !v.IsUndefined() {
		return v
	}
	if logical, ok := logicalEdgeFor(physical, direction); ok {
		if v := arr[logical]; !v.IsUndefined() {
			return v
		}
	}
	if v := arr[EdgeAll]; !v.IsUndefined() {
		return v
	}
	return Undefined
}

// marginEdge resolves a physical margin edge. `auto` is returned as-is
// (callers that need a number resolve it themselves, since main-axis auto
// margins are handled specially by the flex resolver); unset edges
// default to 0. Percentages resolve against containingWidth regardless of
// axis (spec invariant 5).
func marginEdge(n *Node, physical Edge, containingWidth float64) Value {
	v := resolveEdgeValue(n.style.margin, physical, effectiveDirection(n))
	if v.IsUndefined() {
		return Point(0)
	}
	if v.IsAuto() {
		return v
	}
	if v.kind == valuePercent {
		return Point(v.ResolveOr(containingWidth, 0))
	}
	return v
}

// marginEdgeResolved is marginEdge but always returns a concrete number,
// treating `auto` as 0 (used wherever the caller isn't the flex resolver
// itself, e.g. absolute placement's non-auto-margin fast paths).
func marginEdgeResolved(n *Node, physical Edge, containingWidth float64) float64 {
	v := marginEdge(n, physical, containingWidth)
	if v.IsAuto() {
		return 0
	}
	return v.Resolve(containingWidth)
}

// paddingEdge resolves a physical padding edge; padding never allows
// `auto`, defaulting unset edges to 0. Percentages resolve against
// containingWidth regardless of axis (spec invariant 5).
func paddingEdge(n *Node, physical Edge, containingWidth float64) float64 {
	v := resolveEdgeValue(n.style.padding, physical, effectiveDirection(n))
	if v.IsUndefined() || v.IsAuto() {
		return 0
	}
	r := v.Resolve(containingWidth)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// borderEdge resolves a physical border edge. A NaN raw border set is a
// no-op at the setter (see Node.SetBorder); stored values are therefore
// always either Undefined or a valid Point, defaulting to 0.
func borderEdge(n *Node, physical Edge) float64 {
	v := resolveEdgeValue(n.style.border, physical, effectiveDirection(n))
	if v.IsUndefined() || v.IsAuto() {
		return 0
	}
	r := v.Resolve(math.NaN())
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// positionEdge resolves a physical inset edge; position never allows
// `auto` and has no default (Undefined means "not set", surfaced as NaN).
func positionEdge(n *Node, physical Edge, reference float64) float64 {
	v := resolveEdgeValue(n.style.position, physical, effectiveDirection(n))
	return v.Resolve(reference)
}

// gapFor resolves a gutter's value, falling back to the `all` gutter and
// finally to 0.
func gapFor(s *Style, g Gutter, reference float64) float64 {
	if v := s.gap[g]; !v.IsUndefined() {
		if r := v.Resolve(reference); !math.IsNaN(r) {
			return r
		}
	}
	if v := s.gap[GutterAll]; !v.IsUndefined() {
		if r := v.Resolve(reference); !math.IsNaN(r) {
			return r
		}
	}
	return 0
}
