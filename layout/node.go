package layout

import "math"

// MeasureFunc is the host-provided measurement callback for leaf nodes
// that hold intrinsic content (text, images, ...). It must be pure and
// side-effect-free: the engine may call it many times per layout, once
// per cache miss (spec §4.4, §5).
type MeasureFunc func(availableWidth float64, widthMode MeasureMode, availableHeight float64, heightMode MeasureMode) (width, height float64)

// BaselineFunc computes a node's baseline offset from its top edge, given
// its final resolved size, for baseline-aligned cross-axis placement
// (spec §4.8).
type BaselineFunc func(width, height float64) float64

// Layout holds the results of the most recent calculateLayout call for a
// node: its position and size in the parent's coordinate space, plus the
// writing direction actually used to compute it (spec §3 "Layout
// result").
type Layout struct {
	Left, Top       float64
	Width, Height   float64
	Direction       Direction
	computedFlexBasis float64
	hadOverflow     bool
	generationCount int
}

// Node is the atom of the layout tree (spec §3). It is cheap to create:
// New returns a node with every style property unset.
type Node struct {
	style Style

	children []*Node
	owner    *Node // non-owning back-reference, used only to invalidate upward

	measure  MeasureFunc
	baseline BaselineFunc

	layout Layout
	dirty  bool

	cache measurementCache

	measuring bool // cycle guard; re-entrant measurement is treated as zero-size
}

// New constructs a Node with default style and no children.
func New() *Node {
	n := &Node{style: NewStyle(), dirty: true}
	n.layout.Left, n.layout.Top = math.NaN(), math.NaN()
	return n
}

// ChildCount returns the number of children currently attached.
func (n *Node) ChildCount() int { return len(n.children) }

// GetChild returns the child at index i.
func (n *Node) GetChild(i int) *Node { return n.children[i] }

// Owner returns the node's current parent, or nil if unattached.
func (n *Node) Owner() *Node { return n.owner }

// InsertChild inserts child at index, reparenting it if it already
// belongs to another node (spec §4.3, invariant 2); the old owner is
// marked dirty. Panics only when child == n (a node cannot own itself) or
// if n carries a measure function (invariant 1: a node with a measure
// callback must have zero children). Deeper cycles (inserting an ancestor
// of n) are not checked here.
func (n *Node) InsertChild(child *Node, index int) {
	if child == n {
		panic("layout: a node cannot be inserted into itself")
	}
	if n.measure != nil {
		panic("layout: cannot add a child to a node with a measure function")
	}
	if child.owner != nil {
		child.owner.removeChildNoInvalidate(child)
		child.owner.markDirty()
	}
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.owner = n
	n.markDirty()
}

// AddChild appends child as the last child.
func (n *Node) AddChild(child *Node) { n.InsertChild(child, len(n.children)) }

// RemoveChild detaches child from n, if present, and invalidates both.
func (n *Node) RemoveChild(child *Node) {
	if n.removeChildNoInvalidate(child) {
		child.owner = nil
		child.markDirty()
		n.markDirty()
	}
}

func (n *Node) removeChildNoInvalidate(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// SetMeasureFunc installs fn as the node's intrinsic-content measurer.
// Panics if the node currently has children (invariant 1).
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn != nil && len(n.children) > 0 {
		panic("layout: cannot set a measure function on a node with children")
	}
	n.measure = fn
	n.markDirty()
}

// HasMeasureFunc reports whether a measure function is installed.
func (n *Node) HasMeasureFunc() bool { return n.measure != nil }

// SetBaselineFunc installs fn as the node's baseline computer.
func (n *Node) SetBaselineFunc(fn BaselineFunc) { n.baseline = fn }

// markDirty sets the dirty flag on n and every ancestor, and clears
// measurement caches along the same path (spec invariant 3, §4.4
// invalidation).
func (n *Node) markDirty() {
	n.dirty = true
	n.cache.clear()
	if n.owner != nil {
		n.owner.markDirty()
	}
}

// IsDirty reports whether the node's dirty flag is set. Mutating a node
// sets the flag on it and every ancestor. CalculateLayout clears it on the
// root it is called with and on the display:none and absolutely
// positioned descendants it lays out; in-flow descendants keep it set.
func (n *Node) IsDirty() bool { return n.dirty }

// GetComputedLeft, GetComputedTop, GetComputedWidth, GetComputedHeight
// read back the node's most recently computed layout (spec §6 Readout).
func (n *Node) GetComputedLeft() float64   { return n.layout.Left }
func (n *Node) GetComputedTop() float64    { return n.layout.Top }
func (n *Node) GetComputedWidth() float64  { return n.layout.Width }
func (n *Node) GetComputedHeight() float64 { return n.layout.Height }

// GetComputedLayout returns the full Layout result by value.
func (n *Node) GetComputedLayout() Layout { return n.layout }

// Style returns a copy of the node's current style for inspection.
func (n *Node) Style() Style { return n.style }
