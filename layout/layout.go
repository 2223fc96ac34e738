package layout

import "math"

// CalculateLayout is the engine's entry point (spec §4.11 Driver). It
// resolves the root's available width/height and the corresponding
// measure modes, then recursively lays out the tree and finally runs the
// pixel-grid rounder.
//
// availableWidth and availableHeight may be NaN to mean "undefined" (no
// constraint); ownerDirection seeds the writing direction inherited by
// any descendant that does not set its own.
func CalculateLayout(root *Node, availableWidth, availableHeight float64, ownerDirection Direction) {
	if root.style.Direction == DirectionInherit && ownerDirection != DirectionInherit {
		root.style.Direction = ownerDirection
		defer func() { root.style.Direction = DirectionInherit }()
	}

	widthConstraint := rootAxisConstraint(root, dimensionWidth, availableWidth)
	heightConstraint := rootAxisConstraint(root, dimensionHeight, availableHeight)

	w, h := layoutWithConstraints(root, widthConstraint, heightConstraint, math.NaN(), math.NaN(), true)

	root.layout.Width = w
	root.layout.Height = h
	if math.IsNaN(root.layout.Left) {
		root.layout.Left = 0
	}
	if math.IsNaN(root.layout.Top) {
		root.layout.Top = 0
	}
	root.layout.Direction = effectiveDirection(root)
	root.dirty = false

	roundLayout(root, 1, 0, 0)
}

// rootAxisConstraint derives the measure mode for the root per spec
// §4.11 step 2: an explicitly Exactly-sized root ignores the caller's
// available size; otherwise a finite available size is At-most, and an
// undefined one is Undefined.
func rootAxisConstraint(root *Node, d dimension, available float64) resolvedAxisConstraint {
	if own := root.style.dim(d); own.kind == valuePoint {
		return resolvedAxisConstraint{avail: own.value, mode: MeasureModeExactly}
	}
	if math.IsNaN(available) {
		return resolvedAxisConstraint{avail: math.NaN(), mode: MeasureModeUndefined}
	}
	return resolvedAxisConstraint{avail: available, mode: MeasureModeAtMost}
}

// layoutNode computes n's border-box size given the constraint its
// parent is offering on each axis (spec §4.4, §4.11). containingWidth and
// containingHeight are the parent's resolved inner content-box
// dimensions, used to resolve n's own percentage width, height, margin,
// and padding (invariant 5); they are NaN when the parent's corresponding
// dimension is not yet definite.
//
// This is the general recursive entry used for ordinary descent (a
// node's own style — not an externally forced value — determines its
// size on both axes). Flex items being finalized after flex resolution
// use layoutFlexItemFinal instead, which forces the main axis to the
// flex-resolved size while still resolving the cross axis normally.
func layoutNode(n *Node, offerW float64, offerWMode MeasureMode, offerH float64, offerHMode MeasureMode, containingWidth, containingHeight float64, performLayout bool) (width, height float64) {
	widthConstraint := resolveAxis(n.style.dim(dimensionWidth), resolvedAxisConstraint{offerW, offerWMode}, containingWidth)
	heightConstraint := resolveAxis(n.style.dim(dimensionHeight), resolvedAxisConstraint{offerH, offerHMode}, containingHeight)
	return layoutWithConstraints(n, widthConstraint, heightConstraint, containingWidth, containingHeight, performLayout)
}

// layoutFlexItemFinal finalizes a flex item once its main-axis size has
// been resolved by the flex resolver (spec §4.7): mainDim's constraint is
// forced to Exactly(mainSize), bypassing the item's own width/height
// style for that axis (which only ever fed the hypothetical/flex-basis
// computation, not the final size), while the cross axis still resolves
// normally from crossOffer and the item's own style.
func layoutFlexItemFinal(item *Node, mainDim dimension, mainSize float64, crossOffer resolvedAxisConstraint, containingWidth, containingHeight float64, performLayout bool) (width, height float64) {
	forced := resolvedAxisConstraint{avail: mainSize, mode: MeasureModeExactly}
	var widthConstraint, heightConstraint resolvedAxisConstraint
	if mainDim == dimensionWidth {
		widthConstraint = forced
		heightConstraint = resolveAxis(item.style.dim(dimensionHeight), crossOffer, containingHeight)
	} else {
		heightConstraint = forced
		widthConstraint = resolveAxis(item.style.dim(dimensionWidth), crossOffer, containingWidth)
	}
	return layoutWithConstraints(item, widthConstraint, heightConstraint, containingWidth, containingHeight, performLayout)
}

// layoutWithConstraints is the shared cache/cycle-guard wrapper around
// computeNodeSize, used by both layoutNode and layoutFlexItemFinal once
// each axis's constraint has been resolved.
func layoutWithConstraints(n *Node, widthConstraint, heightConstraint resolvedAxisConstraint, containingWidth, containingHeight float64, performLayout bool) (width, height float64) {
	if n.style.Display == DisplayNone {
		if performLayout {
			n.layout.Width, n.layout.Height = 0, 0
			n.dirty = false
		}
		return 0, 0
	}

	if performLayout {
		if e := n.cache.layoutEntry; e != nil && !n.dirty &&
			measureMatches(e.availableWidth, e.widthMode, widthConstraint.avail, widthConstraint.mode) &&
			measureMatches(e.availableHeight, e.heightMode, heightConstraint.avail, heightConstraint.mode) {
			return e.width, e.height
		}
	} else if cw, ch, ok := n.cache.lookup(widthConstraint.avail, widthConstraint.mode, heightConstraint.avail, heightConstraint.mode); ok {
		return cw, ch
	}

	if n.measuring {
		// Cycle guard (spec §4.11): a re-entrant measurement of a node
		// already being measured contributes zero size so the caller's
		// layout can still complete.
		return 0, 0
	}
	n.measuring = true
	width, height = computeNodeSize(n, widthConstraint, heightConstraint, containingWidth, containingHeight, performLayout)
	n.measuring = false

	if performLayout {
		entry := n.cache.insert(widthConstraint.avail, widthConstraint.mode, heightConstraint.avail, heightConstraint.mode, width, height)
		n.cache.markAsLayout(entry)
	} else {
		n.cache.insert(widthConstraint.avail, widthConstraint.mode, heightConstraint.avail, heightConstraint.mode, width, height)
	}
	return width, height
}

// computeNodeSize dispatches to the leaf measure-function path or the
// flex-container path once both axes' constraints are already resolved.
func computeNodeSize(n *Node, widthConstraint, heightConstraint resolvedAxisConstraint, containingWidth, containingHeight float64, performLayout bool) (float64, float64) {
	if n.measure != nil {
		contentW, contentH := measureLeaf(n, widthConstraint, heightConstraint, containingWidth, containingHeight)
		width := finalizeAxisSize(n, dimensionWidth, widthConstraint, contentW, containingWidth)
		height := finalizeAxisSize(n, dimensionHeight, heightConstraint, contentH, containingHeight)
		if performLayout {
			n.layout.Width, n.layout.Height = width, height
			n.layout.Direction = effectiveDirection(n)
		}
		return width, height
	}

	return layoutFlexChildren(n, widthConstraint, heightConstraint, containingWidth, containingHeight, performLayout)
}
