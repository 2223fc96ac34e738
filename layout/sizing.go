package layout

import "math"

// resolvedAxisConstraint is what a parent hands a child for one axis: how
// much space is available, and whether the child must fill it exactly,
// must not exceed it, or is unconstrained.
type resolvedAxisConstraint struct {
	avail float64
	mode  MeasureMode
}

// resolveAxis folds a node's own style for one dimension together with
// the constraint its parent is offering, producing the constraint the
// node itself must satisfy (spec §4.11 driver step 2, generalized to
// every node: an explicit Point size always wins as Exactly; a Percent
// size resolves against containingSize if that is definite and otherwise
// falls back to the parent's offer, matching CSS's "percentage height
// against an indefinite container behaves as auto"; Auto/Undefined simply
// passes the parent's offer through).
func resolveAxis(own Value, parentOffer resolvedAxisConstraint, containingSize float64) resolvedAxisConstraint {
	switch {
	case own.kind == valuePoint:
		return resolvedAxisConstraint{avail: own.value, mode: MeasureModeExactly}
	case own.kind == valuePercent:
		if !math.IsNaN(containingSize) {
			return resolvedAxisConstraint{avail: own.Resolve(containingSize), mode: MeasureModeExactly}
		}
		return parentOffer
	default:
		return parentOffer
	}
}

// clampToStyle clamps a resolved size to the node's min/max for that
// dimension (invariant 7: on a contradictory clamp, min wins), resolving
// percentage min/max against containingSize.
func clampToStyle(n *Node, d dimension, size, containingSize float64) float64 {
	minV := n.style.minDim(d).Resolve(containingSize)
	maxV := n.style.maxDim(d).Resolve(containingSize)
	return clampDefined(size, minV, maxV)
}

// finalizeAxisSize turns a resolved constraint plus a measured/intrinsic
// content size into the node's final size along that axis: Exactly always
// wins outright (subject to the min/max clamp); AtMost caps the content
// size at the available bound without inflating it; Undefined leaves the
// content size alone. All three paths still honor the min/max clamp.
func finalizeAxisSize(n *Node, d dimension, constraint resolvedAxisConstraint, contentSize, containingSize float64) float64 {
	var size float64
	switch constraint.mode {
	case MeasureModeExactly:
		size = constraint.avail
	case MeasureModeAtMost:
		size = contentSize
		if !math.IsNaN(constraint.avail) && size > constraint.avail {
			size = constraint.avail
		}
	default:
		size = contentSize
	}
	if math.IsNaN(size) {
		size = 0
	}
	return clampToStyle(n, d, size, containingSize)
}
