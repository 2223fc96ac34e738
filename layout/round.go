package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// roundLayout snaps every node's computed position and size onto a
// pointScale pixel grid (spec §4.10), working from absolute coordinates
// so that two adjacent siblings' rounded edges always touch with no gap
// or overlap: each edge is rounded independently in the parent's
// accumulated absolute space, and a box's rounded size is then derived as
// the difference between its two rounded edges rather than rounding the
// size directly.
//
// Rounding itself goes through geom.Fix/geom.Unfix — the same 1/64-pixel
// fixed-point quantization the teacher package uses to stabilize vector
// coordinates — to decide whether a value already sits on (or extremely
// near) a grid line before choosing a rounding direction.
func roundLayout(n *Node, pointScale, cumulativeLeft, cumulativeTop float64) {
	absLeft := cumulativeLeft + n.layout.Left
	absTop := cumulativeTop + n.layout.Top

	roundedLeft := roundValueToPixelGrid(absLeft, pointScale, false, false)
	roundedTop := roundValueToPixelGrid(absTop, pointScale, false, false)
	roundedRight := roundValueToPixelGrid(absLeft+n.layout.Width, pointScale, false, false)
	roundedBottom := roundValueToPixelGrid(absTop+n.layout.Height, pointScale, false, false)

	n.layout.Left = roundedLeft - cumulativeLeft
	n.layout.Top = roundedTop - cumulativeTop
	n.layout.Width = roundedRight - roundedLeft
	n.layout.Height = roundedBottom - roundedTop

	for i := 0; i < n.ChildCount(); i++ {
		roundLayout(n.GetChild(i), pointScale, roundedLeft, roundedTop)
	}
}

// roundValueToPixelGrid rounds value (in points) to the nearest device
// pixel under pointScale, snapping to the fixed-point grid first so that
// accumulated float error near a half-pixel boundary doesn't flip the
// rounding direction inconsistently between a node and its neighbor.
func roundValueToPixelGrid(value, pointScale float64, forceCeil, forceFloor bool) float64 {
	if pointScale == 0 {
		return 0
	}
	scaled := value * pointScale
	fraction := scaled - math.Floor(scaled)
	quantized := geom.Unfix(geom.Fix(fraction))

	var rounded float64
	switch {
	case quantized <= 0:
		rounded = math.Floor(scaled)
	case quantized >= 1:
		rounded = math.Ceil(scaled)
	case forceCeil:
		rounded = math.Ceil(scaled)
	case forceFloor:
		rounded = math.Floor(scaled)
	case quantized >= 0.5:
		rounded = math.Ceil(scaled)
	default:
		rounded = math.Floor(scaled)
	}
	return rounded / pointScale
}
