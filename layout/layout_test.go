package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/flexlay/layout"
)

func fixedMeasure(w, h float64) layout.MeasureFunc {
	return func(availableWidth float64, widthMode layout.MeasureMode, availableHeight float64, heightMode layout.MeasureMode) (float64, float64) {
		rw, rh := w, h
		if widthMode == layout.MeasureModeAtMost && availableWidth < rw {
			rw = availableWidth
		}
		if heightMode == layout.MeasureModeAtMost && availableHeight < rh {
			rh = availableHeight
		}
		return rw, rh
	}
}

// TestRowFlexGrow verifies even flex-grow distribution fills the
// container's remaining main-axis space (spec §4.7).
func TestRowFlexGrow(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(100)

	a := layout.New()
	a.SetWidth(50)
	a.SetFlexGrow(1)
	root.AddChild(a)

	b := layout.New()
	b.SetWidth(50)
	b.SetFlexGrow(1)
	root.AddChild(b)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	// remaining = 300 - 100 = 200, split evenly: 100 each, appended to the base 50.
	require.InDelta(t, 150, a.GetComputedWidth(), 0.001)
	require.InDelta(t, 150, b.GetComputedWidth(), 0.001)
	require.InDelta(t, 0, a.GetComputedLeft(), 0.001)
	require.InDelta(t, 150, b.GetComputedLeft(), 0.001)
}

// TestRowFlexShrink verifies flex-shrink compresses items proportionally
// to their scaled shrink factor when content overflows the container.
func TestRowFlexShrink(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(50)

	a := layout.New()
	a.SetWidth(80)
	a.SetFlexShrink(1)
	root.AddChild(a)

	b := layout.New()
	b.SetWidth(80)
	b.SetFlexShrink(1)
	root.AddChild(b)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	// overflow = 160-100 = 60, equal scaled shrink factors -> 30 each.
	require.InDelta(t, 50, a.GetComputedWidth(), 0.001)
	require.InDelta(t, 50, b.GetComputedWidth(), 0.001)
}

// TestJustifyContentSpaceBetween checks free-space distribution between
// items without affecting their sizes.
func TestJustifyContentSpaceBetween(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetJustifyContent(layout.JustifySpaceBetween)
	root.SetWidth(300)
	root.SetHeight(50)

	for i := 0; i < 3; i++ {
		c := layout.New()
		c.SetWidth(50)
		c.SetHeight(50)
		root.AddChild(c)
	}

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 0, root.GetChild(0).GetComputedLeft(), 0.001)
	require.InDelta(t, 125, root.GetChild(1).GetComputedLeft(), 0.001)
	require.InDelta(t, 250, root.GetChild(2).GetComputedLeft(), 0.001)
}

// TestAlignItemsStretchDefault verifies a cross-auto item is stretched to
// its line's cross size by default (spec §4.8).
func TestAlignItemsStretchDefault(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(80)

	child := layout.New()
	child.SetWidth(50)
	root.AddChild(child)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 80, child.GetComputedHeight(), 0.001)
}

// TestPercentSizing checks that a percent width resolves against the
// parent's definite content width.
func TestPercentSizing(t *testing.T) {
	root := layout.New()
	root.SetWidth(200)
	root.SetHeight(100)

	child := layout.New()
	child.SetWidthPercent(50)
	child.SetHeight(10)
	root.AddChild(child)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 100, child.GetComputedWidth(), 0.001)
}

// TestMarginAutoCentering checks that a single auto margin on each side of
// the main axis centers the item within the remaining free space.
func TestMarginAutoCentering(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(50)

	child := layout.New()
	child.SetWidth(50)
	child.SetMarginAuto(layout.EdgeLeft)
	child.SetMarginAuto(layout.EdgeRight)
	root.AddChild(child)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 75, child.GetComputedLeft(), 0.001)
}

// TestMinMaxClampContradiction verifies that when min exceeds max, min
// wins (invariant 7).
func TestMinMaxClampContradiction(t *testing.T) {
	root := layout.New()
	root.SetWidth(300)
	root.SetHeight(50)

	child := layout.New()
	child.SetWidth(100)
	child.SetMinWidth(200)
	child.SetMaxWidth(150)
	root.AddChild(child)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 200, child.GetComputedWidth(), 0.001)
}

// TestAbsolutePositioning checks that an absolutely positioned child is
// placed against the container's padding box and removed from flow.
func TestAbsolutePositioning(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(200)
	root.SetPadding(layout.EdgeAll, 10)

	inFlow := layout.New()
	inFlow.SetWidth(20)
	inFlow.SetHeight(20)
	root.AddChild(inFlow)

	absChild := layout.New()
	absChild.SetPositionType(layout.PositionTypeAbsolute)
	absChild.SetWidth(30)
	absChild.SetHeight(30)
	absChild.SetPosition(layout.EdgeLeft, 5)
	absChild.SetPosition(layout.EdgeTop, 5)
	root.AddChild(absChild)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	// in-flow child is unaffected by the absolute sibling and starts at the padding edge.
	require.InDelta(t, 10, inFlow.GetComputedLeft(), 0.001)
	// absolute child sits 5pt inside the padding box (itself starting at the border edge; no border here).
	require.InDelta(t, 5, absChild.GetComputedLeft(), 0.001)
	require.InDelta(t, 5, absChild.GetComputedTop(), 0.001)
	require.InDelta(t, 30, absChild.GetComputedWidth(), 0.001)
}

// TestRTLReversesRowPlacement verifies that writing direction flips a row
// container's physical placement (spec §4.5).
func TestRTLReversesRowPlacement(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(20)
	root.SetDirection(layout.DirectionRTL)

	a := layout.New()
	a.SetWidth(30)
	root.AddChild(a)
	b := layout.New()
	b.SetWidth(30)
	root.AddChild(b)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 70, a.GetComputedLeft(), 0.001)
	require.InDelta(t, 40, b.GetComputedLeft(), 0.001)
}

// TestMeasureFuncLeaf exercises a leaf node's intrinsic-content sizing
// through a host MeasureFunc, including the content-box/border-box
// conversion around padding and border.
func TestMeasureFuncLeaf(t *testing.T) {
	root := layout.New()
	root.SetWidth(200)
	root.SetHeight(200)
	root.SetAlignItems(layout.AlignFlexStart)

	leaf := layout.New()
	leaf.SetPadding(layout.EdgeAll, 5)
	leaf.SetBorder(layout.EdgeAll, 1)
	leaf.SetMeasureFunc(fixedMeasure(40, 20))
	root.AddChild(leaf)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 52, leaf.GetComputedWidth(), 0.001)
	require.InDelta(t, 32, leaf.GetComputedHeight(), 0.001)
}

// TestCacheReusesUnchangedLayout asserts that calling CalculateLayout
// again on an unmutated tree is a no-op producing identical results (spec
// §4.4, invariant: "a clean node's layout is not recomputed").
func TestCacheReusesUnchangedLayout(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(50)

	child := layout.New()
	child.SetFlexGrow(1)
	root.AddChild(child)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)
	require.False(t, root.IsDirty())

	firstWidth := child.GetComputedWidth()
	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)
	require.Equal(t, firstWidth, child.GetComputedWidth())
}

// TestMarkDirtyPropagatesToAncestors verifies invariant 3: mutating a
// child marks it and every ancestor dirty.
func TestMarkDirtyPropagatesToAncestors(t *testing.T) {
	root := layout.New()
	child := layout.New()
	root.AddChild(child)
	layout.CalculateLayout(root, 100, 100, layout.DirectionLTR)
	require.False(t, root.IsDirty())

	child.SetWidth(10)
	require.True(t, root.IsDirty())
	require.True(t, child.IsDirty())
}

// TestWrapProducesMultipleLines checks that a row container with
// flex-wrap forms a new line once an item would overflow the main axis.
func TestWrapProducesMultipleLines(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetFlexWrap(layout.WrapWrap)
	root.SetAlignContent(layout.AlignFlexStart)
	root.SetWidth(100)
	root.SetHeight(100)

	for i := 0; i < 3; i++ {
		c := layout.New()
		c.SetWidth(60)
		c.SetHeight(20)
		root.AddChild(c)
	}

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	// each item alone fits the 100pt width, but two side by side (120) do not:
	// expect each child on its own line, stacked vertically.
	require.InDelta(t, 0, root.GetChild(0).GetComputedTop(), 0.001)
	require.InDelta(t, 20, root.GetChild(1).GetComputedTop(), 0.001)
	require.InDelta(t, 40, root.GetChild(2).GetComputedTop(), 0.001)
}

// TestGapInsertsFixedSpacing verifies column-gap adds fixed spacing
// between row-direction siblings without affecting their sizes.
func TestGapInsertsFixedSpacing(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)
	root.SetGap(layout.GutterColumn, 20)

	a := layout.New()
	a.SetWidth(50)
	root.AddChild(a)
	b := layout.New()
	b.SetWidth(50)
	root.AddChild(b)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 0, a.GetComputedLeft(), 0.001)
	require.InDelta(t, 70, b.GetComputedLeft(), 0.001)
}

// TestDisplayNoneRemovesFromFlow verifies a display:none child is
// zero-sized and does not occupy main-axis space.
func TestDisplayNoneRemovesFromFlow(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(50)

	hidden := layout.New()
	hidden.SetWidth(100)
	hidden.SetDisplay(layout.DisplayNone)
	root.AddChild(hidden)

	visible := layout.New()
	visible.SetWidth(50)
	root.AddChild(visible)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 0, hidden.GetComputedWidth(), 0.001)
	require.InDelta(t, 0, visible.GetComputedLeft(), 0.001)
}

// TestColumnMainAxisIsVertical sanity-checks that a column container
// stacks children top-to-bottom using their heights as the main axis.
func TestColumnMainAxisIsVertical(t *testing.T) {
	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionColumn)
	root.SetWidth(100)
	root.SetHeight(300)

	a := layout.New()
	a.SetHeight(100)
	root.AddChild(a)
	b := layout.New()
	b.SetHeight(100)
	root.AddChild(b)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 0, a.GetComputedTop(), 0.001)
	require.InDelta(t, 100, b.GetComputedTop(), 0.001)
	require.InDelta(t, 100, a.GetComputedWidth(), 0.001) // stretched to container's cross size
}
