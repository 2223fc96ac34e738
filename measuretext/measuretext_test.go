package measuretext_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krispeckt/flexlay/layout"
	"github.com/Krispeckt/flexlay/measuretext"
)

// TestUnconstrainedWidthUsesNaturalSize checks that an undefined width
// offer reports the text's full single-line width.
func TestUnconstrainedWidthUsesNaturalSize(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("hello", 10)

	w, h := fn(math.NaN(), layout.MeasureModeUndefined, math.NaN(), layout.MeasureModeUndefined)

	require.InDelta(t, 50, w, 0.001)
	require.InDelta(t, 10, h, 0.001)
}

// TestAvailableWidthWrapsAtClusterBoundary checks that an AtMost offer
// narrower than the natural width wraps greedily without splitting a
// cluster, and reports the resulting block height.
func TestAvailableWidthWrapsAtClusterBoundary(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("hello", 10)

	// 5 clusters at 10pt each = 50pt natural width; offer 30pt fits 3 per line.
	w, h := fn(30, layout.MeasureModeAtMost, math.NaN(), layout.MeasureModeUndefined)

	require.InDelta(t, 30, w, 0.001)
	require.InDelta(t, 20, h, 0.001) // two lines: "hel" + "lo"
}

// TestExactWidthReportsOfferedWidth verifies an Exactly width offer is
// echoed back regardless of the text's natural size.
func TestExactWidthReportsOfferedWidth(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("hi", 10)

	w, _ := fn(200, layout.MeasureModeExactly, math.NaN(), layout.MeasureModeUndefined)

	require.InDelta(t, 200, w, 0.001)
}

// TestExactHeightOverridesWrappedLineCount verifies a heightMode of
// Exactly always wins over the computed line count.
func TestExactHeightOverridesWrappedLineCount(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("hello", 10)

	_, h := fn(30, layout.MeasureModeAtMost, 5, layout.MeasureModeExactly)

	require.InDelta(t, 5, h, 0.001)
}

// TestAtMostHeightClampsWrappedHeight verifies an AtMost height offer
// caps the wrapped block's natural height but does not grow it.
func TestAtMostHeightClampsWrappedHeight(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("hello", 10)

	_, h := fn(30, layout.MeasureModeAtMost, 15, layout.MeasureModeAtMost)
	require.InDelta(t, 15, h, 0.001)

	_, h = fn(30, layout.MeasureModeAtMost, 100, layout.MeasureModeAtMost)
	require.InDelta(t, 20, h, 0.001)
}

// TestEmptyStringMeasuresToZero checks the degenerate empty-text case.
func TestEmptyStringMeasuresToZero(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("", 10)

	w, h := fn(math.NaN(), layout.MeasureModeUndefined, math.NaN(), layout.MeasureModeUndefined)

	require.Equal(t, 0.0, w)
	require.Equal(t, 0.0, h)
}

// TestMeasureFuncDrivesNodeLayout exercises the measure function through a
// full layout.CalculateLayout pass, confirming it wires into the engine's
// content-measurement path like any host-supplied leaf.
func TestMeasureFuncDrivesNodeLayout(t *testing.T) {
	root := layout.New()
	root.SetWidth(30)
	root.SetHeight(100)
	root.SetAlignItems(layout.AlignFlexStart)

	label := layout.New()
	label.SetMeasureFunc(measuretext.NewGraphemeMeasureFunc("hello", 10))
	root.AddChild(label)

	layout.CalculateLayout(root, math.NaN(), math.NaN(), layout.DirectionLTR)

	require.InDelta(t, 30, label.GetComputedWidth(), 0.001)
	require.InDelta(t, 20, label.GetComputedHeight(), 0.001)
}

// TestGraphemeClusterNotSplit verifies a multi-rune grapheme cluster (a
// flag emoji, which uniseg reports as a single cluster) is never broken
// across a wrap boundary even when it alone exceeds the remaining width.
func TestGraphemeClusterNotSplit(t *testing.T) {
	fn := measuretext.NewGraphemeMeasureFunc("ab\U0001F1FA\U0001F1F8cd", 10)

	// clusters: a, b, US flag, c, d = 5 clusters; offer forces 1 per line.
	w, h := fn(5, layout.MeasureModeAtMost, math.NaN(), layout.MeasureModeUndefined)

	require.InDelta(t, 5, w, 0.001)
	require.InDelta(t, 50, h, 0.001) // 5 clusters, one per line
}
