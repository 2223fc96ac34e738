// Package measuretext provides a ready-made layout.MeasureFunc for plain
// monospaced text, built on github.com/rivo/uniseg for grapheme-cluster
// aware width measurement and wrapping. It exists to make the layout
// package exercisable end-to-end without a host supplying its own text
// shaper: the engine's own Non-goals exclude text shaping and line
// breaking, so this package deliberately keeps to the simplest model
// (a fixed advance per monospace display cell, with each grapheme cluster
// taking the cell count uniseg reports) rather than real typography.
package measuretext

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/Krispeckt/flexlay/layout"
)

// cluster is one grapheme cluster and its monospace display width, in
// cells, as reported by uniseg.
type cluster struct {
	text  string
	cells int
}

// NewGraphemeMeasureFunc returns a MeasureFunc that lays out text as a
// single run of grapheme clusters, each display cell advance points wide
// (a cluster is as many cells wide as uniseg reports) and each line
// advance points tall. When the offered width cannot hold the whole run,
// the text wraps greedily at grapheme-cluster boundaries (never splitting
// a cluster) and the callback reports the resulting multi-line block
// size.
func NewGraphemeMeasureFunc(text string, advance float64) layout.MeasureFunc {
	clusters := splitGraphemes(text)
	naturalCells := 0
	for _, c := range clusters {
		naturalCells += c.cells
	}
	naturalWidth := float64(naturalCells) * advance

	return func(availableWidth float64, widthMode layout.MeasureMode, availableHeight float64, heightMode layout.MeasureMode) (float64, float64) {
		if len(clusters) == 0 {
			return 0, 0
		}

		width, lineCount := naturalWidth, 1
		if widthMode != layout.MeasureModeUndefined && !math.IsNaN(availableWidth) && naturalWidth > availableWidth {
			maxCells := int(availableWidth / advance)
			if maxCells < 1 {
				maxCells = 1
			}
			var widestCells int
			lineCount, widestCells = wrap(clusters, maxCells)
			width = float64(widestCells) * advance
		}

		return clampExactly(width, availableWidth, widthMode), clampExactly(float64(lineCount)*advance, availableHeight, heightMode)
	}
}

// clampExactly applies a MeasureMode's clamping rule to a naturally
// measured dimension: Exactly always wins, AtMost only ever shrinks.
func clampExactly(natural, available float64, mode layout.MeasureMode) float64 {
	switch {
	case mode == layout.MeasureModeExactly:
		return available
	case mode == layout.MeasureModeAtMost && !math.IsNaN(available) && natural > available:
		return available
	default:
		return natural
	}
}

// wrap greedily packs clusters into lines of at most maxCells cells each,
// returning the number of lines produced and the widest line's cell
// count.
func wrap(clusters []cluster, maxCells int) (lineCount, widestCells int) {
	lineCells := 0
	lineCount = 1
	for _, c := range clusters {
		if lineCells > 0 && lineCells+c.cells > maxCells {
			if lineCells > widestCells {
				widestCells = lineCells
			}
			lineCount++
			lineCells = 0
		}
		lineCells += c.cells
	}
	if lineCells > widestCells {
		widestCells = lineCells
	}
	return lineCount, widestCells
}

// splitGraphemes breaks text into grapheme clusters via uniseg, recording
// each cluster's monospace display width.
func splitGraphemes(text string) []cluster {
	var out []cluster
	state := -1
	remaining := text
	for len(remaining) > 0 {
		var seg string
		var width int
		seg, remaining, width, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if seg == "" {
			break
		}
		out = append(out, cluster{text: seg, cells: width})
	}
	return out
}
