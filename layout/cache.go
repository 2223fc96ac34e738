package layout

import "math"

// cacheCapacity bounds each node's measurement cache (spec §4.4: "typical
// bound 16").
const cacheCapacity = 16

// cacheEntry records one past measurement keyed on the four axis
// constraints the driver measured under, plus the result it produced.
type cacheEntry struct {
	availableWidth, availableHeight float64
	widthMode, heightMode           MeasureMode
	width, height                   float64
}

// measurementCache is the bounded, per-node table described in spec
// §4.4. One further entry — layoutEntry — is distinguished as the
// measurement whose result was actually used to assign the node's final
// layout, as opposed to a speculative measurement taken while sizing a
// sibling or resolving a container's intrinsic size.
type measurementCache struct {
	entries     []cacheEntry
	layoutEntry *cacheEntry
}

func (c *measurementCache) clear() {
	c.entries = nil
	c.layoutEntry = nil
}

// lookup returns a cached result for the given constraints, if any. Two
// constraints match only when their modes are equal and, for AtMost and
// Exactly, their available sizes are equal (two undefined sizes also
// match); an Undefined mode matches whatever size was recorded. A cached
// Exactly entry is never reused for an AtMost request.
func (c *measurementCache) lookup(availW float64, wMode MeasureMode, availH float64, hMode MeasureMode) (width, height float64, ok bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if measureMatches(e.availableWidth, e.widthMode, availW, wMode) &&
			measureMatches(e.availableHeight, e.heightMode, availH, hMode) {
			return e.width, e.height, true
		}
	}
	return 0, 0, false
}

func measureMatches(cachedAvail float64, cachedMode MeasureMode, avail float64, mode MeasureMode) bool {
	if cachedMode != mode {
		return false
	}
	switch mode {
	case MeasureModeUndefined:
		return true
	case MeasureModeExactly, MeasureModeAtMost:
		if math.IsNaN(cachedAvail) || math.IsNaN(avail) {
			return math.IsNaN(cachedAvail) == math.IsNaN(avail)
		}
		return cachedAvail == avail
	}
	return false
}

// insert records a new measurement, evicting the oldest entry once the
// cache is at capacity (spec §4.4 "evicting oldest").
func (c *measurementCache) insert(availW float64, wMode MeasureMode, availH float64, hMode MeasureMode, width, height float64) *cacheEntry {
	e := cacheEntry{
		availableWidth: availW, widthMode: wMode,
		availableHeight: availH, heightMode: hMode,
		width: width, height: height,
	}
	if len(c.entries) >= cacheCapacity {
		c.entries = c.entries[1:]
	}
	c.entries = append(c.entries, e)
	return &c.entries[len(c.entries)-1]
}

// markAsLayout records e as the entry that produced the node's final
// assigned layout.
func (c *measurementCache) markAsLayout(e *cacheEntry) {
	c.layoutEntry = e
}
