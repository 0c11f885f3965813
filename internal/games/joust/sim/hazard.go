package sim

import (
	"github.com/vovakirdan/tui-joust/internal/core"
)

// Hazard is the lava line. It starts flat at the bottom edge and rises in
// steps until it reaches its cap.
type Hazard struct {
	bounds    Bounds
	height    float64
	maxHeight float64
	step      float64
	interval  int
	ticks     int
}

// NewHazard creates a lava line that rises step units every interval ticks
// up to maxHeight.
func NewHazard(bounds Bounds, maxHeight, step float64, interval int) *Hazard {
	if interval < 1 {
		interval = 1
	}
	return &Hazard{
		bounds:    bounds,
		maxHeight: maxHeight,
		step:      step,
		interval:  interval,
	}
}

// SetCap changes the height the lava rises to. A lower cap drops it at once.
func (h *Hazard) SetCap(maxHeight float64) {
	h.maxHeight = maxHeight
	if h.height > maxHeight {
		h.height = maxHeight
	}
}

// Height returns the current lava depth.
func (h *Hazard) Height() float64 {
	return h.height
}

// Step advances the rise timer by one tick.
func (h *Hazard) Step() {
	if h.height >= h.maxHeight {
		return
	}
	h.ticks++
	if h.ticks%h.interval != 0 {
		return
	}
	h.height += h.step
	if h.height > h.maxHeight {
		h.height = h.maxHeight
	}
}

// Zone returns the lava rectangle. It is one unit tall before the first rise.
func (h *Hazard) Zone() core.RectF {
	depth := h.height
	if depth < 1 {
		depth = 1
	}
	return core.NewRectF(0, h.bounds.H-h.height, h.bounds.W, depth)
}
