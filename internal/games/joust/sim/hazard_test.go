package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHazardRisesToCap(t *testing.T) {
	h := NewHazard(Bounds{W: 600, H: 400}, 30, 10, 5)

	for i := 0; i < 4; i++ {
		h.Step()
	}
	assert.Equal(t, 0.0, h.Height())

	h.Step()
	assert.Equal(t, 10.0, h.Height())

	for i := 0; i < 100; i++ {
		h.Step()
	}
	assert.Equal(t, 30.0, h.Height())
}

func TestHazardSetCapDrops(t *testing.T) {
	h := NewHazard(Bounds{W: 600, H: 400}, 40, 20, 1)
	h.Step()
	h.Step()
	assert.Equal(t, 40.0, h.Height())

	h.SetCap(10)
	assert.Equal(t, 10.0, h.Height())

	h.SetCap(0)
	assert.Equal(t, 0.0, h.Height())
}

func TestHazardZone(t *testing.T) {
	h := NewHazard(Bounds{W: 600, H: 400}, 20, 20, 1)

	zone := h.Zone()
	assert.Equal(t, 400.0, zone.Top())
	assert.Equal(t, 1.0, zone.H)

	h.Step()
	zone = h.Zone()
	assert.Equal(t, 380.0, zone.Top())
	assert.Equal(t, 600.0, zone.W)
	assert.Equal(t, 20.0, zone.H)
}

func TestHazardIntervalFloor(t *testing.T) {
	h := NewHazard(Bounds{W: 600, H: 400}, 5, 5, 0)
	h.Step()
	assert.Equal(t, 5.0, h.Height())
}
