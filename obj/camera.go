package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/troligtvis/lavafloor/common"
)

// Camera follows a world point and yields the offset that maps it to the
// middle of the screen.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
}

// NewCamera builds a camera for the given screen size. smooth is clamped to
// 0..1; 0 snaps to the target every update.
func NewCamera(screenW, screenH int, smooth float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, smooth: clamp(smooth, 0, 1)}
}

// Update moves the camera toward target. Call once per tick.
func (c *Camera) Update(target common.Point) {
	if c.smooth <= 0 {
		c.PosX = target.X
		c.PosY = target.Y
	} else {
		c.PosX += (target.X - c.PosX) * c.smooth
		c.PosY += (target.Y - c.PosY) * c.smooth
	}
}

// SnapTo centers the camera on target without smoothing.
func (c *Camera) SnapTo(target common.Point) {
	c.PosX = target.X
	c.PosY = target.Y
}

// Offset is added to world coordinates to get screen coordinates. It is
// rounded to whole pixels.
func (c *Camera) Offset() cp.Vector {
	return cp.Vector{
		X: math.Round(float64(c.screenW)/2 - c.PosX),
		Y: math.Round(float64(c.screenH)/2 - c.PosY),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
