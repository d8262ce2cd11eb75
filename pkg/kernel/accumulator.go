package kernel

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// Cell is one pixel's accumulation state: a running radiance sum and the
// number of samples folded into it.
type Cell struct {
	Sum   core.Vec3
	Count int
}

// Accumulator is the per-pixel accumulation buffer. It persists across
// dispatches so repeated passes refine the estimate; the displayable value
// is Mean. Within one dispatch each pixel is owned by exactly one invocation,
// so no locking is needed; the driver sequences dispatches.
type Accumulator struct {
	width, height int
	cells         []Cell // row-major
}

// NewAccumulator creates a zeroed buffer for a width×height image
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the image width in pixels
func (a *Accumulator) Width() int { return a.width }

// Height returns the image height in pixels
func (a *Accumulator) Height() int { return a.height }

// Add folds one dispatch's contribution into pixel (x, y): the summed
// radiance of `samples` path estimates.
func (a *Accumulator) Add(x, y int, color core.Vec3, samples int) {
	cell := &a.cells[y*a.width+x]
	cell.Sum = cell.Sum.Add(color)
	cell.Count += samples
}

// At returns pixel (x, y)'s raw accumulation state
func (a *Accumulator) At(x, y int) Cell {
	return a.cells[y*a.width+x]
}

// Mean returns pixel (x, y)'s current radiance estimate (sum/count)
func (a *Accumulator) Mean(x, y int) core.Vec3 {
	cell := a.cells[y*a.width+x]
	if cell.Count == 0 {
		return core.Vec3{}
	}
	return cell.Sum.Multiply(1.0 / float64(cell.Count))
}
