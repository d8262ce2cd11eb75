package kernel

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// Background mode values carried in the camera parameter block
const (
	BackgroundGradient = 0 // vertical white-to-blue sky gradient
	BackgroundFixed    = 1 // constant configured color
)

// Camera is the immutable per-dispatch parameter block. The image-plane
// basis (Pixel00, PixelDeltaU, PixelDeltaV) and the lens basis (U, V) are
// derived by the scene layer; the kernel only consumes them.
type Camera struct {
	Origin      core.Vec3 // world-space eye position
	Pixel00     core.Vec3 // center of the top-left pixel on the image plane
	PixelDeltaU core.Vec3 // image-plane step per pixel, horizontal
	PixelDeltaV core.Vec3 // image-plane step per pixel, vertical
	U           core.Vec3 // camera right, unit length
	V           core.Vec3 // camera up, unit length
	Background  core.Vec3 // used when BackgroundMode is BackgroundFixed

	LensRadius     float64 // 0 means pinhole, no depth of field
	Width          int     // image width in pixels
	Height         int     // image height in pixels
	MaxDepth       int     // bounce limit per path
	Seed           uint32  // dispatch seed mixed into every pixel stream
	SamplesPerPass int     // path estimates taken per pixel per dispatch
	BackgroundMode int
}

// GetRay builds the primary ray for the jittered pixel coordinate (u, v).
// With a positive lens radius the origin is offset inside the lens disk,
// expressed in the camera's right/up basis, to simulate depth of field.
// The direction is deliberately left unnormalized; scattering normalizes
// where the math requires it.
func (c *Camera) GetRay(u, v float64, rng *core.RNG) core.Ray {
	pixel := c.Pixel00.
		Add(c.PixelDeltaU.Multiply(u)).
		Add(c.PixelDeltaV.Multiply(v))

	origin := c.Origin
	if c.LensRadius > 0 {
		rd := rng.InUnitDisk().Multiply(c.LensRadius)
		origin = origin.Add(c.U.Multiply(rd.X)).Add(c.V.Multiply(rd.Y))
	}

	return core.NewRay(origin, pixel.Subtract(origin))
}
