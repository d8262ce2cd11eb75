package kernel

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// TracePixel is the per-invocation entry point: one call per cell of the
// 2D execution grid. Cells outside the image bounds are no-ops and never
// touch the buffer. Each invocation seeds the pixel's PRNG stream from
// (x, y, camera seed), takes SamplesPerPass independent jittered path
// estimates continuing that one stream, and folds the summed result into
// the accumulator with a single read-modify-write.
func TracePixel(cam *Camera, spheres []Sphere, materials []Material, accum *Accumulator, x, y int) {
	if x < 0 || y < 0 || x >= cam.Width || y >= cam.Height {
		return
	}

	rng := core.NewRNG(uint32(x), uint32(y), cam.Seed)

	var color core.Vec3
	for s := 0; s < cam.SamplesPerPass; s++ {
		u := float64(x) + rng.Float64()
		v := float64(y) + rng.Float64()
		ray := cam.GetRay(u, v, rng)
		color = color.Add(RayColor(ray, cam, spheres, materials, rng))
	}

	accum.Add(x, y, color, cam.SamplesPerPass)
}
