package kernel

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// Intersection interval shared by every bounce. The lower bound avoids
// self-intersection with the surface a ray just left.
const (
	hitTMin = 0.001
	hitTMax = 1e9
)

// Russian roulette kicks in once a path has bounced this many times.
// Survival probability is clamped so the 1/p rescale stays bounded.
const (
	rouletteMinDepth    = 5
	rouletteMinSurvival = 0.05
	rouletteMaxSurvival = 0.95
)

// RayColor estimates incident radiance along a primary ray. The light
// transport recursion is unrolled into a depth-bounded loop: each iteration
// intersects the scene, scatters at the hit, and either continues with the
// new ray or terminates (absorbed, escaped to the background, or killed by
// Russian roulette). A path that exhausts MaxDepth returns black.
func RayColor(ray core.Ray, cam *Camera, spheres []Sphere, materials []Material, rng *core.RNG) core.Vec3 {
	attenuation := core.NewVec3(1, 1, 1)

	for depth := 0; depth < cam.MaxDepth; depth++ {
		hit, ok := HitSpheres(ray, spheres, hitTMin, hitTMax)
		if !ok {
			return attenuation.MultiplyVec(backgroundColor(cam, ray))
		}

		scattered, newAttenuation, alive := materials[hit.MaterialIndex].Scatter(ray, hit, attenuation, rng)
		if !alive {
			return core.Vec3{}
		}
		ray = scattered
		attenuation = newAttenuation

		if depth >= rouletteMinDepth {
			p := attenuation.MaxComponent()
			p = min(rouletteMaxSurvival, max(rouletteMinSurvival, p))
			if rng.Float64() > p {
				return core.Vec3{}
			}
			// Rescale survivors so the estimator stays unbiased
			attenuation = attenuation.Multiply(1.0 / p)
		}
	}

	return core.Vec3{}
}

// backgroundColor resolves a ray that escaped the scene: either the fixed
// configured color or a vertical white-to-blue sky gradient.
func backgroundColor(cam *Camera, ray core.Ray) core.Vec3 {
	if cam.BackgroundMode == BackgroundFixed {
		return cam.Background
	}

	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}
