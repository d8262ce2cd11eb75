package kernel

import (
	"math"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// MaterialKind discriminates the material union
type MaterialKind uint32

const (
	Diffuse MaterialKind = iota // Lambertian matte surface
	Metal                       // specular reflector with optional fuzz
	Dielectric                  // clear refractive surface (glass)
)

// Material is one entry of the scene's read-only material array. Fields not
// used by the active kind carry no meaning: Fuzz only applies to Metal,
// RefIdx only to Dielectric.
type Material struct {
	Kind   MaterialKind
	Albedo core.Vec3
	Fuzz   float64
	RefIdx float64
}

// NewDiffuse creates a Lambertian material
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Kind: Diffuse, Albedo: albedo}
}

// NewMetal creates a metallic material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{Kind: Metal, Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// NewDielectric creates a refractive material with the given index
func NewDielectric(refIdx float64) Material {
	return Material{Kind: Dielectric, Albedo: core.NewVec3(1, 1, 1), RefIdx: refIdx}
}

// Scatter produces the outgoing ray and updated attenuation for a hit.
// Returns ok=false when the path is absorbed (a fuzzed metal reflection
// ending up below the surface), in which case the path contributes black.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, attenuation core.Vec3, rng *core.RNG) (core.Ray, core.Vec3, bool) {
	switch m.Kind {
	case Metal:
		reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
		scattered := reflected.Add(rng.UnitVector().Multiply(m.Fuzz))
		if scattered.Dot(hit.Normal) <= 0 {
			return core.Ray{}, core.Vec3{}, false
		}
		return core.NewRay(hit.Point, scattered), attenuation.MultiplyVec(m.Albedo), true

	case Dielectric:
		// Relative index flips depending on whether we enter or exit the medium
		refractionRatio := m.RefIdx
		if hit.FrontFace {
			refractionRatio = 1.0 / m.RefIdx
		}

		unitDirection := rayIn.Direction.Normalize()
		cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
		sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

		cannotRefract := refractionRatio*sinTheta > 1.0

		var direction core.Vec3
		if cannotRefract || reflectance(cosTheta, refractionRatio) > rng.Float64() {
			direction = reflect(unitDirection, hit.Normal)
		} else {
			direction = refract(unitDirection, hit.Normal, refractionRatio)
		}

		// Clear glass absorbs nothing; attenuation is unchanged
		return core.NewRay(hit.Point, direction), attenuation, true

	default: // Diffuse
		scatterDirection := hit.Normal.Add(rng.UnitVector())
		if scatterDirection.LengthSquared() < 1e-8 {
			// Random vector nearly cancelled the normal; avoid a degenerate ray
			scatterDirection = hit.Normal
		}
		return core.NewRay(hit.Point, scatterDirection), attenuation.MultiplyVec(m.Albedo), true
	}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract calculates the refraction of a unit vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance calculates Fresnel reflectance using Schlick's approximation
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
