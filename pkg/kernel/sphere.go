package kernel

import (
	"math"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// Sphere is one entry of the scene's read-only sphere array
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int // index into the material array
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) Sphere {
	return Sphere{Center: center, Radius: radius, MaterialIndex: materialIndex}
}

// HitRecord contains information about a ray-sphere intersection. It lives
// for a single bounce iteration.
type HitRecord struct {
	T             float64   // parameter t along the ray
	Point         core.Vec3 // point of intersection
	Normal        core.Vec3 // surface normal, oriented against the ray
	FrontFace     bool      // whether the ray arrived from outside the surface
	MaterialIndex int
}

// HitSpheres scans every sphere and returns the nearest intersection in
// [tMin, tMax]. The closest-so-far bound shrinks monotonically, so the result
// does not depend on sphere order. For each sphere the nearer quadratic root
// is tried first, then the farther one.
func HitSpheres(ray core.Ray, spheres []Sphere, tMin, tMax float64) (HitRecord, bool) {
	var record HitRecord
	hitAnything := false
	closest := tMax

	for i := range spheres {
		sphere := &spheres[i]
		oc := sphere.Center.Subtract(ray.Origin)

		// Quadratic in half-b form: a·t² − 2h·t + c = 0
		a := ray.Direction.Dot(ray.Direction)
		h := ray.Direction.Dot(oc)
		c := oc.Dot(oc) - sphere.Radius*sphere.Radius

		discriminant := h*h - a*c
		if discriminant <= 0 {
			continue
		}

		sqrtD := math.Sqrt(discriminant)
		root := (h - sqrtD) / a
		if root < tMin || root > closest {
			root = (h + sqrtD) / a
			if root < tMin || root > closest {
				continue
			}
		}

		closest = root
		point := ray.At(root)
		outward := point.Subtract(sphere.Center).Multiply(1.0 / sphere.Radius)
		front := ray.Direction.Dot(outward) < 0
		normal := outward
		if !front {
			normal = outward.Negate()
		}

		record = HitRecord{
			T:             root,
			Point:         point,
			Normal:        normal,
			FrontFace:     front,
			MaterialIndex: sphere.MaterialIndex,
		}
		hitAnything = true
	}

	return record, hitAnything
}
