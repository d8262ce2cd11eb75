package scene

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
)

// Seed for the sphere-field generator, fixed so the cover scene is the same
// on every run.
const coverFieldSeed = 0x5EED1234

// NewCoverScene builds the classic book-cover scene: a gray ground sphere,
// a 22×22 field of small jittered spheres with randomly chosen materials,
// and three large hero spheres (glass, diffuse, polished metal).
func NewCoverScene(config CameraConfig) *Scene {
	s := &Scene{Camera: NewCamera(config)}
	rng := core.NewRNG(0, 0, coverFieldSeed)

	ground := s.AddMaterial(kernel.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			// Keep the field clear of the metal hero sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64(),
					rng.Float64()*rng.Float64(),
				)
				s.AddSphere(center, 0.2, s.AddMaterial(kernel.NewDiffuse(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*rng.Float64(),
					0.5+0.5*rng.Float64(),
					0.5+0.5*rng.Float64(),
				)
				fuzz := 0.5 * rng.Float64()
				s.AddSphere(center, 0.2, s.AddMaterial(kernel.NewMetal(albedo, fuzz)))
			default:
				s.AddSphere(center, 0.2, s.AddMaterial(kernel.NewDielectric(1.5)))
			}
		}
	}

	glass := s.AddMaterial(kernel.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)

	brown := s.AddMaterial(kernel.NewDiffuse(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown)

	metal := s.AddMaterial(kernel.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, metal)

	return s
}
