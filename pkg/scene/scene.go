package scene

import (
	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
)

// Scene bundles the three read-only resources a dispatch consumes: the
// camera parameter block, the sphere array, and the material array.
type Scene struct {
	Camera    kernel.Camera
	Spheres   []kernel.Sphere
	Materials []kernel.Material
}

// AddMaterial appends a material and returns its index for sphere authoring
func (s *Scene) AddMaterial(m kernel.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere appends a sphere referencing a previously added material
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialIndex int) {
	s.Spheres = append(s.Spheres, kernel.NewSphere(center, radius, materialIndex))
}

// NewTrioScene builds a small fixed scene: gray ground sphere, a diffuse,
// a glass, and a fuzzed metal sphere in a row under the sky gradient.
func NewTrioScene(config CameraConfig) *Scene {
	s := &Scene{Camera: NewCamera(config)}

	ground := s.AddMaterial(kernel.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	glass := s.AddMaterial(kernel.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)

	brown := s.AddMaterial(kernel.NewDiffuse(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown)

	metal := s.AddMaterial(kernel.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, metal)

	return s
}
