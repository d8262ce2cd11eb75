package kernel

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

func TestHitSpheres_Miss(t *testing.T) {
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)}
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := HitSpheres(ray, spheres, 0.001, 1e9)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestHitSpheres_FrontAndBackFace(t *testing.T) {
	tests := []struct {
		name           string
		sphere         Sphere
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit straight ahead",
			sphere:         NewSphere(core.NewVec3(0, 0, -5), 1.0, 0),
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			sphere:         NewSphere(core.NewVec3(0, 0, -5), 1.0, 0),
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := HitSpheres(ray, []Sphere{tt.sphere}, 0.001, 1e9)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestHitSpheres_TangentRayMisses(t *testing.T) {
	// Grazing ray, discriminant exactly zero, treated as a miss
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)}
	ray := core.NewRay(core.NewVec3(1, -5, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := HitSpheres(ray, spheres, 0.001, 1e9); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestHitSpheres_NearestWinsRegardlessOfOrder(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, 1)
	far := NewSphere(core.NewVec3(0, 0, -8), 1.0, 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orderings := [][]Sphere{
		{near, far},
		{far, near},
	}

	for _, spheres := range orderings {
		hit, isHit := HitSpheres(ray, spheres, 0.001, 1e9)
		if !isHit {
			t.Fatal("Expected hit, but got miss")
		}
		if math.Abs(hit.T-2.0) > 1e-9 {
			t.Errorf("Expected nearest hit at t=2, got t=%f", hit.T)
		}
		if hit.MaterialIndex != 1 {
			t.Errorf("Expected material index 1 from nearest sphere, got %d", hit.MaterialIndex)
		}
	}
}

func TestHitSpheres_RespectsInterval(t *testing.T) {
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1.0, 0)}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Both roots (t=4 and t=6) lie beyond tMax
	if _, isHit := HitSpheres(ray, spheres, 0.001, 3.0); isHit {
		t.Error("Expected miss when both roots exceed tMax")
	}

	// The near root is below tMin; the far root should be found
	hit, isHit := HitSpheres(ray, spheres, 5.0, 1e9)
	if !isHit {
		t.Fatal("Expected far-root hit, got miss")
	}
	if math.Abs(hit.T-6.0) > 1e-9 {
		t.Errorf("Expected far root t=6, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back-face hit for far root")
	}
}

func TestHitSpheres_SphereBehindRay(t *testing.T) {
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, 5), 1.0, 0)}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := HitSpheres(ray, spheres, 0.001, 1e9); isHit {
		t.Errorf("Expected sphere behind the ray to be rejected, got hit at t=%f", hit.T)
	}
}
