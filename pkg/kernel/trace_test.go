package kernel

import (
	"testing"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

// testCamera builds a small square parameter block looking down -z with the
// image plane one unit away.
func testCamera(size, samplesPerPass int, seed uint32) Camera {
	return Camera{
		Origin:         core.NewVec3(0, 0, 0),
		Pixel00:        core.NewVec3(-1, 1, -1),
		PixelDeltaU:    core.NewVec3(2.0/float64(size), 0, 0),
		PixelDeltaV:    core.NewVec3(0, -2.0/float64(size), 0),
		U:              core.NewVec3(1, 0, 0),
		V:              core.NewVec3(0, 1, 0),
		Width:          size,
		Height:         size,
		MaxDepth:       10,
		Seed:           seed,
		SamplesPerPass: samplesPerPass,
		BackgroundMode: BackgroundFixed,
		Background:     core.NewVec3(0.25, 0.5, 0.75),
	}
}

func TestTracePixel_Determinism(t *testing.T) {
	cam := testCamera(4, 8, 42)
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1.0, 0)}
	materials := []Material{NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))}

	a := NewAccumulator(4, 4)
	b := NewAccumulator(4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			TracePixel(&cam, spheres, materials, a, x, y)
			TracePixel(&cam, spheres, materials, b, x, y)
		}
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("Pixel (%d,%d) not bit-identical: %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestTracePixel_SeedChangesResult(t *testing.T) {
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1.0, 0)}
	materials := []Material{NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))}

	camA := testCamera(4, 16, 1)
	camB := testCamera(4, 16, 2)
	a := NewAccumulator(4, 4)
	b := NewAccumulator(4, 4)

	TracePixel(&camA, spheres, materials, a, 1, 1)
	TracePixel(&camB, spheres, materials, b, 1, 1)

	if a.At(1, 1).Sum == b.At(1, 1).Sum {
		t.Error("Expected different dispatch seeds to produce different sums")
	}
}

func TestTracePixel_BoundsDiscard(t *testing.T) {
	cam := testCamera(4, 8, 42)
	accum := NewAccumulator(4, 4)

	outOfBounds := [][2]int{
		{4, 0}, {0, 4}, {4, 4}, {100, 2}, {2, 100}, {-1, 0}, {0, -1},
	}
	for _, xy := range outOfBounds {
		TracePixel(&cam, nil, nil, accum, xy[0], xy[1])
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if cell := accum.At(x, y); cell.Count != 0 || cell.Sum != (core.Vec3{}) {
				t.Fatalf("Out-of-bounds invocation wrote pixel (%d,%d): %v", x, y, cell)
			}
		}
	}
}

func TestTracePixel_AccumulatesAcrossDispatches(t *testing.T) {
	cam := testCamera(2, 8, 42)
	accum := NewAccumulator(2, 2)
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1.0, 0)}
	materials := []Material{NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))}

	TracePixel(&cam, spheres, materials, accum, 0, 0)
	first := accum.At(0, 0)
	if first.Count != 8 {
		t.Fatalf("Expected 8 samples after one dispatch, got %d", first.Count)
	}

	// Second dispatch with a remixed seed adds on top of the first
	cam.Seed = 43
	TracePixel(&cam, spheres, materials, accum, 0, 0)
	second := accum.At(0, 0)
	if second.Count != 16 {
		t.Errorf("Expected 16 samples after two dispatches, got %d", second.Count)
	}
	if second.Sum == first.Sum {
		t.Error("Expected the second dispatch to contribute radiance")
	}
}

func TestTracePixel_EmptySceneConvergesExactly(t *testing.T) {
	// With no geometry every sample returns the fixed background, so the
	// mean is exact regardless of sample count.
	background := core.NewVec3(0.25, 0.5, 0.75)
	cam := testCamera(2, 8, 7)
	accum := NewAccumulator(2, 2)

	for pass := 0; pass < 4; pass++ {
		cam.Seed = 7 ^ uint32(pass)*0x9E3779B9
		TracePixel(&cam, nil, nil, accum, 1, 0)
	}

	mean := accum.Mean(1, 0)
	if mean.Subtract(background).Length() > 1e-12 {
		t.Errorf("Expected mean %v, got %v", background, mean)
	}
	if accum.At(1, 0).Count != 32 {
		t.Errorf("Expected 32 accumulated samples, got %d", accum.At(1, 0).Count)
	}
}

func TestTracePixel_DiffuseSceneConverges(t *testing.T) {
	// Progressive refinement: two long independent accumulations of the
	// same pixel agree within Monte Carlo tolerance.
	spheres := []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1.0, 0)}
	materials := []Material{NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))}

	estimate := func(seed uint32) core.Vec3 {
		cam := testCamera(2, 64, seed)
		accum := NewAccumulator(2, 2)
		for pass := uint32(0); pass < 64; pass++ {
			cam.Seed = seed ^ pass*0x9E3779B9
			TracePixel(&cam, spheres, materials, accum, 1, 1)
		}
		return accum.Mean(1, 1)
	}

	a := estimate(1001)
	b := estimate(9091)

	if a.Subtract(b).Length() > 0.02 {
		t.Errorf("Independent accumulations diverged: %v vs %v", a, b)
	}
}

func TestAccumulator_MeanOfEmptyPixelIsBlack(t *testing.T) {
	accum := NewAccumulator(2, 2)
	if mean := accum.Mean(0, 0); mean != (core.Vec3{}) {
		t.Errorf("Expected black mean for unsampled pixel, got %v", mean)
	}
}
