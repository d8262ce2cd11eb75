package core

import "math"

// RNG is a deterministic 32-bit xorshift stream. Each pixel owns its own
// stream, seeded from the pixel coordinates and the dispatch seed, so streams
// never need synchronization and results are bit-identical across runs.
type RNG struct {
	state uint32
}

// hashMix is a murmur-style integer finalizer. Its avalanche behavior is what
// decorrelates adjacent pixels and successive frame seeds.
func hashMix(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// NewRNG creates the stream for pixel (x, y) under the given dispatch seed
func NewRNG(x, y, seed uint32) *RNG {
	return &RNG{state: hashMix(x*1973 + y*9277 + seed*26699 + 9119)}
}

// Uint32 advances the stream and returns the raw 32-bit value
func (r *RNG) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint32()) * (1.0 / 4294967296.0)
}

// UnitVector returns a uniformly distributed point on the unit sphere.
// Consumes two draws: azimuth, then z.
func (r *RNG) UnitVector() Vec3 {
	a := r.Float64() * 2 * math.Pi
	z := r.Float64()*2 - 1
	rad := math.Sqrt(math.Max(0, 1-z*z))
	return Vec3{X: rad * math.Cos(a), Y: rad * math.Sin(a), Z: z}
}

// InUnitDisk returns a uniformly distributed point in the unit disk (z = 0).
// Consumes two draws: radius, then angle.
func (r *RNG) InUnitDisk() Vec3 {
	rad := math.Sqrt(r.Float64())
	theta := r.Float64() * 2 * math.Pi
	return Vec3{X: rad * math.Cos(theta), Y: rad * math.Sin(theta)}
}
