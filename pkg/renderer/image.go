package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
)

// ToImage converts the accumulation buffer to an 8-bit RGBA image: per-pixel
// mean, gamma 2.0 correction, clamp. Non-finite channels render as black.
func ToImage(accum *kernel.Accumulator) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, accum.Width(), accum.Height()))

	for y := 0; y < accum.Height(); y++ {
		for x := 0; x < accum.Width(); x++ {
			img.SetRGBA(x, y, vec3ToColor(accum.Mean(x, y)))
		}
	}

	return img
}

// vec3ToColor converts a radiance estimate to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = squashNonFinite(colorVec)
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// WritePPM writes the accumulation buffer as a plain-text P3 PPM
func WritePPM(w io.Writer, accum *kernel.Accumulator) error {
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", accum.Width(), accum.Height()); err != nil {
		return err
	}

	for y := 0; y < accum.Height(); y++ {
		for x := 0; x < accum.Width(); x++ {
			mean := squashNonFinite(accum.Mean(x, y))
			mean = mean.GammaCorrect(2.0)

			ir := int(math.Min(math.Max(mean.X, 0), 0.999) * 256)
			ig := int(math.Min(math.Max(mean.Y, 0), 0.999) * 256)
			ib := int(math.Min(math.Max(mean.Z, 0), 0.999) * 256)

			if _, err := fmt.Fprintf(out, "%d %d %d\n", ir, ig, ib); err != nil {
				return err
			}
		}
	}

	return out.Flush()
}

// squashNonFinite replaces NaN/Inf channels with zero so a single bad sample
// cannot poison the output
func squashNonFinite(v core.Vec3) core.Vec3 {
	if !isFinite(v.X) {
		v.X = 0
	}
	if !isFinite(v.Y) {
		v.Y = 0
	}
	if !isFinite(v.Z) {
		v.Z = 0
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
