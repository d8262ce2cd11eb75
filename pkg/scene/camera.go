package scene

import (
	"math"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
)

// CameraConfig holds the authoring-side camera parameters from which the
// kernel's parameter block is derived.
type CameraConfig struct {
	Width           int       // image width in pixels
	AspectRatio     float64   // width / height
	VFov            float64   // vertical field of view, degrees
	LookFrom        core.Vec3 // eye position
	LookAt          core.Vec3 // target point
	VUp             core.Vec3 // world up used to build the camera basis
	DefocusAngle    float64   // lens cone angle, degrees; 0 disables depth of field
	FocusDist       float64   // distance to the plane of perfect focus
	MaxDepth        int       // bounce limit per path
	Seed            uint32    // base dispatch seed
	Background      core.Vec3 // fixed background color when FixedBackground is set
	FixedBackground bool      // false selects the sky gradient
}

// DefaultCameraConfig returns the view used by the cover scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:        1200,
		AspectRatio:  16.0 / 9.0,
		VFov:         20.0,
		LookFrom:     core.NewVec3(13, 2, 3),
		LookAt:       core.NewVec3(0, 0, 0),
		VUp:          core.NewVec3(0, 1, 0),
		DefocusAngle: 0.6,
		FocusDist:    10.0,
		MaxDepth:     20,
		Seed:         0x5EED1234,
	}
}

// NewCamera derives the kernel camera parameter block: image height from the
// aspect ratio, the viewport from the vertical field of view at the focus
// distance, the orthonormal (u, v, w) basis from look-from/look-at/v-up, the
// per-pixel image-plane deltas, the top-left pixel center, and the lens
// radius from the defocus cone angle.
func NewCamera(config CameraConfig) kernel.Camera {
	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	lensRadius := config.FocusDist * math.Tan(degreesToRadians(config.DefocusAngle/2))

	backgroundMode := kernel.BackgroundGradient
	if config.FixedBackground {
		backgroundMode = kernel.BackgroundFixed
	}

	return kernel.Camera{
		Origin:         config.LookFrom,
		Pixel00:        pixel00,
		PixelDeltaU:    pixelDeltaU,
		PixelDeltaV:    pixelDeltaV,
		U:              u,
		V:              v,
		Background:     config.Background,
		LensRadius:     lensRadius,
		Width:          config.Width,
		Height:         height,
		MaxDepth:       config.MaxDepth,
		Seed:           config.Seed,
		BackgroundMode: backgroundMode,
	}
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
