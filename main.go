package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/renderer"
	"github.com/df07/go-pathtrace-kernel/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'trio'")
	width := flag.Int("width", 400, "Image width in pixels")
	spp := flag.Int("spp", 100, "Total samples per pixel")
	maxDepth := flag.Int("depth", 20, "Maximum ray bounce depth")
	vfov := flag.Float64("vfov", 20.0, "Vertical field of view in degrees")
	defocusAngle := flag.Float64("defocus-angle", 0.6, "Lens defocus cone angle in degrees (0 = pinhole)")
	focusDist := flag.Float64("focus-dist", 10.0, "Distance to the plane of perfect focus")
	lookFrom := flag.String("look-from", "", "Camera position 'x,y,z' (empty = scene default)")
	lookAt := flag.String("look-at", "", "Camera target 'x,y,z' (empty = scene default)")
	background := flag.String("background", "", "Fixed background color 'r,g,b' (empty = sky gradient)")
	samplesPerPass := flag.Int("samples-per-pass", 64, "Samples per pixel per progressive pass")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Progressive Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover - Book cover scene with a random sphere field")
		fmt.Println("  trio  - Three hero spheres (glass, diffuse, metal) on a ground sphere")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	// Build the camera configuration from flags
	cameraConfig := scene.DefaultCameraConfig()
	cameraConfig.Width = *width
	cameraConfig.MaxDepth = *maxDepth
	cameraConfig.VFov = *vfov
	cameraConfig.DefocusAngle = *defocusAngle
	cameraConfig.FocusDist = *focusDist

	if *lookFrom != "" {
		v, err := parseVec3(*lookFrom)
		if err != nil {
			fmt.Printf("Invalid -look-from value: %v\n", err)
			return
		}
		cameraConfig.LookFrom = v
	}
	if *lookAt != "" {
		v, err := parseVec3(*lookAt)
		if err != nil {
			fmt.Printf("Invalid -look-at value: %v\n", err)
			return
		}
		cameraConfig.LookAt = v
	}

	if *background != "" {
		bg, err := parseVec3(*background)
		if err != nil {
			fmt.Printf("Invalid -background value: %v\n", err)
			return
		}
		cameraConfig.Background = bg
		cameraConfig.FixedBackground = true
	}

	// Create scene based on command line argument
	var selectedScene *scene.Scene
	switch *sceneType {
	case "trio":
		fmt.Println("Using trio scene...")
		selectedScene = scene.NewTrioScene(cameraConfig)
	case "cover":
		fmt.Println("Using cover scene...")
		selectedScene = scene.NewCoverScene(cameraConfig)
	default:
		fmt.Printf("Unknown scene type: %s. Using cover scene.\n", *sceneType)
		selectedScene = scene.NewCoverScene(cameraConfig)
		*sceneType = "cover"
	}

	// Create output directory for this scene type
	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	config := renderer.Config{
		TileSize:       renderer.DefaultTileSize,
		SamplesPerPass: *samplesPerPass,
		NumWorkers:     *workers,
	}
	r := renderer.NewRenderer(selectedScene, config, renderer.NewDefaultLogger())

	startTime := time.Now()
	img, stats, err := r.Render(context.Background(), *spp)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples per pixel: %.1f over %d passes\n", stats.AverageSamples, stats.Passes)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	switch *format {
	case "ppm":
		err = renderer.WritePPM(file, r.Accumulator())
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// parseVec3 parses a comma-separated "r,g,b" triple
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 comma-separated values, got %d", len(parts))
	}

	var values [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		values[i] = v
	}

	return core.NewVec3(values[0], values[1], values[2]), nil
}
