package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // total number of pixels in the buffer
	TotalSamples   int     // total number of samples accumulated
	AverageSamples float64 // average samples per pixel
	Passes         int     // passes completed so far
}

// Stats summarizes the current state of the accumulation buffer
func (r *Renderer) Stats() RenderStats {
	stats := RenderStats{
		TotalPixels: r.accum.Width() * r.accum.Height(),
		Passes:      r.passesDone,
	}

	for y := 0; y < r.accum.Height(); y++ {
		for x := 0; x < r.accum.Width(); x++ {
			stats.TotalSamples += r.accum.At(x, y).Count
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	return stats
}
