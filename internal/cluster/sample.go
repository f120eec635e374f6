// Package cluster implements the photometric decoder: sampling one color
// per grid cell and classifying samples into symbols via palette-seeded
// k-means, adapting to per-capture illumination shifts.
package cluster

import (
	"image"
	"math"
)

// RGB is a sample or centroid color in floating-point RGB space.
type RGB [3]float64

// SampleCells reads one color sample per cell from img, in row-major order.
// cellW/cellH are the per-cell pixel dimensions and border is 0 or 1 (the
// number of border cells to skip before the first data cell: 1 for a
// rectified canonical raster, which keeps the fiducial border, and 0 or 1
// for direct-mode sampling depending on BorderHeuristic's result). Each sample is taken at the cell's pixel
// center, floor((i+border+0.5)*cellDim), clamped to the image bounds.
func SampleCells(img image.Image, gridW, gridH int, cellW, cellH float64, border int) []RGB {
	bounds := img.Bounds()
	samples := make([]RGB, 0, gridW*gridH)
	for y := 0; y < gridH; y++ {
		py := int((float64(y+border) + 0.5) * cellH)
		py = clamp(py, bounds.Min.Y, bounds.Max.Y-1)
		for x := 0; x < gridW; x++ {
			px := int((float64(x+border) + 0.5) * cellW)
			px = clamp(px, bounds.Min.X, bounds.Max.X-1)
			r, g, b, _ := img.At(px, py).RGBA()
			samples = append(samples, RGB{
				float64(r >> 8),
				float64(g >> 8),
				float64(b >> 8),
			})
		}
	}
	return samples
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sqDist returns the squared Euclidean distance between two RGB points.
func sqDist(a, b RGB) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return dr*dr + dg*dg + db*db
}

func dist(a, b RGB) float64 {
	return math.Sqrt(sqDist(a, b))
}
