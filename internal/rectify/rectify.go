package rectify

import (
	"image"
	"math"
)

// DefaultCellPx is the canonical raster's per-cell pixel size used by the
// rectifier (distinct from the encoder's CellPx).
const DefaultCellPx = 10

// CornerOrder documents the expected order of corner points passed to
// Rectify: top-left, top-right, bottom-right, bottom-left — the corners of
// the rendered fiducial border, not the inner data grid.
type CornerOrder = [4]Point

// Rectify perspective-warps src so that the quadrilateral described by
// corners (TL, TR, BR, BL, in image space) maps onto the axis-aligned
// canonical rectangle (0,0)-((gridW+2)*cellPx, (gridH+2)*cellPx). The
// returned raster still carries the 1-cell fiducial border around the
// inner W*H data cells, in the same proportions as the original encoded
// grid, so callers sample it with the same border offset as an
// unrectified direct-mode capture.
func Rectify(src image.Image, corners CornerOrder, gridW, gridH, cellPx int) (*image.NRGBA, error) {
	dstW := (gridW + 2) * cellPx
	dstH := (gridH + 2) * cellPx

	dst := [4]Point{
		{X: 0, Y: 0},
		{X: float64(dstW), Y: 0},
		{X: float64(dstW), Y: float64(dstH)},
		{X: 0, Y: float64(dstH)},
	}

	fwd, err := homography(corners, dst)
	if err != nil {
		return nil, err
	}
	inv, err := inverse3x3(fwd)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	bounds := src.Bounds()

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			sp := apply(inv, Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			sx := clampInt(int(math.Round(sp.X)), bounds.Min.X, bounds.Max.X-1)
			sy := clampInt(int(math.Round(sp.Y)), bounds.Min.Y, bounds.Max.Y-1)
			out.Set(x, y, src.At(sx, sy))
		}
	}
	return out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BorderHeuristic infers whether the source image includes the 1-cell
// fiducial border by comparing its aspect ratio to the two candidates
// (W+2)/(H+2) (border present) and W/H (border absent), picking whichever
// is closer. This matches the original source's behavior for backward
// compatibility and is brittle for near-square grids —
// callers decoding their own encoder's output should prefer supplying
// corners (or a known border=true) over relying on this fallback.
func BorderHeuristic(width, height, gridW, gridH int) (borderPresent bool) {
	ratio := float64(width) / float64(height)
	ratioBorder := float64(gridW+2) / float64(gridH+2)
	ratioNoBorder := float64(gridW) / float64(gridH)

	return math.Abs(ratio-ratioBorder) < math.Abs(ratio-ratioNoBorder)
}

// CellGeometry returns the per-cell pixel width/height and border offset
// (0 or 1) to use for direct-mode sampling (no rectification), given the
// image dimensions and the border heuristic's result.
func CellGeometry(width, height, gridW, gridH int, borderPresent bool) (cellW, cellH float64, border int) {
	if borderPresent {
		return float64(width) / float64(gridW+2), float64(height) / float64(gridH+2), 1
	}
	return float64(width) / float64(gridW), float64(height) / float64(gridH), 0
}
