// Package rectify implements the perspective rectification step of the
// receiver pipeline: given four user-supplied corner points locating the
// fiducial border in a captured image, it warps the image to a canonical,
// axis-aligned raster the photometric decoder can sample on a regular grid.
package rectify

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Point is an image-space coordinate.
type Point struct {
	X, Y float64
}

// ErrDegenerate is returned when the four correspondences don't determine
// a valid (invertible) homography — e.g. three or more collinear points.
var ErrDegenerate = errors.New("rectify: degenerate point correspondence")

// homography solves the 3x3 projective transform mapping src[i] -> dst[i]
// for the four point correspondences, using the standard 8-unknown direct
// linear transform (h33 is fixed to 1). Returns the matrix in row-major
// order (h11 h12 h13; h21 h22 h23; h31 h32 1).
func homography(src, dst [4]Point) (*mat.Dense, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		r0 := 2 * i
		r1 := 2*i + 1

		a.SetRow(r0, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(r1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(r0, u)
		b.SetVec(r1, v)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	m := mat.NewDense(3, 3, []float64{
		h.AtVec(0), h.AtVec(1), h.AtVec(2),
		h.AtVec(3), h.AtVec(4), h.AtVec(5),
		h.AtVec(6), h.AtVec(7), 1,
	})
	return m, nil
}

// inverse3x3 returns the matrix inverse of a 3x3 matrix, or ErrDegenerate
// if it is singular.
func inverse3x3(m *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	return &inv, nil
}

// apply transforms p through the homography m, dehomogenizing the result.
func apply(m *mat.Dense, p Point) Point {
	wx := m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)
	wy := m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)
	w := m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)
	if w == 0 {
		return Point{}
	}
	return Point{X: wx / w, Y: wy / w}
}
