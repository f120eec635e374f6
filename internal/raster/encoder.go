package raster

import (
	"image"
	"image/color"
)

// EncodeImage paints symbols (one per cell, row-major, len == params.TotalSymbols())
// into a bordered raster. The returned image has bounds
// (0,0)-((W+2)*CellPx, (H+2)*CellPx): a 1-cell-wide white fiducial border
// with solid red corner cells surrounding the W*H inner data cells.
//
// EncodeImage panics if len(symbols) != params.TotalSymbols() — that's a
// caller bug (the symbol slice must already be zero-padded to the grid
// size), not a recoverable per-frame condition.
func EncodeImage(symbols []byte, params GridParams) *image.NRGBA {
	if len(symbols) != params.TotalSymbols() {
		panic("raster: symbols length does not match grid size")
	}

	cell := params.CellPx
	outerW := (params.W + 2) * cell
	outerH := (params.H + 2) * cell

	img := image.NewNRGBA(image.Rect(0, 0, outerW, outerH))

	fillRect(img, 0, 0, outerW, outerH, BorderWhite)

	// Corner cells, solid red, overwriting the border fill at the four corners.
	fillRect(img, 0, 0, cell, cell, BorderCorner)
	fillRect(img, outerW-cell, 0, outerW, cell, BorderCorner)
	fillRect(img, 0, outerH-cell, cell, outerH, BorderCorner)
	fillRect(img, outerW-cell, outerH-cell, outerW, outerH, BorderCorner)

	for y := 0; y < params.H; y++ {
		for x := 0; x < params.W; x++ {
			sym := symbols[y*params.W+x]
			c := Palette[int(sym)%len(Palette)]
			x0 := (x + 1) * cell
			y0 := (y + 1) * cell
			fillRect(img, x0, y0, x0+cell, y0+cell, c)
		}
	}

	return img
}

// fillRect fills the axis-aligned rectangle [x0,y0)-(x1,y1) with c.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := y0; y < y1; y++ {
		off := img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			img.Pix[off] = nc.R
			img.Pix[off+1] = nc.G
			img.Pix[off+2] = nc.B
			img.Pix[off+3] = nc.A
			off += 4
		}
	}
}
