// Package raster renders the codec's bordered cell grid into an image, and
// holds the grid geometry both the encoder and the receiver-side rectifier
// and sampler agree on.
package raster

import "image/color"

// GridParams describes the cell grid geometry shared by the encoder,
// rectifier, and photometric decoder.
type GridParams struct {
	W      int // grid width in cells (default 64)
	H      int // grid height in cells (default 36)
	CellPx int // rendered size of one cell, in pixels, on the encoder side (default 12)
}

// DefaultGridParams matches the codec's default parameters from the spec.
var DefaultGridParams = GridParams{W: 64, H: 36, CellPx: 12}

// HeaderRows is the number of grid rows reserved for the framed header.
const HeaderRows = 2

// BitsPerSymbol is k: the number of bits one cell's symbol carries.
const BitsPerSymbol = 2

// HeaderSymbolCapacity returns the number of symbol slots reserved for the
// header region: HeaderRows * W.
func (g GridParams) HeaderSymbolCapacity() int {
	return HeaderRows * g.W
}

// PayloadSymbolCapacity returns the number of symbol slots available for
// payload data: (H - HeaderRows) * W.
func (g GridParams) PayloadSymbolCapacity() int {
	return (g.H - HeaderRows) * g.W
}

// TotalSymbols returns W*H, the total number of cells in the grid.
func (g GridParams) TotalSymbols() int {
	return g.W * g.H
}

// SlabCapacity returns the maximum payload byte count that fits in one
// frame: floor(PayloadSymbolCapacity() * BitsPerSymbol / 8).
func (g GridParams) SlabCapacity() int {
	return (g.PayloadSymbolCapacity() * BitsPerSymbol) / 8
}

// Palette is the ordered symbol-to-color table. Palette index == symbol
// value; this mapping is part of the wire format and must never be
// reordered.
var Palette = [4]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},       // 0: black
	{R: 255, G: 255, B: 255, A: 255}, // 1: white
	{R: 255, G: 0, B: 0, A: 255},     // 2: red
	{R: 0, G: 255, B: 0, A: 255},     // 3: green
}

// BorderWhite is the fiducial border's edge color.
var BorderWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// BorderCorner is the fiducial border's corner-square color.
var BorderCorner = color.RGBA{R: 255, G: 0, B: 0, A: 255}
