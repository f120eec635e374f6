package opticodec

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/airgapfile/opticodec/internal/bitio"
	"github.com/airgapfile/opticodec/internal/cluster"
	"github.com/airgapfile/opticodec/internal/header"
	"github.com/airgapfile/opticodec/internal/raster"
	"github.com/airgapfile/opticodec/internal/rectify"
)

// Options bundles the grid geometry and the rectifier's canonical cell size
// used by EncodeFrame and DecodeFrame. The zero value is not ready to use; call
// DefaultOptions.
type Options struct {
	Grid raster.GridParams

	// RectifyCellPx is the per-cell pixel size used for the canonical
	// raster the rectifier warps into (distinct from Grid.CellPx, the
	// encoder's render size).
	RectifyCellPx int
}

// DefaultOptions returns the codec's default grid geometry: a 64x36 grid
// with 12px cells on the encoder side and a 10px canonical raster on the
// decoder side.
func DefaultOptions() Options {
	return Options{
		Grid:          raster.DefaultGridParams,
		RectifyCellPx: rectify.DefaultCellPx,
	}
}

// EncodeFrame packs payload and a header into one grid frame and renders
// it to a bordered image. It returns ErrPayloadTooLarge, wrapped in a
// *FrameError, if payload exceeds the grid's slab capacity.
func EncodeFrame(payload []byte, seq, chunkIdx uint32, opts Options) (*image.NRGBA, error) {
	g := opts.Grid

	if len(payload) > g.SlabCapacity() {
		return nil, &FrameError{Kind: KindPayloadTooLarge, Err: fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(payload), g.SlabCapacity())}
	}

	hdr := header.Build(seq, chunkIdx, uint32(len(payload)))
	headerSymbols := padSymbols(bitio.Pack(hdr, raster.BitsPerSymbol), g.HeaderSymbolCapacity())

	payloadSymbols := padSymbols(bitio.Pack(payload, raster.BitsPerSymbol), g.PayloadSymbolCapacity())

	symbols := make([]byte, 0, g.TotalSymbols())
	symbols = append(symbols, headerSymbols...)
	symbols = append(symbols, payloadSymbols...)

	return raster.EncodeImage(symbols, g), nil
}

// padSymbols right-pads symbols with zero symbols up to n, or truncates
// (a caller bug: Pack should never overshoot capacity once the byte-length
// check above has passed) to n.
func padSymbols(symbols []byte, n int) []byte {
	if len(symbols) >= n {
		return symbols[:n]
	}
	out := make([]byte, n)
	copy(out, symbols)
	return out
}

// DecodeFrame recovers a header and payload from a captured image. If
// corners is non-nil, the image is first perspective-rectified onto the
// canonical grid; otherwise it is sampled directly, with
// rectify.BorderHeuristic deciding whether a fiducial border is present.
//
// Per-frame failures (short header, bad magic, CRC mismatch, truncated
// payload) are returned as a *FrameError and are recoverable: the caller
// should discard the frame and continue with the next capture.
func DecodeFrame(img image.Image, corners *rectify.CornerOrder, opts Options) (header.Header, []byte, error) {
	g := opts.Grid

	canonical, border, err := canonicalRaster(img, corners, g, opts.RectifyCellPx)
	if err != nil {
		return header.Header{}, nil, err
	}

	cellW, cellH := cellDimensions(canonical, g, corners, border, opts.RectifyCellPx)

	samples := cluster.SampleCells(canonical, g.W, g.H, cellW, cellH, border)
	seed := paletteSeed()
	labels := cluster.Cluster(samples, seed)

	symbols := make([]byte, len(labels))
	for i, l := range labels {
		symbols[i] = byte(l)
	}

	headerSymbols := symbols[:g.HeaderSymbolCapacity()]
	payloadSymbols := symbols[g.HeaderSymbolCapacity():]

	headerBytes := bitio.Unpack(headerSymbols, raster.BitsPerSymbol)[:header.Size]
	hdr, err := header.Parse(headerBytes)
	if err != nil {
		return header.Header{}, nil, &FrameError{Kind: kindForHeaderErr(err), Err: err}
	}

	payloadBytes := bitio.Unpack(payloadSymbols, raster.BitsPerSymbol)
	if int(hdr.PayloadLen) > len(payloadBytes) {
		return header.Header{}, nil, &FrameError{
			Kind: KindFrameTruncated,
			Err:  fmt.Errorf("%w: declared %d, recovered %d", ErrFrameTruncated, hdr.PayloadLen, len(payloadBytes)),
		}
	}

	return hdr, payloadBytes[:hdr.PayloadLen], nil
}

func kindForHeaderErr(err error) Kind {
	switch {
	case errors.Is(err, header.ErrShortHeader):
		return KindShortHeader
	case errors.Is(err, header.ErrBadMagic):
		return KindBadMagic
	default:
		return KindCrcMismatch
	}
}

// canonicalRaster returns the image to sample cells from: either the
// perspective-rectified canonical raster (corners != nil) or img itself
// in direct mode, along with the border offset (0 or 1) that applies to
// it. The rectified raster still carries the fiducial border, so it is
// sampled with the same border offset (1) as an unrectified bordered
// capture.
func canonicalRaster(img image.Image, corners *rectify.CornerOrder, g raster.GridParams, cellPx int) (image.Image, int, error) {
	if corners != nil {
		rectified, err := rectify.Rectify(img, *corners, g.W, g.H, cellPx)
		if err != nil {
			return nil, 0, &FrameError{Kind: KindShortHeader, Err: err}
		}
		return rectified, 1, nil
	}

	bounds := img.Bounds()
	present := rectify.BorderHeuristic(bounds.Dx(), bounds.Dy(), g.W, g.H)
	border := 0
	if present {
		border = 1
	}
	return img, border, nil
}

func cellDimensions(img image.Image, g raster.GridParams, corners *rectify.CornerOrder, border, cellPx int) (float64, float64) {
	if corners != nil {
		return float64(cellPx), float64(cellPx)
	}
	bounds := img.Bounds()
	present := border == 1
	cellW, cellH, _ := rectify.CellGeometry(bounds.Dx(), bounds.Dy(), g.W, g.H, present)
	return cellW, cellH
}

// paletteSeed converts raster.Palette's RGBA entries to cluster.RGB
// centroids used to seed k-means, preserving symbol order.
func paletteSeed() []cluster.RGB {
	seed := make([]cluster.RGB, len(raster.Palette))
	for i, c := range raster.Palette {
		seed[i] = cluster.RGB{float64(c.R), float64(c.G), float64(c.B)}
	}
	return seed
}

// DecodeResult pairs one DecodeFrame call's outcome with the index of the
// image it came from, for DecodeFramesConcurrent's out-of-order workers.
type DecodeResult struct {
	Index   int
	Header  header.Header
	Payload []byte
	Err     error
}

// DecodeFramesConcurrent decodes each image in imgs independently across a
// bounded pool of workers, since DecodeFrame is referentially transparent
// with respect to its inputs. Results are delivered on the
// returned channel in arbitrary completion order; callers that need
// seq-ordering should route results through a Reassembler, which sorts by
// seq regardless of arrival order.
func DecodeFramesConcurrent(imgs []image.Image, corners []*rectify.CornerOrder, opts Options, workers int) <-chan DecodeResult {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	results := make(chan DecodeResult, len(imgs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				var c *rectify.CornerOrder
				if corners != nil {
					c = corners[i]
				}
				hdr, payload, err := DecodeFrame(imgs[i], c, opts)
				results <- DecodeResult{Index: i, Header: hdr, Payload: payload, Err: err}
			}
		}()
	}

	go func() {
		for i := range imgs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	return results
}
