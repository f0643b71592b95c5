// Package blockimg reconstructs a QR module matrix from half-block glyph
// rows and rasterizes it into an image a QR decoder can read.
package blockimg

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"

	"deqr/pkg/scan"
)

// Matrix is the reconstructed module grid, true for black modules. Each
// character row of a Block contributes exactly two matrix rows; a naive
// one-row-per-character reading halves the vertical resolution and makes
// the symbol undecodable.
type Matrix [][]bool

// ErrEmptyBlock is returned when a block yields a zero-sized matrix.
var ErrEmptyBlock = errors.New("block yields an empty module matrix")

const (
	// DefaultModuleSize is the image pixels per module. Decoders need a
	// few pixels per module to resolve features reliably.
	DefaultModuleSize = 8
	// DefaultQuietZone is the white margin in modules on every side. QR
	// decoders require at least four to locate the finder patterns.
	DefaultQuietZone = 4
)

// RenderOptions controls rasterization. Values below the minimums are
// clamped, so the zero value still renders (1 px modules, no margin);
// use the Default constants for a decodable image.
type RenderOptions struct {
	ModuleSize int
	QuietZone  int
}

// FromBlock maps every glyph of b to its (top, bottom) module pair. Rows
// shorter than the widest row are treated as padded with spaces on the
// right. The mapping is total: runes outside the QR alphabet map to two
// white modules.
func FromBlock(b scan.Block) (Matrix, error) {
	width := 0
	for _, row := range b {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if len(b) == 0 || width == 0 {
		return nil, ErrEmptyBlock
	}
	m := make(Matrix, 2*len(b))
	for i := range m {
		m[i] = make([]bool, width)
	}
	for i, row := range b {
		for j, r := range []rune(row) {
			top, bottom := glyphModules(r)
			m[2*i][j] = top
			m[2*i+1][j] = bottom
		}
	}
	return m, nil
}

func glyphModules(r rune) (top, bottom bool) {
	switch r {
	case scan.FullBlock:
		return true, true
	case scan.UpperHalf:
		return true, false
	case scan.LowerHalf:
		return false, true
	default:
		return false, false
	}
}

// Render rasterizes the matrix into a two-level grayscale image: one
// pixel per module, scaled up with nearest-neighbour so no intermediate
// gray values appear, composited into a white canvas that provides the
// quiet zone.
func (m Matrix) Render(opts RenderOptions) *image.Gray {
	ms := opts.ModuleSize
	if ms < 1 {
		ms = 1
	}
	qz := opts.QuietZone
	if qz < 0 {
		qz = 0
	}

	h := len(m)
	w := len(m[0])
	src := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range m {
		for x, black := range row {
			if black {
				src.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				src.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	dst := image.NewGray(image.Rect(0, 0, (w+2*qz)*ms, (h+2*qz)*ms))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	inner := image.Rect(qz*ms, qz*ms, (qz+w)*ms, (qz+h)*ms)
	draw.NearestNeighbor.Scale(dst, inner, src, src.Bounds(), draw.Src, nil)
	return dst
}

// HalfBlocks renders the matrix back into glyph rows, two module rows per
// line. An odd-height matrix gets a white bottom half on its last line.
// This is the exact inverse of FromBlock up to that padding row.
func (m Matrix) HalfBlocks() []string {
	lines := make([]string, 0, (len(m)+1)/2)
	for y := 0; y < len(m); y += 2 {
		var sb strings.Builder
		for x := range m[y] {
			top := m[y][x]
			bottom := y+1 < len(m) && m[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune(scan.FullBlock)
			case top:
				sb.WriteRune(scan.UpperHalf)
			case bottom:
				sb.WriteRune(scan.LowerHalf)
			default:
				sb.WriteRune(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
