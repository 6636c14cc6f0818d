package render

import (
	"math"
)

// Blank is the glyph of a cell nothing has been drawn to
const Blank = ' '

// RowSeparator is emitted in place of the first cell of every row
const RowSeparator = '\n'

// FrameBuffer pairs a reciprocal-depth buffer with a glyph buffer
// Both are flat, row-major, indexed y*width + x
// Depth 0 means nothing drawn; larger reciprocal depth is nearer the camera
type FrameBuffer struct {
	depth  []float64
	chars  []byte
	width  int
	height int
}

// NewFrameBuffer creates a cleared buffer pair with the specified dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *FrameBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.depth) < size {
		b.depth = make([]float64, size)
		b.chars = make([]byte, size)
	} else {
		b.depth = b.depth[:size]
		b.chars = b.chars[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets depth to 0 and glyphs to Blank using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.depth) == 0 {
		return
	}
	b.depth[0] = 0
	b.chars[0] = Blank
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
	for filled := 1; filled < len(b.chars); filled *= 2 {
		copy(b.chars[filled:], b.chars[:filled])
	}
}

// Size returns buffer dimensions
func (b *FrameBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Len returns the number of cells
func (b *FrameBuffer) Len() int {
	return len(b.depth)
}

// Plot depth-tests a sample at flat index idx and stores it when nearer
// Off-buffer indices and non-finite depths are dropped without signal
// Returns true if the sample was written
func (b *FrameBuffer) Plot(idx int, zr float64, glyph byte) bool {
	if idx < 0 || idx >= len(b.depth) {
		return false
	}
	if math.IsNaN(zr) || math.IsInf(zr, 0) {
		return false
	}
	if zr <= b.depth[idx] {
		return false
	}
	b.depth[idx] = zr
	b.chars[idx] = glyph
	return true
}

// Put stores a glyph without depth testing, used by the vertex pipeline
func (b *FrameBuffer) Put(x, y int, glyph byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.chars[y*b.width+x] = glyph
}

// Depth returns the stored reciprocal depth at idx, 0 when out of range
func (b *FrameBuffer) Depth(idx int) float64 {
	if idx < 0 || idx >= len(b.depth) {
		return 0
	}
	return b.depth[idx]
}

// Glyph returns the stored glyph at idx, Blank when out of range
func (b *FrameBuffer) Glyph(idx int) byte {
	if idx < 0 || idx >= len(b.chars) {
		return Blank
	}
	return b.chars[idx]
}

// AppendFrame appends the displayable frame text to dst and returns it
// Every index that is a multiple of the width yields RowSeparator instead of its glyph,
// so the first column of each row is never shown
func (b *FrameBuffer) AppendFrame(dst []byte) []byte {
	for k, c := range b.chars {
		if k%b.width == 0 {
			dst = append(dst, RowSeparator)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}
