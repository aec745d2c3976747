package image

import (
	"errors"
	"math"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when texel coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is a row-major buffer of float32 texels.
//
// Thread safety: Buf is safe for concurrent reads. Writes require external
// synchronization and must not overlap sampling.
type Buf struct {
	data   []float32
	width  int
	height int
	format Format
}

// NewBuf creates a zeroed buffer.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buf{
		data:   make([]float32, width*height*format.Channels()),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing texel data without copying.
// data must hold at least width*height*channels values.
func FromRaw(data []float32, width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	n := width * height * format.Channels()
	if len(data) < n {
		return nil, ErrDataTooSmall
	}
	return &Buf{data: data[:n], width: width, height: height, format: format}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return &Buf{data: data, width: b.width, height: b.height, format: b.format}
}

// Width returns the width in texels.
func (b *Buf) Width() int { return b.width }

// Height returns the height in texels.
func (b *Buf) Height() int { return b.height }

// Bounds returns width and height.
func (b *Buf) Bounds() (width, height int) { return b.width, b.height }

// Format returns the texel format.
func (b *Buf) Format() Format { return b.format }

// Data returns the underlying texel slice.
func (b *Buf) Data() []float32 { return b.data }

// offset returns the index of the first channel of texel (x, y).
func (b *Buf) offset(x, y int) int {
	return (y*b.width + x) * b.format.Channels()
}

// inBounds reports whether (x, y) lies inside the buffer.
func (b *Buf) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Texel returns the texel at (x, y) as four channels.
// Depth buffers return (d, d, d, d). Coordinates must be in bounds.
func (b *Buf) Texel(x, y int) [4]float32 {
	i := b.offset(x, y)
	if b.format == FormatDepth32F {
		d := b.data[i]
		return [4]float32{d, d, d, d}
	}
	return [4]float32{b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]}
}

// SetTexel writes four channels at (x, y). Depth buffers store the first
// channel only.
func (b *Buf) SetTexel(x, y int, v [4]float32) error {
	if !b.inBounds(x, y) {
		return ErrOutOfBounds
	}
	i := b.offset(x, y)
	if b.format == FormatDepth32F {
		b.data[i] = v[0]
		return nil
	}
	copy(b.data[i:i+4], v[:])
	return nil
}

// Fill sets every texel to v.
func (b *Buf) Fill(v [4]float32) {
	ch := b.format.Channels()
	for i := 0; i < len(b.data); i += ch {
		copy(b.data[i:i+ch], v[:ch])
	}
}

// RGBA8 converts the buffer to tightly packed 8-bit RGBA, clamping each
// channel to [0, 1]. Depth buffers become opaque gray.
func (b *Buf) RGBA8() []byte {
	out := make([]byte, b.width*b.height*4)
	for y := range b.height {
		for x := range b.width {
			t := b.Texel(x, y)
			if b.format == FormatDepth32F {
				t[3] = 1
			}
			o := (y*b.width + x) * 4
			for c := range 4 {
				out[o+c] = unorm8(t[c])
			}
		}
	}
	return out
}

// unorm8 converts a [0,1] float to a byte with rounding.
func unorm8(v float32) byte {
	return byte(math.Round(float64(clampFloat(v, 0, 1)) * 255))
}

// clampFloat clamps v to [lo, hi].
func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
