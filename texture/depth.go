package texture

import (
	"fmt"
	stdimage "image"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/internal/image"
)

// Depth2D is a software single-channel depth texture.
type Depth2D struct {
	buf      *image.Buf
	released atomic.Bool
}

// NewDepth2D wraps a Depth32F buffer.
func NewDepth2D(buf *image.Buf) (*Depth2D, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if buf.Format() != image.FormatDepth32F {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrFormat, buf.Format(), image.FormatDepth32F)
	}
	return &Depth2D{buf: buf}, nil
}

// DepthFromImage builds a depth texture from the luminance of img.
func DepthFromImage(img stdimage.Image) (*Depth2D, error) {
	buf, err := image.DepthFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: depth: %w", err)
	}
	return NewDepth2D(buf)
}

// DepthFunc builds a width x height depth texture whose texel at (x, y)
// holds f evaluated at the texel center in normalized coordinates.
func DepthFunc(width, height int, f func(u, v float64) float64) (*Depth2D, error) {
	buf, err := image.NewBuf(width, height, image.FormatDepth32F)
	if err != nil {
		return nil, fmt.Errorf("texture: depth: %w", err)
	}
	for y := range height {
		for x := range width {
			uv := colorsource.TexelCenter(x, y, width, height)
			d := float32(f(uv[0], uv[1]))
			_ = buf.SetTexel(x, y, [4]float32{d})
		}
	}
	return &Depth2D{buf: buf}, nil
}

// SampleDepth implements colorsource.DepthTexture.
func (d *Depth2D) SampleDepth(s *colorsource.Sampler, uv mgl64.Vec2) float64 {
	return sampleBuf(d.buf, s, uv).R
}

// Size returns the texture dimensions in texels.
func (d *Depth2D) Size() (width, height int) {
	return d.buf.Bounds()
}

// Valid reports whether the texture can still be bound.
func (d *Depth2D) Valid() bool {
	return d != nil && d.buf != nil && !d.released.Load()
}

// Release marks the texture unusable for new descriptors.
func (d *Depth2D) Release() {
	d.released.Store(true)
}
