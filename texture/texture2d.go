package texture

import (
	"errors"
	"fmt"
	stdimage "image"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/internal/image"
)

// Errors returned by texture constructors.
var (
	// ErrNilBuffer is returned when a constructor receives a nil buffer.
	ErrNilBuffer = errors.New("texture: nil buffer")

	// ErrFormat is returned when a buffer has the wrong texel format.
	ErrFormat = errors.New("texture: wrong texel format")

	// ErrFaceSize is returned when cube faces are not square or differ in size.
	ErrFaceSize = errors.New("texture: cube faces must be square and equal in size")
)

// Texture2D is a software 2D color texture.
type Texture2D struct {
	buf      *image.Buf
	label    string
	released atomic.Bool
}

// New2D wraps an RGBA32F buffer. The buffer must not be written while the
// texture is being sampled.
func New2D(buf *image.Buf, label string) (*Texture2D, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if buf.Format() != image.FormatRGBA32F {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrFormat, buf.Format(), image.FormatRGBA32F)
	}
	return &Texture2D{buf: buf, label: label}, nil
}

// FromImage creates a texture from a standard library image.
func FromImage(img stdimage.Image, label string) (*Texture2D, error) {
	buf, err := image.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", label, err)
	}
	return New2D(buf, label)
}

// Load decodes an image file into a texture labelled with its path.
func Load(path string) (*Texture2D, error) {
	buf, err := image.Load(path)
	if err != nil {
		return nil, fmt.Errorf("texture: load %s: %w", path, err)
	}
	return New2D(buf, path)
}

// Solid2D returns a 1x1 texture of color c.
func Solid2D(c colorsource.RGBA) *Texture2D {
	buf, _ := image.NewBuf(1, 1, image.FormatRGBA32F)
	buf.Fill(texel(c))
	return &Texture2D{buf: buf, label: "solid"}
}

// Sample implements colorsource.Texture2D. A nil sampler samples nearest
// with clamp-to-edge addressing.
func (t *Texture2D) Sample(s *colorsource.Sampler, uv mgl64.Vec2) colorsource.RGBA {
	return sampleBuf(t.buf, s, uv)
}

// Size returns the texture dimensions in texels.
func (t *Texture2D) Size() (width, height int) {
	return t.buf.Bounds()
}

// Label returns the debug label.
func (t *Texture2D) Label() string { return t.label }

// RGBA8 returns the texels as packed 8-bit RGBA for upload.
func (t *Texture2D) RGBA8() []byte {
	return t.buf.RGBA8()
}

// Valid reports whether the texture can still be bound.
func (t *Texture2D) Valid() bool {
	return t != nil && t.buf != nil && !t.released.Load()
}

// Release marks the texture unusable for new descriptors. Descriptors
// built earlier keep sampling the retained texels.
func (t *Texture2D) Release() {
	t.released.Store(true)
}

// sampleBuf samples buf with the filter and address modes of s.
func sampleBuf(buf *image.Buf, s *colorsource.Sampler, uv mgl64.Vec2) colorsource.RGBA {
	filter := gputypes.FilterModeNearest
	addr := image.Addressing{U: gputypes.AddressModeClampToEdge, V: gputypes.AddressModeClampToEdge}
	if s != nil {
		filter = s.MagFilter
		addr = image.Addressing{U: s.AddressModeU, V: s.AddressModeV}
	}
	return rgba(buf.Sample(uv[0], uv[1], filter, addr))
}

func rgba(t [4]float32) colorsource.RGBA {
	return colorsource.RGBA{R: float64(t[0]), G: float64(t[1]), B: float64(t[2]), A: float64(t[3])}
}

func texel(c colorsource.RGBA) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
