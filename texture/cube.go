package texture

import (
	"fmt"
	stdimage "image"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/internal/image"
)

// Cube is a software cube texture: six square RGBA32F faces in
// colorsource.CubeFace order (+X, -X, +Y, -Y, +Z, -Z).
type Cube struct {
	faces    [colorsource.CubeFaceCount]*image.Buf
	size     int
	released atomic.Bool
}

// NewCube creates a cube from six faces. Every face must be RGBA32F,
// square, and the same size.
func NewCube(faces [colorsource.CubeFaceCount]*image.Buf) (*Cube, error) {
	size := 0
	for i, f := range faces {
		if f == nil {
			return nil, fmt.Errorf("face %s: %w", colorsource.CubeFace(i), ErrNilBuffer)
		}
		if f.Format() != image.FormatRGBA32F {
			return nil, fmt.Errorf("face %s: %w", colorsource.CubeFace(i), ErrFormat)
		}
		w, h := f.Bounds()
		if i == 0 {
			size = w
		}
		if w != h || w != size {
			return nil, fmt.Errorf("face %s is %dx%d: %w", colorsource.CubeFace(i), w, h, ErrFaceSize)
		}
	}
	return &Cube{faces: faces, size: size}, nil
}

// CubeFromImages builds a cube from six images. Faces are resampled to the
// largest face dimension so mismatched sources still form a valid cube.
func CubeFromImages(imgs [colorsource.CubeFaceCount]stdimage.Image) (*Cube, error) {
	size := 0
	for _, img := range imgs {
		if img == nil {
			return nil, ErrNilBuffer
		}
		b := img.Bounds()
		size = max(size, b.Dx(), b.Dy())
	}

	var faces [colorsource.CubeFaceCount]*image.Buf
	for i, img := range imgs {
		buf, err := image.FromImage(img)
		if err != nil {
			return nil, fmt.Errorf("texture: face %s: %w", colorsource.CubeFace(i), err)
		}
		if w, h := buf.Bounds(); w != size || h != size {
			if buf, err = buf.Resize(size, size); err != nil {
				return nil, fmt.Errorf("texture: face %s: %w", colorsource.CubeFace(i), err)
			}
		}
		faces[i] = buf
	}
	return NewCube(faces)
}

// SolidCube returns a 1x1 cube with one solid color per face.
func SolidCube(colors [colorsource.CubeFaceCount]colorsource.RGBA) *Cube {
	c := &Cube{size: 1}
	for i, col := range colors {
		buf, _ := image.NewBuf(1, 1, image.FormatRGBA32F)
		buf.Fill(texel(col))
		c.faces[i] = buf
	}
	return c
}

// SelectFace picks the cube face a direction points at and returns the
// normalized texture coordinate on that face.
//
// The face is the axis with the largest magnitude. Ties prefer X over Y
// over Z. Face coordinates follow the usual GPU convention:
//
//	face  s    t
//	+X   -z   -y
//	-X   +z   -y
//	+Y   +x   +z
//	-Y   +x   -z
//	+Z   +x   -y
//	-Z   -x   -y
//
// A zero direction returns false.
func SelectFace(dir mgl64.Vec3) (colorsource.CubeFace, mgl64.Vec2, bool) {
	x, y, z := dir[0], dir[1], dir[2]
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)

	var (
		face   colorsource.CubeFace
		ma     float64
		sc, tc float64
	)
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if x >= 0 {
			face, sc, tc = colorsource.FacePositiveX, -z, -y
		} else {
			face, sc, tc = colorsource.FaceNegativeX, z, -y
		}
	case ay >= az:
		ma = ay
		if y >= 0 {
			face, sc, tc = colorsource.FacePositiveY, x, z
		} else {
			face, sc, tc = colorsource.FaceNegativeY, x, -z
		}
	default:
		ma = az
		if z >= 0 {
			face, sc, tc = colorsource.FacePositiveZ, x, -y
		} else {
			face, sc, tc = colorsource.FaceNegativeZ, -x, -y
		}
	}
	if ma == 0 || math.IsNaN(ma) {
		return 0, mgl64.Vec2{}, false
	}
	return face, mgl64.Vec2{(sc/ma + 1) / 2, (tc/ma + 1) / 2}, true
}

// SampleDirection implements colorsource.TextureCube. Alpha is returned as
// stored; the resolver overrides it. A zero direction samples as
// transparent black.
func (c *Cube) SampleDirection(s *colorsource.Sampler, dir mgl64.Vec3) colorsource.RGBA {
	face, st, ok := SelectFace(dir)
	if !ok {
		return colorsource.Transparent
	}
	return sampleBuf(c.faces[face], s, st)
}

// Face returns the texel buffer of face f, or nil for an invalid face.
func (c *Cube) Face(f colorsource.CubeFace) *image.Buf {
	if !f.Valid() {
		return nil
	}
	return c.faces[f]
}

// FaceRGBA8 returns face f as packed 8-bit RGBA, or nil for an invalid face.
func (c *Cube) FaceRGBA8(f colorsource.CubeFace) []byte {
	if b := c.Face(f); b != nil {
		return b.RGBA8()
	}
	return nil
}

// Size returns the edge length of each face in texels.
func (c *Cube) Size() int { return c.size }

// Valid reports whether the cube can still be bound.
func (c *Cube) Valid() bool {
	return c != nil && c.size > 0 && !c.released.Load()
}

// Release marks the cube unusable for new descriptors.
func (c *Cube) Release() {
	c.released.Store(true)
}
