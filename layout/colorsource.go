package layout

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
)

// ColorSourceSize is the packed size of ColorSourceArgs in bytes.
const ColorSourceSize = 32

// ColorSourceArgs is the packed form of a colorsource.Descriptor.
// Matches the WGSL ColorSource struct (see ColorSourceSource).
// Size: 32 bytes (uniform aligned).
type ColorSourceArgs struct {
	Kind    uint32     // offset  0: colorsource.Kind
	Face    uint32     // offset  4: cube face, 0 unless Kind is TextureCube
	Texture ResourceID // offset  8: texture id, 0 for flat colors
	Sampler ResourceID // offset 12: sampler id, 0 for flat colors
	Color   mgl32.Vec4 // offset 16: flat color with w = 1, zero otherwise
}

// Size returns the size of the struct in bytes.
func (a *ColorSourceArgs) Size() int {
	return int(unsafe.Sizeof(*a))
}

// Marshal serializes the record for GPU upload.
func (a *ColorSourceArgs) Marshal() []byte {
	buf := make([]byte, ColorSourceSize)
	a.put(buf, 0)
	return buf
}

func (a *ColorSourceArgs) put(buf []byte, off int) {
	putU32(buf, off, a.Kind)
	putU32(buf, off+4, a.Face)
	putU32(buf, off+8, uint32(a.Texture))
	putU32(buf, off+12, uint32(a.Sampler))
	putF32s(buf, off+16, a.Color[:]...)
}

// UnmarshalColorSource decodes a record written by Marshal.
func UnmarshalColorSource(buf []byte) (ColorSourceArgs, error) {
	if len(buf) < ColorSourceSize {
		return ColorSourceArgs{}, fmt.Errorf("%w: %d bytes, want %d", ErrShortBuffer, len(buf), ColorSourceSize)
	}
	return getColorSource(buf, 0), nil
}

func getColorSource(buf []byte, off int) ColorSourceArgs {
	return ColorSourceArgs{
		Kind:    getU32(buf, off),
		Face:    getU32(buf, off+4),
		Texture: ResourceID(getU32(buf, off+8)),
		Sampler: ResourceID(getU32(buf, off+12)),
		Color: mgl32.Vec4{
			getF32(buf, off+16), getF32(buf, off+20),
			getF32(buf, off+24), getF32(buf, off+28),
		},
	}
}

// Pack converts d to its packed form, registering its texture and sampler
// in t. The descriptor is validated first.
func Pack(d *colorsource.Descriptor, t *ResourceTable) (ColorSourceArgs, error) {
	if err := d.Validate(); err != nil {
		return ColorSourceArgs{}, fmt.Errorf("layout: pack: %w", err)
	}

	a := ColorSourceArgs{Kind: uint32(d.Kind())}
	switch d.Kind() {
	case colorsource.KindColor:
		c, _ := d.FlatColor()
		a.Color = mgl32.Vec4{float32(c[0]), float32(c[1]), float32(c[2]), 1}
		return a, nil
	case colorsource.KindTexture2D:
		tex, _ := d.Texture2D()
		a.Texture = t.Register(tex)
	case colorsource.KindTextureCube:
		tex, _ := d.TextureCube()
		face, _ := d.Face()
		a.Texture = t.Register(tex)
		a.Face = uint32(face)
	case colorsource.KindDepth2D:
		tex, _ := d.Depth()
		a.Texture = t.Register(tex)
	}
	a.Sampler = t.Register(d.Sampler())
	return a, nil
}

// Unpack rebuilds a descriptor from a packed record, resolving ids through
// t. Unknown kinds, unknown or mistyped ids and out-of-range faces are
// rejected.
func Unpack(a ColorSourceArgs, t *ResourceTable) (colorsource.Descriptor, error) {
	kind := colorsource.Kind(int32(a.Kind))
	if kind == colorsource.KindColor {
		return colorsource.Flat(mgl64.Vec3{float64(a.Color[0]), float64(a.Color[1]), float64(a.Color[2])}), nil
	}
	if !kind.Valid() {
		return colorsource.Descriptor{}, fmt.Errorf("layout: unpack: %w: %d", colorsource.ErrUnknownKind, a.Kind)
	}

	s, err := lookup[*colorsource.Sampler](t, a.Sampler)
	if err != nil {
		return colorsource.Descriptor{}, fmt.Errorf("layout: unpack %s sampler: %w", kind, err)
	}

	var d colorsource.Descriptor
	switch kind {
	case colorsource.KindTexture2D:
		var tex colorsource.Texture2D
		if tex, err = lookup[colorsource.Texture2D](t, a.Texture); err == nil {
			d, err = colorsource.FromTexture2D(tex, s)
		}
	case colorsource.KindTextureCube:
		var tex colorsource.TextureCube
		if tex, err = lookup[colorsource.TextureCube](t, a.Texture); err == nil {
			d, err = colorsource.FromTextureCube(tex, s, colorsource.CubeFace(a.Face))
		}
	case colorsource.KindDepth2D:
		var tex colorsource.DepthTexture
		if tex, err = lookup[colorsource.DepthTexture](t, a.Texture); err == nil {
			d, err = colorsource.FromDepth2D(tex, s)
		}
	}
	if err != nil {
		return colorsource.Descriptor{}, fmt.Errorf("layout: unpack %s: %w", kind, err)
	}
	return d, nil
}
