package layout

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/material"
)

// Packed material sizes in bytes.
const (
	BlinnPhongSize = 112
	PBRSize        = 208
)

// BlinnPhongArgs is the packed form of material.BlinnPhong.
// Matches the WGSL BlinnPhongMaterial struct (see MaterialsSource).
// Size: 112 bytes (uniform aligned).
type BlinnPhongArgs struct {
	Ambient   ColorSourceArgs // offset  0
	Diffuse   ColorSourceArgs // offset 32
	Specular  ColorSourceArgs // offset 64
	Shininess float32         // offset 96
	_pad      [3]float32      // offset 100: padding to 112 bytes
}

// Size returns the size of the struct in bytes.
func (a *BlinnPhongArgs) Size() int {
	return int(unsafe.Sizeof(*a))
}

// Marshal serializes the record for GPU upload.
func (a *BlinnPhongArgs) Marshal() []byte {
	buf := make([]byte, BlinnPhongSize)
	a.Ambient.put(buf, 0)
	a.Diffuse.put(buf, 32)
	a.Specular.put(buf, 64)
	putF32(buf, 96, a.Shininess)
	return buf
}

// UnmarshalBlinnPhong decodes a record written by BlinnPhongArgs.Marshal.
func UnmarshalBlinnPhong(buf []byte) (BlinnPhongArgs, error) {
	if len(buf) < BlinnPhongSize {
		return BlinnPhongArgs{}, fmt.Errorf("%w: %d bytes, want %d", ErrShortBuffer, len(buf), BlinnPhongSize)
	}
	return BlinnPhongArgs{
		Ambient:   getColorSource(buf, 0),
		Diffuse:   getColorSource(buf, 32),
		Specular:  getColorSource(buf, 64),
		Shininess: getF32(buf, 96),
	}, nil
}

// PackBlinnPhong packs every channel of m, registering resources in t.
func PackBlinnPhong(m *material.BlinnPhong, t *ResourceTable) (BlinnPhongArgs, error) {
	var (
		a   = BlinnPhongArgs{Shininess: float32(m.Shininess)}
		err error
	)
	if a.Ambient, err = Pack(&m.Ambient, t); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("ambient: %w", err)
	}
	if a.Diffuse, err = Pack(&m.Diffuse, t); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("diffuse: %w", err)
	}
	if a.Specular, err = Pack(&m.Specular, t); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("specular: %w", err)
	}
	return a, nil
}

// UnpackBlinnPhong rebuilds a material from its packed form.
func UnpackBlinnPhong(a BlinnPhongArgs, t *ResourceTable) (material.BlinnPhong, error) {
	var (
		m   = material.BlinnPhong{Shininess: float64(a.Shininess)}
		err error
	)
	if m.Ambient, err = Unpack(a.Ambient, t); err != nil {
		return material.BlinnPhong{}, fmt.Errorf("ambient: %w", err)
	}
	if m.Diffuse, err = Unpack(a.Diffuse, t); err != nil {
		return material.BlinnPhong{}, fmt.Errorf("diffuse: %w", err)
	}
	if m.Specular, err = Unpack(a.Specular, t); err != nil {
		return material.BlinnPhong{}, fmt.Errorf("specular: %w", err)
	}
	return m, nil
}

// PBRArgs is the packed form of material.PBR.
// Matches the WGSL PBRMaterial struct (see MaterialsSource).
// Size: 208 bytes (uniform aligned).
type PBRArgs struct {
	Albedo              ColorSourceArgs // offset   0
	Metallic            ColorSourceArgs // offset  32
	Roughness           ColorSourceArgs // offset  64
	AmbientOcclusion    ColorSourceArgs // offset  96
	Emissive            ColorSourceArgs // offset 128
	Normal              ResourceID      // offset 160: normal map id, 0 for none
	EmissiveIntensity   float32         // offset 164
	Clearcoat           float32         // offset 168
	ClearcoatRoughness  float32         // offset 172
	SoftScatteringDepth mgl32.Vec3      // offset 176
	SoftScattering      float32         // offset 188
	SoftScatteringTint  mgl32.Vec3      // offset 192
	_pad                float32         // offset 204: padding to 208 bytes
}

// Size returns the size of the struct in bytes.
func (a *PBRArgs) Size() int {
	return int(unsafe.Sizeof(*a))
}

// Marshal serializes the record for GPU upload.
func (a *PBRArgs) Marshal() []byte {
	buf := make([]byte, PBRSize)
	a.Albedo.put(buf, 0)
	a.Metallic.put(buf, 32)
	a.Roughness.put(buf, 64)
	a.AmbientOcclusion.put(buf, 96)
	a.Emissive.put(buf, 128)
	putU32(buf, 160, uint32(a.Normal))
	putF32s(buf, 164, a.EmissiveIntensity, a.Clearcoat, a.ClearcoatRoughness)
	putF32s(buf, 176, a.SoftScatteringDepth[:]...)
	putF32(buf, 188, a.SoftScattering)
	putF32s(buf, 192, a.SoftScatteringTint[:]...)
	return buf
}

// PackPBR packs every channel of m, registering resources in t.
func PackPBR(m *material.PBR, t *ResourceTable) (PBRArgs, error) {
	a := PBRArgs{
		Normal:              t.Register(m.Normal),
		EmissiveIntensity:   float32(m.EmissiveIntensity),
		Clearcoat:           float32(m.Clearcoat),
		ClearcoatRoughness:  float32(m.ClearcoatRoughness),
		SoftScatteringDepth: vec3(m.SoftScatteringDepth),
		SoftScattering:      float32(m.SoftScattering),
		SoftScatteringTint:  vec3(m.SoftScatteringTint),
	}
	channels := []struct {
		name string
		src  *colorsource.Descriptor
		dst  *ColorSourceArgs
	}{
		{"albedo", &m.Albedo, &a.Albedo},
		{"metallic", &m.Metallic, &a.Metallic},
		{"roughness", &m.Roughness, &a.Roughness},
		{"ambient occlusion", &m.AmbientOcclusion, &a.AmbientOcclusion},
		{"emissive", &m.Emissive, &a.Emissive},
	}
	for _, ch := range channels {
		packed, err := Pack(ch.src, t)
		if err != nil {
			return PBRArgs{}, fmt.Errorf("%s: %w", ch.name, err)
		}
		*ch.dst = packed
	}
	return a, nil
}

func vec3(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
