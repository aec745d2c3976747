package material

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
)

// PBR is a metallic-roughness material with clearcoat and soft
// scattering terms.
type PBR struct {
	Albedo colorsource.Descriptor

	// Normal is an optional tangent-space normal map. Nil means the
	// surface normal is used unperturbed.
	Normal colorsource.Texture2D

	Metallic         colorsource.Descriptor
	Roughness        colorsource.Descriptor
	AmbientOcclusion colorsource.Descriptor
	Emissive         colorsource.Descriptor

	EmissiveIntensity  float64
	Clearcoat          float64
	ClearcoatRoughness float64

	SoftScattering      float64
	SoftScatteringDepth mgl64.Vec3
	SoftScatteringTint  mgl64.Vec3
}

// PBRSample is a PBR material resolved at one coordinate.
type PBRSample struct {
	Albedo           mgl64.Vec3
	Metallic         float64
	Roughness        float64
	AmbientOcclusion float64

	// Emissive is the emissive color already scaled by EmissiveIntensity.
	Emissive mgl64.Vec3

	// Normal is the tangent-space normal, (0, 0, 1) without a normal map.
	Normal mgl64.Vec3

	Clearcoat           float64
	ClearcoatRoughness  float64
	SoftScattering      float64
	SoftScatteringDepth mgl64.Vec3
	SoftScatteringTint  mgl64.Vec3
}

// DefaultPBR returns the blank material: white albedo, zero metallic and
// roughness, full ambient occlusion, no emission.
func DefaultPBR() PBR {
	return PBR{
		Albedo:             colorsource.Flat(mgl64.Vec3{1, 1, 1}),
		Metallic:           colorsource.Scalar(0),
		Roughness:          colorsource.Scalar(0),
		AmbientOcclusion:   colorsource.Scalar(1),
		Emissive:           colorsource.Flat(mgl64.Vec3{}),
		ClearcoatRoughness: 0.04,
		SoftScatteringTint: mgl64.Vec3{1, 1, 1},
	}
}

// PBROption configures a material built by NewPBR.
type PBROption func(*PBR)

// NewPBR builds a material from a mid-gray dielectric base (albedo 0.5,
// metallic 0, roughness 0.5) and applies opts in order.
//
// Example:
//
//	m := material.NewPBR(
//	    material.WithAlbedo(mgl64.Vec3{0.7, 0.1, 0.1}),
//	    material.WithClearcoat(1, 0.03),
//	)
func NewPBR(opts ...PBROption) PBR {
	m := DefaultPBR()
	m.Albedo = colorsource.Flat(mgl64.Vec3{0.5, 0.5, 0.5})
	m.Roughness = colorsource.Scalar(0.5)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithAlbedo sets a flat albedo color.
func WithAlbedo(rgb mgl64.Vec3) PBROption {
	return WithAlbedoSource(colorsource.Flat(rgb))
}

// WithAlbedoSource sets the albedo channel.
func WithAlbedoSource(d colorsource.Descriptor) PBROption {
	return func(m *PBR) {
		m.Albedo = d
	}
}

// WithMetallic sets a constant metallic value.
func WithMetallic(v float64) PBROption {
	return WithMetallicSource(colorsource.Scalar(v))
}

// WithMetallicSource sets the metallic channel.
func WithMetallicSource(d colorsource.Descriptor) PBROption {
	return func(m *PBR) {
		m.Metallic = d
	}
}

// WithRoughness sets a constant roughness value.
func WithRoughness(v float64) PBROption {
	return WithRoughnessSource(colorsource.Scalar(v))
}

// WithRoughnessSource sets the roughness channel.
func WithRoughnessSource(d colorsource.Descriptor) PBROption {
	return func(m *PBR) {
		m.Roughness = d
	}
}

// WithAmbientOcclusion sets a constant ambient occlusion value.
func WithAmbientOcclusion(v float64) PBROption {
	return WithAmbientOcclusionSource(colorsource.Scalar(v))
}

// WithAmbientOcclusionSource sets the ambient occlusion channel.
func WithAmbientOcclusionSource(d colorsource.Descriptor) PBROption {
	return func(m *PBR) {
		m.AmbientOcclusion = d
	}
}

// WithEmissive sets a flat emissive color and its intensity.
func WithEmissive(rgb mgl64.Vec3, intensity float64) PBROption {
	return WithEmissiveSource(colorsource.Flat(rgb), intensity)
}

// WithEmissiveSource sets the emissive channel and its intensity.
func WithEmissiveSource(d colorsource.Descriptor, intensity float64) PBROption {
	return func(m *PBR) {
		m.Emissive = d
		m.EmissiveIntensity = intensity
	}
}

// WithNormal sets the normal map.
func WithNormal(tex colorsource.Texture2D) PBROption {
	return func(m *PBR) {
		m.Normal = tex
	}
}

// WithClearcoat sets the clearcoat layer strength and roughness.
func WithClearcoat(amount, roughness float64) PBROption {
	return func(m *PBR) {
		m.Clearcoat = amount
		m.ClearcoatRoughness = roughness
	}
}

// WithSoftScattering sets the subsurface approximation terms.
func WithSoftScattering(amount float64, depth, tint mgl64.Vec3) PBROption {
	return func(m *PBR) {
		m.SoftScattering = amount
		m.SoftScatteringDepth = depth
		m.SoftScatteringTint = tint
	}
}

// normalSampler samples normal maps. Normal maps are never bound through a
// descriptor, so the material owns this sampler.
var normalSampler = colorsource.LinearRepeat()

// Sample resolves every channel at uv.
func (m *PBR) Sample(uv mgl64.Vec2) PBRSample {
	s := PBRSample{
		Albedo:              m.Albedo.Resolve(uv).RGB(),
		Metallic:            m.Metallic.Resolve(uv).R,
		Roughness:           m.Roughness.Resolve(uv).R,
		AmbientOcclusion:    m.AmbientOcclusion.Resolve(uv).R,
		Emissive:            m.Emissive.Resolve(uv).RGB().Mul(m.EmissiveIntensity),
		Normal:              mgl64.Vec3{0, 0, 1},
		Clearcoat:           m.Clearcoat,
		ClearcoatRoughness:  m.ClearcoatRoughness,
		SoftScattering:      m.SoftScattering,
		SoftScatteringDepth: m.SoftScatteringDepth,
		SoftScatteringTint:  m.SoftScatteringTint,
	}
	if m.Normal != nil {
		n := m.Normal.Sample(normalSampler, uv).RGB()
		n = n.Mul(2).Sub(mgl64.Vec3{1, 1, 1})
		if n.Len() > 0 {
			s.Normal = n.Normalize()
		}
	}
	return s
}

// Validate checks every channel.
func (m *PBR) Validate() error {
	for _, ch := range []struct {
		name string
		d    *colorsource.Descriptor
	}{
		{"albedo", &m.Albedo},
		{"metallic", &m.Metallic},
		{"roughness", &m.Roughness},
		{"ambient occlusion", &m.AmbientOcclusion},
		{"emissive", &m.Emissive},
	} {
		if err := ch.d.Validate(); err != nil {
			return fmt.Errorf("material: pbr %s: %w", ch.name, err)
		}
	}
	return nil
}

// Resources returns every texture and sampler handle the material
// references, including the normal map.
func (m *PBR) Resources() []any {
	var res []any
	res = append(res, m.Albedo.Resources()...)
	if m.Normal != nil {
		res = append(res, m.Normal, normalSampler)
	}
	res = append(res, m.Metallic.Resources()...)
	res = append(res, m.Roughness.Resources()...)
	res = append(res, m.AmbientOcclusion.Resources()...)
	res = append(res, m.Emissive.Resources()...)
	return res
}
