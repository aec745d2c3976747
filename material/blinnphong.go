package material

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
)

// BlinnPhong is a Blinn-Phong material with three color channels.
type BlinnPhong struct {
	Ambient   colorsource.Descriptor
	Diffuse   colorsource.Descriptor
	Specular  colorsource.Descriptor
	Shininess float64
}

// BlinnPhongSample is a BlinnPhong material resolved at one coordinate.
type BlinnPhongSample struct {
	Ambient   mgl64.Vec3
	Diffuse   mgl64.Vec3
	Specular  mgl64.Vec3
	Shininess float64
}

// Sample resolves every channel at uv.
func (m *BlinnPhong) Sample(uv mgl64.Vec2) BlinnPhongSample {
	return BlinnPhongSample{
		Ambient:   m.Ambient.Resolve(uv).RGB(),
		Diffuse:   m.Diffuse.Resolve(uv).RGB(),
		Specular:  m.Specular.Resolve(uv).RGB(),
		Shininess: m.Shininess,
	}
}

// Validate checks every channel.
func (m *BlinnPhong) Validate() error {
	for _, ch := range []struct {
		name string
		d    *colorsource.Descriptor
	}{
		{"ambient", &m.Ambient},
		{"diffuse", &m.Diffuse},
		{"specular", &m.Specular},
	} {
		if err := ch.d.Validate(); err != nil {
			return fmt.Errorf("material: blinn-phong %s: %w", ch.name, err)
		}
	}
	return nil
}

// Resources returns the texture and sampler handles of every channel.
func (m *BlinnPhong) Resources() []any {
	var res []any
	res = append(res, m.Ambient.Resources()...)
	res = append(res, m.Diffuse.Resources()...)
	res = append(res, m.Specular.Resources()...)
	return res
}
