package colorsource

import "github.com/go-gl/mathgl/mgl64"

// Resolve returns the color of d at uv.
//
// uv is normally in [0,1]x[0,1]; its meaning (texture or screen space) is up
// to the caller. Resolve is pure: it does not allocate, mutate d, or cache,
// and it is safe to call concurrently on the same descriptor.
//
// Per kind:
//   - KindColor: the flat color with alpha 1.
//   - KindTexture2D: the raw texture sample.
//   - KindDepth2D: the depth sample broadcast to all four components.
//   - KindTextureCube: the cube sample along Face().Direction(uv), alpha 1.
//
// A kind this package does not know, or a cube face outside [0, 5], yields
// the zero color without sampling. Descriptors built by the constructors
// never reach either branch.
func (d *Descriptor) Resolve(uv mgl64.Vec2) RGBA {
	switch d.kind {
	case KindColor:
		return RGBA{R: d.color[0], G: d.color[1], B: d.color[2], A: 1}
	case KindTexture2D:
		return d.texture2D.Sample(d.sampler, uv)
	case KindTextureCube:
		dir, ok := d.face.Direction(uv)
		if !ok {
			return Transparent
		}
		c := d.textureCube.SampleDirection(d.sampler, dir)
		c.A = 1
		return c
	case KindDepth2D:
		return Splat(d.depth.SampleDepth(d.sampler, uv))
	default:
		return Transparent
	}
}

// Resolve is the function form of (*Descriptor).Resolve.
func Resolve(d *Descriptor, uv mgl64.Vec2) RGBA {
	return d.Resolve(uv)
}
