package colorsource

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Descriptor describes how to obtain a color: a flat value or a sample from
// one of three texture kinds.
//
// Exactly one strategy is active, selected by Kind. Descriptors are built by
// Flat, Scalar, FromTexture2D, FromTextureCube and FromDepth2D, which reject
// malformed input, and are immutable afterwards. The zero Descriptor is a
// flat black color.
//
// A Descriptor does not own its texture or sampler handles; they must outlive
// it.
type Descriptor struct {
	kind        Kind
	color       mgl64.Vec3
	texture2D   Texture2D
	textureCube TextureCube
	depth       DepthTexture
	face        CubeFace
	sampler     *Sampler
}

// Flat creates a descriptor that resolves to rgb with alpha 1.
func Flat(rgb mgl64.Vec3) Descriptor {
	return Descriptor{kind: KindColor, color: rgb}
}

// Scalar creates a flat descriptor with every channel set to v.
// Material channels such as metallic or roughness read the red component.
func Scalar(v float64) Descriptor {
	return Flat(mgl64.Vec3{v, v, v})
}

// FromTexture2D creates a descriptor that samples tex with s.
func FromTexture2D(tex Texture2D, s *Sampler) (Descriptor, error) {
	d := Descriptor{kind: KindTexture2D, texture2D: tex, sampler: s}
	return d, d.checked()
}

// FromTextureCube creates a descriptor that samples tex along the direction
// of face for each coordinate.
func FromTextureCube(tex TextureCube, s *Sampler, face CubeFace) (Descriptor, error) {
	d := Descriptor{kind: KindTextureCube, textureCube: tex, sampler: s, face: face}
	return d, d.checked()
}

// FromDepth2D creates a descriptor that samples the depth texture tex with s.
func FromDepth2D(tex DepthTexture, s *Sampler) (Descriptor, error) {
	d := Descriptor{kind: KindDepth2D, depth: tex, sampler: s}
	return d, d.checked()
}

// Must panics if err is non-nil and returns d otherwise.
// Use only when errors are programming mistakes (e.g., hardcoded presets).
func Must(d Descriptor, err error) Descriptor {
	if err != nil {
		panic(err)
	}
	return d
}

// checked validates d and logs rejections.
func (d *Descriptor) checked() error {
	err := d.Validate()
	if err != nil {
		Logger().Debug("colorsource: rejected descriptor",
			slog.String("kind", d.kind.String()),
			slog.Any("error", err))
		return err
	}
	return nil
}

// Validate checks the descriptor invariants: a known kind, bound handles for
// texture-backed kinds, and a face in [0, 5] for cube sources.
func (d *Descriptor) Validate() error {
	switch d.kind {
	case KindColor:
		return nil
	case KindTexture2D:
		if !handleBound(d.texture2D) {
			return fmt.Errorf("%w: %s", ErrUnboundTexture, d.kind)
		}
	case KindTextureCube:
		if !handleBound(d.textureCube) {
			return fmt.Errorf("%w: %s", ErrUnboundTexture, d.kind)
		}
		if !d.face.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidFace, uint32(d.face))
		}
	case KindDepth2D:
		if !handleBound(d.depth) {
			return fmt.Errorf("%w: %s", ErrUnboundTexture, d.kind)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int32(d.kind))
	}
	if d.sampler == nil {
		return fmt.Errorf("%w: %s", ErrUnboundSampler, d.kind)
	}
	return nil
}

// Kind returns the active strategy.
func (d *Descriptor) Kind() Kind {
	return d.kind
}

// FlatColor returns the flat color if the descriptor is KindColor.
func (d *Descriptor) FlatColor() (mgl64.Vec3, bool) {
	return d.color, d.kind == KindColor
}

// Texture2D returns the 2D texture if the descriptor is KindTexture2D.
func (d *Descriptor) Texture2D() (Texture2D, bool) {
	return d.texture2D, d.kind == KindTexture2D
}

// TextureCube returns the cube texture if the descriptor is KindTextureCube.
func (d *Descriptor) TextureCube() (TextureCube, bool) {
	return d.textureCube, d.kind == KindTextureCube
}

// Depth returns the depth texture if the descriptor is KindDepth2D.
func (d *Descriptor) Depth() (DepthTexture, bool) {
	return d.depth, d.kind == KindDepth2D
}

// Face returns the cube face if the descriptor is KindTextureCube.
func (d *Descriptor) Face() (CubeFace, bool) {
	return d.face, d.kind == KindTextureCube
}

// Sampler returns the sampler, or nil for flat colors.
func (d *Descriptor) Sampler() *Sampler {
	if !d.kind.TextureBacked() {
		return nil
	}
	return d.sampler
}

// Resources returns every texture and sampler handle the descriptor
// references, so callers can make them resident before drawing.
// Flat colors reference nothing.
func (d *Descriptor) Resources() []any {
	var res []any
	switch d.kind {
	case KindTexture2D:
		res = append(res, d.texture2D)
	case KindTextureCube:
		res = append(res, d.textureCube)
	case KindDepth2D:
		res = append(res, d.depth)
	default:
		return nil
	}
	return append(res, d.sampler)
}

// String returns a short description for logs, e.g. "TextureCube(+Y)".
func (d *Descriptor) String() string {
	switch d.kind {
	case KindColor:
		return fmt.Sprintf("Color(%g, %g, %g)", d.color[0], d.color[1], d.color[2])
	case KindTextureCube:
		return fmt.Sprintf("TextureCube(%s)", d.face)
	default:
		return d.kind.String()
	}
}
