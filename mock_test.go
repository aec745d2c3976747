package colorsource

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gradientTexture returns (u, v, 0.5, u): a known alpha gradient.
type gradientTexture struct{}

func (gradientTexture) Sample(_ *Sampler, uv mgl64.Vec2) RGBA {
	return RGBA{R: uv[0], G: uv[1], B: 0.5, A: uv[0]}
}

// rampDepth returns u as depth.
type rampDepth struct{}

func (rampDepth) SampleDepth(_ *Sampler, uv mgl64.Vec2) float64 {
	return uv[0]
}

// solidCube returns one color per face, selected by the major axis of the
// direction. Ties prefer X, then Y.
type solidCube struct {
	faces [CubeFaceCount]RGBA
}

func (c *solidCube) SampleDirection(_ *Sampler, dir mgl64.Vec3) RGBA {
	return c.faces[majorFace(dir)]
}

func majorFace(dir mgl64.Vec3) CubeFace {
	ax, ay, az := math.Abs(dir[0]), math.Abs(dir[1]), math.Abs(dir[2])
	switch {
	case ax >= ay && ax >= az:
		if dir[0] >= 0 {
			return FacePositiveX
		}
		return FaceNegativeX
	case ay >= az:
		if dir[1] >= 0 {
			return FacePositiveY
		}
		return FaceNegativeY
	default:
		if dir[2] >= 0 {
			return FacePositiveZ
		}
		return FaceNegativeZ
	}
}

// recordingCube records every direction it is queried with and returns a
// translucent color so alpha forcing is observable.
type recordingCube struct {
	dirs    []mgl64.Vec3
	sampler *Sampler
}

func (c *recordingCube) SampleDirection(s *Sampler, dir mgl64.Vec3) RGBA {
	c.dirs = append(c.dirs, dir)
	c.sampler = s
	return RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.1}
}

// releasedTexture reports itself as no longer valid.
type releasedTexture struct{ gradientTexture }

func (releasedTexture) Valid() bool { return false }

// sixColorCube returns a cube with six distinct solid faces.
func sixColorCube() *solidCube {
	return &solidCube{faces: [CubeFaceCount]RGBA{
		{1, 0, 0, 0.5}, // +X
		{0, 1, 0, 0.5}, // -X
		{0, 0, 1, 0.5}, // +Y
		{1, 1, 0, 0.5}, // -Y
		{0, 1, 1, 0.5}, // +Z
		{1, 0, 1, 0.5}, // -Z
	}}
}

// pointerTexture is a pointer-receiver texture without a Valid method.
type pointerTexture struct{}

func (p *pointerTexture) Sample(_ *Sampler, uv mgl64.Vec2) RGBA {
	return RGBA{R: uv[0], G: uv[1], A: 1}
}

// pointerDepth is a pointer-receiver depth texture.
type pointerDepth struct{}

func (*pointerDepth) SampleDepth(_ *Sampler, uv mgl64.Vec2) float64 { return uv[1] }
