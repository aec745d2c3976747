package colorsource

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// CubeFace selects one of the six faces of a cube texture.
type CubeFace uint32

// Cube faces in slice order.
const (
	FacePositiveX CubeFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// CubeFaceCount is the number of faces of a cube texture.
const CubeFaceCount = 6

var faceNames = [CubeFaceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// String returns the face name, e.g. "+X".
func (f CubeFace) String() string {
	if !f.Valid() {
		return fmt.Sprintf("CubeFace(%d)", uint32(f))
	}
	return faceNames[f]
}

// Valid reports whether f is in [0, 5].
func (f CubeFace) Valid() bool {
	return f < CubeFaceCount
}

// Direction maps a face coordinate to a direction on the unit cube surface.
// The fixed axis of the face is set to ±1 and the coordinate is copied into
// the two remaining axes:
//
//	+X ( 1,  v, -u)    -X (-1,  v,  u)
//	+Y ( u,  1, -v)    -Y ( u, -1,  v)
//	+Z ( u,  v,  1)    -Z (-u,  v, -1)
//
// The signs are not symmetric across faces. Shaders consuming cube sources
// depend on this exact table.
//
// The second result is false for an invalid face.
func (f CubeFace) Direction(uv mgl64.Vec2) (mgl64.Vec3, bool) {
	u, v := uv[0], uv[1]
	switch f {
	case FacePositiveX:
		return mgl64.Vec3{1, v, -u}, true
	case FaceNegativeX:
		return mgl64.Vec3{-1, v, u}, true
	case FacePositiveY:
		return mgl64.Vec3{u, 1, -v}, true
	case FaceNegativeY:
		return mgl64.Vec3{u, -1, v}, true
	case FacePositiveZ:
		return mgl64.Vec3{u, v, 1}, true
	case FaceNegativeZ:
		return mgl64.Vec3{-u, v, -1}, true
	default:
		return mgl64.Vec3{}, false
	}
}
