package layout

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformsSize is the packed size of Transforms. The normal matrix is
// stored as three vec3 columns padded to 16 bytes each.
const TransformsSize = 6*64 + 3*16

// Transforms holds the per-draw matrices.
// Matches the WGSL Transforms struct (see UniformsSource).
type Transforms struct {
	Model               mgl32.Mat4
	Camera              mgl32.Mat4
	View                mgl32.Mat4
	Projection          mgl32.Mat4
	ModelView           mgl32.Mat4
	ModelViewProjection mgl32.Mat4
	ModelNormal         mgl32.Mat3
}

// NewTransforms derives the full matrix set from a model matrix, the
// camera's world transform and a projection. The view matrix is the
// inverse of the camera transform.
func NewTransforms(model, camera, projection mgl32.Mat4) Transforms {
	view := camera.Inv()
	modelView := view.Mul4(model)
	return Transforms{
		Model:               model,
		Camera:              camera,
		View:                view,
		Projection:          projection,
		ModelView:           modelView,
		ModelViewProjection: projection.Mul4(modelView),
		ModelNormal:         model.Mat3().Inv().Transpose(),
	}
}

// Size returns the packed size in bytes.
func (t *Transforms) Size() int {
	return TransformsSize
}

// Marshal serializes the matrices column-major for GPU upload.
func (t *Transforms) Marshal() []byte {
	buf := make([]byte, TransformsSize)
	for i, m := range []*mgl32.Mat4{&t.Model, &t.Camera, &t.View, &t.Projection, &t.ModelView, &t.ModelViewProjection} {
		putF32s(buf, i*64, m[:]...)
	}
	for col := range 3 {
		putF32s(buf, 6*64+col*16, t.ModelNormal[col*3:col*3+3]...)
	}
	return buf
}

// FrameUniforms holds per-frame timing and viewport data.
// Matches the WGSL FrameUniforms struct (see UniformsSource).
// Size: 24 bytes.
type FrameUniforms struct {
	Index        uint32   // offset  0: frame counter
	Time         float32  // offset  4: seconds since start
	DeltaTime    float32  // offset  8: seconds since previous frame
	_pad         uint32   // offset 12: vec2<i32> alignment
	ViewportSize [2]int32 // offset 16: viewport in pixels
}

// Size returns the size of the struct in bytes.
func (f *FrameUniforms) Size() int {
	return int(unsafe.Sizeof(*f))
}

// Marshal serializes the struct for GPU upload.
func (f *FrameUniforms) Marshal() []byte {
	buf := make([]byte, f.Size())
	putU32(buf, 0, f.Index)
	putF32s(buf, 4, f.Time, f.DeltaTime)
	putU32(buf, 16, uint32(f.ViewportSize[0]))
	putU32(buf, 20, uint32(f.ViewportSize[1]))
	return buf
}

// BlinnPhongLight is one point light of the Blinn-Phong lighting model.
// Matches the WGSL BlinnPhongLight struct (see UniformsSource).
// Size: 32 bytes, which is also the array stride.
type BlinnPhongLight struct {
	Position mgl32.Vec3 // offset  0
	_pad     float32    // offset 12
	Color    mgl32.Vec3 // offset 16
	Power    float32    // offset 28
}

// Size returns the size of the struct in bytes.
func (l *BlinnPhongLight) Size() int {
	return int(unsafe.Sizeof(*l))
}

// Marshal serializes the struct for GPU upload.
func (l *BlinnPhongLight) Marshal() []byte {
	buf := make([]byte, l.Size())
	putF32s(buf, 0, l.Position[:]...)
	putF32s(buf, 16, l.Color[:]...)
	putF32(buf, 28, l.Power)
	return buf
}

// MarshalLights packs lights into a storage buffer with a 32-byte stride.
func MarshalLights(lights []BlinnPhongLight) []byte {
	buf := make([]byte, 0, len(lights)*32)
	for i := range lights {
		buf = append(buf, lights[i].Marshal()...)
	}
	return buf
}

// LightingModel holds the global Blinn-Phong lighting parameters. The
// lights themselves live in a separate storage buffer.
// Matches the WGSL LightingModel struct (see UniformsSource).
// Size: 32 bytes.
type LightingModel struct {
	ScreenGamma       float32    // offset  0
	LightCount        int32      // offset  4
	_pad              [2]float32 // offset  8
	AmbientLightColor mgl32.Vec3 // offset 16
	_pad2             float32    // offset 28
}

// Size returns the size of the struct in bytes.
func (l *LightingModel) Size() int {
	return int(unsafe.Sizeof(*l))
}

// Marshal serializes the struct for GPU upload.
func (l *LightingModel) Marshal() []byte {
	buf := make([]byte, l.Size())
	putF32(buf, 0, l.ScreenGamma)
	putU32(buf, 4, uint32(l.LightCount))
	putF32s(buf, 16, l.AmbientLightColor[:]...)
	return buf
}
