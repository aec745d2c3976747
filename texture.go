package colorsource

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
)

// Texture2D is a 2D texture the resolver can sample.
// Implementations must be safe for concurrent reads.
type Texture2D interface {
	// Sample returns the texel value at uv using s. Alpha is returned as
	// stored.
	Sample(s *Sampler, uv mgl64.Vec2) RGBA
}

// TextureCube is a cube texture sampled along a direction.
// The direction is not normalized.
type TextureCube interface {
	SampleDirection(s *Sampler, dir mgl64.Vec3) RGBA
}

// DepthTexture is a single-channel depth texture.
type DepthTexture interface {
	SampleDepth(s *Sampler, uv mgl64.Vec2) float64
}

// validator is implemented by handles that can report whether they are
// still usable (for example a released texture).
type validator interface {
	Valid() bool
}

// handleBound reports whether h is a usable handle: not nil, not a typed
// nil, and valid when it can say so. It runs at construction and
// validation time only.
func handleBound(h any) bool {
	if h == nil {
		return false
	}
	if v, ok := h.(validator); ok {
		return v.Valid()
	}
	switch rv := reflect.ValueOf(h); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
