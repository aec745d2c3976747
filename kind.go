package colorsource

import "fmt"

// Kind selects which sampling strategy a Descriptor uses.
//
// The numeric values match the shader-side enum and the packed layout,
// so they must not be reordered.
type Kind int32

const (
	// KindColor returns a flat color with alpha forced to 1.
	KindColor Kind = iota

	// KindTexture2D samples a 2D texture at the given coordinate.
	KindTexture2D

	// KindTextureCube samples a cube texture along a direction derived from
	// the coordinate and the descriptor's face.
	KindTextureCube

	// KindDepth2D samples a depth texture and broadcasts the value.
	KindDepth2D

	// kindCount is the number of kinds (for internal use).
	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "Color"
	case KindTexture2D:
		return "Texture2D"
	case KindTextureCube:
		return "TextureCube"
	case KindDepth2D:
		return "Depth2D"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindColor && k < kindCount
}

// TextureBacked reports whether descriptors of this kind need a texture and
// a sampler.
func (k Kind) TextureBacked() bool {
	return k == KindTexture2D || k == KindTextureCube || k == KindDepth2D
}
