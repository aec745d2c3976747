package colorsource

import "errors"

// Descriptor construction errors. Resolve itself never fails.
var (
	// ErrInvalidFace is returned when a cube face slice is outside [0, 5].
	ErrInvalidFace = errors.New("colorsource: cube face out of range")

	// ErrUnboundTexture is returned when a texture-backed kind has no usable
	// texture handle.
	ErrUnboundTexture = errors.New("colorsource: texture not bound")

	// ErrUnboundSampler is returned when a texture-backed kind has no sampler.
	ErrUnboundSampler = errors.New("colorsource: sampler not bound")

	// ErrUnknownKind is returned when validating a descriptor whose kind is
	// not one of the known kinds.
	ErrUnknownKind = errors.New("colorsource: unknown kind")
)
