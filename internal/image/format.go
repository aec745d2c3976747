// Package image provides the float texel buffers backing software textures.
package image

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format represents a texel storage format.
type Format uint8

const (
	// FormatRGBA32F stores four float32 channels per texel.
	// Color textures and cube faces use this format.
	FormatRGBA32F Format = iota

	// FormatDepth32F stores one float32 depth value per texel.
	FormatDepth32F

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a texel format.
type FormatInfo struct {
	// Channels is the number of float32 values per texel.
	Channels int

	// IsDepth indicates a depth-only format.
	IsDepth bool

	// GPUFormat is the matching GPU texture format.
	GPUFormat gputypes.TextureFormat
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA32F: {
		Channels:  4,
		GPUFormat: gputypes.TextureFormatRGBA32Float,
	},
	FormatDepth32F: {
		Channels:  1,
		IsDepth:   true,
		GPUFormat: gputypes.TextureFormatDepth32Float,
	},
}

// Info returns the metadata for the format.
// Returns a zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Channels returns the number of float32 values per texel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA32F:
		return "RGBA32F"
	case FormatDepth32F:
		return "Depth32F"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}
