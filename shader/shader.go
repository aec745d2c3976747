// Package shader holds the WGSL form of the color source resolver and
// compiles it to SPIR-V.
//
// The shader binds one color source in group 0:
//
//	binding 0  uniform ColorSource (layout.ColorSourceArgs)
//	binding 1  texture_2d<f32>
//	binding 2  texture_cube<f32>
//	binding 3  texture_depth_2d
//	binding 4  sampler
//
// Every binding must be populated even when the active kind does not use
// it; callers bind placeholder textures for the unused slots.
package shader

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"

	"github.com/gogpu/colorsource/layout"
)

//go:embed shaders/resolve.wgsl
var resolveWGSL string

// Bind group slots of the resolver shader.
const (
	Group = 0

	BindingSource      = 0
	BindingTexture2D   = 1
	BindingTextureCube = 2
	BindingDepth2D     = 3
	BindingSampler     = 4
)

// Entry point names.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Source returns the complete WGSL module: the ColorSource struct
// followed by the resolver.
func Source() string {
	return layout.ColorSourceSource + "\n" + resolveWGSL
}

// Compile compiles Source to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(Source())
	if err != nil {
		return nil, fmt.Errorf("shader: compile resolver: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

var spirvOnce = sync.OnceValues(Compile)

// SPIRV returns the compiled resolver, compiling it on first use.
// The returned slice is shared and must not be modified.
func SPIRV() ([]uint32, error) {
	return spirvOnce()
}
