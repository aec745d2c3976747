// Package layout defines the packed, GPU-facing form of color sources,
// materials and per-draw uniforms.
//
// Host code works with colorsource.Descriptor and the material types.
// Before upload they are packed into fixed-size little-endian records whose
// byte layout matches the WGSL structs in [ColorSourceSource],
// [MaterialsSource] and [UniformsSource]. Texture and sampler handles are
// replaced by ResourceIDs allocated from a ResourceTable, and Unpack maps
// them back.
//
// Earlier revisions of the material records are kept as V0 types with
// Upgrade functions that convert them to the current layout.
package layout

import _ "embed"

// ColorSourceSource is the WGSL definition of the ColorSource struct.
// Matches ColorSourceArgs exactly.
//
//go:embed assets/color_source.wgsl
var ColorSourceSource string

// MaterialsSource is the WGSL definition of the material structs. It
// depends on ColorSourceSource.
//
//go:embed assets/materials.wgsl
var MaterialsSource string

// UniformsSource is the WGSL definition of the per-draw uniform structs.
//
//go:embed assets/uniforms.wgsl
var UniformsSource string
