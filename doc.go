// Package colorsource describes where a material channel gets its color.
//
// # Overview
//
// A color source is one of four kinds:
//   - a flat RGB color
//   - a 2D texture with a sampler
//   - one face of a cube texture with a sampler
//   - a 2D depth texture with a sampler
//
// A [Descriptor] holds exactly one of these. [Descriptor.Resolve] returns
// the RGBA color of the source at a 2D coordinate, and is the single
// function every shading path goes through.
//
// # Quick Start
//
//	import "github.com/gogpu/colorsource"
//
//	red := colorsource.Flat(mgl64.Vec3{1, 0, 0})
//	c := red.Resolve(mgl64.Vec2{0.5, 0.5}) // {1 0 0 1}
//
//	tex, _ := texture.Load("brick.png")
//	d, err := colorsource.FromTexture2D(tex, colorsource.LinearRepeat())
//	if err != nil {
//	    return err
//	}
//	c = d.Resolve(uv)
//
// # Resolution Rules
//
//   - Flat colors resolve with alpha 1.
//   - 2D textures return the sampled texel unchanged.
//   - Depth textures broadcast the depth value to R, G, B and A.
//   - Cube faces map uv to a direction with [CubeFace.Direction], sample
//     along it and force alpha to 1.
//
// # Architecture
//
// The library is organized into:
//   - colorsource: descriptors, samplers, cube faces and the CPU resolver
//   - texture: software Texture2D, cube and depth textures
//   - material: Blinn-Phong and PBR materials built from descriptors
//   - layout: GPU byte layouts of descriptors, materials and uniforms
//   - shader: the WGSL resolver and its SPIR-V compilation
//   - gpu: HAL bind group layout, samplers and uniform upload
//
// # Coordinate System
//
// uv is in [0,1]x[0,1] with the origin at the top-left texel, matching
// image rows. Cube face directions follow the usual cube map convention.
package colorsource

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
