// Package texture provides CPU-side textures for the colorsource resolver.
//
// Three texture types are provided, one per texture-backed source kind:
//
//   - [Texture2D] implements colorsource.Texture2D over an RGBA32F buffer.
//   - [Cube] implements colorsource.TextureCube over six square faces.
//   - [Depth2D] implements colorsource.DepthTexture over a Depth32F buffer.
//
// All three honour the sampler's MagFilter and U/V address modes, are safe
// for concurrent sampling, and can be released. A released texture reports
// Valid() == false, so descriptor constructors reject it.
//
// Texture coordinates put (0,0) at the top-left texel corner, matching GPU
// texture space.
package texture
