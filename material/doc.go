// Package material combines color sources into lighting-model materials.
//
// A material is a set of channels, each a colorsource.Descriptor, plus a
// few plain scalar parameters. Sampling a material at a coordinate
// resolves every channel there. Scalar channels (metallic, roughness,
// ambient occlusion) read the red component of their source, so a
// grayscale texture or colorsource.Scalar both work.
//
// Two lighting models are provided: [BlinnPhong] and [PBR]. PBR ships the
// named presets listed by [PresetNames].
package material
