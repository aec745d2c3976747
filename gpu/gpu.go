//go:build !nogpu

// Package gpu binds color sources to a wgpu HAL device.
//
// It provides the bind group layout matching the resolver shader, converts
// samplers into HAL descriptors, and uploads software textures through a
// gpucontext.TextureCreator. The shader itself lives in package shader.
//
// Build with -tags nogpu to exclude this package.
package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/layout"
	"github.com/gogpu/colorsource/shader"
)

// BindGroupLayoutEntries returns the five fragment-stage entries for one
// color source, numbered from base: the uniform record, a 2D texture, a
// cube texture, a depth texture and a filtering sampler.
func BindGroupLayoutEntries(base uint32) []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    base + shader.BindingSource,
			Visibility: gputypes.ShaderStageFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: layout.ColorSourceSize,
			},
		},
		{
			Binding:    base + shader.BindingTexture2D,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    base + shader.BindingTextureCube,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimensionCube,
			},
		},
		{
			Binding:    base + shader.BindingDepth2D,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeDepth,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    base + shader.BindingSampler,
			Visibility: gputypes.ShaderStageFragment,
			Sampler: &gputypes.SamplerBindingLayout{
				Type: gputypes.SamplerBindingTypeFiltering,
			},
		},
	}
}

// SamplerDescriptor converts s to a HAL sampler descriptor. The mipmap
// filter follows the minification filter. A nil sampler yields the
// linear clamp-to-edge default.
func SamplerDescriptor(s *colorsource.Sampler) *hal.SamplerDescriptor {
	if s == nil {
		s = colorsource.NewSampler()
	}
	return &hal.SamplerDescriptor{
		Label:        s.Label,
		AddressModeU: s.AddressModeU,
		AddressModeV: s.AddressModeV,
		AddressModeW: s.AddressModeW,
		MagFilter:    s.MagFilter,
		MinFilter:    s.MinFilter,
		MipmapFilter: s.MinFilter,
		LodMaxClamp:  32,
		Anisotropy:   1,
	}
}
