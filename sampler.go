package colorsource

import "github.com/gogpu/gputypes"

// Sampler describes filtering and addressing for texture-backed sources.
//
// The resolver never inspects a Sampler; it hands it to the texture being
// sampled. Software textures honour MagFilter and the U/V address modes.
// The GPU binder turns it into a hal sampler descriptor.
//
// A Sampler is a handle: descriptors hold a pointer, and two descriptors
// sharing a pointer share the sampler. Do not mutate a Sampler after a
// descriptor references it.
type Sampler struct {
	Label string

	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode
}

// SamplerOption configures a Sampler created by NewSampler.
type SamplerOption func(*Sampler)

// NewSampler creates a sampler. Defaults: linear filtering, clamp-to-edge on
// every axis.
//
// Example:
//
//	s := colorsource.NewSampler(
//	    colorsource.WithFilter(gputypes.FilterModeNearest),
//	    colorsource.WithAddressMode(gputypes.AddressModeRepeat),
//	)
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLabel sets the debug label.
func WithLabel(label string) SamplerOption {
	return func(s *Sampler) {
		s.Label = label
	}
}

// WithFilter sets both the magnification and minification filter.
func WithFilter(f gputypes.FilterMode) SamplerOption {
	return func(s *Sampler) {
		s.MagFilter = f
		s.MinFilter = f
	}
}

// WithAddressMode sets the address mode for all three axes.
func WithAddressMode(m gputypes.AddressMode) SamplerOption {
	return func(s *Sampler) {
		s.AddressModeU = m
		s.AddressModeV = m
		s.AddressModeW = m
	}
}

// WithAddressModes sets the address mode per axis.
func WithAddressModes(u, v, w gputypes.AddressMode) SamplerOption {
	return func(s *Sampler) {
		s.AddressModeU = u
		s.AddressModeV = v
		s.AddressModeW = w
	}
}

// LinearClamp returns a new linear, clamp-to-edge sampler.
func LinearClamp() *Sampler {
	return NewSampler(WithLabel("linear-clamp"))
}

// NearestClamp returns a new nearest, clamp-to-edge sampler.
func NearestClamp() *Sampler {
	return NewSampler(WithLabel("nearest-clamp"), WithFilter(gputypes.FilterModeNearest))
}

// LinearRepeat returns a new linear sampler that wraps on every axis.
func LinearRepeat() *Sampler {
	return NewSampler(WithLabel("linear-repeat"), WithAddressMode(gputypes.AddressModeRepeat))
}
