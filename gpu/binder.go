//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/layout"
	"github.com/gogpu/colorsource/shader"
)

// ErrBinderDestroyed is returned when using a Binder after Destroy.
var ErrBinderDestroyed = errors.New("gpu: binder destroyed")

// Binder owns the device objects shared by every color source draw: the
// bind group layout, the resolver shader module and one HAL sampler per
// colorsource.Sampler handle.
//
// Binder is safe for concurrent use.
type Binder struct {
	device hal.Device
	queue  hal.Queue

	layout hal.BindGroupLayout
	module hal.ShaderModule

	mu        sync.Mutex
	samplers  map[*colorsource.Sampler]hal.Sampler
	buffers   []hal.Buffer
	destroyed bool
}

// NewBinder compiles the resolver shader and creates the bind group layout
// on device. queue is used to upload uniform records.
func NewBinder(device hal.Device, queue hal.Queue) (*Binder, error) {
	words, err := shader.SPIRV()
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "colorsource_resolve",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create shader module: %w", err)
	}

	bgl, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "colorsource_bind_layout",
		Entries: BindGroupLayoutEntries(0),
	})
	if err != nil {
		device.DestroyShaderModule(module)
		return nil, fmt.Errorf("gpu: create bind group layout: %w", err)
	}

	colorsource.Logger().Info("gpu: binder ready", slog.Int("spirvWords", len(words)))
	return &Binder{
		device:   device,
		queue:    queue,
		layout:   bgl,
		module:   module,
		samplers: make(map[*colorsource.Sampler]hal.Sampler),
	}, nil
}

// Layout returns the bind group layout.
func (b *Binder) Layout() hal.BindGroupLayout { return b.layout }

// ShaderModule returns the compiled resolver.
func (b *Binder) ShaderModule() hal.ShaderModule { return b.module }

// Sampler returns the HAL sampler for s, creating it on first use.
func (b *Binder) Sampler(s *colorsource.Sampler) (hal.Sampler, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.destroyed {
		return nil, ErrBinderDestroyed
	}
	return b.samplerLocked(s)
}

func (b *Binder) samplerLocked(s *colorsource.Sampler) (hal.Sampler, error) {
	if hs, ok := b.samplers[s]; ok {
		return hs, nil
	}
	hs, err := b.device.CreateSampler(SamplerDescriptor(s))
	if err != nil {
		return nil, fmt.Errorf("gpu: create sampler %q: %w", s.Label, err)
	}
	b.samplers[s] = hs
	return hs, nil
}

// Upload packs d, writes it into a new uniform buffer and makes sure its
// sampler exists. The buffer is owned by the Binder and released by
// Destroy.
func (b *Binder) Upload(d *colorsource.Descriptor, table *layout.ResourceTable) (hal.Buffer, error) {
	args, err := layout.Pack(d, table)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.destroyed {
		return nil, ErrBinderDestroyed
	}
	if s := d.Sampler(); s != nil {
		if _, err := b.samplerLocked(s); err != nil {
			return nil, err
		}
	}

	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "colorsource_uniform",
		Size:  layout.ColorSourceSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create uniform buffer: %w", err)
	}
	if err := b.queue.WriteBuffer(buf, 0, args.Marshal()); err != nil {
		b.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("gpu: write uniform buffer: %w", err)
	}
	b.buffers = append(b.buffers, buf)
	return buf, nil
}

// SamplerCount returns the number of cached HAL samplers.
func (b *Binder) SamplerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samplers)
}

// Destroy releases every device object the binder created.
// Destroy is safe to call multiple times.
func (b *Binder) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.destroyed {
		return
	}
	b.destroyed = true

	for _, buf := range b.buffers {
		b.device.DestroyBuffer(buf)
	}
	b.buffers = nil
	for _, s := range b.samplers {
		b.device.DestroySampler(s)
	}
	clear(b.samplers)
	if b.layout != nil {
		b.device.DestroyBindGroupLayout(b.layout)
	}
	if b.module != nil {
		b.device.DestroyShaderModule(b.module)
	}
}
