//go:build !nogpu

package gpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/layout"
	"github.com/gogpu/colorsource/shader"
	"github.com/gogpu/colorsource/texture"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// newTestBinder skips when the shader compiler lacks a feature the
// resolver needs.
func newTestBinder(t *testing.T) (*Binder, func()) {
	t.Helper()
	if _, err := shader.SPIRV(); err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("shader.SPIRV failed: %v", err)
	}
	device, queue, cleanup := createNoopDevice(t)
	b, err := NewBinder(device, queue)
	if err != nil {
		cleanup()
		t.Fatalf("NewBinder failed: %v", err)
	}
	return b, func() {
		b.Destroy()
		cleanup()
	}
}

func TestBindGroupLayoutEntries(t *testing.T) {
	entries := BindGroupLayoutEntries(3)
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	for i, e := range entries {
		if e.Binding != uint32(3+i) {
			t.Errorf("entry %d binding = %d, want %d", i, e.Binding, 3+i)
		}
		if e.Visibility != gputypes.ShaderStageFragment {
			t.Errorf("entry %d visibility = %v", i, e.Visibility)
		}
	}
	if entries[0].Buffer == nil || entries[0].Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Error("binding 0 is not a uniform buffer")
	}
	if entries[0].Buffer.MinBindingSize != layout.ColorSourceSize {
		t.Errorf("MinBindingSize = %d", entries[0].Buffer.MinBindingSize)
	}
	if entries[2].Texture == nil || entries[2].Texture.ViewDimension != gputypes.TextureViewDimensionCube {
		t.Error("cube binding has wrong view dimension")
	}
	if entries[3].Texture == nil || entries[3].Texture.SampleType != gputypes.TextureSampleTypeDepth {
		t.Error("depth binding has wrong sample type")
	}
	if entries[4].Sampler == nil || entries[4].Sampler.Type != gputypes.SamplerBindingTypeFiltering {
		t.Error("sampler binding missing")
	}
}

func TestSamplerDescriptor(t *testing.T) {
	s := colorsource.NewSampler(
		colorsource.WithLabel("probe"),
		colorsource.WithFilter(gputypes.FilterModeNearest),
		colorsource.WithAddressModes(gputypes.AddressModeRepeat, gputypes.AddressModeMirrorRepeat, gputypes.AddressModeClampToEdge),
	)
	d := SamplerDescriptor(s)
	if d.Label != "probe" {
		t.Errorf("Label = %q", d.Label)
	}
	if d.MagFilter != gputypes.FilterModeNearest || d.MipmapFilter != gputypes.FilterModeNearest {
		t.Errorf("filters = %v/%v", d.MagFilter, d.MipmapFilter)
	}
	if d.AddressModeU != gputypes.AddressModeRepeat || d.AddressModeV != gputypes.AddressModeMirrorRepeat {
		t.Errorf("address modes = %v/%v", d.AddressModeU, d.AddressModeV)
	}

	def := SamplerDescriptor(nil)
	if def.MagFilter != gputypes.FilterModeLinear || def.AddressModeW != gputypes.AddressModeClampToEdge {
		t.Errorf("nil sampler descriptor = %+v", def)
	}
}

func TestBinderSamplerCache(t *testing.T) {
	b, cleanup := newTestBinder(t)
	defer cleanup()

	if b.Layout() == nil || b.ShaderModule() == nil {
		t.Fatal("binder missing layout or shader module")
	}

	s1 := colorsource.LinearClamp()
	s2 := colorsource.LinearClamp()
	h1, err := b.Sampler(s1)
	if err != nil {
		t.Fatalf("Sampler failed: %v", err)
	}
	again, _ := b.Sampler(s1)
	if again != h1 {
		t.Error("same handle produced a second HAL sampler")
	}
	if _, err := b.Sampler(s2); err != nil {
		t.Fatalf("Sampler failed: %v", err)
	}
	if b.SamplerCount() != 2 {
		t.Errorf("SamplerCount = %d, want 2 (handles are distinct)", b.SamplerCount())
	}
}

func TestBinderUpload(t *testing.T) {
	b, cleanup := newTestBinder(t)
	defer cleanup()

	table := layout.NewResourceTable()
	flat := colorsource.Flat(mgl64.Vec3{1, 0, 0})
	if buf, err := b.Upload(&flat, table); err != nil || buf == nil {
		t.Fatalf("Upload(flat) = %v, %v", buf, err)
	}
	if b.SamplerCount() != 0 {
		t.Errorf("flat upload created %d samplers", b.SamplerCount())
	}

	cube := texture.SolidCube([6]colorsource.RGBA{})
	d := colorsource.Must(colorsource.FromTextureCube(cube, colorsource.NearestClamp(), colorsource.FacePositiveY))
	if _, err := b.Upload(&d, table); err != nil {
		t.Fatalf("Upload(cube) failed: %v", err)
	}
	if b.SamplerCount() != 1 {
		t.Errorf("SamplerCount = %d, want 1", b.SamplerCount())
	}

	tex := texture.Solid2D(colorsource.White)
	bad := colorsource.Must(colorsource.FromTexture2D(tex, colorsource.LinearClamp()))
	tex.Release()
	if _, err := b.Upload(&bad, table); !errors.Is(err, colorsource.ErrUnboundTexture) {
		t.Errorf("Upload(released) err = %v", err)
	}
}

func TestBinderDestroy(t *testing.T) {
	b, cleanup := newTestBinder(t)
	defer cleanup()

	b.Destroy()
	b.Destroy()
	if _, err := b.Sampler(colorsource.LinearClamp()); !errors.Is(err, ErrBinderDestroyed) {
		t.Errorf("Sampler after Destroy err = %v", err)
	}
	flat := colorsource.Scalar(1)
	if _, err := b.Upload(&flat, layout.NewResourceTable()); !errors.Is(err, ErrBinderDestroyed) {
		t.Errorf("Upload after Destroy err = %v", err)
	}
}

// fakeTexture is a gpucontext.Texture recording its upload.
type fakeTexture struct {
	w, h int
	data []byte
}

func (f *fakeTexture) Width() int  { return f.w }
func (f *fakeTexture) Height() int { return f.h }

// fakeCreator records textures created through gpucontext.TextureCreator.
type fakeCreator struct {
	created []*fakeTexture
	err     error
}

func (c *fakeCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(data) != width*height*4 {
		return nil, errors.New("data size mismatch")
	}
	tex := &fakeTexture{w: width, h: height, data: data}
	c.created = append(c.created, tex)
	return tex, nil
}

func TestUploadTexture2D(t *testing.T) {
	c := &fakeCreator{}
	tex := texture.Solid2D(colorsource.Red)
	got, err := UploadTexture2D(c, tex)
	if err != nil {
		t.Fatalf("UploadTexture2D failed: %v", err)
	}
	if got.Width() != 1 || got.Height() != 1 {
		t.Errorf("size = %dx%d", got.Width(), got.Height())
	}
	if px := c.created[0].data; px[0] != 255 || px[1] != 0 || px[3] != 255 {
		t.Errorf("pixels = %v", px)
	}

	tex.Release()
	if _, err := UploadTexture2D(c, tex); !errors.Is(err, colorsource.ErrUnboundTexture) {
		t.Errorf("released err = %v", err)
	}
}

func TestUploadCubeFaces(t *testing.T) {
	c := &fakeCreator{}
	colors := [6]colorsource.RGBA{colorsource.Red, colorsource.Green, colorsource.Blue, colorsource.White, colorsource.Black, colorsource.Yellow}
	faces, err := UploadCubeFaces(c, texture.SolidCube(colors))
	if err != nil {
		t.Fatalf("UploadCubeFaces failed: %v", err)
	}
	for i, f := range faces {
		if f == nil {
			t.Fatalf("face %d missing", i)
		}
	}
	if px := c.created[colorsource.FacePositiveY].data; px[2] != 255 || px[0] != 0 {
		t.Errorf("+Y pixels = %v, want blue", px)
	}

	failing := &fakeCreator{err: errors.New("device lost")}
	if _, err := UploadCubeFaces(failing, texture.SolidCube(colors)); err == nil || !strings.Contains(err.Error(), "+X") {
		t.Errorf("err = %v, want face name", err)
	}
}
