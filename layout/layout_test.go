package layout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/material"
	"github.com/gogpu/colorsource/texture"
)

func TestSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"ColorSourceArgs", (&ColorSourceArgs{}).Size(), ColorSourceSize},
		{"BlinnPhongArgs", (&BlinnPhongArgs{}).Size(), BlinnPhongSize},
		{"PBRArgs", (&PBRArgs{}).Size(), PBRSize},
		{"Transforms", (&Transforms{}).Size(), 432},
		{"FrameUniforms", (&FrameUniforms{}).Size(), 24},
		{"BlinnPhongLight", (&BlinnPhongLight{}).Size(), 32},
		{"LightingModel", (&LightingModel{}).Size(), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Size() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestWGSLSourcesEmbedded(t *testing.T) {
	for name, src := range map[string]string{
		"struct ColorSource":        ColorSourceSource,
		"struct BlinnPhongMaterial": MaterialsSource,
		"struct PBRMaterial":        MaterialsSource,
		"struct Transforms":         UniformsSource,
		"struct LightingModel":      UniformsSource,
	} {
		if !strings.Contains(src, name) {
			t.Errorf("embedded WGSL missing %q", name)
		}
	}
}

func TestResourceTable(t *testing.T) {
	table := NewResourceTable()
	a, b := colorsource.LinearClamp(), colorsource.NearestClamp()

	if id := table.Register(nil); id != 0 {
		t.Errorf("Register(nil) = %d, want 0", id)
	}
	idA := table.Register(a)
	idB := table.Register(b)
	if idA == 0 || idB == 0 || idA == idB {
		t.Fatalf("ids = %d, %d", idA, idB)
	}
	if again := table.Register(a); again != idA {
		t.Errorf("re-Register = %d, want %d", again, idA)
	}
	if h, ok := table.Lookup(idB); !ok || h != any(b) {
		t.Errorf("Lookup(%d) = %v, %v", idB, h, ok)
	}
	for _, id := range []ResourceID{0, 99} {
		if _, ok := table.Lookup(id); ok {
			t.Errorf("Lookup(%d) succeeded", id)
		}
	}
	if table.Len() != 2 || len(table.Handles()) != 2 {
		t.Errorf("Len = %d", table.Len())
	}
}

func TestColorSourceMarshal(t *testing.T) {
	a := ColorSourceArgs{Kind: 2, Face: 5, Texture: 7, Sampler: 9, Color: mgl32.Vec4{0.5, 0.25, 1, 1}}
	buf := a.Marshal()
	if len(buf) != ColorSourceSize {
		t.Fatalf("len = %d", len(buf))
	}
	if binary.LittleEndian.Uint32(buf[4:]) != 5 {
		t.Errorf("face bytes = %v", buf[4:8])
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[20:])); got != 0.25 {
		t.Errorf("color.g = %v", got)
	}

	back, err := UnmarshalColorSource(buf)
	if err != nil {
		t.Fatalf("UnmarshalColorSource failed: %v", err)
	}
	if back != a {
		t.Errorf("round trip = %+v, want %+v", back, a)
	}
	if _, err := UnmarshalColorSource(buf[:31]); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short err = %v", err)
	}
}

func TestPackUnpack(t *testing.T) {
	table := NewResourceTable()
	sampler := colorsource.LinearClamp()
	tex := texture.Solid2D(colorsource.Red)
	cube := texture.SolidCube([6]colorsource.RGBA{})
	depth, err := texture.DepthFunc(2, 2, func(u, _ float64) float64 { return u })
	if err != nil {
		t.Fatalf("DepthFunc failed: %v", err)
	}

	descs := []colorsource.Descriptor{
		colorsource.Flat(mgl64.Vec3{0.5, 0.25, 0.125}),
		colorsource.Must(colorsource.FromTexture2D(tex, sampler)),
		colorsource.Must(colorsource.FromTextureCube(cube, sampler, colorsource.FaceNegativeY)),
		colorsource.Must(colorsource.FromDepth2D(depth, sampler)),
	}
	for _, d := range descs {
		t.Run(d.String(), func(t *testing.T) {
			a, err := Pack(&d, table)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if colorsource.Kind(a.Kind) != d.Kind() {
				t.Errorf("Kind = %d, want %s", a.Kind, d.Kind())
			}
			back, err := Unpack(a, table)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if back.String() != d.String() {
				t.Errorf("Unpack = %s, want %s", back.String(), d.String())
			}
			uv := mgl64.Vec2{0.3, 0.6}
			if got, want := back.Resolve(uv), d.Resolve(uv); !got.ApproxEqual(want, 1e-6) {
				t.Errorf("Resolve = %v, want %v", got, want)
			}
		})
	}
	if table.Len() != 4 {
		t.Errorf("table.Len = %d, want 4 (three textures, one shared sampler)", table.Len())
	}
}

func TestPackFlat(t *testing.T) {
	d := colorsource.Flat(mgl64.Vec3{1, 0.5, 0})
	a, err := Pack(&d, NewResourceTable())
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if a.Color != (mgl32.Vec4{1, 0.5, 0, 1}) || a.Texture != 0 || a.Sampler != 0 {
		t.Errorf("Pack(flat) = %+v", a)
	}
}

func TestPackRejectsInvalid(t *testing.T) {
	tex := texture.Solid2D(colorsource.Red)
	d := colorsource.Must(colorsource.FromTexture2D(tex, colorsource.LinearClamp()))
	tex.Release()
	if _, err := Pack(&d, NewResourceTable()); !errors.Is(err, colorsource.ErrUnboundTexture) {
		t.Errorf("Pack(released) err = %v", err)
	}
}

func TestUnpackErrors(t *testing.T) {
	table := NewResourceTable()
	s := table.Register(colorsource.LinearClamp())
	tex := table.Register(texture.Solid2D(colorsource.Red))
	cube := table.Register(texture.SolidCube([6]colorsource.RGBA{}))

	tests := []struct {
		name string
		args ColorSourceArgs
		want error
	}{
		{"unknown kind", ColorSourceArgs{Kind: 9}, colorsource.ErrUnknownKind},
		{"missing sampler", ColorSourceArgs{Kind: 1, Texture: tex}, ErrUnknownResource},
		{"unknown texture", ColorSourceArgs{Kind: 1, Texture: 42, Sampler: s}, ErrUnknownResource},
		{"sampler as texture", ColorSourceArgs{Kind: 1, Texture: s, Sampler: s}, ErrResourceType},
		{"texture as sampler", ColorSourceArgs{Kind: 1, Texture: tex, Sampler: tex}, ErrResourceType},
		{"2D texture as cube", ColorSourceArgs{Kind: 2, Texture: tex, Sampler: s}, ErrResourceType},
		{"face out of range", ColorSourceArgs{Kind: 2, Face: 6, Texture: cube, Sampler: s}, colorsource.ErrInvalidFace},
		{"2D texture as depth", ColorSourceArgs{Kind: 3, Texture: tex, Sampler: s}, ErrResourceType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unpack(tt.args, table); !errors.Is(err, tt.want) {
				t.Errorf("Unpack err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBlinnPhongPackRoundTrip(t *testing.T) {
	table := NewResourceTable()
	tex := texture.Solid2D(colorsource.RGB(0.25, 0.5, 0.75))
	m := material.BlinnPhong{
		Ambient:   colorsource.Scalar(0.25),
		Diffuse:   colorsource.Must(colorsource.FromTexture2D(tex, colorsource.NearestClamp())),
		Specular:  colorsource.Flat(mgl64.Vec3{1, 1, 1}),
		Shininess: 64,
	}
	a, err := PackBlinnPhong(&m, table)
	if err != nil {
		t.Fatalf("PackBlinnPhong failed: %v", err)
	}
	buf := a.Marshal()
	if len(buf) != BlinnPhongSize {
		t.Fatalf("len = %d", len(buf))
	}
	decoded, err := UnmarshalBlinnPhong(buf)
	if err != nil {
		t.Fatalf("UnmarshalBlinnPhong failed: %v", err)
	}
	if decoded != a {
		t.Errorf("decoded = %+v, want %+v", decoded, a)
	}
	back, err := UnpackBlinnPhong(decoded, table)
	if err != nil {
		t.Fatalf("UnpackBlinnPhong failed: %v", err)
	}
	uv := mgl64.Vec2{0.5, 0.5}
	if got, want := back.Sample(uv), m.Sample(uv); got != want {
		t.Errorf("Sample = %+v, want %+v", got, want)
	}
}

func TestPBRMarshal(t *testing.T) {
	table := NewResourceTable()
	normal := texture.Solid2D(colorsource.RGB(0.5, 0.5, 1))
	m := material.NewPBR(
		material.WithAlbedo(mgl64.Vec3{1, 0.5, 0.25}),
		material.WithNormal(normal),
		material.WithEmissive(mgl64.Vec3{0, 0, 1}, 3),
		material.WithSoftScattering(0.5, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}),
	)
	a, err := PackPBR(&m, table)
	if err != nil {
		t.Fatalf("PackPBR failed: %v", err)
	}
	if a.Normal == 0 {
		t.Error("normal map not registered")
	}
	buf := a.Marshal()
	if len(buf) != PBRSize {
		t.Fatalf("len = %d", len(buf))
	}
	f32 := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if f32(16) != 1 || f32(20) != 0.5 {
		t.Errorf("albedo color = %v %v", f32(16), f32(20))
	}
	if f32(164) != 3 {
		t.Errorf("emissive intensity = %v", f32(164))
	}
	if f32(176) != 1 || f32(184) != 3 || f32(188) != 0.5 || f32(200) != 6 {
		t.Errorf("soft scattering block = %v", buf[176:208])
	}

	plain := material.NewPBR()
	b, err := PackPBR(&plain, NewResourceTable())
	if err != nil {
		t.Fatalf("PackPBR(plain) failed: %v", err)
	}
	if b.Normal != 0 {
		t.Errorf("Normal = %d, want 0 without a normal map", b.Normal)
	}
}

func TestUpgradeTexture2DSpecifier(t *testing.T) {
	tests := []struct {
		name string
		v0   Texture2DSpecifierV0
		want ColorSourceArgs
	}{
		{
			"color",
			Texture2DSpecifierV0{Source: 0, Color: mgl32.Vec3{1, 0, 0}, Sampler: 3},
			ColorSourceArgs{Kind: 0, Color: mgl32.Vec4{1, 0, 0, 1}},
		},
		{
			"texture2D",
			Texture2DSpecifierV0{Source: 1, Texture2D: 4, TextureCube: 5, Sampler: 3},
			ColorSourceArgs{Kind: 1, Texture: 4, Sampler: 3},
		},
		{
			"cube defaults to +X",
			Texture2DSpecifierV0{Source: 2, TextureCube: 5, Sampler: 3},
			ColorSourceArgs{Kind: 2, Face: 0, Texture: 5, Sampler: 3},
		},
		{
			"depth",
			Texture2DSpecifierV0{Source: 3, Depth2D: 6, Sampler: 3},
			ColorSourceArgs{Kind: 3, Texture: 6, Sampler: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpgradeTexture2DSpecifier(tt.v0)
			if err != nil {
				t.Fatalf("Upgrade failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Upgrade = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := UpgradeTexture2DSpecifier(Texture2DSpecifierV0{Source: 7}); !errors.Is(err, colorsource.ErrUnknownKind) {
		t.Errorf("unknown source err = %v", err)
	}
}

func TestUpgradeBlinnPhong(t *testing.T) {
	v0 := BlinnPhongArgsV0{
		Ambient:   BlinnPhongChannelV0{Source: 0, Color: mgl32.Vec3{0.1, 0.1, 0.1}},
		Diffuse:   BlinnPhongChannelV0{Source: 1, Texture: 2, Sampler: 1},
		Specular:  BlinnPhongChannelV0{Source: 0, Color: mgl32.Vec3{1, 1, 1}},
		Shininess: 16,
	}
	a, err := UpgradeBlinnPhong(v0)
	if err != nil {
		t.Fatalf("UpgradeBlinnPhong failed: %v", err)
	}
	if a.Diffuse != (ColorSourceArgs{Kind: 1, Texture: 2, Sampler: 1}) {
		t.Errorf("Diffuse = %+v", a.Diffuse)
	}
	if a.Ambient.Color != (mgl32.Vec4{0.1, 0.1, 0.1, 1}) || a.Shininess != 16 {
		t.Errorf("Ambient = %+v, Shininess = %v", a.Ambient, a.Shininess)
	}

	v0.Specular.Source = 2
	if _, err := UpgradeBlinnPhong(v0); !errors.Is(err, colorsource.ErrUnknownKind) {
		t.Errorf("cube channel err = %v", err)
	}
}

func TestTransforms(t *testing.T) {
	model := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))
	camera := mgl32.Translate3D(0, 0, 5)
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	tr := NewTransforms(model, camera, proj)

	if !tr.View.ApproxEqualThreshold(mgl32.Translate3D(0, 0, -5), 1e-5) {
		t.Errorf("View = %v", tr.View)
	}
	if !tr.ModelViewProjection.ApproxEqualThreshold(proj.Mul4(tr.View).Mul4(model), 1e-4) {
		t.Errorf("MVP mismatch")
	}
	if !tr.ModelNormal.ApproxEqualThreshold(mgl32.Ident3().Mul(0.5), 1e-6) {
		t.Errorf("ModelNormal = %v, want uniform 0.5 scale", tr.ModelNormal)
	}

	buf := tr.Marshal()
	if len(buf) != TransformsSize {
		t.Fatalf("len = %d", len(buf))
	}
	// Column 1 of the normal matrix starts at 384 + 16; its y component is 0.5.
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[384+16+4:])); got != 0.5 {
		t.Errorf("normal[1][1] = %v", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[384+12:])); got != 0 {
		t.Errorf("normal column padding = %v", got)
	}
}

func TestUniformMarshal(t *testing.T) {
	f := FrameUniforms{Index: 3, Time: 1.5, DeltaTime: 0.25, ViewportSize: [2]int32{640, -1}}
	buf := f.Marshal()
	if binary.LittleEndian.Uint32(buf[16:]) != 640 || int32(binary.LittleEndian.Uint32(buf[20:])) != -1 {
		t.Errorf("viewport bytes = %v", buf[16:24])
	}

	lights := []BlinnPhongLight{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 1, 1}, Power: 10},
		{Position: mgl32.Vec3{4, 5, 6}, Power: 2},
	}
	all := MarshalLights(lights)
	if len(all) != 64 {
		t.Fatalf("MarshalLights len = %d", len(all))
	}
	if !bytes.Equal(all[32:], lights[1].Marshal()) {
		t.Error("second light not at stride 32")
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(all[28:])); got != 10 {
		t.Errorf("power = %v", got)
	}

	lm := LightingModel{ScreenGamma: 2.2, LightCount: 2, AmbientLightColor: mgl32.Vec3{0.1, 0.2, 0.3}}
	lb := lm.Marshal()
	if int32(binary.LittleEndian.Uint32(lb[4:])) != 2 {
		t.Errorf("light count = %v", lb[4:8])
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(lb[24:])); got != 0.3 {
		t.Errorf("ambient.b = %v", got)
	}
}
