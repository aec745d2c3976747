package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/colorsource"
)

// Texture2DSpecifierV0 is the first revision of the color source record.
// It carries one id per texture kind and no cube face.
type Texture2DSpecifierV0 struct {
	Source      uint32
	Color       mgl32.Vec3
	Texture2D   ResourceID
	TextureCube ResourceID
	Depth2D     ResourceID
	Sampler     ResourceID
}

// UpgradeTexture2DSpecifier converts a V0 record to ColorSourceArgs.
// Cube sources had no face in V0 and upgrade to the +X face.
func UpgradeTexture2DSpecifier(v Texture2DSpecifierV0) (ColorSourceArgs, error) {
	a := ColorSourceArgs{Kind: v.Source, Sampler: v.Sampler}
	switch colorsource.Kind(int32(v.Source)) {
	case colorsource.KindColor:
		a.Color = v.Color.Vec4(1)
		a.Sampler = 0
	case colorsource.KindTexture2D:
		a.Texture = v.Texture2D
	case colorsource.KindTextureCube:
		a.Texture = v.TextureCube
		a.Face = uint32(colorsource.FacePositiveX)
	case colorsource.KindDepth2D:
		a.Texture = v.Depth2D
	default:
		return ColorSourceArgs{}, fmt.Errorf("layout: upgrade: %w: %d", colorsource.ErrUnknownKind, v.Source)
	}
	return a, nil
}

// BlinnPhongChannelV0 is one flattened channel of BlinnPhongArgsV0.
// V0 materials only supported flat colors and 2D textures.
type BlinnPhongChannelV0 struct {
	Source  uint32
	Color   mgl32.Vec3
	Texture ResourceID
	Sampler ResourceID
}

func (c BlinnPhongChannelV0) upgrade() (ColorSourceArgs, error) {
	switch colorsource.Kind(int32(c.Source)) {
	case colorsource.KindColor:
		return ColorSourceArgs{Kind: c.Source, Color: c.Color.Vec4(1)}, nil
	case colorsource.KindTexture2D:
		return ColorSourceArgs{Kind: c.Source, Texture: c.Texture, Sampler: c.Sampler}, nil
	default:
		return ColorSourceArgs{}, fmt.Errorf("layout: upgrade: %w: %d not supported by v0 materials",
			colorsource.ErrUnknownKind, c.Source)
	}
}

// BlinnPhongArgsV0 is the first revision of the Blinn-Phong record, with
// each channel's fields stored inline.
type BlinnPhongArgsV0 struct {
	Ambient   BlinnPhongChannelV0
	Diffuse   BlinnPhongChannelV0
	Specular  BlinnPhongChannelV0
	Shininess float32
}

// UpgradeBlinnPhong converts a V0 record to BlinnPhongArgs.
func UpgradeBlinnPhong(v BlinnPhongArgsV0) (BlinnPhongArgs, error) {
	var (
		a   = BlinnPhongArgs{Shininess: v.Shininess}
		err error
	)
	if a.Ambient, err = v.Ambient.upgrade(); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("ambient: %w", err)
	}
	if a.Diffuse, err = v.Diffuse.upgrade(); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("diffuse: %w", err)
	}
	if a.Specular, err = v.Specular.upgrade(); err != nil {
		return BlinnPhongArgs{}, fmt.Errorf("specular: %w", err)
	}
	return a, nil
}
