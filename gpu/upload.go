//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/texture"
)

// UploadTexture2D creates a GPU texture holding the texels of t,
// quantized to 8-bit RGBA.
func UploadTexture2D(c gpucontext.TextureCreator, t *texture.Texture2D) (gpucontext.Texture, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("gpu: upload: %w", colorsource.ErrUnboundTexture)
	}
	w, h := t.Size()
	tex, err := c.NewTextureFromRGBA(w, h, t.RGBA8())
	if err != nil {
		return nil, fmt.Errorf("gpu: upload %s: %w", t.Label(), err)
	}
	return tex, nil
}

// UploadCubeFaces creates one GPU texture per cube face, in face order.
func UploadCubeFaces(c gpucontext.TextureCreator, cube *texture.Cube) ([colorsource.CubeFaceCount]gpucontext.Texture, error) {
	var out [colorsource.CubeFaceCount]gpucontext.Texture
	if !cube.Valid() {
		return out, fmt.Errorf("gpu: upload cube: %w", colorsource.ErrUnboundTexture)
	}
	size := cube.Size()
	for f := range colorsource.CubeFace(colorsource.CubeFaceCount) {
		tex, err := c.NewTextureFromRGBA(size, size, cube.FaceRGBA8(f))
		if err != nil {
			return [colorsource.CubeFaceCount]gpucontext.Texture{}, fmt.Errorf("gpu: upload cube face %s: %w", f, err)
		}
		out[f] = tex
	}
	return out, nil
}
