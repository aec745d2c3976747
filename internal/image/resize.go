package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize returns a copy of b scaled to width x height using Catmull-Rom
// filtering. The result is quantized through 16-bit channels.
func (b *Buf) Resize(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width == b.width && height == b.height {
		return b.Clone(), nil
	}

	src := b.toNRGBA64()
	dst := image.NewNRGBA64(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if b.format == FormatDepth32F {
		return DepthFromImage(dst)
	}
	return FromImage(dst)
}

// toNRGBA64 converts to a 16-bit image for the x/image scalers.
func (b *Buf) toNRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		for x := range b.width {
			t := b.Texel(x, y)
			if b.format == FormatDepth32F {
				t[3] = 1
			}
			o := img.PixOffset(x, y)
			for c := range 4 {
				v := uint16(clampFloat(t[c], 0, 1)*0xffff + 0.5)
				img.Pix[o+2*c] = byte(v >> 8)
				img.Pix[o+2*c+1] = byte(v)
			}
		}
	}
	return img
}
