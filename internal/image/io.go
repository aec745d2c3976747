package image

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Load reads and decodes an image file into an RGBA32F buffer.
func Load(path string) (*Buf, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Open reads and decodes an image file with any registered decoder.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("image: open: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// Decode decodes any registered image format into an RGBA32F buffer.
func Decode(r io.Reader) (*Buf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromImage(img)
}

// FromImage converts a standard library image into an RGBA32F buffer with
// straight (non-premultiplied) alpha. Non-premultiplied sources keep their
// color channels even where alpha is zero.
func FromImage(img image.Image) (*Buf, error) {
	bounds := img.Bounds()
	buf, err := NewBuf(bounds.Dx(), bounds.Dy(), FormatRGBA32F)
	if err != nil {
		return nil, err
	}
	for y := range buf.height {
		for x := range buf.width {
			i := buf.offset(x, y)
			t := straight(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			copy(buf.data[i:i+4], t[:])
		}
	}
	return buf, nil
}

// straight returns c as non-premultiplied float channels.
func straight(c color.Color) [4]float32 {
	switch c := c.(type) {
	case color.NRGBA:
		return [4]float32{float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff}
	case color.NRGBA64:
		return [4]float32{float32(c.R) / 0xffff, float32(c.G) / 0xffff, float32(c.B) / 0xffff, float32(c.A) / 0xffff}
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return [4]float32{float32(n.R) / 0xffff, float32(n.G) / 0xffff, float32(n.B) / 0xffff, float32(n.A) / 0xffff}
}

// DepthFromImage converts the luminance of img into a Depth32F buffer.
func DepthFromImage(img image.Image) (*Buf, error) {
	bounds := img.Bounds()
	buf, err := NewBuf(bounds.Dx(), bounds.Dy(), FormatDepth32F)
	if err != nil {
		return nil, err
	}
	for y := range buf.height {
		for x := range buf.width {
			g := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			buf.data[buf.offset(x, y)] = float32(g.Y) / 0xffff
		}
	}
	return buf, nil
}

// ToNRGBA converts the buffer to an 8-bit standard library image.
func (b *Buf) ToNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.RGBA8(),
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
