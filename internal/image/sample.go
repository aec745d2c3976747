package image

import (
	"math"

	"github.com/gogpu/gputypes"
)

// Addressing controls how out-of-range texel indices are resolved on
// each axis.
type Addressing struct {
	U, V gputypes.AddressMode
}

// SampleNearest returns the texel containing the normalized coordinate
// (u, v). Coordinates follow texture space: (0,0) is the top-left corner
// and (1,1) the bottom-right.
func (b *Buf) SampleNearest(u, v float64, addr Addressing) [4]float32 {
	x := addressTexel(int(math.Floor(u*float64(b.width))), b.width, addr.U)
	y := addressTexel(int(math.Floor(v*float64(b.height))), b.height, addr.V)
	return b.Texel(x, y)
}

// SampleBilinear returns the bilinear blend of the four texels nearest
// to (u, v), with texel centers at half-integer positions.
func (b *Buf) SampleBilinear(u, v float64, addr Addressing) [4]float32 {
	fx := u*float64(b.width) - 0.5
	fy := v*float64(b.height) - 0.5
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	tx := float32(fx - x0f)
	ty := float32(fy - y0f)

	x0 := addressTexel(int(x0f), b.width, addr.U)
	x1 := addressTexel(int(x0f)+1, b.width, addr.U)
	y0 := addressTexel(int(y0f), b.height, addr.V)
	y1 := addressTexel(int(y0f)+1, b.height, addr.V)

	return lerp2D(b.Texel(x0, y0), b.Texel(x1, y0), b.Texel(x0, y1), b.Texel(x1, y1), tx, ty)
}

// Sample dispatches on filter. Unknown filters sample nearest.
func (b *Buf) Sample(u, v float64, filter gputypes.FilterMode, addr Addressing) [4]float32 {
	if filter == gputypes.FilterModeLinear {
		return b.SampleBilinear(u, v, addr)
	}
	return b.SampleNearest(u, v, addr)
}

// addressTexel maps a texel index into [0, n) according to mode.
// Unknown modes behave as clamp-to-edge.
func addressTexel(i, n int, mode gputypes.AddressMode) int {
	switch mode {
	case gputypes.AddressModeRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case gputypes.AddressModeMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// lerp2D performs bilinear interpolation between four texels.
func lerp2D(c00, c10, c01, c11 [4]float32, tx, ty float32) [4]float32 {
	var out [4]float32
	for i := range 4 {
		top := c00[i] + (c10[i]-c00[i])*tx
		bottom := c01[i] + (c11[i]-c01[i])*tx
		out[i] = top + (bottom-top)*ty
	}
	return out
}
