package layout

import (
	"encoding/binary"
	"math"
)

// putU32 writes v at off.
func putU32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// putF32 writes v at off.
func putF32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

// putF32s writes vs contiguously starting at off.
func putF32s(buf []byte, off int, vs ...float32) {
	for i, v := range vs {
		putF32(buf, off+i*4, v)
	}
}

func getU32(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

func getF32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}
