// Package bitplan maps payload bytes to the ordered bit stream a canvas can
// carry, and computes how many bits a canvas has room for under the
// channel-usage policy.
package bitplan

import (
	"github.com/zedseven/binmani"
)

const bitsPerByte uint8 = 8

// ToBits flattens data into single-bit values, most significant bit of each
// byte first.
func ToBits(data []byte) []uint8 {
	return *binmani.BytesToBits(&data)
}

// FromBits regroups a bit sequence into bytes, most significant bit first. A
// trailing group of fewer than 8 bits cannot form a complete byte and is
// discarded; during extraction it is always stream-end noise, never payload,
// since the frame's length field pins down exactly where the payload stops.
func FromBits(bits []uint8) []byte {
	out := make([]byte, len(bits)/int(bitsPerByte))
	for i := range out {
		var b uint16
		for j := uint8(0); j < bitsPerByte; j++ {
			b = binmani.WriteTo(b, bitsPerByte-j-1, 1, uint16(bits[i*int(bitsPerByte)+int(j)]))
		}
		out[i] = byte(b)
	}
	return out
}

// Capacity is the number of payload bits a w x h canvas holds when one bit is
// written to each of channels channels per pixel.
func Capacity(w, h int, channels uint8) int64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int64(w) * int64(h) * int64(channels)
}

// Fits reports whether bitCount bits can be stored on a w x h canvas.
func Fits(bitCount int64, w, h int, channels uint8) bool {
	return bitCount <= Capacity(w, h, channels)
}
