package veil

import (
	"github.com/zedseven/binmani"

	"github.com/zedseven/veil/internal/bitplan"
)

// Embed hides message inside a copy of the canvas, one payload bit per used
// channel, pixels walked in row-major order with channels in R, G, B (then A,
// when configured) order. The input canvas is never modified: on success the
// returned canvas carries the entire payload, and on failure nothing has been
// written anywhere.
func Embed(c *Canvas, message []byte, cfg *Config) (*Canvas, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	frame, err := buildFrame(message)
	if err != nil {
		return nil, err
	}

	bits := bitplan.ToBits(frame)
	channels := cfg.channelsPerPix()
	if !bitplan.Fits(int64(len(bits)), c.W, c.H, channels) {
		return nil, &CapacityError{
			NeededBits:    int64(len(bits)),
			AvailableBits: bitplan.Capacity(c.W, c.H, channels),
		}
	}

	out := c.Clone()
	writeBits(out, bits, channels)
	return out, nil
}

// writeBits overwrites the low-order bit of the first len(bits) used channel
// values of the canvas. Channels past the end of the stream, and every
// subsequent pixel, are left untouched. The caller has already checked that
// the stream fits.
func writeBits(c *Canvas, bits []uint8, channels uint8) {
	for i, bit := range bits {
		pix, channel := i/int(channels), i%int(channels)
		idx := pix*canvasChannels + channel
		c.Pix[idx] = uint8(binmani.WriteTo(uint16(c.Pix[idx]), 0, 1, uint16(bit)))
	}
}
