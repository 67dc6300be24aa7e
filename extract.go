package veil

import (
	"github.com/zedseven/binmani"

	"github.com/zedseven/veil/internal/bitplan"
)

// Extract recovers the message hidden in the canvas and returns its raw
// bytes. Callers expecting text decide the decoding (and its failure mode)
// themselves: a valid frame holding non-UTF-8 data is a successful
// extraction. A carrier that was never embedded into returns a
// NoMessageError.
func Extract(c *Canvas, cfg *Config) ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	bits := readBits(c, cfg.channelsPerPix())
	return parseFrame(bitplan.FromBits(bits))
}

// readBits collects the low-order bit of every used channel value, in the
// same order writeBits stores them. It always yields the full canvas
// capacity; the framer decides where the payload actually ends.
func readBits(c *Canvas, channels uint8) []uint8 {
	bits := make([]uint8, 0, bitplan.Capacity(c.W, c.H, channels))
	pixelCount := c.W * c.H
	for pix := 0; pix < pixelCount; pix++ {
		for channel := uint8(0); channel < channels; channel++ {
			idx := pix*canvasChannels + int(channel)
			bits = append(bits, uint8(binmani.ReadFrom(uint16(c.Pix[idx]), 0, 1)))
		}
	}
	return bits
}
