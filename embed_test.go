package veil

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomCanvas returns a canvas with deterministic pseudo-random channel
// values, the closest thing to a real photograph's bit noise.
func randomCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	rng := rand.New(rand.NewSource(42))
	for i := range c.Pix {
		c.Pix[i] = uint8(rng.Intn(256))
	}
	return c
}

// flatCanvas returns a canvas filled with a single opaque colour whose
// low-order RGB bits are all zero, so it can never hold a valid frame.
func flatCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	for i := 0; i < len(c.Pix); i += canvasChannels {
		c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3] = 20, 40, 60, 255
	}
	return c
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	message := []byte("The quick brown foxes jump over 13 lazy dogs.")
	require.Len(t, message, 45)

	cover := randomCanvas(128, 128)
	steg, err := Embed(cover, message, nil)
	require.NoError(t, err)

	got, err := Extract(steg, nil)
	require.NoError(t, err)
	require.Equal(t, message, got)
}

func TestEmbedBitLayout(t *testing.T) {
	// The embedded stream is the frame bytes flattened MSB-first, one bit in
	// the low-order bit of each RGB channel, row-major. Spelled out for "hi":
	// marker, u32 big-endian length, body.
	frame := []byte{'I', 'M', 'S', 'G', 0x00, 0x00, 0x00, 0x00, 0x02, 'h', 'i'}

	steg, err := Embed(flatCanvas(8, 8), []byte("hi"), nil)
	require.NoError(t, err)

	for i := 0; i < len(frame)*8; i++ {
		want := frame[i/8] >> (7 - i%8) & 1
		pix, channel := i/3, i%3
		got := steg.Pix[pix*canvasChannels+channel] & 1
		require.Equal(t, want, got, "bit %d", i)
	}
}

func TestEmbedDoesNotTouchInput(t *testing.T) {
	cover := randomCanvas(32, 32)
	before := bytes.Clone(cover.Pix)

	_, err := Embed(cover, []byte("secret"), nil)
	require.NoError(t, err)
	require.Equal(t, before, cover.Pix)
}

func TestEmbedWritesOnlyPayloadRegion(t *testing.T) {
	// A 45-byte message frames to 54 bytes, or 432 bits: exactly 144 pixels
	// at 3 bits each. Everything after pixel 143 must be untouched.
	message := []byte("The quick brown foxes jump over 13 lazy dogs.")
	cover := randomCanvas(128, 128)

	steg, err := Embed(cover, message, nil)
	require.NoError(t, err)
	require.Equal(t, cover.Pix[144*canvasChannels:], steg.Pix[144*canvasChannels:])

	// Alpha is never written in the default configuration.
	for pix := 0; pix < cover.W*cover.H; pix++ {
		require.Equal(t, cover.Pix[pix*canvasChannels+3], steg.Pix[pix*canvasChannels+3])
	}
}

func TestEmbedRawBytes(t *testing.T) {
	payload := []byte{0x00, 0xff, 0xfe, 0x80, 0x01, 0x00, 0xc3, 0x28} // not valid UTF-8
	cover := randomCanvas(16, 16)

	steg, err := Embed(cover, payload, nil)
	require.NoError(t, err)

	got, err := Extract(steg, nil)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestEmbedEmptyMessage(t *testing.T) {
	var invalid *InvalidInputError
	_, err := Embed(randomCanvas(8, 8), nil, nil)
	require.ErrorAs(t, err, &invalid)
}

func TestEmbedInvalidCanvas(t *testing.T) {
	var invalid *InvalidInputError

	_, err := Embed(nil, []byte("a"), nil)
	require.ErrorAs(t, err, &invalid)

	_, err = Embed(&Canvas{W: 0, H: 8}, []byte("a"), nil)
	require.ErrorAs(t, err, &invalid)

	_, err = Embed(&Canvas{W: 4, H: 4, Pix: make([]uint8, 7)}, []byte("a"), nil)
	require.ErrorAs(t, err, &invalid)
}

func TestEmbedCapacityBoundary(t *testing.T) {
	// A 3-byte message frames to 12 bytes, or 96 bits. 32 pixels hold exactly
	// 96 RGB bits.
	message := []byte("abc")

	exact := randomCanvas(8, 4)
	steg, err := Embed(exact, message, nil)
	require.NoError(t, err)
	got, err := Extract(steg, nil)
	require.NoError(t, err)
	require.Equal(t, message, got)

	// One pixel short: 93 bits of capacity for 96 bits of payload.
	short := randomCanvas(31, 1)
	before := bytes.Clone(short.Pix)
	_, err = Embed(short, message, nil)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, int64(96), capErr.NeededBits)
	require.Equal(t, int64(93), capErr.AvailableBits)
	require.Equal(t, before, short.Pix)
}

func TestEmbedTooSmallCanvas(t *testing.T) {
	// An 8x8 canvas has 192 bits of RGB capacity, 24 bytes. A 20-byte message
	// frames to 29 bytes and cannot fit.
	var capErr *CapacityError
	_, err := Embed(randomCanvas(8, 8), bytes.Repeat([]byte{'x'}, 20), nil)
	require.ErrorAs(t, err, &capErr)
}

func TestExtractNoMessage(t *testing.T) {
	var noMessage *NoMessageError

	_, err := Extract(flatCanvas(64, 64), nil)
	require.ErrorAs(t, err, &noMessage)

	// Too few pixels to even hold the frame header.
	_, err = Extract(flatCanvas(2, 1), nil)
	require.ErrorAs(t, err, &noMessage)
}

func TestExtractIdempotent(t *testing.T) {
	steg, err := Embed(randomCanvas(32, 32), []byte("same twice"), nil)
	require.NoError(t, err)

	first, err := Extract(steg, nil)
	require.NoError(t, err)
	second, err := Extract(steg, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEmbedAlphaConfig(t *testing.T) {
	// A 20-byte message frames to 29 bytes (232 bits): too big for an 8x8
	// canvas on RGB alone (192 bits), but fine with the alpha channel (256).
	message := bytes.Repeat([]byte{'x'}, 20)
	cover := randomCanvas(8, 8)
	alpha := &Config{EncodeAlpha: true}

	var capErr *CapacityError
	_, err := Embed(cover, message, nil)
	require.ErrorAs(t, err, &capErr)

	steg, err := Embed(cover, message, alpha)
	require.NoError(t, err)

	got, err := Extract(steg, alpha)
	require.NoError(t, err)
	require.Equal(t, message, got)

	// Both sides must agree on the channel policy.
	var noMessage *NoMessageError
	_, err = Extract(steg, nil)
	require.ErrorAs(t, err, &noMessage)
}
