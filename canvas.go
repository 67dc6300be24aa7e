package veil

import "fmt"

// canvasChannels is the number of channel values stored per pixel.
const canvasChannels = 4

// Canvas is an in-memory pixel grid: non-premultiplied RGBA with 8 bits per
// channel, 4 bytes per pixel, rows stored top to bottom, left to right.
// Loading and saving image files is the imgio package's job; the codec only
// ever sees this representation.
type Canvas struct {
	W, H int
	Pix  []uint8
}

// NewCanvas returns a canvas of the given dimensions with every channel zeroed.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Pix: make([]uint8, w*h*canvasChannels)}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	dup := &Canvas{W: c.W, H: c.H, Pix: make([]uint8, len(c.Pix))}
	copy(dup.Pix, c.Pix)
	return dup
}

func (c *Canvas) validate() error {
	if c == nil {
		return &InvalidInputError{"No canvas was provided."}
	}
	if c.W <= 0 || c.H <= 0 {
		return &InvalidInputError{fmt.Sprintf("The canvas dimensions are invalid: %dx%d.", c.W, c.H)}
	}
	if len(c.Pix) != c.W*c.H*canvasChannels {
		return &InvalidInputError{fmt.Sprintf("The canvas pixel data does not match its dimensions: "+
			"%d bytes for %dx%d.", len(c.Pix), c.W, c.H)}
	}
	return nil
}
