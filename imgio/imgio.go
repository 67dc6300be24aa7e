// Package imgio loads image files into canvases and writes canvases back out
// to lossless image files. It is the only part of the module that touches the
// filesystem or knows about file formats; the codec depends on nothing here.
package imgio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/zedseven/veil"
)

// UnsupportedFormatError is returned when an output path asks for a format
// that cannot round-trip pixel values exactly. Writing a stego canvas through
// a lossy encoder would perturb the low-order bits and destroy the payload.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("'%v' is not a supported lossless output format. Use one of: .png, .bmp, .tif, .tiff.", e.Ext)
}

// Primary methods

// Load decodes the image at imgPath into a canvas. Any format registered with
// image.Decode is accepted for reading; pixel values are flattened to
// non-premultiplied RGBA.
func Load(imgPath string) (canvas *veil.Canvas, err error) {
	imgFile, err := os.Open(imgPath)
	if err != nil {
		return nil, fmt.Errorf("opening the image at '%v': %w", imgPath, err)
	}

	defer func() {
		if cerr := imgFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing the image file '%v': %w", imgPath, cerr)
		}
	}()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decoding the image at '%v': %w", imgPath, err)
	}

	return CanvasFromImage(img), nil
}

// Write encodes the canvas to outPath. The format is chosen by file
// extension, and only lossless formats are accepted.
func Write(canvas *veil.Canvas, outPath string) (err error) {
	encode, err := encoderFor(outPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating the image file '%v': %w", outPath, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing the image file '%v': %w", outPath, cerr)
		}
	}()

	if err = encode(f, ImageFromCanvas(canvas)); err != nil {
		return fmt.Errorf("encoding the image to '%v': %w", outPath, err)
	}
	return nil
}

// Conversion helpers

// CanvasFromImage flattens a decoded image into the canvas representation.
func CanvasFromImage(img image.Image) *veil.Canvas {
	bounds := img.Bounds()
	canvas := veil.NewCanvas(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			canvas.Pix[i] = px.R
			canvas.Pix[i+1] = px.G
			canvas.Pix[i+2] = px.B
			canvas.Pix[i+3] = px.A
			i += 4
		}
	}
	return canvas
}

// ImageFromCanvas wraps the canvas pixel data in an image for encoding.
func ImageFromCanvas(canvas *veil.Canvas) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, canvas.W, canvas.H))
	copy(img.Pix, canvas.Pix)
	return img
}

func encoderFor(outPath string) (func(io.Writer, image.Image) error, error) {
	ext := strings.ToLower(filepath.Ext(outPath))
	switch ext {
	case ".png":
		return func(w io.Writer, img image.Image) error {
			encoder := png.Encoder{CompressionLevel: png.BestCompression}
			return encoder.Encode(w, img)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, &UnsupportedFormatError{ext}
	}
}
