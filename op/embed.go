package op

import (
	"fmt"
	"os"

	"github.com/zedseven/veil"
	"github.com/zedseven/veil/imgio"
)

// EmbedConfig stores the configuration options for the Embed operation.
type EmbedConfig struct {
	// ImagePath is the path on disk to the cover image.
	ImagePath string
	// Message is the payload to hide. Ignored when MessagePath is set.
	Message []byte
	// MessagePath is the path on disk to a file whose contents are the payload.
	MessagePath string
	// OutPath is the path on disk to write the output image. Must use a lossless format.
	OutPath string
	// EncodeAlpha is whether to hide a fourth bit per pixel in the alpha channel.
	EncodeAlpha bool
	// OutputLevel is the amount of output to provide.
	OutputLevel veil.OutputLevel
}

// Embed hides a message in the image at ImagePath and writes the result to a
// new image at OutPath. The cover image file is left untouched.
func Embed(config *EmbedConfig) error {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return &veil.InvalidInputError{ErrorDesc: "ImagePath is empty."}
	}
	if len(config.OutPath) <= 0 {
		return &veil.InvalidInputError{ErrorDesc: "OutPath is empty."}
	}
	if len(config.Message) <= 0 && len(config.MessagePath) <= 0 {
		return &veil.InvalidInputError{ErrorDesc: "No message was provided."}
	}

	message := config.Message
	if len(config.MessagePath) > 0 {
		veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, fmt.Sprintf("Reading the payload from '%v'...", config.MessagePath))
		var err error
		message, err = os.ReadFile(config.MessagePath)
		if err != nil {
			return fmt.Errorf("reading the payload file '%v': %w", config.MessagePath, err)
		}
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, fmt.Sprintf("Loading the image from '%v'...", config.ImagePath))
	canvas, err := imgio.Load(config.ImagePath)
	if err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputInfo,
		fmt.Sprintf("Image info:\n\tDimensions: %dx%d px\n\tPayload size: %d B", canvas.W, canvas.H, len(message)))

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, "Encoding the message into the image...")
	out, err := veil.Embed(canvas, message, &veil.Config{EncodeAlpha: config.EncodeAlpha})
	if err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, fmt.Sprintf("Writing the encoded image to '%v' now...", config.OutPath))
	if err = imgio.Write(out, config.OutPath); err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, "All done! c:")

	return nil
}
