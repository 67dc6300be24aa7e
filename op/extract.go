package op

import (
	"fmt"
	"os"

	"github.com/zedseven/veil"
	"github.com/zedseven/veil/imgio"
	"github.com/zedseven/veil/internal/util"
)

// ExtractConfig stores the configuration options for the Extract operation.
type ExtractConfig struct {
	// ImagePath is the path on disk to the carrier image.
	ImagePath string
	// OutPath is the path on disk to write the payload to. Empty writes the raw bytes to stdout.
	OutPath string
	// EncodeAlpha must match the value used during embedding.
	EncodeAlpha bool
	// OutputLevel is the amount of output to provide.
	OutputLevel veil.OutputLevel
}

// Extract recovers the payload hidden in the image at ImagePath. The payload
// is written as raw bytes; it is never assumed to be text.
func Extract(config *ExtractConfig) error {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return &veil.InvalidInputError{ErrorDesc: "ImagePath is empty."}
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, fmt.Sprintf("Loading the image from '%v'...", config.ImagePath))
	canvas, err := imgio.Load(config.ImagePath)
	if err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputInfo,
		fmt.Sprintf("Image info:\n\tDimensions: %dx%d px", canvas.W, canvas.H))

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, "Reading the message from the image...")
	body, err := veil.Extract(canvas, &veil.Config{EncodeAlpha: config.EncodeAlpha})
	if err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputInfo, fmt.Sprintf("Recovered payload size: %d B", len(body)))
	veil.PrintlnLvl(config.OutputLevel, veil.OutputDebug,
		fmt.Sprintf("Payload preview: %q", body[:util.Min(len(body), 32)]))

	if len(config.OutPath) > 0 {
		veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, fmt.Sprintf("Writing the payload to '%v'...", config.OutPath))
		if err = os.WriteFile(config.OutPath, body, 0644); err != nil {
			return fmt.Errorf("writing the payload file '%v': %w", config.OutPath, err)
		}
	} else if _, err = os.Stdout.Write(body); err != nil {
		return err
	}

	veil.PrintlnLvl(config.OutputLevel, veil.OutputSteps, "All done! c:")

	return nil
}
