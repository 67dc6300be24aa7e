package veil

import "fmt"

const (
	VersionMax uint8 = 0
	VersionMid uint8 = 3
	VersionMin uint8 = 0
)

// Shared types

// OutputLevel specifies how much operational output an operation prints.
type OutputLevel int

const (
	// OutputNothing prints nothing at all.
	OutputNothing OutputLevel = iota
	// OutputSteps prints the high-level steps of an operation.
	OutputSteps
	// OutputInfo prints steps plus image and payload details.
	OutputInfo
	// OutputDebug prints everything.
	OutputDebug
)

// Config adjusts how the codec walks a canvas. The zero value (and a nil
// pointer) gives the default behaviour: one payload bit in the low-order bit
// of each of the red, green and blue channels, alpha untouched.
type Config struct {
	// EncodeAlpha extends the walk to the alpha channel, for a fourth bit per
	// pixel. Embed and extract must agree on it, like any codec setting.
	EncodeAlpha bool
}

func (cfg *Config) channelsPerPix() uint8 {
	if cfg != nil && cfg.EncodeAlpha {
		return 4
	}
	return 3
}

// Library methods

// Version returns the library version as a formatted string.
func Version() string {
	return fmt.Sprintf("%02d.%02d.%02d", VersionMax, VersionMid, VersionMin)
}

// PrintlnLvl prints the provided values if configured is at or above required.
func PrintlnLvl(configured, required OutputLevel, a ...interface{}) {
	if configured >= required {
		fmt.Println(a...)
	}
}
