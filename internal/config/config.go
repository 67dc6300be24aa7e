// Package config loads optional CLI defaults from a YAML file, so common
// settings don't have to be passed as flags on every run.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zedseven/veil"
)

// File holds the defaults a user can set in the config file. Flags always win
// over config values.
type File struct {
	// EncodeAlpha hides a fourth bit per pixel in the alpha channel.
	EncodeAlpha bool `yaml:"encode_alpha"`
	// OutputLevel is one of "nothing", "steps", "info" or "debug".
	OutputLevel string `yaml:"output_level"`
}

// Load parses the YAML config at path. A missing file is not an error: the
// returned File then just holds the defaults.
func Load(path string) (*File, error) {
	cfg := &File{OutputLevel: "steps"}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading the config file '%v': %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing the config file '%v': %w", path, err)
	}
	return cfg, nil
}

// ParseOutputLevel maps a config string to its output level. Unrecognized
// values fall back to steps.
func ParseOutputLevel(str string) veil.OutputLevel {
	switch strings.ToLower(str) {
	case "nothing":
		return veil.OutputNothing
	case "info":
		return veil.OutputInfo
	case "debug":
		return veil.OutputDebug
	default:
		return veil.OutputSteps
	}
}
