package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zedseven/veil"
	"github.com/zedseven/veil/internal/config"
	"github.com/zedseven/veil/op"
)

// Program entry point

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "version":
		fmt.Println("veil v" + veil.Version())
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  veil embed -img <cover> (-msg <text> | -file <payload>) -out <steg image> [-alpha] [-quiet] [-config <yaml>]")
	fmt.Fprintln(os.Stderr, "  veil extract -img <steg image> [-out <payload>] [-alpha] [-quiet] [-config <yaml>]")
	fmt.Fprintln(os.Stderr, "  veil version")
}

func runEmbed(args []string) error {
	cmd := flag.NewFlagSet("embed", flag.ExitOnError)
	imgPath := cmd.String("img", "", "The filepath to the cover image on disk")
	msg := cmd.String("msg", "", "The message text to hide")
	filePath := cmd.String("file", "", "The filepath to a payload file to hide instead of -msg")
	outPath := cmd.String("out", "", "The filepath to write the steg image to (lossless formats only)")
	alpha := cmd.Bool("alpha", false, "Whether to touch the alpha (transparency) channel")
	quiet := cmd.Bool("quiet", false, "Whether to suppress step output")
	configPath := cmd.String("config", "veil.yaml", "The filepath to an optional YAML config with defaults")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if len(*imgPath) <= 0 || len(*outPath) <= 0 || (len(*msg) <= 0 && len(*filePath) <= 0) {
		cmd.PrintDefaults()
		os.Exit(2)
	}

	defaults, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	return op.Embed(&op.EmbedConfig{
		ImagePath:   *imgPath,
		Message:     []byte(*msg),
		MessagePath: *filePath,
		OutPath:     *outPath,
		EncodeAlpha: defaults.EncodeAlpha || *alpha,
		OutputLevel: outputLevel(defaults, *quiet),
	})
}

func runExtract(args []string) error {
	cmd := flag.NewFlagSet("extract", flag.ExitOnError)
	imgPath := cmd.String("img", "", "The filepath to the steg image on disk")
	outPath := cmd.String("out", "", "The filepath to write the payload to (stdout if omitted)")
	alpha := cmd.Bool("alpha", false, "Whether the alpha (transparency) channel was used during embedding")
	quiet := cmd.Bool("quiet", false, "Whether to suppress step output")
	configPath := cmd.String("config", "veil.yaml", "The filepath to an optional YAML config with defaults")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if len(*imgPath) <= 0 {
		cmd.PrintDefaults()
		os.Exit(2)
	}

	defaults, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	level := outputLevel(defaults, *quiet)
	if len(*outPath) <= 0 {
		// The payload goes to stdout; keep it clean.
		level = veil.OutputNothing
	}

	return op.Extract(&op.ExtractConfig{
		ImagePath:   *imgPath,
		OutPath:     *outPath,
		EncodeAlpha: defaults.EncodeAlpha || *alpha,
		OutputLevel: level,
	})
}

func outputLevel(defaults *config.File, quiet bool) veil.OutputLevel {
	if quiet {
		return veil.OutputNothing
	}
	return config.ParseOutputLevel(defaults.OutputLevel)
}
