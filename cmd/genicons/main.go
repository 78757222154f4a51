// genicons — Android launcher icon generation.
//
// Usage:
//
//	genicons [flags] [image-path]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mzhn/genicons/pkg/icons"
)

const defaultInput = "icon.png"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("genicons", flag.ExitOnError)

	var (
		baseDir string
		name    string
	)

	fs.StringVar(&baseDir, "o", icons.DefaultBaseDir, "Output base directory (Android res root)")
	fs.StringVar(&baseDir, "out", icons.DefaultBaseDir, "Output base directory (Android res root)")
	fs.StringVar(&name, "name", icons.DefaultFileName, "Output icon filename")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := defaultInput
	switch fs.NArg() {
	case 0:
		fmt.Printf("No image path given, using default: %s\n", input)
	case 1:
		input = fs.Arg(0)
	default:
		printUsage()
		return fmt.Errorf("expected at most one image path, got %d", fs.NArg())
	}

	fmt.Printf("Reading image: %s\n", input)
	opts := icons.Options{
		BaseDir:  baseDir,
		FileName: name,
		Progress: os.Stdout,
	}
	if err := icons.Generate(input, opts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("image file %q not found", input)
		}
		return err
	}

	fmt.Printf("Done: all icons written under %s\n", baseDir)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`genicons — Android launcher icon generator

Takes one square-ish image and writes the five launcher icon densities
(mipmap-mdpi 48px through mipmap-xxxhdpi 192px) as ic_launcher.png files.
Non-square input is cropped to a centered square first. Existing icons are
overwritten.

USAGE:
    genicons [flags] [image-path]

    image-path             Source image (png, jpeg, gif, bmp, tiff, webp).
                           Defaults to icon.png in the current directory.

FLAGS:
    -o, --out <dir>        Output base directory (default: the Android res
                           root baked into the tool)
    --name <file>          Output filename (default: ic_launcher.png)

EXAMPLES:
    genicons
    genicons logo.png
    genicons -o app/src/main/res logo.png
    genicons --name ic_launcher_round.png logo.png
`)
}
