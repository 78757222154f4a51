// Package icons generates the fixed set of Android launcher icons from a
// single source image.
//
// The pipeline is strictly sequential: decode, center-crop to a square,
// ensure an alpha-capable pixel format, then resize and write one PNG per
// density bucket.
package icons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Size pairs an Android screen-density bucket with its launcher icon edge
// length in pixels.
type Size struct {
	Density string
	Pixels  int
}

// Sizes is the launcher icon table, smallest density first. Output for each
// entry lands in the "mipmap-<Density>" directory.
var Sizes = []Size{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// Defaults used for Options zero values.
const (
	DefaultBaseDir  = "project_guideline/android/java/com/google/research/guideline/res"
	DefaultFileName = "ic_launcher.png"
)

// Options holds generation parameters. The zero value uses the defaults
// above and discards progress output.
type Options struct {
	BaseDir  string    // Android res root receiving the mipmap-* directories
	FileName string    // Filename written inside each density directory
	Progress io.Writer // Per-file confirmation lines; nil discards
}

// Generate reads the image at path and writes one resized PNG per Sizes
// entry under opts.BaseDir, overwriting existing files silently. Non-square
// inputs are cropped to a centered square first. The first error aborts the
// run; files already written stay on disk.
func Generate(path string, opts Options) error {
	base := opts.BaseDir
	if base == "" {
		base = DefaultBaseDir
	}
	name := opts.FileName
	if name == "" {
		name = DefaultFileName
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	src, err := Load(path)
	if err != nil {
		return err
	}

	if b := src.Bounds(); b.Dx() != b.Dy() {
		m := min(b.Dx(), b.Dy())
		fmt.Fprintf(progress, "Input is %dx%d, cropping centered to %dx%d\n", b.Dx(), b.Dy(), m, m)
	}
	img := normalize(src)

	for _, s := range Sizes {
		dir := filepath.Join(base, "mipmap-"+s.Density)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}

		out := filepath.Join(dir, name)
		if err := writePNG(out, scale(img, s.Pixels)); err != nil {
			return err
		}
		fmt.Fprintf(progress, "Created %s (%dx%d)\n", out, s.Pixels, s.Pixels)
	}
	return nil
}
