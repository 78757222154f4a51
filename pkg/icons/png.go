// png.go — PNG file writer.
package icons

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writePNG encodes img to a PNG file at path, overwriting any existing file.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
