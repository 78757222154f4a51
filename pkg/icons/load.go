// load.go — Image loading and codec registration.
package icons

import (
	"fmt"
	"image"
	"os"

	// Accepted input formats. PNG is the common case; the rest decode
	// transparently through image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens and decodes the image at path. Open errors keep their os cause
// wrapped so callers can test for fs.ErrNotExist.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
