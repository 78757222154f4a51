// resize.go — High-quality downscaling via golang.org/x/image/draw.
package icons

import (
	"image"

	"golang.org/x/image/draw"
)

// scale resamples src to px×px with the Catmull-Rom kernel. draw.Src copies
// source alpha straight through instead of compositing over the empty
// destination.
func scale(src image.Image, px int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, px, px))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
