// normalize.go — Centered square crop and alpha-capable conversion.
package icons

import (
	"image"
	"image/draw"
)

// normalize returns src as a square, alpha-capable image. Square inputs
// that already carry an alpha channel pass through untouched. Anything else
// is drawn into a fresh NRGBA cropped to the centered min(w,h) square: the
// longer axis loses (w-m)/2 pixels on the leading edge, floor division.
func normalize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w == h {
		switch src.(type) {
		case *image.NRGBA, *image.RGBA:
			return src
		}
	}

	m := min(w, h)
	dst := image.NewNRGBA(image.Rect(0, 0, m, m))
	sp := image.Pt(b.Min.X+(w-m)/2, b.Min.Y+(h-m)/2)
	draw.Draw(dst, dst.Bounds(), src, sp, draw.Src)
	return dst
}
