package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks the oversampled snapshot to its target edge. Colors
// are premultiplied before filtering and unpremultiplied after, so the
// transparent background never bleeds dark halos into the disc edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	small := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(small, small.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(small)
}

func premultiply(src *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := float64(src.Pix[i+3]) / 255
		out.Pix[i] = uint8(float64(src.Pix[i])*a + 0.5)
		out.Pix[i+1] = uint8(float64(src.Pix[i+1])*a + 0.5)
		out.Pix[i+2] = uint8(float64(src.Pix[i+2])*a + 0.5)
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a <= 1 {
			continue
		}
		inv := 255 / float64(a)
		out.Pix[i] = clamp8(float64(src.Pix[i]) * inv)
		out.Pix[i+1] = clamp8(float64(src.Pix[i+1]) * inv)
		out.Pix[i+2] = clamp8(float64(src.Pix[i+2]) * inv)
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
