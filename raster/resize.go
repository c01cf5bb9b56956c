package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImageScaled converts an image to a luminance map at the given target
// resolution, resampling with scaler. A nil scaler selects draw.ApproxBiLinear.
//
// Pipelines use this to bring source renders to pyramid-friendly sizes before
// building density maps. Returns nil if img is nil, empty, or the target
// dimensions are non-positive.
func FromImageScaled(img image.Image, width, height int, scaler draw.Scaler) *Map {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}

	if b.Dx() == width && b.Dy() == height {
		return FromImage(img)
	}

	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return FromImage(dst)
}
