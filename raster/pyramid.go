package raster

import "math"

// Pyramid holds pre-computed downscaled versions of a scalar map.
//
// Level 0 is the original full-resolution map. Each further level is half the
// size of the previous one (both axes, never below 1 sample) and is produced
// by a 5-tap Gaussian filter before decimation, so coarse levels stay smooth
// instead of aliasing the way a plain box filter would.
type Pyramid struct {
	levels []*Map // level 0 = original size
}

// gaussTap5 is the binomial approximation of a Gaussian, normalized to 1.
var gaussTap5 = [5]float32{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// BuildPyramid creates a pyramid from src with the given number of levels.
//
// numLevels <= 0 selects the full chain, down to a 1-sample level. The source
// map becomes level 0 and is not copied. Returns nil if src is nil or empty.
func BuildPyramid(src *Map, numLevels int) *Pyramid {
	if src.IsEmpty() {
		return nil
	}

	maxDim := max(src.width, src.height)
	maxLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))
	if numLevels <= 0 || numLevels > maxLevels {
		numLevels = maxLevels
	}

	p := &Pyramid{levels: make([]*Map, numLevels)}
	p.levels[0] = src
	for i := 1; i < numLevels; i++ {
		p.levels[i] = downsample(p.levels[i-1])
	}
	return p
}

// downsample creates a half-size version of src: separable 5-tap Gaussian
// blur with edge clamping, then decimation by 2.
func downsample(src *Map) *Map {
	srcW, srcH := src.Bounds()
	dstW := max(1, srcW/2)
	dstH := max(1, srcH/2)

	// Horizontal pass at source resolution.
	tmp, _ := NewMap(srcW, srcH)
	for y := 0; y < srcH; y++ {
		for x := 0; x < srcW; x++ {
			var acc float32
			for k := -2; k <= 2; k++ {
				acc += gaussTap5[k+2] * src.AtClamped(x+k, y)
			}
			tmp.data[y*srcW+x] = acc
		}
	}

	// Vertical pass, sampling every second column and row.
	dst, _ := NewMap(dstW, dstH)
	for y := 0; y < dstH; y++ {
		sy := y * 2
		for x := 0; x < dstW; x++ {
			sx := x * 2
			var acc float32
			for k := -2; k <= 2; k++ {
				acc += gaussTap5[k+2] * tmp.AtClamped(sx, sy+k)
			}
			dst.data[y*dstW+x] = acc
		}
	}
	return dst
}

// NumLevels returns the total number of levels in the pyramid.
// Returns 0 if the pyramid is nil.
func (p *Pyramid) NumLevels() int {
	if p == nil {
		return 0
	}
	return len(p.levels)
}

// Level returns the map at the specified level.
// Level 0 is the original map. Returns nil if level is out of range.
func (p *Pyramid) Level(n int) *Map {
	if p == nil || n < 0 || n >= len(p.levels) {
		return nil
	}
	return p.levels[n]
}

// SampleAt reads the sample covering base-resolution coordinate (x, y) at the
// given level. Coordinates are always expressed at level-0 resolution; the
// read is delegated to the coarser level by shifting them down.
//
// Returns ErrInvalidLevel if level is out of range and ErrOutOfBounds if
// (x, y) lies outside the base map.
func (p *Pyramid) SampleAt(level, x, y int) (float32, error) {
	if p == nil || level < 0 || level >= len(p.levels) {
		return 0, ErrInvalidLevel
	}
	base := p.levels[0]
	if !base.Contains(x, y) {
		return 0, ErrOutOfBounds
	}
	m := p.levels[level]
	// Odd base dimensions can shift the last sample one past the coarse
	// edge; clamp keeps the read on the covering sample.
	return m.AtClamped(x>>level, y>>level), nil
}
