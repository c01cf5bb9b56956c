// Package raster provides the scalar buffers queried by the npr sampling
// functors: dense float32 maps, Gaussian smoothing over them, and
// half-resolution Gaussian pyramids.
package raster

import (
	"errors"
	"image"
	"math"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrOutOfBounds is returned when sample coordinates are outside map bounds.
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")

	// ErrInvalidLevel is returned when a pyramid level is out of range.
	ErrInvalidLevel = errors.New("raster: pyramid level out of range")
)

// Map is a dense 2D grid of float32 samples, row-major.
//
// Maps store the rasterized quantities the sampling functors read: edge
// density, depth, steerable filter responses. The zero value is not usable;
// construct with NewMap or FromImage.
//
// Thread safety: Map is safe for concurrent read access. Set and Fill require
// external synchronization.
type Map struct {
	data   []float32
	width  int
	height int
}

// NewMap creates a zero-filled map with the given dimensions.
// Returns an error if either dimension is non-positive.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Map{
		data:   make([]float32, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromImage converts an image to a scalar map of its luminance in [0, 1].
// Returns nil if img is nil or has an empty bounds rectangle.
func FromImage(img image.Image) *Map {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}

	m, _ := NewMap(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Rec. 601 luma, 16-bit channels normalized to [0, 1].
			l := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
			m.data[y*m.width+x] = float32(l / 0xffff)
		}
	}
	return m
}

// Width returns the map width in samples.
func (m *Map) Width() int { return m.width }

// Height returns the map height in samples.
func (m *Map) Height() int { return m.height }

// Bounds returns the width and height of the map.
func (m *Map) Bounds() (w, h int) { return m.width, m.height }

// IsEmpty reports whether the map has no samples.
func (m *Map) IsEmpty() bool {
	return m == nil || m.width == 0 || m.height == 0
}

// Contains reports whether (x, y) lies inside the map.
func (m *Map) Contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the sample at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the map.
func (m *Map) At(x, y int) (float32, error) {
	if !m.Contains(x, y) {
		return 0, ErrOutOfBounds
	}
	return m.data[y*m.width+x], nil
}

// AtClamped returns the sample at (x, y), clamping coordinates to the nearest
// edge sample when they fall outside the map.
func (m *Map) AtClamped(x, y int) float32 {
	x = clamp(x, 0, m.width-1)
	y = clamp(y, 0, m.height-1)
	return m.data[y*m.width+x]
}

// Set writes the sample at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the map.
func (m *Map) Set(x, y int, v float32) error {
	if !m.Contains(x, y) {
		return ErrOutOfBounds
	}
	m.data[y*m.width+x] = v
	return nil
}

// Add accumulates v into the sample at (x, y). Out-of-bounds coordinates are
// ignored, which lets splatting loops run over clipped geometry without
// per-sample checks.
func (m *Map) Add(x, y int, v float32) {
	if !m.Contains(x, y) {
		return
	}
	m.data[y*m.width+x] += v
}

// Fill sets every sample to v.
func (m *Map) Fill(v float32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Sample performs bilinear interpolation at continuous coordinates (x, y),
// where integer coordinates address sample centers. Coordinates outside the
// map are clamped to the edge.
func (m *Map) Sample(x, y float64) float32 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := float32(x - float64(x0))
	ty := float32(y - float64(y0))

	v00 := m.AtClamped(x0, y0)
	v10 := m.AtClamped(x0+1, y0)
	v01 := m.AtClamped(x0, y0+1)
	v11 := m.AtClamped(x0+1, y0+1)

	top := v00 + tx*(v10-v00)
	bot := v01 + tx*(v11-v01)
	return top + ty*(bot-top)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		data:   make([]float32, len(m.data)),
		width:  m.width,
		height: m.height,
	}
	copy(c.data, m.data)
	return c
}

// clamp restricts v to the range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
