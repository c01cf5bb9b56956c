package npr

import (
	"errors"
	"fmt"

	"github.com/gogpu/npr/raster"
	"github.com/gogpu/npr/viewmap"
)

// Common errors for canvas queries.
var (
	// ErrUnknownMap is returned when a named map is not registered.
	ErrUnknownMap = errors.New("npr: unknown map name")

	// ErrNoBuffer is returned when a functor needs a buffer the canvas does
	// not carry.
	ErrNoBuffer = errors.New("npr: required buffer not set")

	// ErrInvalidName is returned when registering a map under an empty name
	// or with a nil pyramid.
	ErrInvalidName = errors.New("npr: invalid map registration")
)

// Canvas is the buffer provider the sampling functors evaluate against: the
// rasterized density image of the current render, the depth buffer, named
// auxiliary map pyramids, and the steerable view map.
//
// The rendering pipeline fills a Canvas once per frame; functors only read
// it. All buffers are optional — a functor whose buffer is missing reports
// ErrNoBuffer instead of evaluating.
//
// Thread safety: registration and evaluation must not overlap. Once filled,
// a Canvas is safe for concurrent reads.
type Canvas struct {
	density *raster.Map
	depth   *raster.Map
	maps    map[string]*raster.Pyramid
	svm     *viewmap.SteerableViewMap
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{maps: make(map[string]*raster.Pyramid)}
}

// SetDensity installs the density image sampled by Density functors.
func (c *Canvas) SetDensity(m *raster.Map) { c.density = m }

// Density returns the density image, or nil if not set.
func (c *Canvas) Density() *raster.Map { return c.density }

// SetDepth installs the depth buffer sampled by LocalAverageDepth functors.
func (c *Canvas) SetDepth(m *raster.Map) { c.depth = m }

// Depth returns the depth buffer, or nil if not set.
func (c *Canvas) Depth() *raster.Map { return c.depth }

// RegisterMap registers a named map pyramid for MapPixel functors.
// Registering an existing name replaces the previous pyramid.
func (c *Canvas) RegisterMap(name string, p *raster.Pyramid) error {
	if name == "" || p == nil {
		return ErrInvalidName
	}
	c.maps[name] = p
	Logger().Debug("npr: map registered", "name", name, "levels", p.NumLevels())
	return nil
}

// Map returns the pyramid registered under name.
func (c *Canvas) Map(name string) (*raster.Pyramid, error) {
	p, ok := c.maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return p, nil
}

// MapNames returns the registered map names, in no particular order.
func (c *Canvas) MapNames() []string {
	names := make([]string, 0, len(c.maps))
	for name := range c.maps {
		names = append(names, name)
	}
	return names
}

// ReadMapPixel returns the raw sample of the named map at base-resolution
// coordinates (x, y), delegated to the given pyramid level.
func (c *Canvas) ReadMapPixel(name string, level, x, y int) (float32, error) {
	p, err := c.Map(name)
	if err != nil {
		return 0, err
	}
	return p.SampleAt(level, x, y)
}

// SetSteerableViewMap installs the steerable view map queried by the
// view-map functors.
func (c *Canvas) SetSteerableViewMap(s *viewmap.SteerableViewMap) { c.svm = s }

// SteerableViewMap returns the steerable view map, or nil if not set.
func (c *Canvas) SteerableViewMap() *viewmap.SteerableViewMap { return c.svm }
