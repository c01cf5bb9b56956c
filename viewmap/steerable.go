package viewmap

import (
	"errors"
	"math"
	"sync"

	"github.com/gogpu/npr/raster"
)

// Common errors for view-map queries.
var (
	// ErrInvalidOrientation is returned for orientations outside the buckets.
	ErrInvalidOrientation = errors.New("viewmap: invalid orientation")

	// ErrNoMap is returned when pyramids have not been built yet.
	ErrNoMap = errors.New("viewmap: pyramids not built")

	// ErrInvalidLevel mirrors raster.ErrInvalidLevel so callers checking
	// view-map reads need not import raster.
	ErrInvalidLevel = raster.ErrInvalidLevel
)

// weightCutoff bounds a bucket's angular support: directions further than
// pi/NumOrientations from the bucket center contribute nothing.
var weightCutoff = math.Cos(math.Pi / NumOrientations)

// SteerableViewMap accumulates edge density into one raster per orientation
// bucket plus a complete, non-directional raster, and serves multi-scale
// point queries over Gaussian pyramids built from those rasters.
//
// The write phase (AddSegment, BuildPyramids) belongs to the view-map
// construction pipeline and requires external synchronization. Once the
// pyramids are built, the read methods are safe for concurrent use.
type SteerableViewMap struct {
	orientations [NumOrientations]*raster.Map
	complete     *raster.Map

	pyramids    [NumOrientations]*raster.Pyramid
	completePyr *raster.Pyramid
}

// New creates an empty steerable view map covering a width-by-height image.
func New(width, height int) (*SteerableViewMap, error) {
	s := &SteerableViewMap{}
	for i := range s.orientations {
		m, err := raster.NewMap(width, height)
		if err != nil {
			return nil, err
		}
		s.orientations[i] = m
	}
	m, err := raster.NewMap(width, height)
	if err != nil {
		return nil, err
	}
	s.complete = m
	return s, nil
}

// OrientationMap returns the accumulation raster for a bucket, or nil for an
// invalid orientation.
func (s *SteerableViewMap) OrientationMap(o Orientation) *raster.Map {
	if !o.Valid() {
		return nil
	}
	return s.orientations[o]
}

// CompleteMap returns the non-directional accumulation raster.
func (s *SteerableViewMap) CompleteMap() *raster.Map {
	return s.complete
}

// Weight returns the bucket's response to the direction (dx, dy): 1 at the
// bucket center, falling off as cos(N/2 * acos|d.o|) and reaching 0 at the
// edge of the bucket's angular support. Directions are taken modulo pi.
// Returns 0 for an invalid orientation or a zero direction.
func (s *SteerableViewMap) Weight(o Orientation, dx, dy float64) float64 {
	if !o.Valid() {
		return 0
	}
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return 0
	}
	a := o.Angle()
	dot := math.Abs(dx*math.Cos(a)+dy*math.Sin(a)) / norm
	if dot < weightCutoff {
		return 0
	}
	if dot > 1 {
		dot = 1
	}
	return math.Cos(NumOrientations / 2.0 * math.Acos(dot))
}

// Weights returns the per-bucket responses to the direction (dx, dy).
func (s *SteerableViewMap) Weights(dx, dy float64) [NumOrientations]float64 {
	var w [NumOrientations]float64
	for i := range w {
		w[i] = s.Weight(Orientation(i), dx, dy)
	}
	return w
}

// AddSegment splats the line segment from (x0, y0) to (x1, y1) into the
// accumulation rasters: the complete raster receives the full density, each
// orientation raster its weighted share for the segment's direction.
// Samples falling outside the rasters are dropped.
//
// Invalidates previously built pyramids; call BuildPyramids again before
// reading.
func (s *SteerableViewMap) AddSegment(x0, y0, x1, y1 float64, density float32) {
	dx := x1 - x0
	dy := y1 - y0
	w := s.Weights(dx, dy)

	steps := int(math.Ceil(math.Hypot(dx, dy)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Round(x0 + t*dx))
		py := int(math.Round(y0 + t*dy))
		s.complete.Add(px, py, density)
		for o := range s.orientations {
			if w[o] > 0 {
				s.orientations[o].Add(px, py, density*float32(w[o]))
			}
		}
	}

	s.completePyr = nil
	for i := range s.pyramids {
		s.pyramids[i] = nil
	}
}

// BuildPyramids builds the per-orientation and complete pyramids from the
// current rasters. numLevels <= 0 selects the full chain. The five builds
// are independent and run on their own goroutines.
//
// The accumulation rasters become the pyramids' base levels; mutating them
// afterwards without rebuilding leaves the coarse levels stale.
func (s *SteerableViewMap) BuildPyramids(numLevels int) {
	var wg sync.WaitGroup
	wg.Add(NumOrientations + 1)
	for i := range s.orientations {
		i := i
		go func() {
			defer wg.Done()
			s.pyramids[i] = raster.BuildPyramid(s.orientations[i], numLevels)
		}()
	}
	go func() {
		defer wg.Done()
		s.completePyr = raster.BuildPyramid(s.complete, numLevels)
	}()
	wg.Wait()
}

// NumLevels returns the number of pyramid levels, or 0 before BuildPyramids.
func (s *SteerableViewMap) NumLevels() int {
	return s.completePyr.NumLevels()
}

// ReadSteerable returns the sample of the given orientation's pyramid at
// base-resolution coordinates (x, y), delegated to the given level.
func (s *SteerableViewMap) ReadSteerable(o Orientation, level, x, y int) (float32, error) {
	if !o.Valid() {
		return 0, ErrInvalidOrientation
	}
	p := s.pyramids[o]
	if p == nil {
		return 0, ErrNoMap
	}
	return p.SampleAt(level, x, y)
}

// ReadComplete returns the sample of the complete (non-directional) pyramid
// at base-resolution coordinates (x, y), delegated to the given level.
func (s *SteerableViewMap) ReadComplete(level, x, y int) (float32, error) {
	if s.completePyr == nil {
		return 0, ErrNoMap
	}
	return s.completePyr.SampleAt(level, x, y)
}
