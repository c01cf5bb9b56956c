package npr

import (
	"errors"
	"math"

	"github.com/gogpu/npr/raster"
	"github.com/gogpu/npr/viewmap"
)

// ErrNilCanvas is returned by functor constructors given a nil canvas.
var ErrNilCanvas = errors.New("npr: nil canvas")

// Function0D evaluates a scalar attribute at the current vertex of an
// iterator. Implementations hold only immutable configuration, so a single
// functor value may be shared across goroutines as long as each receives its
// own iterator and the canvas buffers stay read-only.
type Function0D[T any] interface {
	// Name returns a stable identifier for diagnostics.
	Name() string

	// Eval computes the attribute at the iterator's current position.
	// On failure it returns the zero value and a non-nil error; callers
	// decide whether to skip the vertex, substitute a default, or abort
	// the enclosing stroke computation.
	Eval(it Iterator0D) (T, error)
}

// DefaultDensitySigma is the Gaussian sigma used by NewDensity when the
// caller passes sigma <= 0.
const DefaultDensitySigma = 2.0

// DefaultDepthMaskSize is the window size used by NewLocalAverageDepth when
// the caller passes maskSize <= 0.
const DefaultDepthMaskSize = 5.0

// Density estimates the local density of the canvas density image: a square
// window centered on the evaluation point, integrated with Gaussian weights.
// Larger sigma values smooth over a wider neighborhood.
type Density struct {
	canvas *Canvas
	filter *raster.GaussianFilter
}

// NewDensity creates a density functor. sigma <= 0 selects
// DefaultDensitySigma.
func NewDensity(c *Canvas, sigma float64) (*Density, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if sigma <= 0 {
		sigma = DefaultDensitySigma
	}
	return &Density{canvas: c, filter: raster.NewGaussianFilter(sigma)}, nil
}

// Name returns "Density".
func (f *Density) Name() string { return "Density" }

// Eval returns the Gaussian-windowed density at the current position.
func (f *Density) Eval(it Iterator0D) (float64, error) {
	m := f.canvas.Density()
	if m == nil {
		return 0, ErrNoBuffer
	}
	p := it.Pos()
	v, err := f.filter.Smooth(m, int(p.X), int(p.Y))
	if err != nil {
		Logger().Debug("npr: density sample failed", "x", p.X, "y", p.Y, "err", err)
		return 0, err
	}
	return v, nil
}

// LocalAverageDepth estimates the average depth around the evaluation point
// by querying the canvas depth buffer through a Gaussian window.
type LocalAverageDepth struct {
	canvas *Canvas
	filter *raster.GaussianFilter
}

// NewLocalAverageDepth creates a depth-averaging functor from the size of
// the mask that will be used; the Gaussian sigma is maskSize/2. maskSize <= 0
// selects DefaultDepthMaskSize.
func NewLocalAverageDepth(c *Canvas, maskSize float64) (*LocalAverageDepth, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if maskSize <= 0 {
		maskSize = DefaultDepthMaskSize
	}
	return &LocalAverageDepth{canvas: c, filter: raster.NewGaussianFilter(maskSize / 2)}, nil
}

// Name returns "LocalAverageDepth".
func (f *LocalAverageDepth) Name() string { return "LocalAverageDepth" }

// Eval returns the smoothed depth at the current position.
func (f *LocalAverageDepth) Eval(it Iterator0D) (float64, error) {
	m := f.canvas.Depth()
	if m == nil {
		return 0, ErrNoBuffer
	}
	p := it.Pos()
	v, err := f.filter.Smooth(m, int(p.X), int(p.Y))
	if err != nil {
		Logger().Debug("npr: depth sample failed", "x", p.X, "y", p.Y, "err", err)
		return 0, err
	}
	return v, nil
}

// MapPixel reads the raw sample of a named canvas map at the evaluation
// point, with no filtering.
type MapPixel struct {
	canvas  *Canvas
	mapName string
	level   int
}

// NewMapPixel creates a functor reading the named map at the given pyramid
// level. The name is resolved at evaluation time, so the map may be
// registered after the functor is built.
func NewMapPixel(c *Canvas, mapName string, level int) (*MapPixel, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	return &MapPixel{canvas: c, mapName: mapName, level: level}, nil
}

// Name returns "MapPixel".
func (f *MapPixel) Name() string { return "MapPixel" }

// Eval returns the stored sample at the current position. Fails with
// ErrUnknownMap for an unregistered name and raster.ErrInvalidLevel for a
// level outside the pyramid.
func (f *MapPixel) Eval(it Iterator0D) (float32, error) {
	p := it.Pos()
	return f.canvas.ReadMapPixel(f.mapName, f.level, int(p.X), int(p.Y))
}

// SteerableViewMapPixel reads the raw sample of one orientation bucket of
// the canvas steerable view map at the evaluation point.
type SteerableViewMapPixel struct {
	canvas      *Canvas
	orientation viewmap.Orientation
	level       int
}

// NewSteerableViewMapPixel creates a functor reading the given orientation
// bucket at the given pyramid level. The orientation is validated at
// evaluation time so that an invalid bucket reports an error rather than a
// garbage read.
func NewSteerableViewMapPixel(c *Canvas, orientation viewmap.Orientation, level int) (*SteerableViewMapPixel, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	return &SteerableViewMapPixel{canvas: c, orientation: orientation, level: level}, nil
}

// Name returns "SteerableViewMapPixel".
func (f *SteerableViewMapPixel) Name() string { return "SteerableViewMapPixel" }

// Eval returns the orientation bucket's stored sample at the current
// position.
func (f *SteerableViewMapPixel) Eval(it Iterator0D) (float32, error) {
	svm := f.canvas.SteerableViewMap()
	if svm == nil {
		return 0, ErrNoBuffer
	}
	p := it.Pos()
	return svm.ReadSteerable(f.orientation, f.level, int(p.X), int(p.Y))
}

// CompleteViewMapPixel reads the raw sample of the complete
// (non-directional) view map at the evaluation point.
type CompleteViewMapPixel struct {
	canvas *Canvas
	level  int
}

// NewCompleteViewMapPixel creates a functor reading the complete view map at
// the given pyramid level.
func NewCompleteViewMapPixel(c *Canvas, level int) (*CompleteViewMapPixel, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	return &CompleteViewMapPixel{canvas: c, level: level}, nil
}

// Name returns "CompleteViewMapPixel".
func (f *CompleteViewMapPixel) Name() string { return "CompleteViewMapPixel" }

// Eval returns the complete view map's stored sample at the current
// position.
func (f *CompleteViewMapPixel) Eval(it Iterator0D) (float32, error) {
	svm := f.canvas.SteerableViewMap()
	if svm == nil {
		return 0, ErrNoBuffer
	}
	p := it.Pos()
	return svm.ReadComplete(f.level, int(p.X), int(p.Y))
}

// ViewMapGradientNorm returns the norm of the gradient of the complete
// view-map density at the evaluation point, from forward differences with a
// step of 2^level, compensating for the coarser resolution at higher levels.
type ViewMapGradientNorm struct {
	canvas *Canvas
	level  int
	step   float64
}

// NewViewMapGradientNorm creates a gradient-norm functor for the given
// pyramid level.
func NewViewMapGradientNorm(c *Canvas, level int) (*ViewMapGradientNorm, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	return &ViewMapGradientNorm{canvas: c, level: level, step: math.Pow(2, float64(level))}, nil
}

// Name returns "ViewMapGradientNorm".
func (f *ViewMapGradientNorm) Name() string { return "ViewMapGradientNorm" }

// Eval returns the Euclidean norm of the finite-difference gradient at the
// current position. Fails when any of the three samples it needs falls
// outside the map.
func (f *ViewMapGradientNorm) Eval(it Iterator0D) (float32, error) {
	svm := f.canvas.SteerableViewMap()
	if svm == nil {
		return 0, ErrNoBuffer
	}
	p := it.Pos()
	x, y := int(p.X), int(p.Y)

	pxy, err := svm.ReadComplete(f.level, x, y)
	if err != nil {
		return 0, err
	}
	right, err := svm.ReadComplete(f.level, int(p.X+f.step), y)
	if err != nil {
		return 0, err
	}
	down, err := svm.ReadComplete(f.level, x, int(p.Y+f.step))
	if err != nil {
		return 0, err
	}

	gx := float64(right - pxy)
	gy := float64(down - pxy)
	return float32(math.Hypot(gx, gy)), nil
}
