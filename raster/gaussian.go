package raster

import "math"

// GaussianFilter computes windowed Gaussian integrals over a Map.
//
// The filter precomputes a normalized 2D mask from sigma. The mask covers
// floor(6*sigma)+1 samples per axis (rounded up to odd), about three standard
// deviations on each side. Only one quadrant is stored since the mask is
// symmetric in |i| and |j|.
//
// Weights over a fully interior window sum to 1, so smoothing a constant
// region returns the constant. Near edges, out-of-bounds taps are skipped and
// the result is renormalized by the accumulated weight.
type GaussianFilter struct {
	sigma  float64
	bound  int       // window spans [-bound, bound] per axis
	stored int       // quadrant side length, bound+1
	mask   []float32 // stored*stored quadrant, indexed by (|i|, |j|)
}

// NewGaussianFilter creates a filter for the given sigma.
// For sigma <= 0 the mask degenerates to a single-tap identity.
func NewGaussianFilter(sigma float64) *GaussianFilter {
	f := &GaussianFilter{}
	f.SetSigma(sigma)
	return f
}

// SetSigma recomputes the mask for a new sigma value.
func (f *GaussianFilter) SetSigma(sigma float64) {
	f.sigma = sigma
	if sigma <= 0 {
		f.bound = 0
		f.stored = 1
		f.mask = []float32{1.0}
		return
	}

	size := maskSize(sigma)
	f.bound = (size - 1) / 2
	f.stored = f.bound + 1
	f.mask = make([]float32, f.stored*f.stored)

	// Unnormalized quadrant weights; the full-window sum counts off-axis
	// entries four times and on-axis entries twice.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := 0; i < f.stored; i++ {
		for j := 0; j < f.stored; j++ {
			w := math.Exp(-float64(i*i+j*j) / twoSigmaSq)
			f.mask[i*f.stored+j] = float32(w)
			mult := 4.0
			if i == 0 {
				mult /= 2
			}
			if j == 0 {
				mult /= 2
			}
			sum += mult * w
		}
	}

	invSum := float32(1.0 / sum)
	for i := range f.mask {
		f.mask[i] *= invSum
	}
}

// Sigma returns the current sigma value.
func (f *GaussianFilter) Sigma() float64 { return f.sigma }

// MaskSize returns the full window side length in samples (always odd).
func (f *GaussianFilter) MaskSize() int { return 2*f.bound + 1 }

// Smooth returns the Gaussian-weighted integral of the window centered on
// (x, y). The center must lie inside the map; ErrOutOfBounds is returned
// otherwise. Window taps that fall outside the map are skipped and the
// integral is renormalized over the weights actually visited.
func (f *GaussianFilter) Smooth(m *Map, x, y int) (float64, error) {
	if m.IsEmpty() || !m.Contains(x, y) {
		return 0, ErrOutOfBounds
	}

	var acc, wsum float64
	for i := -f.bound; i <= f.bound; i++ {
		yy := y + i
		if yy < 0 || yy >= m.height {
			continue
		}
		ai := abs(i)
		for j := -f.bound; j <= f.bound; j++ {
			xx := x + j
			if xx < 0 || xx >= m.width {
				continue
			}
			w := float64(f.mask[ai*f.stored+abs(j)])
			acc += w * float64(m.data[yy*m.width+xx])
			wsum += w
		}
	}
	if wsum == 0 {
		return 0, ErrOutOfBounds
	}
	return acc / wsum, nil
}

// maskSize returns the full window side length for sigma: floor(6*sigma)+1,
// rounded up to odd.
func maskSize(sigma float64) int {
	size := int(math.Floor(6*sigma)) + 1
	if size%2 == 0 {
		size++
	}
	return size
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
