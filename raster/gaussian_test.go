package raster

import (
	"errors"
	"math"
	"testing"
)

func TestGaussianFilterMaskSize(t *testing.T) {
	tests := []struct {
		sigma float64
		want  int
	}{
		{0, 1},
		{-1, 1},
		{0.5, 5},
		{1, 7},
		{2, 13},
	}
	for _, tt := range tests {
		f := NewGaussianFilter(tt.sigma)
		if got := f.MaskSize(); got != tt.want {
			t.Errorf("MaskSize(sigma=%v) = %d, want %d", tt.sigma, got, tt.want)
		}
		if f.MaskSize()%2 != 1 {
			t.Errorf("MaskSize(sigma=%v) = %d, want odd", tt.sigma, f.MaskSize())
		}
	}
}

// The full-window weights must sum to 1 for every sigma, so smoothing a
// constant interior region returns the constant exactly.
func TestGaussianFilterNormalization(t *testing.T) {
	for _, sigma := range []float64{0.3, 0.7, 1, 2, 3.5, 5} {
		f := NewGaussianFilter(sigma)

		var sum float64
		for i := -f.bound; i <= f.bound; i++ {
			for j := -f.bound; j <= f.bound; j++ {
				sum += float64(f.mask[abs(i)*f.stored+abs(j)])
			}
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("sigma=%v: window weights sum to %v, want 1", sigma, sum)
		}
	}
}

func TestGaussianFilterConstantRegion(t *testing.T) {
	m, _ := NewMap(20, 20)
	m.Fill(4.25)

	f := NewGaussianFilter(2)
	for _, pos := range []struct{ x, y int }{{10, 10}, {0, 0}, {19, 19}} {
		got, err := f.Smooth(m, pos.x, pos.y)
		if err != nil {
			t.Fatalf("Smooth(%d, %d): %v", pos.x, pos.y, err)
		}
		// Holds at edges too: skipped taps renormalize.
		if math.Abs(got-4.25) > 1e-5 {
			t.Errorf("Smooth(%d, %d) = %v, want 4.25", pos.x, pos.y, got)
		}
	}
}

// Smoothing a single-pixel impulse: the result at the impulse is attenuated
// but positive, and attenuates further as sigma grows.
func TestGaussianFilterImpulse(t *testing.T) {
	m, _ := NewMap(10, 10)
	m.Set(5, 5, 100)

	f := NewGaussianFilter(2)
	center, err := f.Smooth(m, 5, 5)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	if center <= 0 || center >= 100 {
		t.Errorf("Smooth at impulse = %v, want in (0, 100)", center)
	}

	corner, err := f.Smooth(m, 0, 0)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	if corner >= center {
		t.Errorf("Smooth at corner = %v, want below center value %v", corner, center)
	}
}

func TestGaussianFilterSigmaMonotonicity(t *testing.T) {
	m, _ := NewMap(41, 41)
	m.Set(20, 20, 100)

	prev := math.Inf(1)
	for _, sigma := range []float64{0.5, 1, 2, 4} {
		f := NewGaussianFilter(sigma)
		got, err := f.Smooth(m, 20, 20)
		if err != nil {
			t.Fatalf("Smooth(sigma=%v): %v", sigma, err)
		}
		if got >= prev {
			t.Errorf("sigma=%v: impulse response %v, want below %v (larger windows smooth more)", sigma, got, prev)
		}
		prev = got
	}
}

func TestGaussianFilterIdentity(t *testing.T) {
	m, _ := NewMap(5, 5)
	m.Set(2, 2, 42)

	f := NewGaussianFilter(0)
	got, err := f.Smooth(m, 2, 2)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	if got != 42 {
		t.Errorf("identity Smooth = %v, want 42", got)
	}
}

func TestGaussianFilterOutOfBounds(t *testing.T) {
	m, _ := NewMap(5, 5)
	f := NewGaussianFilter(1)

	if _, err := f.Smooth(m, -1, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Smooth(-1, 2) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := f.Smooth(m, 2, 5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Smooth(2, 5) error = %v, want ErrOutOfBounds", err)
	}
}

func TestGaussianFilterSetSigma(t *testing.T) {
	f := NewGaussianFilter(1)
	size := f.MaskSize()

	f.SetSigma(3)
	if f.Sigma() != 3 {
		t.Errorf("Sigma() = %v, want 3", f.Sigma())
	}
	if f.MaskSize() <= size {
		t.Errorf("MaskSize after SetSigma(3) = %d, want above %d", f.MaskSize(), size)
	}
}
