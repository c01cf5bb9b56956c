package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type levelDims struct{ W, H int }

func pyramidDims(p *Pyramid) []levelDims {
	dims := make([]levelDims, p.NumLevels())
	for i := range dims {
		m := p.Level(i)
		dims[i] = levelDims{m.Width(), m.Height()}
	}
	return dims
}

func TestBuildPyramidGeometry(t *testing.T) {
	src, _ := NewMap(16, 8)
	p := BuildPyramid(src, 0)

	want := []levelDims{{16, 8}, {8, 4}, {4, 2}, {2, 1}, {1, 1}}
	if diff := cmp.Diff(want, pyramidDims(p)); diff != "" {
		t.Errorf("pyramid level dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPyramidLevelCount(t *testing.T) {
	src, _ := NewMap(64, 64)

	tests := []struct {
		numLevels int
		want      int
	}{
		{0, 7},   // full chain: 64 down to 1
		{3, 3},   // truncated
		{100, 7}, // clamped to the full chain
		{1, 1},   // base only
	}
	for _, tt := range tests {
		p := BuildPyramid(src, tt.numLevels)
		if got := p.NumLevels(); got != tt.want {
			t.Errorf("BuildPyramid(64x64, %d).NumLevels() = %d, want %d", tt.numLevels, got, tt.want)
		}
	}
}

func TestBuildPyramidNil(t *testing.T) {
	if p := BuildPyramid(nil, 0); p != nil {
		t.Errorf("BuildPyramid(nil) = %v, want nil", p)
	}
	if (*Pyramid)(nil).NumLevels() != 0 {
		t.Error("nil pyramid NumLevels != 0")
	}
	if (*Pyramid)(nil).Level(0) != nil {
		t.Error("nil pyramid Level(0) != nil")
	}
}

func TestPyramidSharesBase(t *testing.T) {
	src, _ := NewMap(8, 8)
	p := BuildPyramid(src, 2)
	if p.Level(0) != src {
		t.Error("level 0 is a copy, want the source map itself")
	}
}

// Gaussian downsampling of a constant map must stay constant at every level:
// the 5-tap kernel is normalized and edge taps clamp rather than zero-pad.
func TestPyramidUniformInvariance(t *testing.T) {
	src, _ := NewMap(32, 20)
	src.Fill(0.75)

	p := BuildPyramid(src, 0)
	for level := 0; level < p.NumLevels(); level++ {
		m := p.Level(level)
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				v, _ := m.At(x, y)
				if math.Abs(float64(v)-0.75) > 1e-5 {
					t.Fatalf("level %d At(%d, %d) = %v, want 0.75", level, x, y, v)
				}
			}
		}
	}
}

func TestPyramidSampleAt(t *testing.T) {
	src, _ := NewMap(8, 8)
	src.Set(3, 5, 3.5)
	p := BuildPyramid(src, 3)

	// Level 0 read is the exact stored sample.
	v, err := p.SampleAt(0, 3, 5)
	if err != nil {
		t.Fatalf("SampleAt: %v", err)
	}
	if v != 3.5 {
		t.Errorf("SampleAt(0, 3, 5) = %v, want 3.5", v)
	}

	// Base-resolution coordinates address coarser levels directly.
	if _, err := p.SampleAt(2, 7, 7); err != nil {
		t.Errorf("SampleAt(2, 7, 7): %v", err)
	}
}

func TestPyramidSampleAtErrors(t *testing.T) {
	src, _ := NewMap(8, 8)
	p := BuildPyramid(src, 2)

	if _, err := p.SampleAt(-1, 0, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SampleAt(-1, ...) error = %v, want ErrInvalidLevel", err)
	}
	if _, err := p.SampleAt(2, 0, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SampleAt(2, ...) error = %v, want ErrInvalidLevel", err)
	}
	if _, err := p.SampleAt(0, 8, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SampleAt(0, 8, 0) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := p.SampleAt(1, 0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SampleAt(1, 0, -1) error = %v, want ErrOutOfBounds", err)
	}
}

// Coarser levels spread an impulse: the impulse's share of total energy at
// its own position must not grow as levels coarsen.
func TestPyramidSmoothing(t *testing.T) {
	src, _ := NewMap(16, 16)
	src.Set(8, 8, 100)

	p := BuildPyramid(src, 3)
	v0, _ := p.SampleAt(0, 8, 8)
	v1, _ := p.SampleAt(1, 8, 8)
	if v1 >= v0 {
		t.Errorf("level 1 impulse = %v, want below level 0 value %v", v1, v0)
	}
	if v1 <= 0 {
		t.Errorf("level 1 impulse = %v, want positive", v1)
	}
}
