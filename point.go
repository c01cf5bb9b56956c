package npr

import "math"

// Vec2 represents a 2D image-space position or displacement.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two positions.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Atan2 returns the angle of the vector in radians.
func (v Vec2) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Iterator0D is a read-only cursor over the 0D vertices of a stroke or
// chain. The stroke pipeline owns and advances it; the sampling functors
// only read the current position.
type Iterator0D interface {
	// Pos returns the projected image-space position of the current vertex.
	Pos() Vec2

	// Next advances to the next vertex and reports whether one exists.
	Next() bool
}

// PointIterator is an Iterator0D over a fixed slice of positions, starting
// on the first one. Mainly useful for feeding functors from precomputed
// vertex lists and in tests.
type PointIterator struct {
	points []Vec2
	idx    int
}

// NewPointIterator creates an iterator over points. The slice is not copied.
func NewPointIterator(points ...Vec2) *PointIterator {
	return &PointIterator{points: points}
}

// Pos returns the current position, or the zero vector for an empty iterator.
func (it *PointIterator) Pos() Vec2 {
	if it.idx >= len(it.points) {
		return Vec2{}
	}
	return it.points[it.idx]
}

// Next advances to the next position and reports whether one exists.
func (it *PointIterator) Next() bool {
	if it.idx+1 >= len(it.points) {
		return false
	}
	it.idx++
	return true
}

// Len returns the number of positions the iterator covers.
func (it *PointIterator) Len() int { return len(it.points) }

// Reset rewinds the iterator to the first position.
func (it *PointIterator) Reset() { it.idx = 0 }
