// Package npr provides the point-sampling query layer of a
// non-photorealistic line-rendering pipeline.
//
// # Overview
//
// Stroke stylization needs per-vertex measurements of the image being
// rendered: how dense the line work already is around a point, how deep the
// underlying surface lies, how strongly edges respond in a given direction.
// npr evaluates those measurements against rasterized buffers (density maps,
// depth maps, steerable view maps) that the surrounding pipeline builds
// ahead of time and installs on a Canvas.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/npr"
//		"github.com/gogpu/npr/raster"
//	)
//
//	canvas := npr.NewCanvas()
//	canvas.SetDensity(raster.FromImage(render))
//
//	density, _ := npr.NewDensity(canvas, 2.0)
//	it := npr.NewPointIterator(npr.V2(120, 64))
//	v, err := density.Eval(it)
//
// # Functors
//
// Each measurement is a small immutable functor implementing Function0D:
// Density, LocalAverageDepth, MapPixel, SteerableViewMapPixel,
// CompleteViewMapPixel and ViewMapGradientNorm. Functors are pure per call
// and safe to share across goroutines given read-only buffers and
// per-goroutine iterators. Integrate folds a functor along a whole vertex
// chain.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All positions are expressed at base (level 0) resolution; pyramid levels
// are addressed by delegating base coordinates to the coarser grid.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, the Function0D functors, Iterator0D
//   - raster: scalar maps, Gaussian filtering, pyramids
//   - viewmap: orientation buckets and the steerable view map
package npr
