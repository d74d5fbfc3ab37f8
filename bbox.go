package geomlist

import (
	"fmt"
	"math"
)

// BBox is an axis-aligned bounding box described by its minimum and
// maximum corners.
type BBox struct {
	Min Point
	Max Point
}

// EmptyBBox is the designated empty box: its corners are inverted
// infinities, so unioning any point into it yields the box of just that
// point. It is the result of bounding-box queries over empty collections
// and is never an error.
var EmptyBBox = BBox{
	Min: Point{math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// NewBBox returns the box spanned by two corner points, normalizing the
// coordinates so that Min ≤ Max on every axis.
func NewBBox(a, b Point) BBox {
	return BBox{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

func (b BBox) String() string {
	return fmt.Sprintf("[%v – %v]", b.Min, b.Max)
}

// IsEmpty reports whether the box contains no points.
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// UnionPoint returns the smallest box containing both b and pt.
func (b BBox) UnionPoint(pt Point) BBox {
	return BBox{
		Min: Point{math.Min(b.Min.X, pt.X), math.Min(b.Min.Y, pt.Y), math.Min(b.Min.Z, pt.Z)},
		Max: Point{math.Max(b.Max.X, pt.X), math.Max(b.Max.Y, pt.Y), math.Max(b.Max.Z, pt.Z)},
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b BBox) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Center returns the center of the box.
func (b BBox) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Diagonal returns the vector from the minimum to the maximum corner.
func (b BBox) Diagonal() Vector {
	return b.Max.Sub(b.Min)
}

func (b BBox) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b BBox) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}
