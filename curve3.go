package geomlist

import "math"

// similarityTol is the tolerance used when deciding whether a transform
// keeps circles circular.
const similarityTol = 1e-9

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) IsFinite() bool {
	return l.P0.IsFinite() && l.P1.IsFinite()
}

func (l Line) Translate(v Vector) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() BBox {
	return NewBBox(l.P0, l.P1)
}

// Circle represents a circle lying in a plane.
type Circle struct {
	Plane  Plane
	Radius float64
}

// Center returns the circle's center.
func (c Circle) Center() Point {
	return c.Plane.Origin
}

// PointAt evaluates the circle at angle th, measured from the plane's
// x-axis towards its y-axis.
func (c Circle) PointAt(th float64) Point {
	sin, cos := math.Sincos(th)
	return c.Plane.PointAt(c.Radius*cos, c.Radius*sin)
}

func (c Circle) Circumference() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) IsFinite() bool {
	return c.Plane.Origin.IsFinite() && !math.IsInf(c.Radius, 0) && !math.IsNaN(c.Radius)
}

// BoundingBox returns the exact axis-aligned box of the circle. The
// half-extent along each world axis is the radius scaled by the in-plane
// component of that axis.
func (c Circle) BoundingBox() BBox {
	r := math.Abs(c.Radius)
	ex := r * math.Hypot(c.Plane.XAxis.X, c.Plane.YAxis.X)
	ey := r * math.Hypot(c.Plane.XAxis.Y, c.Plane.YAxis.Y)
	ez := r * math.Hypot(c.Plane.XAxis.Z, c.Plane.YAxis.Z)
	o := c.Plane.Origin
	return BBox{
		Min: Point{o.X - ex, o.Y - ey, o.Z - ez},
		Max: Point{o.X + ex, o.Y + ey, o.Z + ez},
	}
}

// Arc represents a circular arc: the portion of a circle starting at
// StartAngle (measured from the plane's x-axis) and sweeping SweepAngle
// radians.
type Arc struct {
	Plane      Plane
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// StartPoint returns the arc's start point.
func (a Arc) StartPoint() Point {
	return a.circle().PointAt(a.StartAngle)
}

// EndPoint returns the arc's end point.
func (a Arc) EndPoint() Point {
	return a.circle().PointAt(a.StartAngle + a.SweepAngle)
}

func (a Arc) circle() Circle {
	return Circle{Plane: a.Plane, Radius: a.Radius}
}

func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle * a.Radius)
}

func (a Arc) IsFinite() bool {
	return a.circle().IsFinite() &&
		!math.IsInf(a.StartAngle, 0) && !math.IsNaN(a.StartAngle) &&
		!math.IsInf(a.SweepAngle, 0) && !math.IsNaN(a.SweepAngle)
}

// BoundingBox returns the box of the full circle the arc lies on. This is
// not tight for partial sweeps.
func (a Arc) BoundingBox() BBox {
	return a.circle().BoundingBox()
}

// Curve is a handle to a transformable curve held by a [CurveList].
// Handles are pointers; a nil handle in a list is skipped by bulk
// operations.
type Curve interface {
	// Transform maps the curve through xf in place, reporting whether
	// the curve could be transformed. A curve that cannot represent its
	// transformed shape (a circle under a non-uniform scale, for
	// example) is left unmodified and reports false.
	Transform(xf Xform) bool
	// IsValid reports whether the curve's data is well-defined.
	IsValid() bool
	BoundingBox() BBox
}

var _ Curve = (*LineCurve)(nil)
var _ Curve = (*CircleCurve)(nil)
var _ Curve = (*ArcCurve)(nil)
var _ Curve = (*PolylineCurve)(nil)

// LineCurve is a [Curve] backed by a line segment.
type LineCurve struct {
	Line Line
}

// NewLineCurve returns a curve handle for l.
func NewLineCurve(l Line) *LineCurve {
	return &LineCurve{Line: l}
}

// Transform implements [Curve]. Line transforms are total.
func (c *LineCurve) Transform(xf Xform) bool {
	c.Line.P0 = xf.Apply(c.Line.P0)
	c.Line.P1 = xf.Apply(c.Line.P1)
	return true
}

func (c *LineCurve) IsValid() bool { return c.Line.IsFinite() }

func (c *LineCurve) BoundingBox() BBox { return c.Line.BoundingBox() }

// CircleCurve is a [Curve] backed by a circle.
type CircleCurve struct {
	Circle Circle
}

// NewCircleCurve returns a curve handle for cc.
func NewCircleCurve(cc Circle) *CircleCurve {
	return &CircleCurve{Circle: cc}
}

// Transform implements [Curve]. It fails for transforms that don't keep
// the circle circular.
func (c *CircleCurve) Transform(xf Xform) bool {
	if !xf.IsSimilarity(similarityTol) {
		return false
	}
	c.Circle.Plane = c.Circle.Plane.Transform(xf)
	c.Circle.Radius *= xf.ScaleFactor()
	return true
}

func (c *CircleCurve) IsValid() bool {
	return c.Circle.IsFinite() && c.Circle.Plane.IsValid() && c.Circle.Radius > 0
}

func (c *CircleCurve) BoundingBox() BBox { return c.Circle.BoundingBox() }

// ArcCurve is a [Curve] backed by a circular arc.
type ArcCurve struct {
	Arc Arc
}

// NewArcCurve returns a curve handle for a.
func NewArcCurve(a Arc) *ArcCurve {
	return &ArcCurve{Arc: a}
}

// Transform implements [Curve]. Like circles, arcs only survive
// similarity transforms.
func (c *ArcCurve) Transform(xf Xform) bool {
	if !xf.IsSimilarity(similarityTol) {
		return false
	}
	c.Arc.Plane = c.Arc.Plane.Transform(xf)
	c.Arc.Radius *= xf.ScaleFactor()
	return true
}

func (c *ArcCurve) IsValid() bool {
	return c.Arc.IsFinite() && c.Arc.Plane.IsValid() && c.Arc.Radius > 0 && c.Arc.SweepAngle != 0
}

func (c *ArcCurve) BoundingBox() BBox { return c.Arc.BoundingBox() }

// PolylineCurve is a [Curve] backed by a run of points joined by line
// segments.
type PolylineCurve struct {
	Points []Point
}

// NewPolylineCurve returns a curve handle over a copy of pts.
func NewPolylineCurve(pts []Point) *PolylineCurve {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &PolylineCurve{Points: cp}
}

// Transform implements [Curve]. Polyline transforms are total.
func (c *PolylineCurve) Transform(xf Xform) bool {
	for i, pt := range c.Points {
		c.Points[i] = xf.Apply(pt)
	}
	return true
}

func (c *PolylineCurve) IsValid() bool {
	if len(c.Points) < 2 {
		return false
	}
	for _, pt := range c.Points {
		if !pt.IsFinite() {
			return false
		}
	}
	return true
}

func (c *PolylineCurve) BoundingBox() BBox {
	box := EmptyBBox
	for _, pt := range c.Points {
		box = box.UnionPoint(pt)
	}
	return box
}
