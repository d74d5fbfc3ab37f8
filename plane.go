package geomlist

// Plane is an oriented plane in 3D space described by an origin and a
// right-handed orthonormal frame.
type Plane struct {
	Origin Point
	XAxis  Vector
	YAxis  Vector
	ZAxis  Vector
}

// PlaneXY is the world xy-plane.
var PlaneXY = Plane{
	XAxis: Vector{X: 1},
	YAxis: Vector{Y: 1},
	ZAxis: Vector{Z: 1},
}

// NewPlane returns the plane through origin whose normal is the
// (normalized) cross product of xAxis and yAxis. The axes need not be
// unit length but must not be parallel; a degenerate frame produces an
// invalid plane, not a panic.
func NewPlane(origin Point, xAxis, yAxis Vector) Plane {
	x := xAxis.Normalize()
	z := xAxis.Cross(yAxis).Normalize()
	return Plane{
		Origin: origin,
		XAxis:  x,
		YAxis:  z.Cross(x),
		ZAxis:  z,
	}
}

// planeTol is the frame tolerance used by [Plane.IsValid].
const planeTol = 1e-9

// IsValid reports whether the plane has a well-defined right-handed
// orthonormal frame.
func (p Plane) IsValid() bool {
	if !p.Origin.IsFinite() {
		return false
	}
	if !p.XAxis.IsUnit(planeTol) || !p.YAxis.IsUnit(planeTol) || !p.ZAxis.IsUnit(planeTol) {
		return false
	}
	return p.XAxis.Cross(p.YAxis).Sub(p.ZAxis).Hypot() <= planeTol
}

// PointAt evaluates the plane at the in-plane coordinates (u, v).
func (p Plane) PointAt(u, v float64) Point {
	return p.Origin.Translate(p.XAxis.Mul(u).Add(p.YAxis.Mul(v)))
}

// Transform returns the plane mapped through xf. The frame is
// re-orthonormalized from the transformed axes, so the result is only
// faithful for transforms that preserve angles.
func (p Plane) Transform(xf Xform) Plane {
	return NewPlane(xf.Apply(p.Origin), xf.ApplyVec(p.XAxis), xf.ApplyVec(p.YAxis))
}
