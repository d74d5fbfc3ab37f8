package geomlist

import "math"

// Xform describes an affine transform of 3D space via coefficients.
//
// If the coefficients are (n0, …, n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n1 n2  n3  |
//	| n4 n5 n6  n7  |
//	| n8 n9 n10 n11 |
//	| 0  0  0   1   |
//
// Rows map input coordinates to one output coordinate each, so
// (A * B) * v == A * (B * v).
type Xform struct {
	// A struct instead of an array for the same reason the 2D libraries
	// use one: structs benefit from SROA, arrays don't.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Xform{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// Translate creates an affine transform representing translation.
func Translate(v Vector) Xform {
	return Xform{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
	}
}

// Scale creates an affine transform representing uniform scaling about
// the origin.
func Scale(f float64) Xform {
	return ScaleNonUniform(f, f, f)
}

// ScaleNonUniform creates an affine transform with different scale values
// per axis.
func ScaleNonUniform(x, y, z float64) Xform {
	return Xform{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
	}
}

// RotateAxis creates an affine transform representing rotation of th
// radians about an axis through the origin, following the right-hand
// rule. The axis need not be a unit vector.
func RotateAxis(axis Vector, th float64) Xform {
	u := axis.Normalize()
	sin, cos := math.Sincos(th)
	c1 := 1 - cos
	return Xform{
		cos + u.X*u.X*c1, u.X*u.Y*c1 - u.Z*sin, u.X*u.Z*c1 + u.Y*sin, 0,
		u.Y*u.X*c1 + u.Z*sin, cos + u.Y*u.Y*c1, u.Y*u.Z*c1 - u.X*sin, 0,
		u.Z*u.X*c1 - u.Y*sin, u.Z*u.Y*c1 + u.X*sin, cos + u.Z*u.Z*c1, 0,
	}
}

// RotateAxisAbout creates an affine transform representing a rotation of
// th radians about an axis through center.
func RotateAxisAbout(axis Vector, th float64, center Point) Xform {
	c := center.Sub(Point{})
	return Translate(c).Mul(RotateAxis(axis, th)).Mul(Translate(c.Negate()))
}

// Mul composes two transforms. The result applies o first, then xf.
func (xf Xform) Mul(o Xform) Xform {
	return Xform{
		xf.N0*o.N0 + xf.N1*o.N4 + xf.N2*o.N8,
		xf.N0*o.N1 + xf.N1*o.N5 + xf.N2*o.N9,
		xf.N0*o.N2 + xf.N1*o.N6 + xf.N2*o.N10,
		xf.N0*o.N3 + xf.N1*o.N7 + xf.N2*o.N11 + xf.N3,

		xf.N4*o.N0 + xf.N5*o.N4 + xf.N6*o.N8,
		xf.N4*o.N1 + xf.N5*o.N5 + xf.N6*o.N9,
		xf.N4*o.N2 + xf.N5*o.N6 + xf.N6*o.N10,
		xf.N4*o.N3 + xf.N5*o.N7 + xf.N6*o.N11 + xf.N7,

		xf.N8*o.N0 + xf.N9*o.N4 + xf.N10*o.N8,
		xf.N8*o.N1 + xf.N9*o.N5 + xf.N10*o.N9,
		xf.N8*o.N2 + xf.N9*o.N6 + xf.N10*o.N10,
		xf.N8*o.N3 + xf.N9*o.N7 + xf.N10*o.N11 + xf.N11,
	}
}

// Apply transforms a point.
func (xf Xform) Apply(pt Point) Point {
	return Point{
		X: xf.N0*pt.X + xf.N1*pt.Y + xf.N2*pt.Z + xf.N3,
		Y: xf.N4*pt.X + xf.N5*pt.Y + xf.N6*pt.Z + xf.N7,
		Z: xf.N8*pt.X + xf.N9*pt.Y + xf.N10*pt.Z + xf.N11,
	}
}

// ApplyVec transforms a vector, ignoring the translation component.
func (xf Xform) ApplyVec(v Vector) Vector {
	return Vector{
		X: xf.N0*v.X + xf.N1*v.Y + xf.N2*v.Z,
		Y: xf.N4*v.X + xf.N5*v.Y + xf.N6*v.Z,
		Z: xf.N8*v.X + xf.N9*v.Y + xf.N10*v.Z,
	}
}

// Translation returns the translation component of the transform.
func (xf Xform) Translation() Vector {
	return Vector{X: xf.N3, Y: xf.N7, Z: xf.N11}
}

// Determinant computes the determinant of the linear part.
func (xf Xform) Determinant() float64 {
	return xf.N0*(xf.N5*xf.N10-xf.N6*xf.N9) -
		xf.N1*(xf.N4*xf.N10-xf.N6*xf.N8) +
		xf.N2*(xf.N4*xf.N9-xf.N5*xf.N8)
}

// columns returns the columns of the linear part.
func (xf Xform) columns() (Vector, Vector, Vector) {
	return Vector{xf.N0, xf.N4, xf.N8},
		Vector{xf.N1, xf.N5, xf.N9},
		Vector{xf.N2, xf.N6, xf.N10}
}

// IsSimilarity reports whether the transform preserves shape: a
// composition of rotation, reflection, translation, and uniform scaling.
// The linear part's columns must be mutually orthogonal and of equal,
// nonzero length within tol. Similarity transforms map circles to
// circles; a non-uniform scale or skew does not.
func (xf Xform) IsSimilarity(tol float64) bool {
	c0, c1, c2 := xf.columns()
	l0 := c0.Hypot2()
	l1 := c1.Hypot2()
	l2 := c2.Hypot2()
	if l0 == 0 || !xf.IsFinite() {
		return false
	}
	scale := l0
	return math.Abs(l1-scale) <= tol*scale &&
		math.Abs(l2-scale) <= tol*scale &&
		math.Abs(c0.Dot(c1)) <= tol*scale &&
		math.Abs(c1.Dot(c2)) <= tol*scale &&
		math.Abs(c0.Dot(c2)) <= tol*scale
}

// ScaleFactor returns the uniform scale applied by a similarity
// transform. For non-similarity transforms the result is meaningless.
func (xf Xform) ScaleFactor() float64 {
	c0, _, _ := xf.columns()
	return c0.Hypot()
}

func (xf Xform) IsInf() bool {
	for _, n := range [12]float64{xf.N0, xf.N1, xf.N2, xf.N3, xf.N4, xf.N5, xf.N6, xf.N7, xf.N8, xf.N9, xf.N10, xf.N11} {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (xf Xform) IsNaN() bool {
	for _, n := range [12]float64{xf.N0, xf.N1, xf.N2, xf.N3, xf.N4, xf.N5, xf.N6, xf.N7, xf.N8, xf.N9, xf.N10, xf.N11} {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// IsFinite reports whether all coefficients are finite, well-defined
// numbers.
func (xf Xform) IsFinite() bool {
	return !xf.IsInf() && !xf.IsNaN()
}
