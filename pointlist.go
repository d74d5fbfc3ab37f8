package geomlist

import "fmt"

// PointList is a [Sequence] of points with geometry-aware operations
// layered on top: bounding boxes, closest-point queries, per-axis
// coordinate views, and bulk transforms. All structural work is done by
// the embedded sequence.
type PointList struct {
	Sequence[Point]
}

// NewPointList returns a new empty point list.
func NewPointList() *PointList {
	return &PointList{}
}

// NewPointListWithCapacity returns a new empty point list with at least
// the given capacity preallocated.
func NewPointListWithCapacity(capacity int) *PointList {
	if capacity < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity))
	}
	return &PointList{Sequence[Point]{buf: make([]Point, capacity)}}
}

// PointListFromSlice returns a new point list holding a copy of pts.
func PointListFromSlice(pts []Point) *PointList {
	l := NewPointListWithCapacity(len(pts))
	l.AddSlice(pts)
	return l
}

// AddXYZ appends the point (x, y, z).
func (l *PointList) AddXYZ(x, y, z float64) {
	l.Add(Pt(x, y, z))
}

// BoundingBox returns the axis-aligned box of all points in a single
// pass. An empty list yields [EmptyBBox]; this is never an error.
func (l *PointList) BoundingBox() BBox {
	box := EmptyBBox
	for i := 0; i < l.n; i++ {
		box = box.UnionPoint(l.buf[i])
	}
	return box
}

// ClosestIndex returns the index of the point closest to pt, comparing
// squared distances and short-circuiting on an exact match. It returns
// -1 if the list is empty or pt is not finite.
func (l *PointList) ClosestIndex(pt Point) int {
	if l.n == 0 || !pt.IsFinite() {
		return -1
	}
	best := 0
	bestDist := l.buf[0].DistanceSquared(pt)
	for i := 1; i < l.n && bestDist > 0; i++ {
		if d := l.buf[i].DistanceSquared(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ClosestPoint returns the point closest to pt. Unlike
// [PointList.ClosestIndex] it has no sentinel: calling it on an empty
// list or with a non-finite query panics with [ErrInvalidArgument].
func (l *PointList) ClosestPoint(pt Point) Point {
	if l.n == 0 {
		panic(fmt.Errorf("%w: closest point of an empty list", ErrInvalidArgument))
	}
	if !pt.IsFinite() {
		panic(fmt.Errorf("%w: non-finite query point %v", ErrInvalidArgument, pt))
	}
	return l.buf[l.ClosestIndex(pt)]
}

// Transform maps every point through xf in place. Point transforms are
// total, so there is no failure path. Replacing every element is a
// structural mutation.
func (l *PointList) Transform(xf Xform) {
	for i := 0; i < l.n; i++ {
		l.buf[i] = xf.Apply(l.buf[i])
	}
	l.gen++
}

// Axis selects one coordinate of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisView is an indexed view of one coordinate of every point in a
// [PointList]. The view holds a reference to its owner and re-reads
// through it on every access, never a raw buffer address, so it survives
// reallocation of the owner's storage.
//
// Writing through the view edits a coordinate of the backing point in
// place. That is not a structural mutation and does not invalidate
// cursors; replacing a whole point via [Sequence.SetAt] does.
type AxisView struct {
	owner *PointList
	axis  Axis
}

// NewAxisView returns a view of one coordinate of owner's points. A nil
// owner panics with [ErrInvalidArgument].
func NewAxisView(owner *PointList, axis Axis) AxisView {
	if owner == nil {
		panic(fmt.Errorf("%w: nil owner", ErrInvalidArgument))
	}
	if axis < AxisX || axis > AxisZ {
		panic(fmt.Errorf("%w: axis %d", ErrInvalidArgument, axis))
	}
	return AxisView{owner: owner, axis: axis}
}

// X returns a view of the x coordinates.
func (l *PointList) X() AxisView { return NewAxisView(l, AxisX) }

// Y returns a view of the y coordinates.
func (l *PointList) Y() AxisView { return NewAxisView(l, AxisY) }

// Z returns a view of the z coordinates.
func (l *PointList) Z() AxisView { return NewAxisView(l, AxisZ) }

// Len returns the owner's length.
func (v AxisView) Len() int { return v.owner.Len() }

// At returns the viewed coordinate of the point at index i.
func (v AxisView) At(i int) float64 {
	v.owner.checkIndex(i)
	pt := &v.owner.buf[i]
	switch v.axis {
	case AxisY:
		return pt.Y
	case AxisZ:
		return pt.Z
	default:
		return pt.X
	}
}

// SetAt writes the viewed coordinate of the point at index i.
func (v AxisView) SetAt(i int, c float64) {
	v.owner.checkIndex(i)
	pt := &v.owner.buf[i]
	switch v.axis {
	case AxisY:
		pt.Y = c
	case AxisZ:
		pt.Z = c
	default:
		pt.X = c
	}
}

// Fill writes the same coordinate value at every index.
func (v AxisView) Fill(c float64) {
	for i := 0; i < v.owner.n; i++ {
		v.SetAt(i, c)
	}
}
