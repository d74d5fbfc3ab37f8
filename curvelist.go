package geomlist

// CurveList is a [Sequence] of [Curve] handles with typed convenience
// insertion and a partial-failure bulk transform. All structural work is
// done by the embedded sequence.
type CurveList struct {
	Sequence[Curve]
}

// NewCurveList returns a new empty curve list.
func NewCurveList() *CurveList {
	return &CurveList{}
}

// AddLine wraps l in a handle and appends it.
func (cl *CurveList) AddLine(l Line) {
	cl.Add(NewLineCurve(l))
}

// AddCircle wraps c in a handle and appends it.
func (cl *CurveList) AddCircle(c Circle) {
	cl.Add(NewCircleCurve(c))
}

// AddArc wraps a in a handle and appends it.
func (cl *CurveList) AddArc(a Arc) {
	cl.Add(NewArcCurve(a))
}

// AddPolyline wraps a copy of pts in a handle and appends it.
func (cl *CurveList) AddPolyline(pts []Point) {
	cl.Add(NewPolylineCurve(pts))
}

// InsertLine wraps l in a handle and inserts it at index i.
func (cl *CurveList) InsertLine(i int, l Line) {
	cl.Insert(i, NewLineCurve(l))
}

// InsertCircle wraps c in a handle and inserts it at index i.
func (cl *CurveList) InsertCircle(i int, c Circle) {
	cl.Insert(i, NewCircleCurve(c))
}

// InsertArc wraps a in a handle and inserts it at index i.
func (cl *CurveList) InsertArc(i int, a Arc) {
	cl.Insert(i, NewArcCurve(a))
}

// Transform maps every non-nil curve through xf in place, skipping nil
// handles and continuing through individual failures. It returns false
// if any individual transform failed, in which case the list holds a mix
// of transformed and untransformed curves; callers must inspect the flag
// to detect partial application.
func (cl *CurveList) Transform(xf Xform) bool {
	ok := true
	for i := 0; i < cl.n; i++ {
		c := cl.buf[i]
		if c == nil {
			continue
		}
		if !c.Transform(xf) {
			ok = false
		}
	}
	cl.gen++
	return ok
}

// BoundingBox returns the union of the bounding boxes of all non-nil
// curves. An empty or all-nil list yields [EmptyBBox].
func (cl *CurveList) BoundingBox() BBox {
	box := EmptyBBox
	for i := 0; i < cl.n; i++ {
		if c := cl.buf[i]; c != nil {
			box = box.Union(c.BoundingBox())
		}
	}
	return box
}
