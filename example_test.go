package geomlist_test

import (
	"fmt"

	"geomlist"
)

func ExampleSequence() {
	s := geomlist.FromSlice([]int{3, 1, 2})
	geomlist.Sort(s)
	s.Add(4)

	fmt.Println(s.ToSlice())
	fmt.Println(geomlist.BinarySearch(s, 3))

	// A miss encodes the insertion point as a bitwise complement.
	miss := geomlist.BinarySearch(s, 99)
	fmt.Println(miss, ^miss)
	// Output:
	// [1 2 3 4]
	// 2
	// -5 4
}

func ExampleSequence_InsertSequence() {
	s := geomlist.FromSlice([]int{1, 2, 3})
	// Inserting a sequence into itself inserts a snapshot of its
	// pre-call contents.
	s.InsertSequence(1, s)
	fmt.Println(s.ToSlice())
	// Output:
	// [1 1 2 3 2 3]
}

func ExamplePointList_ClosestIndex() {
	l := geomlist.NewPointList()
	l.Add(geomlist.Pt(0, 0, 0))
	l.Add(geomlist.Pt(10, 0, 0))

	fmt.Println(l.ClosestIndex(geomlist.Pt(9, 0, 0)))
	fmt.Println(l.BoundingBox().Max)
	// Output:
	// 1
	// (10, 0, 0)
}

func ExampleCurveList_Transform() {
	cl := geomlist.NewCurveList()
	cl.AddLine(geomlist.Line{P0: geomlist.Pt(0, 0, 0), P1: geomlist.Pt(1, 0, 0)})
	cl.AddCircle(geomlist.Circle{Plane: geomlist.PlaneXY, Radius: 1})

	// A non-uniform scale cannot keep a circle circular; the transform
	// is applied where possible and the failure reported in aggregate.
	ok := cl.Transform(geomlist.ScaleNonUniform(2, 1, 1))
	fmt.Println(ok)
	// Output:
	// false
}
