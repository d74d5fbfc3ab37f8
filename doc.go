// Package geomlist provides growable sequence containers for 3D geometry.
//
// The package was designed to serve the needs of CAD-style applications
// that keep large ordered collections of points and curves, but the core
// container is general enough to hold any comparable element type.
//
// # Sequences
//
// [Sequence] is the core abstraction: a contiguous growable array with an
// explicit capacity model, overlap-safe bulk range operations, linear and
// binary search, several sort variants, and a mutation-version counter
// that detects iteration over a sequence that has been structurally
// modified.
//
// Operations that need an ordering on the element type are provided as
// package-level functions constrained on [cmp.Ordered] ([Sort],
// [BinarySearch], [SortByKeys]), mirroring the split between
// [slices.Sort] and [slices.SortFunc] in the standard library. Everything
// else is a method on [Sequence].
//
// # Iteration
//
// Sequences can be iterated three ways: [Sequence.Values] and
// [Sequence.All] return single-use iter.Seq iterators, [Sequence.Backward]
// walks back to front, and [Sequence.Cursor] returns an explicit [Cursor]
// handle in the style of [bufio.Scanner]. All of them capture the
// sequence's mutation version when created; advancing after a structural
// mutation of the owner reports [ErrStaleCursor] rather than returning
// stale or skipped elements.
//
// Structural mutations are changes to size, order, or element identity:
// adding, inserting, removing, clearing, sorting, reversing, and replacing
// an element through [Sequence.SetAt]. Writing a single coordinate through
// an [AxisView] is not structural.
//
// # Geometric specializations
//
// [PointList] and [CurveList] embed a Sequence and layer geometry-aware
// operations on top: bounding boxes, closest-point queries, per-axis
// coordinate views, and bulk transforms. [CurveList.Transform] applies a
// transform to every non-nil element and keeps going through individual
// failures, reporting partial application through its return value.
//
// The geometric value types ([Point], [Vector], [Xform], [BBox], [Plane],
// and the [Curve] handles) are plain structs with value semantics and no
// hidden state.
//
// # Concurrency
//
// Sequences are unlocked, single-threaded data structures. The mutation
// version check is a misuse detector, not a synchronization primitive;
// concurrent mutation from multiple goroutines requires external
// exclusion around the whole sequence. Multiple concurrent read-only
// iterations are safe.
package geomlist
