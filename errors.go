package geomlist

import "errors"

// Error kinds reported by the containers in this package.
//
// Contract violations — an invalid index, an invalid range window, a nil
// required argument — are programming errors and panic with an error
// wrapping one of these sentinels, so a recovering caller can still tell
// the kinds apart with [errors.Is]. Absence is never an error: lookups
// that can miss return -1, a comma-ok false, or an empty box instead.
//
// The two boundaries that are checked at runtime rather than by the type
// system return errors instead of panicking: untyped insertion through
// [List] ([ErrTypeMismatch]) and advancing a [Cursor] whose sequence has
// been structurally mutated ([ErrStaleCursor]).
var (
	ErrOutOfRange      = errors.New("geomlist: index out of range")
	ErrInvalidArgument = errors.New("geomlist: invalid argument")
	ErrTypeMismatch    = errors.New("geomlist: type mismatch")
	ErrStaleCursor     = errors.New("geomlist: sequence modified during iteration")
)
