package llll

import "errors"

// Sentinel errors returned by the eager reducers.
//
// Strict reducers (First, Last, ElementAt, Single, Average, Min, Max, ToDict)
// report "no qualifying element" conditions through these values; the
// permissive ...OrDefault forms return the caller's default instead. Callers
// can match with errors.Is even when the error carries extra context.
var (
	// ErrNoElement is returned when a reducer requires at least one element
	// but the sequence yields none.
	ErrNoElement = errors.New("llll: sequence must contain some element")

	// ErrIndexOutOfRange is returned by ElementAt when the index has no
	// corresponding element. The returned error wraps this value together
	// with the offending index.
	ErrIndexOutOfRange = errors.New("llll: index out of range")

	// ErrNotSingle is returned by Single and SingleOrDefault when the
	// filtered sequence does not contain exactly one element.
	ErrNotSingle = errors.New("llll: sequence must contain exactly one element")

	// ErrDuplicateKey is returned by ToDict and ToDictBy when two elements
	// map to the same key. The returned error wraps this value together with
	// the key and the element that collided.
	ErrDuplicateKey = errors.New("llll: duplicate key")
)
