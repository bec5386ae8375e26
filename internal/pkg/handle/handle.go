// Package handle defines the generation-checked references used for every
// entity in a level. A Ref stays cheap to copy and compare, and a recycled
// arena slot invalidates every Ref issued before the recycle.
package handle

import "fmt"

// Ref identifies an arena slot and the generation it was issued at.
// Generations start at 1, so the zero Ref never refers to a live slot.
type Ref struct {
	Index      uint32
	Generation uint32
}

// Nil is the zero reference.
var Nil = Ref{}

// New constructs a reference from raw parts.
func New(index, generation uint32) Ref {
	return Ref{Index: index, Generation: generation}
}

// IsNil reports whether r is the zero reference.
func (r Ref) IsNil() bool {
	return r.Generation == 0
}

// String renders the reference for logs and IDs.
func (r Ref) String() string {
	if r.IsNil() {
		return "ref(nil)"
	}
	return fmt.Sprintf("ref(%d:%d)", r.Index, r.Generation)
}
