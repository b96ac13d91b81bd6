package pathname

import "strconv"

// Depth bounds how far a walk descends below its root.
//
// The zero value is Unbounded. A bounded depth of n lets the walk list
// directories up to n levels below the root; any n <= 0 means the walk
// returns only the root.
type Depth struct {
	limit   int
	bounded bool
}

// Unbounded places no limit on recursion.
var Unbounded = Depth{}

// MaxDepth returns a bounded depth. Negative values are treated as 0.
func MaxDepth(n int) Depth {
	if n < 0 {
		n = 0
	}
	return Depth{limit: n, bounded: true}
}

// Limit returns the remaining budget and whether the depth is bounded.
func (d Depth) Limit() (int, bool) {
	return d.limit, d.bounded
}

// Exhausted reports whether no further descent is allowed.
func (d Depth) Exhausted() bool {
	return d.bounded && d.limit <= 0
}

// Descend returns the budget for the next level down. Unbounded stays unbounded.
func (d Depth) Descend() Depth {
	if !d.bounded {
		return d
	}
	return MaxDepth(d.limit - 1)
}

func (d Depth) String() string {
	if !d.bounded {
		return "unbounded"
	}
	return strconv.Itoa(d.limit)
}
