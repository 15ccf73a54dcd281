package lighthouse

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// IgnoreSet is a set of lighthouse indices to leave out of a distance
// product, e.g. the lighthouse an observer has replaced. The zero value is
// the empty set. IgnoreSets are values: With returns a new set and leaves
// the receiver untouched.
type IgnoreSet struct {
	indices *treeset.Set // ordered set of int
}

// Ignore creates a set of lighthouse indices to leave out.
func Ignore(indices ...int) IgnoreSet {
	set := treeset.NewWithIntComparator()
	for _, i := range indices {
		set.Add(i)
	}
	return IgnoreSet{indices: set}
}

// With returns a new set containing the indices of s and the given ones.
func (s IgnoreSet) With(indices ...int) IgnoreSet {
	return Ignore(append(s.Indices(), indices...)...)
}

// Contains is a predicate: is lighthouse k ignored?
func (s IgnoreSet) Contains(k int) bool {
	if s.indices == nil {
		return false
	}
	return s.indices.Contains(k)
}

// Size is the number of distinct ignored indices.
func (s IgnoreSet) Size() int {
	if s.indices == nil {
		return 0
	}
	return s.indices.Size()
}

// Indices returns the ignored indices in ascending order.
func (s IgnoreSet) Indices() []int {
	if s.indices == nil {
		return nil
	}
	values := s.indices.Values()
	indices := make([]int, len(values))
	for i, v := range values {
		indices[i] = v.(int)
	}
	return indices
}

// bounds returns the smallest and largest ignored index.
func (s IgnoreSet) bounds() (lo, hi int, ok bool) {
	indices := s.Indices()
	if len(indices) == 0 {
		return 0, 0, false
	}
	return indices[0], indices[len(indices)-1], true
}

func (s IgnoreSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Indices() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", k)
	}
	b.WriteByte('}')
	return b.String()
}
