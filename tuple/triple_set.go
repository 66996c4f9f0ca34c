package tuple

import (
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// TripleSet is a set of triples ordered by CompareTriples. Not safe for
// concurrent mutation.
type TripleSet[A, B, C constraints.Ordered] struct {
	base *btree.BTreeG[Triple[A, B, C]]
}

func newTripleTree[A, B, C constraints.Ordered]() *btree.BTreeG[Triple[A, B, C]] {
	return btree.NewBTreeG(func(lhs, rhs Triple[A, B, C]) bool {
		return CompareTriples(lhs, rhs) < 0
	})
}

func NewTripleSet[A, B, C constraints.Ordered](args ...Triple[A, B, C]) *TripleSet[A, B, C] {
	result := &TripleSet[A, B, C]{base: newTripleTree[A, B, C]()}
	for _, elem := range args {
		result.base.Set(elem)
	}
	return result
}

func (s *TripleSet[A, B, C]) ScanIf(fn func(elem Triple[A, B, C]) bool) {
	s.base.Scan(fn)
}

func (s *TripleSet[A, B, C]) Scan(fn func(elem Triple[A, B, C])) {
	s.base.Scan(func(elem Triple[A, B, C]) bool {
		fn(elem)
		return true
	})
}

func (s *TripleSet[A, B, C]) ScanIV(fn func(i int, elem Triple[A, B, C])) {
	i := 0
	s.base.Scan(func(elem Triple[A, B, C]) bool {
		fn(i, elem)
		i++
		return true
	})
}

func (s *TripleSet[A, B, C]) Len() int {
	return s.base.Len()
}

func (s *TripleSet[A, B, C]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *TripleSet[A, B, C]) Copy() *TripleSet[A, B, C] {
	newSet := &TripleSet[A, B, C]{base: newTripleTree[A, B, C]()}
	s.base.Scan(func(elem Triple[A, B, C]) bool {
		newSet.base.Set(elem)
		return true
	})
	return newSet
}

func (s *TripleSet[A, B, C]) Contains(elem Triple[A, B, C]) bool {
	_, ok := s.base.Get(elem)
	return ok
}

func (s *TripleSet[A, B, C]) Add(elem Triple[A, B, C]) {
	s.base.Set(elem)
}

func (s *TripleSet[A, B, C]) Remove(elem Triple[A, B, C]) {
	s.base.Delete(elem)
}

func (s *TripleSet[A, B, C]) Clear() {
	s.base = newTripleTree[A, B, C]()
}

func (s *TripleSet[A, B, C]) Min() (Triple[A, B, C], bool) {
	return s.base.Min()
}

func (s *TripleSet[A, B, C]) Max() (Triple[A, B, C], bool) {
	return s.base.Max()
}

// Items returns the elements in ascending order.
func (s *TripleSet[A, B, C]) Items() []Triple[A, B, C] {
	return s.base.Items()
}

// Reduce folds the set's elements in ascending order through the reducer
// built by CombiningTriples. The second result is false if the set is empty.
func (s *TripleSet[A, B, C]) Reduce(
	combinerFirst func(A, A) A,
	combinerSecond func(B, B) B,
	combinerThird func(C, C) C,
) (Triple[A, B, C], bool) {
	reducer := CombiningTriples(combinerFirst, combinerSecond, combinerThird)
	var acc Triple[A, B, C]
	ok := false
	s.base.Scan(func(elem Triple[A, B, C]) bool {
		if !ok {
			acc, ok = elem, true
		} else {
			acc = reducer(acc, elem)
		}
		return true
	})
	return acc, ok
}
