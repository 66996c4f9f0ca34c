package tuple

import "golang.org/x/exp/constraints"

// Ordering here is a compile-time capability: it exists only for tuples whose
// element types all satisfy constraints.Ordered, so comparing a tuple with
// non-orderable elements is a compile error rather than a runtime failure.
// The bound cannot live on a method without forcing it onto every
// instantiation, hence free functions.

func compare[T constraints.Ordered](lhs, rhs T) int {
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// ComparePairs compares two pairs lexicographically: by first element, then,
// if equal, by second. Returns -1, 0 or +1.
func ComparePairs[A, B constraints.Ordered](lhs, rhs Pair[A, B]) int {
	if c := compare(lhs.first, rhs.first); c != 0 {
		return c
	}
	return compare(lhs.second, rhs.second)
}

// CompareTriples compares two triples lexicographically: by first element,
// then, if equal, by second, then by third. Later slots are never inspected
// once an earlier slot differs. Returns -1, 0 or +1.
func CompareTriples[A, B, C constraints.Ordered](lhs, rhs Triple[A, B, C]) int {
	if c := compare(lhs.first, rhs.first); c != 0 {
		return c
	}
	if c := compare(lhs.second, rhs.second); c != 0 {
		return c
	}
	return compare(lhs.third, rhs.third)
}

// EqualPairs reports whether two pairs hold pairwise equal elements. It is
// the function-value form of ==.
func EqualPairs[A, B comparable](lhs, rhs Pair[A, B]) bool {
	return lhs == rhs
}

// EqualTriples reports whether two triples hold pairwise equal elements. It
// is the function-value form of ==.
func EqualTriples[A, B, C comparable](lhs, rhs Triple[A, B, C]) bool {
	return lhs == rhs
}
