package tuple

import "fmt"

// Pair is an immutable tuple of two elements, referred to as 'first' and
// 'second'. Elements cannot be nil.
//
// A Pair whose element types are both comparable is itself comparable: ==
// implements structural equality and values may be used directly as map keys.
type Pair[A, B any] struct {
	first  A
	second B
}

// PairOf returns a pair of the two given elements. It panics if either
// element is nil.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	notNil("first", first)
	notNil("second", second)
	return Pair[A, B]{first: first, second: second}
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

func (p Pair[A, B]) Size() int {
	return 2
}

func (p Pair[A, B]) Elements() []any {
	return []any{p.first, p.second}
}

// String formats the pair as '[first, second]'.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("[%v, %v]", p.first, p.second)
}

// CombinedWith combines this pair with another of the same element types,
// slot by slot. See CombinePairs for the mixed-type form.
func (p Pair[A, B]) CombinedWith(
	other Pair[A, B],
	combinerFirst func(A, A) A,
	combinerSecond func(B, B) B,
) Pair[A, B] {
	return CombinePairs(p, other, combinerFirst, combinerSecond)
}

// CombinePairs returns a new pair whose elements are the slot-wise
// combination of p and other. Each slot is combined independently; neither
// input is modified. The result keeps p's element types. Combiners must not
// produce nil.
func CombinePairs[A, B, Q, R any](
	p Pair[A, B],
	other Pair[Q, R],
	combinerFirst func(A, Q) A,
	combinerSecond func(B, R) B,
) Pair[A, B] {
	return PairOf(
		combinerFirst(p.first, other.first),
		combinerSecond(p.second, other.second))
}

// CombiningPairs returns a reducer of pairs built from two slot-wise
// combiners. The fold result is independent of reduction order only if the
// supplied combiners are themselves associative.
func CombiningPairs[A, B any](
	combinerFirst func(A, A) A,
	combinerSecond func(B, B) B,
) func(Pair[A, B], Pair[A, B]) Pair[A, B] {
	return func(lhs, rhs Pair[A, B]) Pair[A, B] {
		return lhs.CombinedWith(rhs, combinerFirst, combinerSecond)
	}
}
