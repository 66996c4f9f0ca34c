package tuple

import "fmt"

// Triple is an immutable tuple of three elements, referred to as 'first',
// 'second' and 'third'. Elements cannot be nil. The zero value is only valid
// when all three element types have usable zero values; construct through
// TripleOf otherwise.
//
// A Triple whose element types are all comparable is itself comparable: ==
// implements structural equality and values may be used directly as map keys.
type Triple[A, B, C any] struct {
	first  A
	second B
	third  C
}

// TripleOf returns a triple of the three given elements. It panics if any
// element is nil.
func TripleOf[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	notNil("first", first)
	notNil("second", second)
	notNil("third", third)
	return Triple[A, B, C]{first: first, second: second, third: third}
}

func (t Triple[A, B, C]) First() A {
	return t.first
}

func (t Triple[A, B, C]) Second() B {
	return t.second
}

func (t Triple[A, B, C]) Third() C {
	return t.third
}

func (t Triple[A, B, C]) Size() int {
	return 3
}

func (t Triple[A, B, C]) Elements() []any {
	return []any{t.first, t.second, t.third}
}

// String formats the triple as '[first, second, third]'. The format is part
// of the public contract.
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", t.first, t.second, t.third)
}

// CombinedWith combines this triple with another of the same element types,
// slot by slot. See CombineTriples for the mixed-type form.
func (t Triple[A, B, C]) CombinedWith(
	other Triple[A, B, C],
	combinerFirst func(A, A) A,
	combinerSecond func(B, B) B,
	combinerThird func(C, C) C,
) Triple[A, B, C] {
	return CombineTriples(t, other, combinerFirst, combinerSecond, combinerThird)
}

// CombineTriples returns a new triple whose elements are the slot-wise
// combination of t and other. Each slot is combined independently; neither
// input is modified. The result keeps t's element types. Combiners must not
// produce nil.
func CombineTriples[A, B, C, Q, R, S any](
	t Triple[A, B, C],
	other Triple[Q, R, S],
	combinerFirst func(A, Q) A,
	combinerSecond func(B, R) B,
	combinerThird func(C, S) C,
) Triple[A, B, C] {
	return TripleOf(
		combinerFirst(t.first, other.first),
		combinerSecond(t.second, other.second),
		combinerThird(t.third, other.third))
}

// CombiningTriples returns a reducer of triples built from three slot-wise
// combiners, for folding a sequence of triples into one:
//
//	sum := tuple.TripleOf(0, 0.0, "")
//	for _, t := range triples {
//		sum = reducer(sum, t)
//	}
//
// The fold result is independent of reduction order only if the supplied
// combiners are themselves associative; that is the caller's obligation.
func CombiningTriples[A, B, C any](
	combinerFirst func(A, A) A,
	combinerSecond func(B, B) B,
	combinerThird func(C, C) C,
) func(Triple[A, B, C], Triple[A, B, C]) Triple[A, B, C] {
	return func(lhs, rhs Triple[A, B, C]) Triple[A, B, C] {
		return lhs.CombinedWith(rhs, combinerFirst, combinerSecond, combinerThird)
	}
}
