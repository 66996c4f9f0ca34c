package tuple_test

import (
	"testing"

	"github.com/quanterra/collect/tuple"
	"github.com/stretchr/testify/assert"
)

func TestPairOf(t *testing.T) {
	p := tuple.PairOf(7, "y")

	assert.Equal(t, 7, p.First(), "First must return the first element given at construction")
	assert.Equal(t, "y", p.Second(), "Second must return the second element given at construction")
	assert.Equal(t, 2, p.Size(), "a pair always has size 2")
	assert.Equal(t, []any{7, "y"}, p.Elements(), "Elements must list the slots in order")
	assert.Equal(t, "[7, y]", p.String(), "String must use the '[a, b]' format exactly")
}

func TestPairOfRejectsNil(t *testing.T) {
	assert.PanicsWithValue(t, "tuple: first must not be nil", func() {
		tuple.PairOf[any, int](nil, 2)
	}, "nil first element must be rejected")

	var fn func()
	assert.PanicsWithValue(t, "tuple: second must not be nil", func() {
		tuple.PairOf(1, fn)
	}, "a nil function must be rejected")
}

func TestPairCombine(t *testing.T) {
	add := func(lhs, rhs int) int { return lhs + rhs }
	concat := func(lhs, rhs string) string { return lhs + rhs }

	p1 := tuple.PairOf(1, "a")
	p2 := tuple.PairOf(2, "b")

	assert.Equal(t, tuple.PairOf(3, "ab"), p1.CombinedWith(p2, add, concat), "each slot must combine independently")
	assert.Equal(t, tuple.PairOf(1, "a"), p1, "combining must not modify the receiver")

	reducer := tuple.CombiningPairs(add, concat)
	assert.Equal(t, p1.CombinedWith(p2, add, concat), reducer(p1, p2), "the reducer must match CombinedWith on the same inputs")
}
