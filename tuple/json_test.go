package tuple_test

import (
	"encoding/json"
	"testing"

	"github.com/quanterra/collect/tuple"
	"github.com/stretchr/testify/assert"
)

func TestTripleMarshalJSON(t *testing.T) {
	bs, err := json.Marshal(tuple.TripleOf(1, "a", true))
	assert.NoError(t, err, "a marshalable triple must encode without error")
	assert.Equal(t, `{"first":1,"second":"a","third":true}`, string(bs), "JSON must expose the slots by name in slot order")
}

func TestTripleUnmarshalJSON(t *testing.T) {
	var tr tuple.Triple[int, string, bool]
	err := json.Unmarshal([]byte(`{"first":1,"second":"a","third":true}`), &tr)
	assert.NoError(t, err, "a complete object must decode")
	assert.Equal(t, tuple.TripleOf(1, "a", true), tr, "decoding must reproduce the encoded triple")
}

func TestTripleUnmarshalJSONRejectsNull(t *testing.T) {
	tr := tuple.TripleOf(9, "keep", false)

	err := json.Unmarshal([]byte(`{"first":1,"second":"a","third":null}`), &tr)
	assert.ErrorContains(t, err, "third must not be null", "a null slot must be rejected by name")
	assert.Equal(t, tuple.TripleOf(9, "keep", false), tr, "the receiver must be untouched after a failed decode")

	err = json.Unmarshal([]byte(`{"first":1,"third":true}`), &tr)
	assert.ErrorContains(t, err, "second must not be null", "a missing slot must be rejected by name")
	assert.Equal(t, tuple.TripleOf(9, "keep", false), tr, "the receiver must be untouched after a failed decode")
}

func TestPairJSONRoundTrip(t *testing.T) {
	bs, err := json.Marshal(tuple.PairOf(1, "a"))
	assert.NoError(t, err, "a marshalable pair must encode without error")
	assert.Equal(t, `{"first":1,"second":"a"}`, string(bs), "JSON must expose the slots by name in slot order")

	var p tuple.Pair[int, string]
	assert.NoError(t, json.Unmarshal(bs, &p), "the encoded form must decode")
	assert.Equal(t, tuple.PairOf(1, "a"), p, "decoding must reproduce the encoded pair")

	assert.ErrorContains(t, json.Unmarshal([]byte(`{"first":null,"second":"a"}`), &p),
		"first must not be null", "a null slot must be rejected by name")
}
