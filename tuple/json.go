package tuple

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// JSON form exposes the named slots, e.g. {"first": 1, "second": "a",
// "third": true}. Unmarshalling is atomic: every slot must be present and
// non-null, and on error the receiver is left untouched.

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonNull = []byte("null")

type pairJSON[A, B any] struct {
	First  A `json:"first"`
	Second B `json:"second"`
}

type tripleJSON[A, B, C any] struct {
	First  A `json:"first"`
	Second B `json:"second"`
	Third  C `json:"third"`
}

func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(pairJSON[A, B]{First: p.first, Second: p.second})
}

func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	var raw struct {
		First  jsoniter.RawMessage `json:"first"`
		Second jsoniter.RawMessage `json:"second"`
	}
	if err := jsonCodec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tuple: decode pair: %w", err)
	}
	var next Pair[A, B]
	if err := decodeSlot(raw.First, "first", &next.first); err != nil {
		return err
	}
	if err := decodeSlot(raw.Second, "second", &next.second); err != nil {
		return err
	}
	*p = next
	return nil
}

func (t Triple[A, B, C]) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(tripleJSON[A, B, C]{First: t.first, Second: t.second, Third: t.third})
}

func (t *Triple[A, B, C]) UnmarshalJSON(data []byte) error {
	var raw struct {
		First  jsoniter.RawMessage `json:"first"`
		Second jsoniter.RawMessage `json:"second"`
		Third  jsoniter.RawMessage `json:"third"`
	}
	if err := jsonCodec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tuple: decode triple: %w", err)
	}
	var next Triple[A, B, C]
	if err := decodeSlot(raw.First, "first", &next.first); err != nil {
		return err
	}
	if err := decodeSlot(raw.Second, "second", &next.second); err != nil {
		return err
	}
	if err := decodeSlot(raw.Third, "third", &next.third); err != nil {
		return err
	}
	*t = next
	return nil
}

func decodeSlot[T any](raw jsoniter.RawMessage, slot string, into *T) error {
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return fmt.Errorf("tuple: %s must not be null", slot)
	}
	if err := jsonCodec.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("tuple: decode %s: %w", slot, err)
	}
	return nil
}
