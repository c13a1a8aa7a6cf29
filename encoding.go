package optional

import "encoding/json"

// Options marshal transparently: a present value encodes as the value itself,
// an empty Option encodes as null.
//
// Decoding cannot target the Option interface directly;
// unmarshal into a pointer and convert with FromPointer instead.

func (o some[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

func (o none[T]) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (o some[T]) MarshalYAML() (interface{}, error) {
	return o.value, nil
}

func (o none[T]) MarshalYAML() (interface{}, error) {
	return nil, nil
}
