package vecarray

import "github.com/schungx/vec-array/codec"

// MarshalJSON encodes the live elements as a plain JSON array. Storage
// mode is not part of the encoding.
func (a Array[T]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(a.Slice())
}

// UnmarshalJSON decodes a JSON array into the container, replacing its
// previous contents. Sequences of InlineCapacity or fewer elements land in
// the inline store; longer ones become the heap store.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := codec.Default.Unmarshal(data, &elems); err != nil {
		return err
	}
	*a = FromSlice(elems)
	return nil
}
