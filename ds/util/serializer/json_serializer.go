package serializer

import (
	"encoding/json"
	"io"
)

// JSON variant of the serializing backend. A bundle is one JSON
// document: a two element array of the header object and the value
// array. Array nesting is tracked on a stack so commas and closing
// brackets are emitted when the declared element count is reached.
type jsonSerializer struct {
	destination io.Writer
	pending     []int
}

func (j *jsonSerializer) push(encoded []byte) error {
	if _, err := j.destination.Write(encoded); err != nil {
		return err
	}
	return j.afterElement()
}

func (j *jsonSerializer) afterElement() error {
	for len(j.pending) > 0 {
		top := len(j.pending) - 1
		j.pending[top] = j.pending[top] - 1
		if j.pending[top] > 0 {
			_, err := j.destination.Write([]byte(","))
			return err
		}
		// last element, close the array and tell the upper one
		if _, err := j.destination.Write([]byte("]")); err != nil {
			return err
		}
		j.pending = j.pending[:top]
	}
	return nil
}

func (j *jsonSerializer) EncodeHeader(h *Header) error {
	if err := j.EncodeArrayLen(2); err != nil {
		return err
	}
	return j.EncodeJson(h)
}

func (j *jsonSerializer) EncodeArrayLen(l int) error {
	if l == 0 {
		return j.push([]byte("[]"))
	}
	j.pending = append(j.pending, l)
	_, err := j.destination.Write([]byte("["))
	return err
}

func (j *jsonSerializer) EncodeJson(i interface{}) error {
	encoded, err := json.Marshal(i)
	if err != nil {
		return err
	}
	return j.push(encoded)
}

func (j *jsonSerializer) EncodeInt8(v int8) error {
	return j.EncodeJson(v)
}

func (j *jsonSerializer) EncodeUint8(v uint8) error {
	return j.EncodeJson(v)
}

func (j *jsonSerializer) EncodeInt16(v int16) error {
	return j.EncodeJson(v)
}

func (j *jsonSerializer) EncodeInt32(v int32) error {
	return j.EncodeJson(v)
}

func (j *jsonSerializer) EncodeInt64(v int64) error {
	return j.EncodeJson(v)
}

func (j *jsonSerializer) EncodeString(s string) error {
	return j.EncodeJson(s)
}

func (j *jsonSerializer) EncodeFloat32(f float32) error {
	return j.EncodeJson(f)
}

func (j *jsonSerializer) EncodeFloat64(f float64) error {
	return j.EncodeJson(f)
}

func (j *jsonSerializer) EncodeBool(b bool) error {
	return j.EncodeJson(b)
}

func (j *jsonSerializer) EncodeNil() error {
	return j.EncodeJson(nil)
}

func (j *jsonSerializer) Flush() error {
	// elements are written immediately, nothing buffered
	return nil
}
