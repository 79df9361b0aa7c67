package serializer

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

type msgPackSerializingBackend struct {
	msgpack.Encoder
}

func (m *msgPackSerializingBackend) EncodeHeader(h *Header) error {
	return m.EncodeJson(h)
}

func (m *msgPackSerializingBackend) EncodeJson(i interface{}) error {
	// Marshal to JSON first so custom MarshalJSON implementations
	// (e.g. TypeReference by name) take effect, then transcode the
	// document to msgpack. m.Encode(i) would pick its own layout.
	bytes, err := json.Marshal(i)
	if err != nil {
		return err
	}
	return m.EncodeRawJson(bytes)
}

func (m *msgPackSerializingBackend) EncodeRawJson(jsonBytes []byte) error {
	value, dataType, _, err := jsonparser.Get(jsonBytes)
	if err != nil {
		return err
	}
	return m.encodeJsonWithType(value, dataType)
}

func (m *msgPackSerializingBackend) encodeJsonWithType(value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.String:
		s := (string)(value)
		return m.EncodeString(s)
	case jsonparser.Object:
		count := 0
		counter := func([]byte, []byte, jsonparser.ValueType, int) error {
			count += 1
			return nil
		}
		err := jsonparser.ObjectEach(value, counter)
		if err != nil {
			return err
		}
		err = m.EncodeMapLen(count)
		if err != nil {
			return err
		}
		subWriter := func(key []byte, value []byte, valueType jsonparser.ValueType, offset int) error {
			// key is always string
			err := m.EncodeString((string)(key))
			if err != nil {
				return err
			}
			return m.encodeJsonWithType(value, valueType)
		}
		return jsonparser.ObjectEach(value, subWriter)
	case jsonparser.Number:
		i, err := jsonparser.GetInt(value)
		if err == nil {
			return m.EncodeInt(i)
		}
		f, err := jsonparser.GetFloat(value)
		if err != nil {
			return err
		}
		return m.EncodeFloat64(f)
	case jsonparser.Null:
		return m.EncodeNil()
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return err
		}
		return m.EncodeBool(b)
	case jsonparser.Array:
		count := 0
		counter := func([]byte, jsonparser.ValueType, int, error) {
			count += 1
		}
		_, err := jsonparser.ArrayEach(value, counter)
		if err != nil {
			return err
		}
		err = m.EncodeArrayLen(count)
		if err != nil {
			return err
		}
		subWriter := func(value []byte, valueType jsonparser.ValueType, offset int, e error) {
			subError := m.encodeJsonWithType(value, valueType)
			if subError != nil {
				err = subError
			}
		}
		_, subErr := jsonparser.ArrayEach(value, subWriter)
		if subErr != nil {
			return subErr
		}
		return err
	}
	return errors.Errorf("Unimplemented sub type %d", dataType)
}

func (m *msgPackSerializingBackend) Flush() error {
	// the encoder writes through, nothing buffered
	return nil
}
