package serializer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

const ELEMENT_ARRAY = 1
const ELEMENT_OBJECT = 2
const ELEMENT_STRING = 3
const ELEMENT_LITERAL = 4

// One flattened JSON node. Arrays and objects carry their child/pair
// count, strings their value, everything else its literal text.
type jsonElement struct {
	elementType int
	count       int
	text        string
}

// Deserializing backend over a JSON document. The document is read
// token-wise and flattened into a counted element list first, so that
// DecodeArrayLen can report lengths like the msgpack backend does.
type jsonDeserializer struct {
	decoder  *json.Decoder
	elements []jsonElement
	pos      int
}

func newJsonDeserializer(reader *bufio.Reader) *jsonDeserializer {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return &jsonDeserializer{decoder: decoder}
}

func (j *jsonDeserializer) nextElement() (jsonElement, error) {
	if j.pos >= len(j.elements) {
		j.pos = 0
		j.elements = j.elements[:0]
		if err := j.readValue(); err != nil {
			return jsonElement{}, err
		}
	}
	result := j.elements[j.pos]
	j.pos += 1
	return result, nil
}

// Reads one complete JSON value from the token stream into the
// element list.
func (j *jsonDeserializer) readValue() error {
	token, err := j.decoder.Token()
	if err != nil {
		return err
	}
	return j.flattenToken(token)
}

func (j *jsonDeserializer) flattenToken(token json.Token) error {
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '[':
			slot := len(j.elements)
			j.elements = append(j.elements, jsonElement{elementType: ELEMENT_ARRAY})
			count := 0
			for j.decoder.More() {
				if err := j.readValue(); err != nil {
					return err
				}
				count += 1
			}
			// consume the closing bracket
			if _, err := j.decoder.Token(); err != nil {
				return err
			}
			j.elements[slot].count = count
			return nil
		case '{':
			slot := len(j.elements)
			j.elements = append(j.elements, jsonElement{elementType: ELEMENT_OBJECT})
			count := 0
			for j.decoder.More() {
				// key, always a string
				if err := j.readValue(); err != nil {
					return err
				}
				if err := j.readValue(); err != nil {
					return err
				}
				count += 1
			}
			if _, err := j.decoder.Token(); err != nil {
				return err
			}
			j.elements[slot].count = count
			return nil
		default:
			return errors.Errorf("Unexpected delimiter %v", t)
		}
	case string:
		j.elements = append(j.elements, jsonElement{elementType: ELEMENT_STRING, text: t})
		return nil
	case json.Number:
		j.elements = append(j.elements, jsonElement{elementType: ELEMENT_LITERAL, text: t.String()})
		return nil
	case bool:
		j.elements = append(j.elements, jsonElement{elementType: ELEMENT_LITERAL, text: strconv.FormatBool(t)})
		return nil
	case nil:
		j.elements = append(j.elements, jsonElement{elementType: ELEMENT_LITERAL, text: "null"})
		return nil
	default:
		return errors.Errorf("Unsupported token %v", token)
	}
}

func (j *jsonDeserializer) DecodeHeader() (*Header, error) {
	l, err := j.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if l != 2 {
		return nil, errors.Errorf("Unexpected bundle array length %d", l)
	}
	var header Header
	err = j.DecodeJson(&header)
	return &header, err
}

func (j *jsonDeserializer) DecodeArrayLen() (int, error) {
	e, err := j.nextElement()
	if err != nil {
		return 0, err
	}
	if e.elementType != ELEMENT_ARRAY {
		return 0, errors.New("No array type")
	}
	return e.count, nil
}

func (j *jsonDeserializer) DecodeJson(destination interface{}) error {
	// this is tricky, we have to reserialize it...
	buf := bytes.Buffer{}
	err := j.decodePlainJson(&buf)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), destination)
}

func (j *jsonDeserializer) decodePlainJson(buf *bytes.Buffer) error {
	e, err := j.nextElement()
	if err != nil {
		return err
	}
	switch e.elementType {
	case ELEMENT_ARRAY:
		return j.decodePlainJsonArray(buf, e.count)
	case ELEMENT_OBJECT:
		return j.decodePlainJsonObject(buf, e.count)
	case ELEMENT_STRING:
		encoded, _ := json.Marshal(e.text)
		_, err := buf.Write(encoded)
		return err
	case ELEMENT_LITERAL:
		_, err := buf.Write([]byte(e.text))
		return err
	}
	return errors.Errorf("Unsupported type %d", e.elementType)
}

func (j *jsonDeserializer) decodePlainJsonArray(buf *bytes.Buffer, arrayLength int) error {
	var err error
	if err = buf.WriteByte('['); err != nil {
		return err
	}
	for i := 0; i < arrayLength; i++ {
		if i > 0 {
			if err = buf.WriteByte(','); err != nil {
				return err
			}
		}
		if err = j.decodePlainJson(buf); err != nil {
			return err
		}
	}
	return buf.WriteByte(']')
}

func (j *jsonDeserializer) decodePlainJsonObject(buf *bytes.Buffer, objectLength int) error {
	var err error
	if err = buf.WriteByte('{'); err != nil {
		return err
	}
	for i := 0; i < objectLength; i++ {
		if i > 0 {
			if err = buf.WriteByte(','); err != nil {
				return err
			}
		}
		if err = j.decodePlainJson(buf); err != nil {
			return err
		}
		if err = buf.WriteByte(':'); err != nil {
			return err
		}
		if err = j.decodePlainJson(buf); err != nil {
			return err
		}
	}
	return buf.WriteByte('}')
}

func (j *jsonDeserializer) decodeLiteral() (string, error) {
	e, err := j.nextElement()
	if err != nil {
		return "", err
	}
	if e.elementType != ELEMENT_LITERAL {
		return "", errors.New("Expected literal value")
	}
	return e.text, nil
}

func (j *jsonDeserializer) DecodeInt8() (int8, error) {
	v, err := j.decodeSignedInt(8)
	return int8(v), err
}

func (j *jsonDeserializer) DecodeInt16() (int16, error) {
	v, err := j.decodeSignedInt(16)
	return int16(v), err
}

func (j *jsonDeserializer) DecodeInt32() (int32, error) {
	v, err := j.decodeSignedInt(32)
	return int32(v), err
}

func (j *jsonDeserializer) DecodeInt64() (int64, error) {
	return j.decodeSignedInt(64)
}

func (j *jsonDeserializer) decodeSignedInt(bits int) (int64, error) {
	literal, err := j.decodeLiteral()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(literal, 10, bits)
}

func (j *jsonDeserializer) DecodeUint8() (uint8, error) {
	literal, err := j.decodeLiteral()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(literal, 10, 8)
	return uint8(v), err
}

func (j *jsonDeserializer) DecodeString() (string, error) {
	e, err := j.nextElement()
	if err != nil {
		return "", err
	}
	if e.elementType != ELEMENT_STRING {
		return "", errors.New("Expected string value")
	}
	return e.text, nil
}

func (j *jsonDeserializer) DecodeFloat32() (float32, error) {
	v, err := j.DecodeFloat64()
	return float32(v), err
}

func (j *jsonDeserializer) DecodeFloat64() (float64, error) {
	literal, err := j.decodeLiteral()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(literal, 64)
}

func (j *jsonDeserializer) DecodeBool() (bool, error) {
	literal, err := j.decodeLiteral()
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(literal)
}

func (j *jsonDeserializer) DecodeNil() error {
	literal, err := j.decodeLiteral()
	if err != nil {
		return err
	}
	if literal != "null" {
		return errors.Errorf("Expected null, got %s", literal)
	}
	return nil
}
