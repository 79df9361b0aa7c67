package ds

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// A fundamental element type as it can appear inside an IDX stream.
type FundamentalType struct {
	GoType reflect.Type
	name   string
	// The type code byte inside the IDX header
	idxCode byte
	// Encoded length of a single element in bytes
	byteLength int
}

var Uint8 = &FundamentalType{
	GoType:     reflect.TypeOf((*uint8)(nil)).Elem(),
	name:       "uint8",
	idxCode:    0x08,
	byteLength: 1,
}

var Int8 = &FundamentalType{
	GoType:     reflect.TypeOf((*int8)(nil)).Elem(),
	name:       "int8",
	idxCode:    0x09,
	byteLength: 1,
}

var Int16 = &FundamentalType{
	GoType:     reflect.TypeOf((*int16)(nil)).Elem(),
	name:       "int16",
	idxCode:    0x0B,
	byteLength: 2,
}

var Int32 = &FundamentalType{
	GoType:     reflect.TypeOf((*int32)(nil)).Elem(),
	name:       "int32",
	idxCode:    0x0C,
	byteLength: 4,
}

var Float32 = &FundamentalType{
	GoType:     reflect.TypeOf((*float32)(nil)).Elem(),
	name:       "float32",
	idxCode:    0x0D,
	byteLength: 4,
}

var Float64 = &FundamentalType{
	GoType:     reflect.TypeOf((*float64)(nil)).Elem(),
	name:       "float64",
	idxCode:    0x0E,
	byteLength: 8,
}

func (f *FundamentalType) TypeName() string {
	return f.name
}

func (f *FundamentalType) IdxCode() byte {
	return f.idxCode
}

func (f *FundamentalType) ByteLength() int {
	return f.byteLength
}

func (f *FundamentalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.name)
}

var fundamentalTypes = []*FundamentalType{
	Uint8,
	Int8,
	Int16,
	Int32,
	Float32,
	Float64,
}

// Resolve the type belonging to an IDX header code byte.
// The second result is false if the code is not part of the format.
func FromIdxCode(code byte) (*FundamentalType, bool) {
	for _, t := range fundamentalTypes {
		if t.idxCode == code {
			return t, true
		}
	}
	return nil, false
}

func FromName(name string) (*FundamentalType, error) {
	for _, t := range fundamentalTypes {
		if t.name == name {
			return t, nil
		}
	}
	return nil, errors.Errorf("Unknown fundamental type %s", name)
}
