package natural

import (
	"github.com/pkg/errors"

	"idx/ds"
	"idx/ds/element"
	"idx/ds/util/serializer"
)

// Codec for a single fundamental type against a serializing backend.
type FundamentalCodec interface {
	Write(backend serializer.SerializingBackend, value element.Scalar) error
	Read(backend serializer.DeserializingBackend) (element.Scalar, error)
}

var badType = errors.New("Unexpected type")

func GetFundamentalCodec(dataType *ds.FundamentalType) (FundamentalCodec, error) {
	switch dataType {
	case ds.Uint8:
		return uint8Codec{}, nil
	case ds.Int8:
		return int8Codec{}, nil
	case ds.Int16:
		return int16Codec{}, nil
	case ds.Int32:
		return int32Codec{}, nil
	case ds.Float32:
		return float32Codec{}, nil
	case ds.Float64:
		return float64Codec{}, nil
	default:
		return nil, errors.Errorf("No codec for type %s", dataType.TypeName())
	}
}

type uint8Codec struct{}

func (c uint8Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Uint8)
	if !ok {
		return badType
	}
	return backend.EncodeUint8(uint8(v))
}

func (c uint8Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeUint8()
	return element.Uint8(v), err
}

type int8Codec struct{}

func (c int8Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Int8)
	if !ok {
		return badType
	}
	return backend.EncodeInt8(int8(v))
}

func (c int8Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeInt8()
	return element.Int8(v), err
}

type int16Codec struct{}

func (c int16Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Int16)
	if !ok {
		return badType
	}
	return backend.EncodeInt16(int16(v))
}

func (c int16Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeInt16()
	return element.Int16(v), err
}

type int32Codec struct{}

func (c int32Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Int32)
	if !ok {
		return badType
	}
	return backend.EncodeInt32(int32(v))
}

func (c int32Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeInt32()
	return element.Int32(v), err
}

type float32Codec struct{}

func (c float32Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Float32)
	if !ok {
		return badType
	}
	return backend.EncodeFloat32(float32(v))
}

func (c float32Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeFloat32()
	return element.Float32(v), err
}

type float64Codec struct{}

func (c float64Codec) Write(backend serializer.SerializingBackend, value element.Scalar) error {
	v, ok := value.(element.Float64)
	if !ok {
		return badType
	}
	return backend.EncodeFloat64(float64(v))
}

func (c float64Codec) Read(backend serializer.DeserializingBackend) (element.Scalar, error) {
	v, err := backend.DecodeFloat64()
	return element.Float64(v), err
}
