/*
 * This file is part of the Mantik Project.
 * Copyright (c) 2020-2021 Mantik UG (Haftungsbeschränkt)
 * Authors: See AUTHORS file
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License version 3.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.
 *
 * Additionally, the following linking exception is granted:
 *
 * If you modify this Program, or any covered work, by linking or
 * combining it with other code, such other code is not for that reason
 * alone subject to any of the requirements of the GNU Affero GPL
 * version 3.
 *
 * You can be released from the requirements of the license by purchasing
 * a commercial license.
 */
package serializer

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"idx/ds"
)

type BackendType = int

const BACKEND_MSGPACK BackendType = 1
const BACKEND_JSON BackendType = 2

func BackendTypeFromName(name string) (BackendType, error) {
	switch name {
	case "msgpack":
		return BACKEND_MSGPACK, nil
	case "json":
		return BACKEND_JSON, nil
	default:
		return 0, errors.Errorf("Unsupported backend %s", name)
	}
}

// Leading block of a serialized tensor bundle.
type Header struct {
	Format *ds.Tensor `json:"format"`
}

func CreateSerializingBackend(backendType BackendType, destination io.Writer) (SerializingBackend, error) {
	switch backendType {
	case BACKEND_MSGPACK:
		encoder := msgpack.NewEncoder(destination)
		return &msgPackSerializingBackend{Encoder: *encoder}, nil
	case BACKEND_JSON:
		return &jsonSerializer{destination: destination}, nil
	default:
		return nil, errors.New("Unsupported backend")
	}
}

func CreateDeserializingBackend(backendType BackendType, reader io.Reader) (DeserializingBackend, error) {
	switch backendType {
	case BACKEND_MSGPACK:
		return &msgPackDeserializingBackend{
			*msgpack.NewDecoder(reader),
		}, nil
	case BACKEND_JSON:
		return newJsonDeserializer(bufio.NewReader(reader)), nil
	default:
		return nil, errors.Errorf("Unsupported backend %d", backendType)
	}
}

// Custom serializing backend, should make it possible to write a JSON Serializer too
// The interface is compatible to vmihailenco/msgpack with some extensions

type SerializingBackend interface {
	EncodeHeader(h *Header) error
	EncodeArrayLen(l int) error
	EncodeJson(i interface{}) error
	// Methods are like in msgpack.Encoder (for automatic deriving)
	EncodeInt8(v int8) error
	EncodeUint8(v uint8) error
	EncodeInt16(v int16) error
	EncodeInt32(v int32) error
	EncodeInt64(v int64) error
	EncodeString(s string) error
	EncodeFloat32(f float32) error
	EncodeFloat64(f float64) error
	EncodeBool(b bool) error
	EncodeNil() error
	Flush() error
}

type DeserializingBackend interface {
	DecodeHeader() (*Header, error)
	DecodeArrayLen() (int, error)
	DecodeJson(destination interface{}) error
	DecodeInt8() (int8, error)
	DecodeUint8() (uint8, error)
	DecodeInt16() (int16, error)
	DecodeInt32() (int32, error)
	DecodeInt64() (int64, error)
	DecodeString() (string, error)
	DecodeFloat32() (float32, error)
	DecodeFloat64() (float64, error)
	DecodeBool() (bool, error)
	DecodeNil() error
}
