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
package idx

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"idx/ds"
	"idx/ds/element"
)

func buildIdx(typeCode byte, dimensions []int32, data []byte) []byte {
	buf := bytes.Buffer{}
	buf.Write([]byte{0, 0, typeCode, byte(len(dimensions))})
	for _, d := range dimensions {
		binary.Write(&buf, binary.BigEndian, d)
	}
	buf.Write(data)
	return buf.Bytes()
}

func TestDecodeUint8Matrix(t *testing.T) {
	encoded := buildIdx(0x08, []int32{2, 3}, []byte{0, 1, 2, 3, 4, 0xFF})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3}, tensor.Shape())
	assert.Equal(t, 6, tensor.ElementCount())
	assert.Equal(t, element.Uint8(0), tensor.At(0, 0))
	assert.Equal(t, element.Uint8(2), tensor.At(0, 2))
	assert.Equal(t, element.Uint8(3), tensor.At(1, 0))
	// unsigned interpretation of 0xFF
	assert.Equal(t, element.Uint8(255), tensor.At(1, 2))
}

func TestDecodeSignedByte(t *testing.T) {
	encoded := buildIdx(0x09, []int32{2}, []byte{0xFF, 0x7F})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Int8(-1), tensor.At(0))
	assert.Equal(t, element.Int8(127), tensor.At(1))
}

func TestDecodeShort(t *testing.T) {
	encoded := buildIdx(0x0B, []int32{2}, []byte{0x01, 0x02, 0xFF, 0xFE})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Int16(258), tensor.At(0))
	assert.Equal(t, element.Int16(-2), tensor.At(1))
}

func TestDecodeIntBigEndian(t *testing.T) {
	encoded := buildIdx(0x0C, []int32{1}, []byte{0x00, 0x00, 0x01, 0x00})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Int32(256), tensor.At(0))
}

func TestDecodeFloat(t *testing.T) {
	encoded := buildIdx(0x0D, []int32{1}, []byte{0x3F, 0x80, 0x00, 0x00})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Float32(1.0), tensor.At(0))
}

func TestDecodeDouble(t *testing.T) {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], math.Float64bits(-2.5))
	encoded := buildIdx(0x0E, []int32{1}, data[:])
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Float64(-2.5), tensor.At(0))
}

func TestDecodeZeroDimensional(t *testing.T) {
	// no dimensions, the stream carries exactly one scalar
	encoded := buildIdx(0x08, nil, []byte{42})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, []int{}, tensor.Shape())
	assert.Equal(t, 1, tensor.ElementCount())
	assert.Equal(t, element.Uint8(42), tensor.At())
}

func TestDecodeZeroSizeDimension(t *testing.T) {
	// trailing bytes must stay unread, no element is consumed
	encoded := buildIdx(0x08, []int32{0, 5}, []byte{9, 9, 9})
	reader := bytes.NewReader(encoded)
	tensor, err := Decode(reader)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 5}, tensor.Shape())
	assert.Equal(t, 0, tensor.ElementCount())
	assert.Equal(t, 3, reader.Len())
}

func TestDecodeThreeDimensional(t *testing.T) {
	data := make([]byte, 2*2*2)
	for i := range data {
		data[i] = byte(i)
	}
	encoded := buildIdx(0x08, []int32{2, 2, 2}, data)
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	// row major, the last dimension varies fastest
	assert.Equal(t, element.Uint8(0), tensor.At(0, 0, 0))
	assert.Equal(t, element.Uint8(1), tensor.At(0, 0, 1))
	assert.Equal(t, element.Uint8(2), tensor.At(0, 1, 0))
	assert.Equal(t, element.Uint8(6), tensor.At(1, 1, 0))
	assert.Equal(t, element.Uint8(7), tensor.At(1, 1, 1))
}

func TestTruncatedData(t *testing.T) {
	encoded := buildIdx(0x08, []int32{2, 2}, []byte{1, 2, 3})
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.Nil(t, tensor)
	assert.Error(t, err)
	assert.True(t, IsTruncated(err))
	assert.False(t, IsUnknownTypeCode(err))
}

func TestTruncatedAfterHeader(t *testing.T) {
	encoded := buildIdx(0x0C, []int32{1}, nil)
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.Nil(t, tensor)
	assert.True(t, IsTruncated(err))
}

func TestTruncatedHeader(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0, 0}))
	assert.True(t, IsTruncated(err))

	_, err = Decode(bytes.NewReader(buildIdx(0x08, []int32{5}, nil)[:6]))
	assert.True(t, IsTruncated(err))
}

func TestUnknownTypeCode(t *testing.T) {
	// the declared dimension size is missing on purpose, the type code
	// must fail before dimensions are read
	encoded := []byte{0, 0, 0x07, 1}
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.Nil(t, tensor)
	assert.True(t, IsUnknownTypeCode(err))
	assert.False(t, IsTruncated(err))
}

func TestReservedBytesIgnored(t *testing.T) {
	encoded := buildIdx(0x08, []int32{1}, []byte{7})
	encoded[0] = 0xAB
	encoded[1] = 0xCD
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, element.Uint8(7), tensor.At(0))
}

func TestNegativeDimensionRejected(t *testing.T) {
	encoded := buildIdx(0x08, []int32{-1}, nil)
	tensor, err := Decode(bytes.NewReader(encoded))
	assert.Nil(t, tensor)
	assert.Error(t, err)
	assert.False(t, IsTruncated(err))
	assert.False(t, IsUnknownTypeCode(err))
}

var brokenStream = errors.New("broken stream")

type failingReader struct {
	prefix *bytes.Reader
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.prefix.Len() > 0 {
		return f.prefix.Read(p)
	}
	return 0, brokenStream
}

func TestIoFailurePassedThrough(t *testing.T) {
	encoded := buildIdx(0x08, []int32{2}, nil)
	reader := &failingReader{bytes.NewReader(encoded)}
	tensor, err := DecodeStream(reader)
	assert.Nil(t, tensor)
	assert.Error(t, err)
	assert.False(t, IsTruncated(err))
	assert.False(t, IsUnknownTypeCode(err))
	assert.True(t, errors.Is(err, brokenStream))
}

func TestHeaderTensorType(t *testing.T) {
	encoded := buildIdx(0x0D, []int32{3, 4}, nil)
	header, err := ParseHeader(bytes.NewReader(encoded))
	assert.NoError(t, err)
	assert.Equal(t, ds.Float32, header.ComponentType)
	tensorType := header.TensorType()
	assert.Equal(t, []int{3, 4}, tensorType.Shape)
	assert.Equal(t, 12, tensorType.PackedElementCount())
}
