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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"idx/ds"
)

// The decoded IDX header: element type and dimension sizes.
type Header struct {
	ComponentType *ds.FundamentalType
	Dimensions    []int
}

// The tensor type this header describes.
func (h *Header) TensorType() *ds.Tensor {
	shape := make([]int, len(h.Dimensions))
	copy(shape, h.Dimensions)
	return &ds.Tensor{
		ComponentType: ds.Ref(h.ComponentType),
		Shape:         shape,
	}
}

// Parses the fixed IDX header from the start of the stream and leaves
// the cursor at the first data element.
// Layout: 2 reserved bytes (accepted and discarded), 1 type code byte,
// 1 dimension count byte, then one big endian int32 size per dimension.
func ParseHeader(source io.Reader) (*Header, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(source, prefix[:]); err != nil {
		return nil, wrapReadError(err, "header")
	}
	// prefix[0:2] is reserved, any value is accepted
	componentType, ok := ds.FromIdxCode(prefix[2])
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTypeCode, "Code 0x%02x", prefix[2])
	}
	dimensionCount := int(prefix[3])

	dimensions := make([]int, dimensionCount)
	var sizeBuf [4]byte
	for i := 0; i < dimensionCount; i++ {
		if _, err := io.ReadFull(source, sizeBuf[:]); err != nil {
			return nil, wrapReadError(err, "dimension size")
		}
		size := int32(binary.BigEndian.Uint32(sizeBuf[:]))
		if size < 0 {
			// The format stores sizes as signed integers, a negative
			// value cannot describe an array length.
			return nil, errors.Errorf("Invalid dimension size %d", size)
		}
		dimensions[i] = int(size)
	}
	return &Header{componentType, dimensions}, nil
}
