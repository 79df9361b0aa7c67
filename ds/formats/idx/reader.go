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
	"math"

	"github.com/pkg/errors"

	"idx/ds"
	"idx/ds/element"
)

// Fills a pre-allocated tensor from the data section of an IDX stream.
// Elements are stored in row major order, the last dimension varies
// fastest, exactly as they appear in the stream.
type tensorReader struct {
	source        io.Reader
	componentType *ds.FundamentalType
	dimensions    []int
	target        *element.Tensor
	buf           []byte
}

func newTensorReader(source io.Reader, header *Header, target *element.Tensor) *tensorReader {
	return &tensorReader{
		source:        source,
		componentType: header.ComponentType,
		dimensions:    header.Dimensions,
		target:        target,
		buf:           make([]byte, header.ComponentType.ByteLength()),
	}
}

func (t *tensorReader) run() error {
	// The index accumulator never reallocates, its capacity is the
	// full dimension count.
	indices := make([]int, 0, len(t.dimensions))
	return t.readSubTree(indices)
}

// Depth first traversal. The length of indices equals the recursion
// depth at every call, at full depth it addresses a single element.
func (t *tensorReader) readSubTree(indices []int) error {
	depth := len(indices)
	if depth == len(t.dimensions) {
		scalar, err := t.readScalar()
		if err != nil {
			return err
		}
		t.target.Set(indices, scalar)
		return nil
	}
	indices = append(indices, 0)
	for i := 0; i < t.dimensions[depth]; i++ {
		indices[depth] = i
		if err := t.readSubTree(indices); err != nil {
			return err
		}
	}
	return nil
}

func (t *tensorReader) readScalar() (element.Scalar, error) {
	if _, err := io.ReadFull(t.source, t.buf); err != nil {
		return nil, wrapReadError(err, "element data")
	}
	switch t.componentType {
	case ds.Uint8:
		return element.Uint8(t.buf[0]), nil
	case ds.Int8:
		return element.Int8(int8(t.buf[0])), nil
	case ds.Int16:
		return element.Int16(int16(binary.BigEndian.Uint16(t.buf))), nil
	case ds.Int32:
		return element.Int32(int32(binary.BigEndian.Uint32(t.buf))), nil
	case ds.Float32:
		return element.Float32(math.Float32frombits(binary.BigEndian.Uint32(t.buf))), nil
	case ds.Float64:
		return element.Float64(math.Float64frombits(binary.BigEndian.Uint64(t.buf))), nil
	default:
		return nil, errors.Errorf("Unsupported component type %s", t.componentType.TypeName())
	}
}
