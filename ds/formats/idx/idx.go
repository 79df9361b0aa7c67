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

// Decoding of the IDX binary tensor format (the format MNIST is
// distributed in) into tensors of typed scalars.
package idx

import (
	"io"

	"idx/ds/element"
)

// Decodes a complete IDX stream into a tensor.
// Either the whole declared tensor is filled or an error is returned,
// there is no partial result. Failures are distinguishable via
// IsTruncated and IsUnknownTypeCode, anything else is an error of the
// underlying stream.
func Decode(source io.ReadSeeker) (*element.Tensor, error) {
	return DecodeStream(source)
}

// Like Decode, but works on plain readers (e.g. gzip streams) which
// cannot seek. The reserved header bytes are consumed instead of
// skipped over.
func DecodeStream(source io.Reader) (*element.Tensor, error) {
	header, err := ParseHeader(source)
	if err != nil {
		return nil, err
	}
	return DecodeBody(source, header)
}

// Decodes the data section following an already parsed header.
func DecodeBody(source io.Reader, header *Header) (*element.Tensor, error) {
	tensor, err := element.NewTensor(header.Dimensions)
	if err != nil {
		return nil, err
	}
	reader := newTensorReader(source, header, tensor)
	if err := reader.run(); err != nil {
		return nil, err
	}
	return tensor, nil
}
