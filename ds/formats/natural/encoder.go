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

// Serialization of decoded tensors into the natural bundle format:
// a type header followed by the flat row major value array.
package natural

import (
	"io"

	"github.com/pkg/errors"

	"idx/ds"
	"idx/ds/element"
	"idx/ds/util/serializer"
)

// Writes a tensor bundle to the destination using the given backend.
func EncodeBundle(tensor *element.Tensor, componentType *ds.FundamentalType, backendType serializer.BackendType, destination io.Writer) error {
	backend, err := serializer.CreateSerializingBackend(backendType, destination)
	if err != nil {
		return err
	}
	codec, err := GetFundamentalCodec(componentType)
	if err != nil {
		return err
	}
	header := serializer.Header{
		Format: &ds.Tensor{
			ComponentType: ds.Ref(componentType),
			Shape:         tensor.Shape(),
		},
	}
	if err := backend.EncodeHeader(&header); err != nil {
		return errors.Wrap(err, "Could not write bundle header")
	}
	values := tensor.Values()
	if err := backend.EncodeArrayLen(len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := codec.Write(backend, v); err != nil {
			return errors.Wrap(err, "Could not write element")
		}
	}
	return backend.Flush()
}
