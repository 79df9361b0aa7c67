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
package element

import (
	"github.com/pkg/errors"

	"idx/ds"
)

// Widening/narrowing conversion of scalars into a caller chosen
// fundamental type. Absent has no numeric payload, so converting it
// reports false instead of producing a value.

// Returns the payload as float64. False for Absent.
func AsFloat64(s Scalar) (float64, bool) {
	switch v := s.(type) {
	case Uint8:
		return float64(v), true
	case Int8:
		return float64(v), true
	case Int16:
		return float64(v), true
	case Int32:
		return float64(v), true
	case Float32:
		return float64(v), true
	case Float64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Returns the payload as int64, truncating fractional parts. False for Absent.
func AsInt64(s Scalar) (int64, bool) {
	switch v := s.(type) {
	case Uint8:
		return int64(v), true
	case Int8:
		return int64(v), true
	case Int16:
		return int64(v), true
	case Int32:
		return int64(v), true
	case Float32:
		return int64(v), true
	case Float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// Converts a scalar into the given target type.
// Absent converts to Absent regardless of the target.
func Convert(s Scalar, target *ds.FundamentalType) (Scalar, error) {
	if s.Kind() == KIND_ABSENT {
		return Absent{}, nil
	}
	switch target {
	case ds.Uint8:
		v, _ := AsInt64(s)
		return Uint8(v), nil
	case ds.Int8:
		v, _ := AsInt64(s)
		return Int8(v), nil
	case ds.Int16:
		v, _ := AsInt64(s)
		return Int16(v), nil
	case ds.Int32:
		v, _ := AsInt64(s)
		return Int32(v), nil
	case ds.Float32:
		v, _ := AsFloat64(s)
		return Float32(v), nil
	case ds.Float64:
		v, _ := AsFloat64(s)
		return Float64(v), nil
	default:
		return nil, errors.Errorf("Unsupported conversion target %s", target.TypeName())
	}
}
