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
	"fmt"

	"idx/ds"
)

const KIND_ABSENT = 0
const KIND_UINT8 = 1
const KIND_INT8 = 2
const KIND_INT16 = 3
const KIND_INT32 = 4
const KIND_FLOAT32 = 5
const KIND_FLOAT64 = 6

// A single decoded value together with its source type.
// Exactly one variant is active; Absent marks a not yet decoded slot.
type Scalar interface {
	Kind() int
}

type Absent struct{}

func (a Absent) Kind() int {
	return KIND_ABSENT
}

func (a Absent) String() string {
	return "absent"
}

// Note: the variants are value types (like Primitive in tabular rows)

type Uint8 uint8

func (v Uint8) Kind() int {
	return KIND_UINT8
}

type Int8 int8

func (v Int8) Kind() int {
	return KIND_INT8
}

type Int16 int16

func (v Int16) Kind() int {
	return KIND_INT16
}

type Int32 int32

func (v Int32) Kind() int {
	return KIND_INT32
}

type Float32 float32

func (v Float32) Kind() int {
	return KIND_FLOAT32
}

type Float64 float64

func (v Float64) Kind() int {
	return KIND_FLOAT64
}

// Returns the fundamental type of a scalar, nil for Absent.
func TypeOf(s Scalar) *ds.FundamentalType {
	switch s.(type) {
	case Uint8:
		return ds.Uint8
	case Int8:
		return ds.Int8
	case Int16:
		return ds.Int16
	case Int32:
		return ds.Int32
	case Float32:
		return ds.Float32
	case Float64:
		return ds.Float64
	default:
		return nil
	}
}

// Renders a scalar for diagnostic output.
func Format(s Scalar) string {
	t := TypeOf(s)
	if t == nil {
		return "absent"
	}
	return fmt.Sprintf("%v", s)
}
