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
)

// An n-dimensional array of scalars in row major layout.
// All elements start out Absent until they are assigned.
type Tensor struct {
	shape   []int
	strides []int
	values  []Scalar
}

// Allocates a tensor of the given shape, all elements Absent.
// The empty shape allocates a zero-dimensional tensor with a single element.
func NewTensor(shape []int) (*Tensor, error) {
	ownShape := make([]int, len(shape))
	copy(ownShape, shape)
	strides := make([]int, len(shape))
	count := 1
	for i := len(ownShape) - 1; i >= 0; i-- {
		if ownShape[i] < 0 {
			return nil, errors.Errorf("Invalid dimension size %d", ownShape[i])
		}
		strides[i] = count
		count = count * ownShape[i]
	}
	values := make([]Scalar, count)
	for i := range values {
		values[i] = Absent{}
	}
	return &Tensor{ownShape, strides, values}, nil
}

func (t *Tensor) Shape() []int {
	result := make([]int, len(t.shape))
	copy(result, t.shape)
	return result
}

func (t *Tensor) ElementCount() int {
	return len(t.values)
}

// Element lookup by coordinate vector. Panics on bad coordinates.
func (t *Tensor) At(indices ...int) Scalar {
	return t.values[t.offset(indices)]
}

// Element assignment by coordinate vector. Panics on bad coordinates.
func (t *Tensor) Set(indices []int, value Scalar) {
	t.values[t.offset(indices)] = value
}

// The flat row major values. The slice aliases tensor memory.
func (t *Tensor) Values() []Scalar {
	return t.values
}

// Returns the sub tensor at index i of the first dimension.
// The result is a copy.
func (t *Tensor) Slice(i int) (*Tensor, error) {
	if len(t.shape) == 0 {
		return nil, errors.New("Cannot slice a zero-dimensional tensor")
	}
	if i < 0 || i >= t.shape[0] {
		return nil, errors.Errorf("Slice index %d out of range [0,%d)", i, t.shape[0])
	}
	sub, err := NewTensor(t.shape[1:])
	if err != nil {
		return nil, err
	}
	stride := t.strides[0]
	copy(sub.values, t.values[i*stride:(i+1)*stride])
	return sub, nil
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic("Coordinate count does not match tensor dimension count")
	}
	result := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic("Coordinate out of range")
		}
		result += idx * t.strides[i]
	}
	return result
}

// Reduces all elements with Add. The empty tensor sums to the
// additive identity. Mixed variants degrade to Absent and stay
// Absent, following the Add merge rule.
func Sum(t *Tensor) Scalar {
	if len(t.values) == 0 {
		return Zero()
	}
	result := t.values[0]
	for _, v := range t.values[1:] {
		result = Add(result, v)
	}
	return result
}
