/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	foundation "github.com/spalx/SXFoundation"
	"golang.org/x/exp/constraints"
)

// Numeric is any type which could be wrapped by Number
type Numeric interface {
	constraints.Integer | constraints.Float | ~bool
}

// Number is a reference-counted numeric or boolean value
type Number[T Numeric] struct {
	foundation.Object
	value T
}

func NewNumber[T Numeric](value T) *Number[T] {
	return foundation.New(&Number[T]{value: value})
}

func CreateNumber[T Numeric](value T) *Number[T] {
	return foundation.Autorelease(NewNumber(value))
}

func (n *Number[T]) Value() T {
	return n.value
}

func (n *Number[T]) SetValue(value T) {
	n.value = value
}

// IsEqual is true for the Number of the same type and value only
func (n *Number[T]) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*Number[T])
	return ok && o != nil && o.value == n.value
}

func (n *Number[T]) Copy() foundation.IObject {
	return NewNumber(n.value)
}
