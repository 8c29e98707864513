/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

func (f InvokerFunc[A, R]) Invoke(arg A) R {
	return f(arg)
}

// NewSelector wraps fn, the caller owns the result
func NewSelector[A, R any](fn func(arg A) R) *Selector[A, R] {
	if fn == nil {
		panic("selector target must not be nil")
	}
	return NewSelectorFrom[A, R](InvokerFunc[A, R](fn))
}

// NewSelectorFrom wraps any IInvoker, the caller owns the result
func NewSelectorFrom[A, R any](target IInvoker[A, R]) *Selector[A, R] {
	if target == nil {
		panic("selector target must not be nil")
	}
	return New(&Selector[A, R]{target: target})
}

// CreateSelector returns an autoreleased selector wrapping fn
func CreateSelector[A, R any](fn func(arg A) R) *Selector[A, R] {
	return Autorelease(NewSelector(fn))
}

// Invoke calls the wrapped target
func (s *Selector[A, R]) Invoke(arg A) R {
	s.mustBeAlive()
	return s.target.Invoke(arg)
}

// Copy returns a new selector that shares the target
func (s *Selector[A, R]) Copy() IObject {
	return NewSelectorFrom(s.target)
}

func (s *Selector[A, R]) Cleanup() {
	s.target = nil
}
