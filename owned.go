/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

// NewOwned initializes obj by New() and wraps the caller's reference
func NewOwned[T IObject](obj T) *Owned[T] {
	return &Owned[T]{obj: New(obj), isValid: true}
}

// Own adopts a reference the caller already owns, e.g. the result of Copy()
func Own[T IObject](obj T) *Owned[T] {
	obj.object().mustBeAlive()
	return &Owned[T]{obj: obj, isValid: true}
}

// Get borrows the object. The borrowed value must not be released and must not outlive the handle
// panics if the handle gave its reference up already
func (o *Owned[T]) Get() T {
	o.mustBeValid()
	return o.obj
}

// Release releases the owned reference
func (o *Owned[T]) Release() {
	o.mustBeValid()
	o.invalidate().Release()
}

// Autorelease hands the owned reference over to the current pool
// the result is borrowed: valid until the pool is drained
func (o *Owned[T]) Autorelease() T {
	o.mustBeValid()
	return Autorelease(o.invalidate())
}

// Take moves the reference out of the handle, the caller owns the result
func (o *Owned[T]) Take() T {
	o.mustBeValid()
	return o.invalidate()
}

// IsValid returns false after Release(), Autorelease() or Take()
func (o *Owned[T]) IsValid() bool {
	return o.isValid
}

func (o *Owned[T]) invalidate() T {
	var zero T
	res := o.obj
	o.obj = zero
	o.isValid = false
	return res
}

func (o *Owned[T]) mustBeValid() {
	if !o.isValid {
		panic("owned reference is given up already")
	}
}
