/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

// IObject is a manually reference-counted value
// every implementation embeds Object and is wired by New()
// the one who created the object (New) or retained it must release it, create-style factories return autoreleased objects
type IObject interface {
	// Retain increases the reference count by 1
	Retain()

	// Release decreases the reference count by 1. The object is destroyed at 0: its Cleanup() is called if exists
	// panics if the object is destroyed already
	Release()

	// Autorelease hands the caller's reference over to the current pool of the shared PoolManager
	// the object stays alive until the pool is drained
	Autorelease() IObject

	// RetainCount is for diagnostics only, never drive control flow by it
	RetainCount() uint32

	// IsEqual compares by identity by default. Value types compare their contents
	IsEqual(other IObject) bool

	// Copy returns nil by default, i.e. not copyable
	// value types return a deep copy owned by the caller
	Copy() IObject

	// for internal use
	object() *Object
}

// IInvoker is a callable with a fixed signature
// see Selector
type IInvoker[A, R any] interface {
	Invoke(arg A) R
}
