/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	"fmt"

	foundation "github.com/spalx/SXFoundation"
)

// mustCopy panics on elements which are not copyable: deep copy of a container is impossible then
func mustCopy(obj foundation.IObject) foundation.IObject {
	res := obj.Copy()
	if res == nil {
		panic(fmt.Sprintf("%T is not copyable", obj))
	}
	return res
}

// releaseOnPanic releases a partially built copy, must be deferred directly
func releaseOnPanic(obj foundation.IObject) {
	if r := recover(); r != nil {
		obj.Release()
		panic(r)
	}
}
