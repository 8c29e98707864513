/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

import (
	"fmt"
	"io"
	"strings"
)

// GetObjectsInUse returns total amount of objects created by New() but not destroyed yet
// useful in tests
func GetObjectsInUse() uint64 {
	return objectsInUse.Load()
}

// PrintNonReleased prints stacktraces that explain where non-released objects were created
// note: debug mode must be turned on by `foundation.SetDebug(true)` call before objects creation
func PrintNonReleased(w io.Writer) {
	nr := getNonReleased()
	if len(nr) == 0 {
		return
	}
	fmt.Fprintln(w, "objects created but not released:")
	for st, amount := range nr {
		st = "\t" + strings.ReplaceAll(st, "\n", "\n\t")
		st = st[:len(st)-1]
		fmt.Fprintf(w, "%d not released created at:\n%s", amount, st)
	}
}

// SetDebug switches debug mode. In debug mode amounts of non-released objects are tracked
// per each creation source code point
// use PrintNonReleased() to get explanations
// useful for investigations only, decreases performance
func SetDebug(IsDebug bool) {
	isDebug.Store(IsDebug)
}

func getNonReleased() map[string]int {
	m.Lock()
	res := map[string]int{}
	for k, v := range objAmounts {
		if v > 0 {
			res[k] = v
		}
	}
	m.Unlock()
	return res
}
