/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

import (
	"sync"

	"golang.org/x/exp/slices"
)

var registrationsPool = sync.Pool{
	New: func() interface{} {
		res := make([]IObject, 0, poolCapacity.Load())
		return &res
	},
}

func newReleasePool() *ReleasePool {
	p := New(&ReleasePool{})
	p.registrations = *(registrationsPool.Get().(*[]IObject))
	return p
}

// AddObject registers obj for a deferred release
// does not retain: the registration takes over the reference the caller owns
// the same object could be registered several times, each registration is released on drain
func (p *ReleasePool) AddObject(obj IObject) {
	p.mustBeAlive()
	p.registrations = append(p.registrations, obj)
}

// RemoveObject cancels the first registration of obj and releases its reference immediately
func (p *ReleasePool) RemoveObject(obj IObject) {
	p.mustBeAlive()
	idx := slices.IndexFunc(p.registrations, func(reg IObject) bool {
		return reg.object() == obj.object()
	})
	if idx < 0 {
		return
	}
	n := len(p.registrations)
	p.registrations = slices.Delete(p.registrations, idx, idx+1)
	p.registrations[:n][n-1] = nil
	obj.Release()
}

// Count returns the amount of pending registrations
func (p *ReleasePool) Count() int {
	return len(p.registrations)
}

// Clear releases one reference per registration in registration order
// objects autoreleased into this pool while draining are drained as well
// registered objects must not be released out from under the pool
func (p *ReleasePool) Clear() {
	for len(p.registrations) > 0 {
		regs := p.registrations
		p.registrations = nil
		for i, reg := range regs {
			regs[i] = nil
			reg.Release()
		}
		if p.registrations == nil {
			p.registrations = regs[:0]
		}
	}
}

// Cleanup drains the pool, called on destruction
func (p *ReleasePool) Cleanup() {
	p.Clear()
	regs := p.registrations[:0]
	p.registrations = nil
	registrationsPool.Put(&regs)
}
