/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package foundation

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrPoolManagerPurged is the panic value on the shared PoolManager usage after PurgePoolManager()
// call InitPoolManager() to start over explicitly
var ErrPoolManagerPurged = errors.New("pool manager is purged")

var (
	managerMu     sync.Mutex
	sharedManager *PoolManager
	sharedState   = managerUninitialized
	// reachable by SharedPoolManager() while PurgePoolManager() drains it
	purgingManager *PoolManager
)

// SharedPoolManager returns the process-wide PoolManager
// created with one initial pool on the first call
// panics with ErrPoolManagerPurged after PurgePoolManager()
func SharedPoolManager() *PoolManager {
	managerMu.Lock()
	defer managerMu.Unlock()
	switch sharedState {
	case managerPurged:
		panic(ErrPoolManagerPurged)
	case managerPurging:
		return purgingManager
	case managerUninitialized:
		activateShared()
	}
	return sharedManager
}

// InitPoolManager explicitly activates the shared PoolManager
// the only way to use the shared manager again after PurgePoolManager()
// returns the active manager if it is active already
func InitPoolManager() *PoolManager {
	managerMu.Lock()
	defer managerMu.Unlock()
	if sharedState != managerActive {
		activateShared()
	}
	return sharedManager
}

func activateShared() {
	sharedManager = NewPoolManager()
	sharedState = managerActive
	Logger().Debug("shared pool manager initialized")
}

// PurgePoolManager drains all pools of the shared PoolManager from top to bottom and discards it
// should be called once at the end of the program
// a manager activated by InitPoolManager() while draining is kept
func PurgePoolManager() {
	managerMu.Lock()
	switch sharedState {
	case managerPurging:
		managerMu.Unlock()
		return
	case managerUninitialized, managerPurged:
		sharedState = managerPurged
		managerMu.Unlock()
		return
	}
	pm := sharedManager
	sharedManager = nil
	purgingManager = pm
	sharedState = managerPurging
	managerMu.Unlock()

	// Cleanup()s could autorelease to pm while it drains
	depth := pm.Depth()
	pm.purge()

	managerMu.Lock()
	purgingManager = nil
	if sharedState == managerPurging {
		sharedState = managerPurged
	}
	managerMu.Unlock()

	Logger().Info("shared pool manager purged", zap.Int("pools", depth))
	if isDebug.Load() {
		if nr := getNonReleased(); len(nr) > 0 {
			Logger().Warn("objects are not released on purge", zap.Int("creationPoints", len(nr)))
		}
	}
}

// NewPoolManager creates a standalone stack with one initial pool
// use Object.AutoreleaseTo() to register objects with it
func NewPoolManager() *PoolManager {
	pm := &PoolManager{}
	pm.Push()
	return pm
}

// Push creates a new pool and makes it current
func (pm *PoolManager) Push() *ReleasePool {
	pool := newReleasePool()
	pm.pools = append(pm.pools, pool)
	pm.current = pool
	Logger().Debug("release pool pushed", zap.Int("depth", len(pm.pools)))
	return pool
}

// Pop drains the current pool and makes the previous one current
// the last pool is never popped: Pop() at depth 1 does nothing
func (pm *PoolManager) Pop() {
	pm.mustBeActive()
	if len(pm.pools) == 1 {
		Logger().Warn("pop of the last release pool is ignored")
		return
	}
	pool := pm.pools[len(pm.pools)-1]
	pm.pools[len(pm.pools)-1] = nil
	pm.pools = pm.pools[:len(pm.pools)-1]
	// objects autoreleased while draining go to the new current pool
	pm.current = pm.pools[len(pm.pools)-1]
	pool.Release()
	Logger().Debug("release pool popped", zap.Int("depth", len(pm.pools)))
}

// AddObject registers obj with the current pool
func (pm *PoolManager) AddObject(obj IObject) {
	pm.mustBeActive()
	pm.current.AddObject(obj)
}

// RemoveObject cancels the first registration of obj in the current pool
func (pm *PoolManager) RemoveObject(obj IObject) {
	pm.mustBeActive()
	pm.current.RemoveObject(obj)
}

// CurrentPool returns the top of the stack, nil after purge
func (pm *PoolManager) CurrentPool() *ReleasePool {
	return pm.current
}

// Depth returns the amount of pools in the stack
func (pm *PoolManager) Depth() int {
	return len(pm.pools)
}

// PushScope pushes a new pool which is popped by Scope.Close()
// typical usage: defer pm.PushScope().Close()
func (pm *PoolManager) PushScope() *Scope {
	return &Scope{pm: pm, pool: pm.Push()}
}

// WithPool runs fn inside a new pool which is popped even if fn panics
func (pm *PoolManager) WithPool(fn func()) {
	defer pm.PushScope().Close()
	fn()
}

func (pm *PoolManager) mustBeActive() {
	if pm.current == nil {
		panic(ErrPoolManagerPurged)
	}
}

// each pool is drained while it is current so that Cleanup()s are still able to autorelease
func (pm *PoolManager) purge() {
	for len(pm.pools) > 0 {
		pool := pm.pools[len(pm.pools)-1]
		pm.current = pool
		pool.Clear()
		pm.pools[len(pm.pools)-1] = nil
		pm.pools = pm.pools[:len(pm.pools)-1]
		pool.Release()
	}
	pm.current = nil
}

// Pool returns the pool pushed by the scope
func (s *Scope) Pool() *ReleasePool {
	return s.pool
}

// Close pops the scope's pool
// panics if scopes are closed not in LIFO order or if closed already
func (s *Scope) Close() {
	if s.isClosed {
		panic("scope is closed already")
	}
	if s.pm.current != s.pool {
		panic("release pool scopes must be closed in LIFO order")
	}
	s.isClosed = true
	s.pm.Pop()
}

// PushScope is SharedPoolManager().PushScope()
func PushScope() *Scope {
	return SharedPoolManager().PushScope()
}

// WithPool is SharedPoolManager().WithPool()
func WithPool(fn func()) {
	SharedPoolManager().WithPool(fn)
}
