/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package foundation

// Object is the reference-counting kernel embedded by every IObject implementation
// use New() to initialize, zero value is not usable
type Object struct {
	refCount         uint32
	self             IObject
	cleanupIntf      interface{ Cleanup() }
	isDestroyed      bool
	createStackTrace string
}

// ReleasePool keeps registrations of autoreleased objects
// each registration owns exactly one reference which is released on drain
type ReleasePool struct {
	Object
	registrations []IObject
}

// PoolManager is a LIFO stack of release pools. The top one is the current pool
// not safe for concurrent use
type PoolManager struct {
	pools   []*ReleasePool
	current *ReleasePool
}

// Scope pops its pool on Close()
// see PushScope()
type Scope struct {
	pm       *PoolManager
	pool     *ReleasePool
	isClosed bool
}

// Selector is a reference-counted wrapper of a callable with a fixed signature
type Selector[A, R any] struct {
	Object
	target IInvoker[A, R]
}

// InvokerFunc adapts an ordinary func to IInvoker
type InvokerFunc[A, R any] func(arg A) R

// Owned holds exactly one reference to an object and hands it over at most once
type Owned[T IObject] struct {
	obj     T
	isValid bool
}

type managerState int

const (
	managerUninitialized managerState = iota
	managerActive
	managerPurging
	managerPurged
)

type stackFrame struct {
	fn   string
	file string
	line int
}

type stackTrace []stackFrame
