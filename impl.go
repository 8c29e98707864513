/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package foundation

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

var (
	m            sync.Mutex = sync.Mutex{}
	objectsInUse atomic.Uint64
	isDebug      atomic.Bool
	objAmounts   map[string]int = map[string]int{}
)

func (st stackTrace) string() string {
	buf := bytes.NewBufferString("")
	for _, sf := range st {
		buf.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", sf.fn, sf.file, sf.line))
	}
	return buf.String()
}

// New initializes the embedded Object of obj and returns obj with reference count 1
// the caller owns the reference
// obj's optional Cleanup() will be called once on destruction
func New[T IObject](obj T) T {
	o := obj.object()
	if o.self != nil {
		panic("object is initialized already")
	}
	o.refCount = 1
	o.self = obj
	o.cleanupIntf, _ = any(obj).(interface{ Cleanup() })
	objectsInUse.Inc()
	if isDebug.Load() {
		st := getStackTrace().string()
		o.createStackTrace = st
		m.Lock()
		objAmounts[st]++
		m.Unlock()
	}
	return obj
}

// Autorelease is obj.Autorelease() which keeps the type
// useful in create-style factories: return foundation.Autorelease(foundation.New(&MyType{}))
func Autorelease[T IObject](obj T) T {
	obj.Autorelease()
	return obj
}

func (o *Object) object() *Object {
	return o
}

func (o *Object) mustBeAlive() {
	if o.self == nil {
		panic("object is not initialized, use foundation.New()")
	}
	if o.isDestroyed {
		panic("already released")
	}
}

func (o *Object) Retain() {
	o.mustBeAlive()
	o.refCount++
}

func (o *Object) Release() {
	o.mustBeAlive()
	o.refCount--
	if o.refCount == 0 {
		o.destroy()
	}
}

func (o *Object) destroy() {
	// marked first so that a release from inside Cleanup() panics instead of destroying twice
	o.isDestroyed = true
	if o.cleanupIntf != nil {
		o.cleanupIntf.Cleanup()
	}
	objectsInUse.Dec()
	if len(o.createStackTrace) > 0 {
		m.Lock()
		objAmounts[o.createStackTrace]--
		m.Unlock()
		o.createStackTrace = ""
	}
}

func (o *Object) Autorelease() IObject {
	return o.AutoreleaseTo(SharedPoolManager())
}

// AutoreleaseTo hands the caller's reference over to the current pool of pm
func (o *Object) AutoreleaseTo(pm *PoolManager) IObject {
	o.mustBeAlive()
	pm.AddObject(o.self)
	return o.self
}

func (o *Object) RetainCount() uint32 {
	return o.refCount
}

func (o *Object) IsEqual(other IObject) bool {
	return other != nil && other.object() == o
}

func (o *Object) Copy() IObject {
	return nil
}

func getStackTrace() stackTrace {
	pc := make([]uintptr, 100) // can't estimate
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])
	st := stackTrace{}
	for {
		frame, more := frames.Next()
		st = append(st, stackFrame{
			fn:   frame.Function,
			file: frame.File,
			line: frame.Line,
		})
		if !more {
			break
		}
	}
	return st
}
