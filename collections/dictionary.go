/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	foundation "github.com/spalx/SXFoundation"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Dictionary maps string keys to retained objects
type Dictionary struct {
	foundation.Object
	objects map[string]foundation.IObject
}

func NewDictionary() *Dictionary {
	return foundation.New(&Dictionary{objects: map[string]foundation.IObject{}})
}

func CreateDictionary() *Dictionary {
	return foundation.Autorelease(NewDictionary())
}

func (d *Dictionary) Count() int {
	return len(d.objects)
}

// AllKeys returns an autoreleased Array of sorted String keys
func (d *Dictionary) AllKeys() *Array {
	keys := d.keys()
	res := CreateArrayWithCapacity(len(keys))
	for _, key := range keys {
		s := NewString(key)
		res.AddObject(s)
		s.Release()
	}
	return res
}

// ObjectForKey returns nil if there is no such key
func (d *Dictionary) ObjectForKey(key string) foundation.IObject {
	return d.objects[key]
}

// SetObject retains obj and releases the object previously stored by key
// nil obj removes the key
func (d *Dictionary) SetObject(obj foundation.IObject, key string) {
	if obj != nil {
		obj.Retain()
	}
	d.RemoveObjectForKey(key)
	if obj != nil {
		d.objects[key] = obj
	}
}

func (d *Dictionary) RemoveObjectForKey(key string) {
	obj, ok := d.objects[key]
	if !ok {
		return
	}
	delete(d.objects, key)
	obj.Release()
}

// RemoveObjectsForKeys removes keys listed by an Array of Strings, other elements are ignored
func (d *Dictionary) RemoveObjectsForKeys(keys *Array) {
	for _, key := range keys.Objects() {
		if s, ok := key.(*String); ok {
			d.RemoveObjectForKey(s.Value())
		}
	}
}

func (d *Dictionary) RemoveAllObjects() {
	objects := d.objects
	d.objects = map[string]foundation.IObject{}
	for _, obj := range objects {
		obj.Release()
	}
}

// Range calls f for each entry in sorted keys order until f returns false
// the dictionary must not be modified by f
func (d *Dictionary) Range(f func(key string, obj foundation.IObject) bool) {
	for _, key := range d.keys() {
		if !f(key, d.objects[key]) {
			return
		}
	}
}

// IsEqual compares values of the same keys by IsEqual()
func (d *Dictionary) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*Dictionary)
	if !ok || o == nil || len(o.objects) != len(d.objects) {
		return false
	}
	for key, obj := range d.objects {
		otherObj, ok := o.objects[key]
		if !ok || !obj.IsEqual(otherObj) {
			return false
		}
	}
	return true
}

// Copy copies every value by its Copy()
// panics if a value is not copyable
func (d *Dictionary) Copy() foundation.IObject {
	res := NewDictionary()
	defer releaseOnPanic(res)
	for key, obj := range d.objects {
		c := mustCopy(obj)
		res.SetObject(c, key)
		c.Release()
	}
	return res
}

func (d *Dictionary) Cleanup() {
	d.RemoveAllObjects()
}

func (d *Dictionary) keys() []string {
	keys := maps.Keys(d.objects)
	slices.Sort(keys)
	return keys
}
