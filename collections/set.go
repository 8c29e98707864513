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
)

// Set keeps distinct (by identity) retained objects
type Set struct {
	foundation.Object
	objects map[foundation.IObject]struct{}
}

func NewSet() *Set {
	return foundation.New(&Set{objects: map[foundation.IObject]struct{}{}})
}

func CreateSet() *Set {
	return foundation.Autorelease(NewSet())
}

func (s *Set) Count() int {
	return len(s.objects)
}

// AddObject retains obj if it is not in the set yet, nil is ignored
func (s *Set) AddObject(obj foundation.IObject) {
	if obj == nil || s.ContainsObject(obj) {
		return
	}
	obj.Retain()
	s.objects[obj] = struct{}{}
}

func (s *Set) ContainsObject(obj foundation.IObject) bool {
	if obj == nil {
		return false
	}
	_, ok := s.objects[obj]
	return ok
}

func (s *Set) RemoveObject(obj foundation.IObject) {
	if !s.ContainsObject(obj) {
		return
	}
	delete(s.objects, obj)
	obj.Release()
}

func (s *Set) RemoveAllObjects() {
	objects := s.objects
	s.objects = map[foundation.IObject]struct{}{}
	for obj := range objects {
		obj.Release()
	}
}

// AnyObject returns an arbitrary element, nil if the set is empty
func (s *Set) AnyObject() foundation.IObject {
	for obj := range s.objects {
		return obj
	}
	return nil
}

// Range calls f for each element in no particular order until f returns false
func (s *Set) Range(f func(obj foundation.IObject) bool) {
	for _, obj := range maps.Keys(s.objects) {
		if !f(obj) {
			return
		}
	}
}

// IsEqual is true if each element has an equal (by IsEqual()) counterpart in other
func (s *Set) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*Set)
	if !ok || o == nil || len(o.objects) != len(s.objects) {
		return false
	}
	for obj := range s.objects {
		if !o.containsEqual(obj) {
			return false
		}
	}
	return true
}

// Copy copies every element by its Copy()
// panics if an element is not copyable
func (s *Set) Copy() foundation.IObject {
	res := NewSet()
	defer releaseOnPanic(res)
	for obj := range s.objects {
		c := mustCopy(obj)
		res.AddObject(c)
		c.Release()
	}
	return res
}

func (s *Set) Cleanup() {
	s.RemoveAllObjects()
}

func (s *Set) containsEqual(obj foundation.IObject) bool {
	for candidate := range s.objects {
		if candidate.IsEqual(obj) {
			return true
		}
	}
	return false
}
