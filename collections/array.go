/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	foundation "github.com/spalx/SXFoundation"
	"golang.org/x/exp/slices"
)

const DefaultArrayCapacity = 10

// Array is an ordered sequence which retains its elements
type Array struct {
	foundation.Object
	objects []foundation.IObject
}

func NewArray() *Array {
	return NewArrayWithCapacity(DefaultArrayCapacity)
}

func NewArrayWithCapacity(capacity int) *Array {
	return foundation.New(&Array{objects: make([]foundation.IObject, 0, capacity)})
}

func CreateArray() *Array {
	return foundation.Autorelease(NewArray())
}

func CreateArrayWithCapacity(capacity int) *Array {
	return foundation.Autorelease(NewArrayWithCapacity(capacity))
}

// CreateArrayWithArray returns an autoreleased deep copy of other
func CreateArrayWithArray(other *Array) *Array {
	return foundation.Autorelease(other.Copy().(*Array))
}

// CreateArrayWithContentsOfFile returns an autoreleased array of Strings, one per line
func CreateArrayWithContentsOfFile(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read array from %s: %w", path, err)
	}
	defer f.Close()

	a := NewArray()
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			s := NewString(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			a.AddObject(s)
			s.Release()
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			a.Release()
			return nil, fmt.Errorf("failed to read array from %s: %w", path, err)
		}
	}
	return foundation.Autorelease(a), nil
}

// InitWithArray replaces the content by the elements of other, elements are shared, not copied
func (a *Array) InitWithArray(other *Array) error {
	a.RemoveAllObjects()
	a.objects = slices.Grow(a.objects, other.Count())
	a.AddObjectsFromArray(other)
	return nil
}

func (a *Array) Count() int {
	return len(a.objects)
}

// IndexOfObject compares by identity, returns -1 if not found
func (a *Array) IndexOfObject(obj foundation.IObject) int {
	if obj == nil {
		return -1
	}
	return slices.IndexFunc(a.objects, func(o foundation.IObject) bool {
		return o == obj
	})
}

// LastObject returns nil if the array is empty
func (a *Array) LastObject() foundation.IObject {
	if len(a.objects) == 0 {
		return nil
	}
	return a.objects[len(a.objects)-1]
}

// ObjectAtIndex returns nil if idx is out of range
func (a *Array) ObjectAtIndex(idx int) foundation.IObject {
	if idx < 0 || idx >= len(a.objects) {
		return nil
	}
	return a.objects[idx]
}

func (a *Array) ContainsObject(obj foundation.IObject) bool {
	return a.IndexOfObject(obj) >= 0
}

// AddObject retains and appends obj, nil is ignored
func (a *Array) AddObject(obj foundation.IObject) {
	if obj == nil {
		return
	}
	obj.Retain()
	a.objects = append(a.objects, obj)
}

func (a *Array) AddObjectsFromArray(other *Array) {
	for _, obj := range other.Objects() {
		a.AddObject(obj)
	}
}

// InsertObject retains and inserts obj at idx, ignored if idx is out of [0, Count()]
func (a *Array) InsertObject(obj foundation.IObject, idx int) {
	if obj == nil || idx < 0 || idx > len(a.objects) {
		return
	}
	obj.Retain()
	a.objects = slices.Insert(a.objects, idx, obj)
}

// RemoveObject removes and releases the first occurrence of obj
func (a *Array) RemoveObject(obj foundation.IObject) {
	a.RemoveObjectAtIndex(a.IndexOfObject(obj))
}

// RemoveObjectAtIndex is ignored if idx is out of range
func (a *Array) RemoveObjectAtIndex(idx int) {
	if idx < 0 || idx >= len(a.objects) {
		return
	}
	obj := a.objects[idx]
	n := len(a.objects)
	a.objects = slices.Delete(a.objects, idx, idx+1)
	a.objects[:n][n-1] = nil
	obj.Release()
}

func (a *Array) RemoveLastObject() {
	a.RemoveObjectAtIndex(len(a.objects) - 1)
}

func (a *Array) RemoveObjectsInArray(other *Array) {
	for _, obj := range other.Objects() {
		a.RemoveObject(obj)
	}
}

func (a *Array) RemoveAllObjects() {
	objects := a.objects
	a.objects = nil
	for i, obj := range objects {
		objects[i] = nil
		obj.Release()
	}
	if a.objects == nil {
		a.objects = objects[:0]
	}
}

// Objects returns a snapshot of the elements, they are not retained on behalf of the caller
func (a *Array) Objects() []foundation.IObject {
	return slices.Clone(a.objects)
}

// IsEqual compares elements pairwise by IsEqual()
func (a *Array) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*Array)
	if !ok || o == nil {
		return false
	}
	return slices.EqualFunc(a.objects, o.objects, func(x, y foundation.IObject) bool {
		return x.IsEqual(y)
	})
}

// Copy copies every element by its Copy()
// panics if an element is not copyable
func (a *Array) Copy() foundation.IObject {
	res := NewArrayWithCapacity(cap(a.objects))
	defer releaseOnPanic(res)
	for _, obj := range a.objects {
		c := mustCopy(obj)
		res.AddObject(c)
		c.Release()
	}
	return res
}

func (a *Array) Cleanup() {
	a.RemoveAllObjects()
}
