/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	"bytes"
	"fmt"
	"os"

	foundation "github.com/spalx/SXFoundation"
	"github.com/valyala/bytebufferpool"
)

// Data is a reference-counted byte buffer
// the storage is borrowed from bytebufferpool and returned on destruction
type Data struct {
	foundation.Object
	bb *bytebufferpool.ByteBuffer
}

// NewData returns an empty buffer owned by the caller
func NewData() *Data {
	return foundation.New(&Data{bb: bytebufferpool.Get()})
}

// NewDataWithBytes returns a buffer with a copy of b owned by the caller
func NewDataWithBytes(b []byte) *Data {
	d := NewData()
	d.bb.Set(b)
	return d
}

// CreateData returns an empty autoreleased buffer
func CreateData() *Data {
	return foundation.Autorelease(NewData())
}

// CreateDataWithBytes returns an autoreleased buffer with a copy of b
func CreateDataWithBytes(b []byte) *Data {
	return foundation.Autorelease(NewDataWithBytes(b))
}

// CreateDataWithContentsOfFile returns an autoreleased buffer with the whole file content
func CreateDataWithContentsOfFile(path string) (*Data, error) {
	d := NewData()
	if err := d.InitWithContentsOfFile(path); err != nil {
		d.Release()
		return nil, err
	}
	return foundation.Autorelease(d), nil
}

// InitWithData replaces the content by a copy of b
func (d *Data) InitWithData(b []byte) error {
	d.bb.Set(b)
	return nil
}

// InitWithContentsOfFile replaces the content by the file content
// the buffer is left empty on failure
func (d *Data) InitWithContentsOfFile(path string) error {
	d.bb.Reset()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read data from %s: %w", path, err)
	}
	defer f.Close()
	if _, err := d.bb.ReadFrom(f); err != nil {
		d.bb.Reset()
		return fmt.Errorf("failed to read data from %s: %w", path, err)
	}
	return nil
}

// Bytes returns the underlying bytes, valid until the next modification or destruction
func (d *Data) Bytes() []byte {
	return d.bb.B
}

func (d *Data) Length() int {
	return d.bb.Len()
}

func (d *Data) WriteToFile(path string) error {
	if err := os.WriteFile(path, d.bb.B, 0o644); err != nil {
		return fmt.Errorf("failed to write data to %s: %w", path, err)
	}
	return nil
}

func (d *Data) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*Data)
	return ok && o != nil && bytes.Equal(o.bb.B, d.bb.B)
}

func (d *Data) Copy() foundation.IObject {
	return NewDataWithBytes(d.bb.B)
}

func (d *Data) Cleanup() {
	bytebufferpool.Put(d.bb)
	d.bb = nil
}
