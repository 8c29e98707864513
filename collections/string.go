/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package collections

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	foundation "github.com/spalx/SXFoundation"
)

// String is a reference-counted text value
type String struct {
	foundation.Object
	value string
}

// NewString returns a string owned by the caller
func NewString(value string) *String {
	return foundation.New(&String{value: value})
}

// CreateString returns an autoreleased string
func CreateString(value string) *String {
	return foundation.Autorelease(NewString(value))
}

// CreateStringWithContentsOfFile returns an autoreleased string with the whole file content
func CreateStringWithContentsOfFile(path string) (*String, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read string from %s: %w", path, err)
	}
	return CreateString(string(content)), nil
}

func (s *String) Value() string {
	return s.value
}

func (s *String) SetValue(value string) {
	s.value = value
}

func (s *String) String() string {
	return s.value
}

// Length returns the length in bytes
func (s *String) Length() int {
	return len(s.value)
}

// CharAt returns 0 if idx is out of range
func (s *String) CharAt(idx int) byte {
	if idx < 0 || idx >= len(s.value) {
		return 0
	}
	return s.value[idx]
}

func (s *String) Compare(other string) int {
	return strings.Compare(s.value, other)
}

// IntValue parses the leading integer, "12px" is 12
// returns 0 if the value does not start with an integer
func (s *String) IntValue() int {
	res, _ := strconv.Atoi(numericPrefix(s.value, true, false))
	return res
}

// UintValue parses the leading unsigned integer, returns 0 if there is none
func (s *String) UintValue() uint64 {
	res, _ := strconv.ParseUint(numericPrefix(s.value, false, false), 10, 64)
	return res
}

// FloatValue parses the leading decimal number, returns 0 if there is none
func (s *String) FloatValue() float32 {
	res, err := strconv.ParseFloat(numericPrefix(s.value, true, true), 32)
	if err != nil {
		return 0
	}
	return float32(res)
}

// DoubleValue parses the leading decimal number, returns 0 if there is none
func (s *String) DoubleValue() float64 {
	res, err := strconv.ParseFloat(numericPrefix(s.value, true, true), 64)
	if err != nil {
		return 0
	}
	return res
}

// BoolValue is true for "true" and for non-zero integers
func (s *String) BoolValue() bool {
	return s.value == "true" || s.IntValue() != 0
}

func (s *String) IsEqual(other foundation.IObject) bool {
	o, ok := other.(*String)
	return ok && o != nil && o.value == s.value
}

func (s *String) Copy() foundation.IObject {
	return NewString(s.value)
}

// numericPrefix returns the number at the start of v after leading whitespace, the rest is ignored
// hex, inf and nan forms are not recognized
func numericPrefix(v string, signed bool, fraction bool) string {
	v = strings.TrimLeft(v, " \t\n\r\v\f")
	i := 0
	if i < len(v) && (v[i] == '+' || signed && v[i] == '-') {
		i++
	}
	digits := skipDigits(v, i)
	if fraction && digits < len(v) && v[digits] == '.' {
		digits = skipDigits(v, digits+1)
	}
	if digits == i || digits == i+1 && v[i] == '.' {
		return ""
	}
	if fraction && digits < len(v) && (v[digits] == 'e' || v[digits] == 'E') {
		exp := digits + 1
		if exp < len(v) && (v[exp] == '+' || v[exp] == '-') {
			exp++
		}
		if end := skipDigits(v, exp); end > exp {
			digits = end
		}
	}
	return v[:digits]
}

func skipDigits(v string, from int) int {
	for from < len(v) && v[from] >= '0' && v[from] <= '9' {
		from++
	}
	return from
}
