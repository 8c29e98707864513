/*
 * Copyright (c) 2024-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package notify

import (
	"fmt"
	"sync"

	foundation "github.com/spalx/SXFoundation"
	"github.com/spalx/SXFoundation/collections"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Observer is called with the user info of a posted notification, nil user info is allowed
type Observer = foundation.Selector[*collections.Dictionary, error]

// Center broadcasts named notifications to registered observers synchronously
// not safe for concurrent use
type Center struct {
	foundation.Object
	observers *collections.Dictionary
}

var (
	defaultMu     sync.Mutex
	defaultCenter *Center
)

// NewObserver wraps fn, the caller owns the result
func NewObserver(fn func(userInfo *collections.Dictionary) error) *Observer {
	return foundation.NewSelector(fn)
}

// CreateObserver returns an autoreleased observer wrapping fn
func CreateObserver(fn func(userInfo *collections.Dictionary) error) *Observer {
	return foundation.CreateSelector(fn)
}

// NewCenter returns a center owned by the caller
func NewCenter() *Center {
	return foundation.New(&Center{observers: collections.NewDictionary()})
}

// DefaultCenter returns the process-wide center, created on the first call
func DefaultCenter() *Center {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCenter == nil {
		defaultCenter = NewCenter()
	}
	return defaultCenter
}

// PurgeDefaultCenter releases the process-wide center with all its observers
func PurgeDefaultCenter() {
	defaultMu.Lock()
	c := defaultCenter
	defaultCenter = nil
	defaultMu.Unlock()
	if c != nil {
		c.Release()
	}
}

// AddObserver retains obs and subscribes it to notifications of name
// the same observer could be added several times and is called as many times then
func (c *Center) AddObserver(obs *Observer, name string) {
	list, _ := c.observers.ObjectForKey(name).(*collections.Array)
	if list == nil {
		list = collections.NewArray()
		c.observers.SetObject(list, name)
		list.Release()
	}
	list.AddObject(obs)
}

// RemoveObserver unsubscribes one occurrence of obs from notifications of name and releases it
func (c *Center) RemoveObserver(obs *Observer, name string) {
	list, _ := c.observers.ObjectForKey(name).(*collections.Array)
	if list == nil {
		return
	}
	list.RemoveObject(obs)
	if list.Count() == 0 {
		c.observers.RemoveObjectForKey(name)
	}
}

// ObserversCount returns the amount of subscriptions to name
func (c *Center) ObserversCount(name string) int {
	list, _ := c.observers.ObjectForKey(name).(*collections.Array)
	if list == nil {
		return 0
	}
	return list.Count()
}

// PostNotification calls observers of name in subscription order
// observers subscribed or unsubscribed by an observer take effect on the next post
// all observers are called, their errors are combined
func (c *Center) PostNotification(name string, userInfo *collections.Dictionary) (err error) {
	list, _ := c.observers.ObjectForKey(name).(*collections.Array)
	if list == nil {
		return nil
	}
	snapshot := list.Objects()
	for _, obj := range snapshot {
		obj.Retain()
	}
	defer func() {
		for _, obj := range snapshot {
			obj.Release()
		}
	}()
	for i, obj := range snapshot {
		if obsErr := obj.(*Observer).Invoke(userInfo); obsErr != nil {
			err = multierr.Append(err, fmt.Errorf("observer %d of %s: %w", i, name, obsErr))
		}
	}
	if err != nil {
		foundation.Logger().Debug("notification observers failed", zap.String("name", name), zap.Error(err))
	}
	return err
}

func (c *Center) Cleanup() {
	c.observers.Release()
	c.observers = nil
}
