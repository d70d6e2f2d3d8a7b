// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import "sync"

// SyncExpander is an Expander that is safe for concurrent use.
type SyncExpander interface {
	Expander
	// Do runs fn with exclusive access to the underlying Expander. No other
	// operation runs on the device until fn returns, so fn can perform
	// read-modify-write sequences atomically. fn must not call back into the
	// SyncExpander.
	Do(fn func(ex Expander) error) error
}

// IoExpander wraps an Expander so that it can be shared between goroutines,
// for example by several InputPin and OutputPin.
type IoExpander struct {
	mu sync.Locker
	ex Expander
}

// NewIoExpander returns an IoExpander serializing access to ex with a
// sync.Mutex. ex must not be used directly afterwards.
func NewIoExpander(ex Expander) *IoExpander {
	return NewIoExpanderWithLocker(ex, &sync.Mutex{})
}

// NewIoExpanderWithLocker is like NewIoExpander but uses l for mutual
// exclusion. This allows sharing one lock between all devices on a bus.
func NewIoExpanderWithLocker(ex Expander, l sync.Locker) *IoExpander {
	return &IoExpander{mu: l, ex: ex}
}

// Do implements SyncExpander.
func (i *IoExpander) Do(fn func(ex Expander) error) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return fn(i.ex)
}

// WriteByte implements Expander.
func (i *IoExpander) WriteByte(register Register, data byte) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ex.WriteByte(register, data)
}

// ReadByte implements Expander.
func (i *IoExpander) ReadByte(register Register) (byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ex.ReadByte(register)
}

// WriteHalfword implements Expander.
func (i *IoExpander) WriteHalfword(register Register, data uint16) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ex.WriteHalfword(register, data)
}

// ReadHalfword implements Expander.
func (i *IoExpander) ReadHalfword(register Register) (uint16, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ex.ReadHalfword(register)
}

var _ SyncExpander = &IoExpander{}
