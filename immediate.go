// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"periph.io/x/conn/v3/i2c"
)

// Immediate is an Expander that issues one bus transaction per call and holds
// no state about the device registers.
type Immediate struct {
	bus bus
}

// NewImmediate returns an Immediate expander talking to the device at addr.
//
// It panics if addr is outside of 32-39.
func NewImmediate(b i2c.Bus, addr uint16) *Immediate {
	return &Immediate{bus: newBus(b, addr)}
}

// WriteByte implements Expander.
func (e *Immediate) WriteByte(register Register, data byte) error {
	register.mustValid()
	return e.bus.write(register.Address(), data)
}

// ReadByte implements Expander.
func (e *Immediate) ReadByte(register Register) (byte, error) {
	register.mustValid()
	var buf [1]byte
	if err := e.bus.writeRead(register, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteHalfword implements Expander.
func (e *Immediate) WriteHalfword(register Register, data uint16) error {
	register.mustValid()
	return e.bus.write(register.Address(), byte(data>>8), byte(data))
}

// ReadHalfword implements Expander.
func (e *Immediate) ReadHalfword(register Register) (uint16, error) {
	register.mustValid()
	var buf [2]byte
	if err := e.bus.writeRead(register, buf[:]); err != nil {
		return 0, err
	}
	return halfword(buf[0], buf[1]), nil
}

func (e *Immediate) String() string {
	return e.bus.String()
}

var _ Expander = &Immediate{}
