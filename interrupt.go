// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"periph.io/x/conn/v3/gpio"
)

// Interrupt reports the state of the device's INT output.
//
// The device asserts INT whenever the level of an input pin differs from the
// content of the input port register, and releases it when that register is
// read.
type Interrupt interface {
	// Asserted reports whether an input changed since the last read of the
	// input port registers.
	Asserted() bool
}

// InterruptPin returns an Interrupt reading p. The INT output of the device is
// an active-low open-drain output, so a Low level means asserted.
//
// p must already be configured as an input, with a pull-up if the board has
// none.
func InterruptPin(p gpio.PinIn) Interrupt {
	return interruptPin{p: p}
}

type interruptPin struct {
	p gpio.PinIn
}

func (i interruptPin) Asserted() bool {
	return i.p.Read() == gpio.Low
}

// InterruptFunc adapts an ordinary function to the Interrupt interface. It
// allows using pins that don't implement gpio.PinIn, for example a TinyGo
// machine.Pin:
//
//	pca9535.InterruptFunc(func() bool { return !pin.Get() })
type InterruptFunc func() bool

// Asserted calls f.
func (f InterruptFunc) Asserted() bool {
	return f()
}
