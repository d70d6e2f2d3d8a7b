// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pca9535test provides a simulated PCA9535 to test code using the
// pca9535 driver without hardware.
package pca9535test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/pca9535"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Device implements i2c.Bus and behaves like a PCA9535 at address Addr.
//
// Levels applied to the pins from outside are set with SetInput. Device also
// implements pca9535.Interrupt, reporting the state of the INT output.
type Device struct {
	sync.Mutex
	// Addr is the address the device answers to.
	Addr uint16
	// Fail, if set, is returned by every transaction, which then has no
	// effect.
	Fail error

	regs    [8]byte // output, polarity inversion and configuration registers
	ext     [2]byte // levels driven on the pins from outside
	latched [2]byte // pin levels at the last read of the input registers
	count   int
}

// New returns a Device in its power-on state at addr, with all external pin
// levels low.
func New(addr uint16) *Device {
	d := &Device{Addr: addr}
	d.regs[pca9535.OutputPort0] = 0xFF
	d.regs[pca9535.OutputPort1] = 0xFF
	d.regs[pca9535.ConfigurationPort0] = 0xFF
	d.regs[pca9535.ConfigurationPort1] = 0xFF
	return d
}

func (d *Device) String() string {
	return fmt.Sprintf("pca9535test(%#x)", d.Addr)
}

// Tx implements i2c.Bus.
//
// The first byte of w selects the register. Further bytes of w are written
// and r is read starting at that register, alternating between both members
// of the register pair.
func (d *Device) Tx(addr uint16, w, r []byte) error {
	d.Lock()
	defer d.Unlock()
	if d.Fail != nil {
		return d.Fail
	}
	if addr != d.Addr {
		return fmt.Errorf("pca9535test: no device at %#x", addr)
	}
	if len(w) == 0 {
		return errors.New("pca9535test: missing command byte")
	}
	if w[0] > byte(pca9535.ConfigurationPort1) {
		return fmt.Errorf("pca9535test: invalid command byte %#x", w[0])
	}
	d.count++
	reg := pca9535.Register(w[0])
	for _, b := range w[1:] {
		if !reg.IsInput() {
			d.regs[reg] = b
		}
		reg = reg.Neighbor()
	}
	for i := range r {
		r[i] = d.read(reg)
		reg = reg.Neighbor()
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (d *Device) SetSpeed(f physic.Frequency) error {
	return nil
}

// SetInput drives pin of bank to level from outside. It only has an effect on
// pins configured as inputs.
func (d *Device) SetInput(bank pca9535.Bank, pin uint8, level gpio.Level) {
	d.Lock()
	defer d.Unlock()
	if level {
		d.ext[bank] |= 1 << pin
	} else {
		d.ext[bank] &^= 1 << pin
	}
}

// Asserted implements pca9535.Interrupt. INT is asserted while an input pin
// differs from its level at the last read of its input register. Changing the
// polarity inversion never asserts it.
func (d *Device) Asserted() bool {
	d.Lock()
	defer d.Unlock()
	for bank := range d.ext {
		in := d.regs[pca9535.ConfigurationRegister(pca9535.Bank(bank))]
		if (d.level(pca9535.Bank(bank))^d.latched[bank])&in != 0 {
			return true
		}
	}
	return false
}

// Register returns the content of register as the device would report it,
// without side effects.
func (d *Device) Register(register pca9535.Register) byte {
	d.Lock()
	defer d.Unlock()
	if register.IsInput() {
		return d.input(register.Bank())
	}
	return d.regs[register]
}

// Count returns the number of successful transactions.
func (d *Device) Count() int {
	d.Lock()
	defer d.Unlock()
	return d.count
}

func (d *Device) read(reg pca9535.Register) byte {
	if !reg.IsInput() {
		return d.regs[reg]
	}
	bank := reg.Bank()
	d.latched[bank] = d.level(bank)
	return d.input(bank)
}

// level returns the levels at the pins of bank: outputs drive the output
// register, inputs follow the external level.
func (d *Device) level(bank pca9535.Bank) byte {
	in := d.regs[pca9535.ConfigurationRegister(bank)]
	return d.ext[bank]&in | d.regs[pca9535.OutputRegister(bank)]&^in
}

func (d *Device) input(bank pca9535.Bank) byte {
	return d.level(bank) ^ d.regs[pca9535.PolarityInversionRegister(bank)]
}

var _ i2c.Bus = &Device{}
var _ pca9535.Interrupt = &Device{}
