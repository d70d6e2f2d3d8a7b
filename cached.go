// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"periph.io/x/conn/v3/i2c"
)

// defaults is the content of the registers after power-on: all pins are high
// impedance inputs with normal polarity.
var defaults = [registerCount]byte{
	InputPort0:             0x00,
	InputPort1:             0x00,
	OutputPort0:            0xFF,
	OutputPort1:            0xFF,
	PolarityInversionPort0: 0x00,
	PolarityInversionPort1: 0x00,
	ConfigurationPort0:     0xFF,
	ConfigurationPort1:     0xFF,
}

// Cached is an Expander keeping a mirror of all device registers to avoid
// bus traffic.
//
// Only the input registers can change without the driver's involvement, and
// the device signals that through its INT output. Reads therefore go to the
// bus only when INT is asserted and an input register is requested; every
// other read is served from the mirror. Writes update the mirror once the
// device acknowledged them.
type Cached struct {
	bus    bus
	intr   Interrupt
	mirror [registerCount]byte
}

// NewCached returns a Cached expander talking to the device at addr. intr must
// report the state of the device's INT output.
//
// If initDefaults is true, the mirror is seeded with the power-on defaults of
// the device and no bus transaction is issued. Only do this when nothing
// touched the device since power-on: a device in another state leaves the
// mirror wrong with no way for the driver to notice. Otherwise all registers
// are read from the device.
//
// It panics if addr is outside of 32-39 or intr is nil.
func NewCached(b i2c.Bus, addr uint16, intr Interrupt, initDefaults bool) (*Cached, error) {
	if intr == nil {
		panic("pca9535: interrupt is required in cached mode")
	}
	e := &Cached{bus: newBus(b, addr), intr: intr, mirror: defaults}
	if !initDefaults {
		if err := e.Resync(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Resync reads all registers from the device and replaces the mirror with
// them. It issues one transaction per register pair.
//
// On error, the pairs read before the failing transaction are kept.
func (e *Cached) Resync() error {
	for _, r := range [...]Register{ConfigurationPort0, InputPort0, OutputPort0, PolarityInversionPort0} {
		var buf [2]byte
		if err := e.bus.writeRead(r, buf[:]); err != nil {
			return err
		}
		e.mirror[r] = buf[0]
		e.mirror[r.Neighbor()] = buf[1]
	}
	return nil
}

// WriteByte implements Expander.
func (e *Cached) WriteByte(register Register, data byte) error {
	register.mustValid()
	if err := e.bus.write(register.Address(), data); err != nil {
		return err
	}
	e.store(register, data)
	return nil
}

// ReadByte implements Expander.
//
// A transaction is issued only if INT is asserted and register is an input
// register.
func (e *Cached) ReadByte(register Register) (byte, error) {
	register.mustValid()
	if !e.fetch(register) {
		return e.mirror[register], nil
	}
	var buf [1]byte
	if err := e.bus.writeRead(register, buf[:]); err != nil {
		return 0, err
	}
	e.mirror[register] = buf[0]
	return buf[0], nil
}

// WriteHalfword implements Expander.
func (e *Cached) WriteHalfword(register Register, data uint16) error {
	register.mustValid()
	hi, lo := byte(data>>8), byte(data)
	if err := e.bus.write(register.Address(), hi, lo); err != nil {
		return err
	}
	e.store(register, hi)
	e.store(register.Neighbor(), lo)
	return nil
}

// ReadHalfword implements Expander.
//
// A transaction is issued only if INT is asserted and register is an input
// register.
func (e *Cached) ReadHalfword(register Register) (uint16, error) {
	register.mustValid()
	if !e.fetch(register) {
		return halfword(e.mirror[register], e.mirror[register.Neighbor()]), nil
	}
	var buf [2]byte
	if err := e.bus.writeRead(register, buf[:]); err != nil {
		return 0, err
	}
	e.mirror[register] = buf[0]
	e.mirror[register.Neighbor()] = buf[1]
	return halfword(buf[0], buf[1]), nil
}

func (e *Cached) String() string {
	return e.bus.String()
}

// fetch reports whether register must be read from the device.
func (e *Cached) fetch(register Register) bool {
	return register.IsInput() && e.intr.Asserted()
}

// store records a value the device acknowledged.
//
// Flipping a polarity inversion bit flips the corresponding bit of the input
// register on the device, but the device does not assert INT for it. The
// input mirror of the same bank is corrected here instead of being read back.
func (e *Cached) store(register Register, data byte) {
	if register.IsPolarityInversion() {
		e.mirror[register.inputOf()] ^= e.mirror[register] ^ data
	}
	e.mirror[register] = data
}

var _ Expander = &Cached{}
