// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"strconv"

	"periph.io/x/conn/v3/i2c"
)

const (
	// MinAddress and MaxAddress bound the 7-bit address of the device: a fixed
	// base of 0x20 plus the three hardware configurable bits A2-A0.
	MinAddress uint16 = 0x20
	MaxAddress uint16 = 0x27
)

// Expander is the register level interface implemented by both operation
// modes of the driver.
//
// Implementations are not safe for concurrent use. Wrap them in an IoExpander
// to share one device between goroutines.
type Expander interface {
	// WriteByte writes data to register.
	WriteByte(register Register, data byte) error
	// ReadByte returns the value of register.
	ReadByte(register Register) (byte, error)
	// WriteHalfword writes the high byte of data to register and the low byte
	// to register.Neighbor().
	WriteHalfword(register Register, data uint16) error
	// ReadHalfword returns register as the high byte and register.Neighbor()
	// as the low byte.
	ReadHalfword(register Register) (uint16, error)
}

// mustAddress panics if addr is not one of the eight addresses the device
// can be strapped to.
func mustAddress(addr uint16) {
	if addr < MinAddress || MaxAddress < addr {
		panic("pca9535: address " + strconv.Itoa(int(addr)) + " out of range 32-39")
	}
}

// bus performs the two kinds of transactions the device understands on top of
// an i2c.Dev.
type bus struct {
	d i2c.Dev
}

func newBus(b i2c.Bus, addr uint16) bus {
	mustAddress(addr)
	return bus{d: i2c.Dev{Bus: b, Addr: addr}}
}

func (b *bus) write(w ...byte) error {
	if err := b.d.Tx(w, nil); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

func (b *bus) writeRead(register Register, r []byte) error {
	if err := b.d.Tx([]byte{register.Address()}, r); err != nil {
		return &WriteReadError{Err: err}
	}
	return nil
}

func (b *bus) String() string {
	return deviceName(b.d.Addr)
}

func deviceName(addr uint16) string {
	return "PCA9535_" + strconv.FormatInt(int64(addr), 16)
}

func halfword(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
