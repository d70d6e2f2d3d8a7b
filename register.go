// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import "strconv"

// Register is one of the eight data registers of the device. The value is the
// command byte used to address it on the bus.
//
// The registers act as four pairs (bank 0 and bank 1 of the same function).
// A halfword write to a register stores the most significant byte in the named
// register and the least significant byte in the other member of the pair,
// regardless of which member was named:
//
//	WriteHalfword(OutputPort0, 0x4A07) // OutputPort0 = 0x4A, OutputPort1 = 0x07
//	WriteHalfword(OutputPort1, 0x4A07) // OutputPort1 = 0x4A, OutputPort0 = 0x07
//
// Halfword reads follow the same order.
type Register uint8

const (
	InputPort0             Register = 0x00
	InputPort1             Register = 0x01
	OutputPort0            Register = 0x02
	OutputPort1            Register = 0x03
	PolarityInversionPort0 Register = 0x04
	PolarityInversionPort1 Register = 0x05
	ConfigurationPort0     Register = 0x06
	ConfigurationPort1     Register = 0x07

	registerCount = 8
)

var registerNames = [registerCount]string{
	"InputPort0",
	"InputPort1",
	"OutputPort0",
	"OutputPort1",
	"PolarityInversionPort0",
	"PolarityInversionPort1",
	"ConfigurationPort0",
	"ConfigurationPort1",
}

func (r Register) String() string {
	if !r.valid() {
		return "Register(" + strconv.Itoa(int(r)) + ")"
	}
	return registerNames[r]
}

// Address returns the command byte of the register.
func (r Register) Address() byte {
	return byte(r)
}

// Neighbor returns the other member of the register pair.
func (r Register) Neighbor() Register {
	return r ^ 0x01
}

// IsInput reports whether r is one of the input port registers.
func (r Register) IsInput() bool {
	return r == InputPort0 || r == InputPort1
}

// IsPolarityInversion reports whether r is one of the polarity inversion
// registers.
func (r Register) IsPolarityInversion() bool {
	return r == PolarityInversionPort0 || r == PolarityInversionPort1
}

// Bank returns the GPIO bank the register belongs to.
func (r Register) Bank() Bank {
	return Bank(r & 0x01)
}

func (r Register) valid() bool {
	return r < registerCount
}

// mustValid panics on a register outside the device's register map.
func (r Register) mustValid() {
	if !r.valid() {
		panic("pca9535: invalid register " + r.String())
	}
}

// inputOf returns the input register of the bank r belongs to. The pairs are
// laid out function by function, so this is the bank bit alone.
func (r Register) inputOf() Register {
	return InputPort0 | Register(r.Bank())
}

// Bank is one of the two groups of eight pins of the device.
type Bank uint8

const (
	Bank0 Bank = 0
	Bank1 Bank = 1
)

func (b Bank) String() string {
	return "P" + strconv.Itoa(int(b))
}

func (b Bank) mustValid() {
	if b > Bank1 {
		panic("pca9535: invalid bank " + strconv.Itoa(int(b)))
	}
}

// InputRegister returns the input port register of bank b.
func InputRegister(b Bank) Register {
	b.mustValid()
	return InputPort0 | Register(b)
}

// OutputRegister returns the output port register of bank b.
func OutputRegister(b Bank) Register {
	b.mustValid()
	return OutputPort0 | Register(b)
}

// PolarityInversionRegister returns the polarity inversion register of bank b.
func PolarityInversionRegister(b Bank) Register {
	b.mustValid()
	return PolarityInversionPort0 | Register(b)
}

// ConfigurationRegister returns the configuration register of bank b. A set
// bit configures the corresponding pin as an input.
func ConfigurationRegister(b Bank) Register {
	b.mustValid()
	return ConfigurationPort0 | Register(b)
}

// Polarity is the input polarity of a pin.
type Polarity uint8

const (
	// Normal reports a high voltage level at an input as a 1.
	Normal Polarity = 0
	// Inverse reports a high voltage level at an input as a 0.
	Inverse Polarity = 1
)

func (p Polarity) String() string {
	if p == Inverse {
		return "Inverse"
	}
	return "Normal"
}

// mustPin panics when pin does not address one of the eight pins of a bank.
func mustPin(pin uint8) {
	if pin >= 8 {
		panic("pca9535: pin " + strconv.Itoa(int(pin)) + " out of range 0-7")
	}
}
