// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// pinGroup is a set of pins of one bank operated on together.
type pinGroup struct {
	port        *port
	pins        []*portpin
	defaultMask gpio.GPIOValue
}

// Group returns a gpio.Group made up of the specified pins of bank. Bit 0 of
// the group values maps to pins[0], bit 1 to pins[1] and so on.
//
// It panics if a pin is not in 0-7.
func (d *Dev) Group(bank Bank, pins ...int) gpio.Group {
	bank.mustValid()
	grouppins := make([]*portpin, len(pins))
	for ix, number := range pins {
		mustPin(uint8(number))
		grouppins[ix] = d.Pins[bank][number].(*portpin)
	}
	return &pinGroup{
		port:        d.Conns[bank].(*port),
		pins:        grouppins,
		defaultMask: gpio.GPIOValue((1 << len(pins)) - 1),
	}
}

// Pins returns the set of pin.Pin that make up that group.
func (pg *pinGroup) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(pg.pins))
	for ix, p := range pg.pins {
		pins[ix] = p
	}
	return pins
}

// Given the offset within the group, return the corresponding GPIO pin.
func (pg *pinGroup) ByOffset(offset int) pin.Pin {
	return pg.pins[offset]
}

// Given the specific name of a pin, return it. If it can't be found, nil is
// returned.
func (pg *pinGroup) ByName(name string) pin.Pin {
	for _, p := range pg.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Given the GPIO pin number, return that pin from the set.
func (pg *pinGroup) ByNumber(number int) pin.Pin {
	for _, p := range pg.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// devMask converts a group relative value into the bank register layout.
func (pg *pinGroup) devMask(value gpio.GPIOValue) byte {
	var m byte
	for bit, p := range pg.pins {
		if value&(1<<bit) != 0 {
			m |= 1 << p.pinbit
		}
	}
	return m
}

func (pg *pinGroup) mask(mask gpio.GPIOValue) gpio.GPIOValue {
	if mask == 0 {
		return pg.defaultMask
	}
	return mask & pg.defaultMask
}

// Out writes value to the pins of the group selected by mask. If mask is 0,
// all pins of the group are written. Pins not configured as outputs are
// switched to output after their level is written.
func (pg *pinGroup) Out(value, mask gpio.GPIOValue) error {
	mask = pg.mask(mask)
	wrMask := pg.devMask(mask)
	wr := pg.devMask(value & mask)
	bank := pg.port.bank
	return pg.port.io.Do(func(ex Expander) error {
		if err := updateBits(ex, OutputRegister(bank), wrMask, wr); err != nil {
			return err
		}
		dir, err := ex.ReadByte(ConfigurationRegister(bank))
		if err != nil {
			return err
		}
		if dir&wrMask == 0 {
			return nil
		}
		return ex.WriteByte(ConfigurationRegister(bank), dir&^wrMask)
	})
}

// Read returns the input state of the pins of the group selected by mask. If
// mask is 0, all pins of the group are read. Pins not configured as inputs are
// transparently switched to input.
func (pg *pinGroup) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	mask = pg.mask(mask)
	rmask := pg.devMask(mask)
	bank := pg.port.bank
	var in byte
	err := pg.port.io.Do(func(ex Expander) error {
		dir, err := ex.ReadByte(ConfigurationRegister(bank))
		if err != nil {
			return err
		}
		if dir&rmask != rmask {
			if err := ex.WriteByte(ConfigurationRegister(bank), dir|rmask); err != nil {
				return err
			}
		}
		in, err = ex.ReadByte(InputRegister(bank))
		return err
	})
	if err != nil {
		return 0, err
	}
	var result gpio.GPIOValue
	for bit, p := range pg.pins {
		if mask&(1<<bit) != 0 && in&(1<<p.pinbit) != 0 {
			result |= 1 << bit
		}
	}
	return result, nil
}

// WaitForEdge is not supported. The INT output of the device doesn't tell
// which pin changed; connect it to a host pin and use an Interrupt instead.
func (pg *pinGroup) WaitForEdge(timeout time.Duration) (number int, edge gpio.Edge, err error) {
	return 0, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

// Halt returns the pins of the group to high impedance inputs.
func (pg *pinGroup) Halt() error {
	m := pg.devMask(pg.defaultMask)
	bank := pg.port.bank
	return pg.port.io.Do(func(ex Expander) error {
		return updateBits(ex, ConfigurationRegister(bank), m, 0xFF)
	})
}

func (pg *pinGroup) String() string {
	s := pg.port.name + "[ "
	for _, p := range pg.pins {
		s += fmt.Sprintf("%d ", p.Number())
	}
	return s + "]"
}

var _ gpio.Group = &pinGroup{}
