// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

// Opts holds the configuration of a Dev.
type Opts struct {
	// Interrupt is the host pin connected to the INT output of the device. If
	// set, the Dev caches the device registers and only reads the input
	// registers when INT is asserted. If nil, every operation is a bus
	// transaction.
	Interrupt gpio.PinIn
	// AssumeDefaults skips reading the registers when the cache is built and
	// assumes the power-on defaults instead. Ignored without Interrupt.
	AssumeDefaults bool
	// Locker serializes access to the device. Defaults to a new sync.Mutex.
	Locker sync.Locker
}

// DefaultOpts is the recommended default options: no interrupt pin, so no
// caching.
var DefaultOpts = Opts{}

// Dev is a PCA9535 exposing its pins as gpio.PinIO and its two banks as
// conn.Conn.
type Dev struct {
	Pins  [2][]Pin    // Pins is structured as [bank][pin].
	Conns []conn.Conn // Conns is indexed by bank.

	io         *IoExpander
	name       string
	registered []string // names this Dev registered in gpioreg
}

// New returns a Dev for the device at addr on bus and registers its pins in
// gpioreg, named like "PCA9535_20_P1_3".
//
// It panics if addr is outside of 32-39.
func New(bus i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	var ex Expander
	if opts.Interrupt != nil {
		c, err := NewCached(bus, addr, InterruptPin(opts.Interrupt), opts.AssumeDefaults)
		if err != nil {
			return nil, err
		}
		ex = c
	} else {
		ex = NewImmediate(bus, addr)
	}
	l := opts.Locker
	if l == nil {
		l = &sync.Mutex{}
	}
	d := &Dev{
		io:   NewIoExpanderWithLocker(ex, l),
		name: deviceName(addr),
	}
	for _, bank := range [...]Bank{Bank0, Bank1} {
		p := &port{io: d.io, bank: bank, name: d.name + "_" + bank.String()}
		d.Pins[bank] = p.pins()
		d.Conns = append(d.Conns, p)
		for _, pin := range d.Pins[bank] {
			// Ignore registration failure; the pin stays usable through Pins.
			if err := gpioreg.Register(pin); err == nil {
				d.registered = append(d.registered, pin.Name())
			}
		}
	}
	return d, nil
}

// Expander returns the synchronized register level interface of the device.
// It can be wrapped in a Standard or used to create InputPin and OutputPin.
func (d *Dev) Expander() SyncExpander {
	return d.io
}

func (d *Dev) String() string {
	return d.name
}

// Halt returns all pins to high impedance inputs.
func (d *Dev) Halt() error {
	return d.io.WriteHalfword(ConfigurationPort0, 0xFFFF)
}

// Close removes the registration of the pins this Dev registered. Pins whose
// name was already taken when the Dev was created are left alone.
func (d *Dev) Close() error {
	var errs []error
	for _, name := range d.registered {
		if err := gpioreg.Unregister(name); err != nil {
			errs = append(errs, err)
		}
	}
	d.registered = nil
	return errors.Join(errs...)
}
