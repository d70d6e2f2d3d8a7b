// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin extends gpio.PinIO with pin function selection and the polarity
// inversion feature of the device.
type Pin interface {
	gpio.PinIO
	pin.PinFunc
	// SetPolarityInverted inverts the logic level the pin reports when p is
	// true.
	SetPolarityInverted(p bool) error
	// IsPolarityInverted reports whether the pin reports inverted levels.
	IsPolarityInverted() (bool, error)
}

// port is one bank of the device, exposed as a conn.Conn.
type port struct {
	io   SyncExpander
	bank Bank
	name string
}

func (p *port) pins() []Pin {
	result := make([]Pin, 8)
	for i := range result {
		result[i] = &portpin{port: p, pinbit: uint8(i)}
	}
	return result
}

// Tx writes w to the output register one byte at a time, or reads len(r)
// samples of the input register. Only half duplex is supported so it is an
// error to pass both buffers at once.
func (p *port) Tx(w, r []byte) error {
	switch {
	case len(w) > 0 && len(r) > 0:
		return ErrHalfDuplex
	case len(w) > 0:
		for _, b := range w {
			if err := p.io.WriteByte(OutputRegister(p.bank), b); err != nil {
				return err
			}
		}
	case len(r) > 0:
		for i := range r {
			v, err := p.io.ReadByte(InputRegister(p.bank))
			if err != nil {
				return err
			}
			r[i] = v
		}
	}
	return nil
}

// Duplex returns that this is a half duplex connection.
func (p *port) Duplex() conn.Duplex {
	return conn.Half
}

func (p *port) String() string {
	return p.name
}

type portpin struct {
	port   *port
	pinbit uint8
}

func (p *portpin) String() string {
	return p.Name()
}

// Halt returns the pin to a high impedance input.
func (p *portpin) Halt() error {
	return p.In(gpio.Float, gpio.NoEdge)
}

func (p *portpin) Name() string {
	return p.port.name + "_" + strconv.Itoa(int(p.pinbit))
}

func (p *portpin) Number() int {
	return int(p.pinbit)
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown, gpio.PullUp:
		return ErrPullUnsupported
	case gpio.Float, gpio.PullNoChange:
	}
	// The INT output covers all pins; use an Interrupt for change detection.
	if edge != gpio.NoEdge {
		return ErrEdgeUnsupported
	}
	return intoInput(p.port.io, p.port.bank, p.pinbit)
}

// Read returns the input register bit of the pin. Bus errors are logged and
// reported as Low.
func (p *portpin) Read() gpio.Level {
	v, err := getBit(p.port.io, InputRegister(p.port.bank), p.pinbit)
	if err != nil {
		log.Printf("%s: %v", p, err)
		return gpio.Low
	}
	return gpio.Level(v)
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out sets the output level first and then switches the pin to output.
func (p *portpin) Out(l gpio.Level) error {
	return intoOutput(p.port.io, p.port.bank, p.pinbit, l)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrPWMUnsupported
}

func (p *portpin) Func() pin.Func {
	v, err := getBit(p.port.io, ConfigurationRegister(p.port.bank), p.pinbit)
	if err != nil {
		return pin.FuncNone
	}
	if v {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

// SetFunc switches the direction of the pin without touching the output
// level.
func (p *portpin) SetFunc(f pin.Func) error {
	var v bool
	switch f {
	case gpio.IN:
		v = true
	case gpio.OUT:
		v = false
	default:
		return fmt.Errorf("pca9535: function not supported: %s", f)
	}
	return p.port.io.Do(func(ex Expander) error {
		return setBit(ex, ConfigurationRegister(p.port.bank), p.pinbit, v)
	})
}

func (p *portpin) SetPolarityInverted(pol bool) error {
	return p.port.io.Do(func(ex Expander) error {
		return setBit(ex, PolarityInversionRegister(p.port.bank), p.pinbit, pol)
	})
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return getBit(p.port.io, PolarityInversionRegister(p.port.bank), p.pinbit)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ Pin = &portpin{}
var _ conn.Conn = &port{}
