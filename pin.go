// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"periph.io/x/conn/v3/gpio"
)

// InputPin is a single device pin configured as an input.
type InputPin struct {
	io   SyncExpander
	bank Bank
	pin  uint8
}

// OutputPin is a single device pin configured as an output.
type OutputPin struct {
	io   SyncExpander
	bank Bank
	pin  uint8
}

// NewInputPin configures pin of bank as an input.
//
// It panics if pin is not in 0-7.
func NewInputPin(io SyncExpander, bank Bank, pin uint8) (*InputPin, error) {
	mustPin(pin)
	if err := intoInput(io, bank, pin); err != nil {
		return nil, err
	}
	return &InputPin{io: io, bank: bank, pin: pin}, nil
}

// NewOutputPin configures pin of bank as an output driving level. The output
// level is written before the pin is switched to output, so the pin never
// drives a stale level.
//
// It panics if pin is not in 0-7.
func NewOutputPin(io SyncExpander, bank Bank, pin uint8, level gpio.Level) (*OutputPin, error) {
	mustPin(pin)
	if err := intoOutput(io, bank, pin, level); err != nil {
		return nil, err
	}
	return &OutputPin{io: io, bank: bank, pin: pin}, nil
}

// IsHigh reports whether the input register bit of the pin is set.
func (p *InputPin) IsHigh() (bool, error) {
	return getBit(p.io, InputRegister(p.bank), p.pin)
}

// IsLow reports whether the input register bit of the pin is cleared.
func (p *InputPin) IsLow() (bool, error) {
	v, err := p.IsHigh()
	return !v, err
}

// SetPolarity sets the input polarity of the pin. Pins have Normal polarity
// after power-on.
func (p *InputPin) SetPolarity(polarity Polarity) error {
	return p.io.Do(func(ex Expander) error {
		return setBit(ex, PolarityInversionRegister(p.bank), p.pin, polarity == Inverse)
	})
}

// IntoInput returns p unchanged.
func (p *InputPin) IntoInput() (*InputPin, error) {
	return p, nil
}

// IntoOutput switches the pin to an output driving level. p must not be used
// afterwards.
func (p *InputPin) IntoOutput(level gpio.Level) (*OutputPin, error) {
	if err := intoOutput(p.io, p.bank, p.pin, level); err != nil {
		return nil, err
	}
	return &OutputPin{io: p.io, bank: p.bank, pin: p.pin}, nil
}

// SetHigh drives the pin high.
func (p *OutputPin) SetHigh() error {
	return p.set(gpio.High)
}

// SetLow drives the pin low.
func (p *OutputPin) SetLow() error {
	return p.set(gpio.Low)
}

// IntoInput switches the pin to an input. p must not be used afterwards.
func (p *OutputPin) IntoInput() (*InputPin, error) {
	if err := intoInput(p.io, p.bank, p.pin); err != nil {
		return nil, err
	}
	return &InputPin{io: p.io, bank: p.bank, pin: p.pin}, nil
}

// IntoOutput drives level on the already configured output.
func (p *OutputPin) IntoOutput(level gpio.Level) (*OutputPin, error) {
	if err := p.set(level); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *OutputPin) set(level gpio.Level) error {
	return p.io.Do(func(ex Expander) error {
		return setBit(ex, OutputRegister(p.bank), p.pin, bool(level))
	})
}

func intoInput(io SyncExpander, bank Bank, pin uint8) error {
	return io.Do(func(ex Expander) error {
		return setBit(ex, ConfigurationRegister(bank), pin, true)
	})
}

// intoOutput writes level and then clears the configuration bit, in one
// exclusive section.
func intoOutput(io SyncExpander, bank Bank, pin uint8, level gpio.Level) error {
	return io.Do(func(ex Expander) error {
		if err := setBit(ex, OutputRegister(bank), pin, bool(level)); err != nil {
			return err
		}
		return setBit(ex, ConfigurationRegister(bank), pin, false)
	})
}
