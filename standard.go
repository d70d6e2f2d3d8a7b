// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

// Standard provides pin level access on top of any Expander.
//
// It does not track whether pins are configured as inputs or outputs. The
// caller has to configure a pin before using it, otherwise the device might
// not behave as expected.
//
// When Expander is a SyncExpander, such as the one returned by Dev.Expander,
// each read-modify-write runs as one Do call, so Standard values sharing it
// are safe for concurrent use. Over a plain Expander, Standard is not.
//
// All methods panic if pin is not in 0-7.
type Standard struct {
	Expander
}

// PinSetHigh drives pin high.
func (s Standard) PinSetHigh(bank Bank, pin uint8) error {
	return s.setBit(OutputRegister(bank), pin, true)
}

// PinSetLow drives pin low.
func (s Standard) PinSetLow(bank Bank, pin uint8) error {
	return s.setBit(OutputRegister(bank), pin, false)
}

// PinIsHigh reports whether the input register bit of pin is set. It works
// for pins configured as inputs as well as outputs.
//
// The result is the content of the input register, not the voltage at the
// pin: with inverted polarity a high voltage reads as false.
func (s Standard) PinIsHigh(bank Bank, pin uint8) (bool, error) {
	return s.getBit(InputRegister(bank), pin)
}

// PinIsLow is the negation of PinIsHigh.
func (s Standard) PinIsLow(bank Bank, pin uint8) (bool, error) {
	v, err := s.getBit(InputRegister(bank), pin)
	return !v, err
}

// PinIntoInput configures pin as an input.
func (s Standard) PinIntoInput(bank Bank, pin uint8) error {
	return s.setBit(ConfigurationRegister(bank), pin, true)
}

// PinIntoOutput configures pin as an output.
func (s Standard) PinIntoOutput(bank Bank, pin uint8) error {
	return s.setBit(ConfigurationRegister(bank), pin, false)
}

// PinInversePolarity inverts the input polarity of pin: a high voltage at the
// pin is reported as 0.
func (s Standard) PinInversePolarity(bank Bank, pin uint8) error {
	return s.setBit(PolarityInversionRegister(bank), pin, true)
}

// PinNormalPolarity restores the input polarity of pin: a high voltage at the
// pin is reported as 1.
func (s Standard) PinNormalPolarity(bank Bank, pin uint8) error {
	return s.setBit(PolarityInversionRegister(bank), pin, false)
}

// InversePolarity inverts the input polarity of all pins.
func (s Standard) InversePolarity() error {
	return s.WriteHalfword(PolarityInversionPort0, 0xFFFF)
}

// NormalPolarity restores the input polarity of all pins.
func (s Standard) NormalPolarity() error {
	return s.WriteHalfword(PolarityInversionPort0, 0x0000)
}

func (s Standard) setBit(register Register, pin uint8, value bool) error {
	if se, ok := s.Expander.(SyncExpander); ok {
		return se.Do(func(ex Expander) error {
			return setBit(ex, register, pin, value)
		})
	}
	return setBit(s.Expander, register, pin, value)
}

func (s Standard) getBit(register Register, pin uint8) (bool, error) {
	se, ok := s.Expander.(SyncExpander)
	if !ok {
		return getBit(s.Expander, register, pin)
	}
	var v bool
	err := se.Do(func(ex Expander) error {
		var err error
		v, err = getBit(ex, register, pin)
		return err
	})
	return v, err
}

// setBit sets or clears one bit of register with a read-modify-write.
func setBit(ex Expander, register Register, pin uint8, value bool) error {
	mustPin(pin)
	return updateBits(ex, register, 1<<pin, boolMask(value))
}

// updateBits replaces the bits of register selected by mask with those of
// value.
func updateBits(ex Expander, register Register, mask, value byte) error {
	v, err := ex.ReadByte(register)
	if err != nil {
		return err
	}
	return ex.WriteByte(register, v&^mask|value&mask)
}

func getBit(ex Expander, register Register, pin uint8) (bool, error) {
	mustPin(pin)
	v, err := ex.ReadByte(register)
	if err != nil {
		return false, err
	}
	return v&(1<<pin) != 0, nil
}

func boolMask(v bool) byte {
	if v {
		return 0xFF
	}
	return 0x00
}
