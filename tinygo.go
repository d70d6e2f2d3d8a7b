// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// TinyGoBus returns an i2c.Bus issuing its transactions on a TinyGo I²C bus,
// so the driver can be used on microcontrollers:
//
//	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
//	e := pca9535.NewImmediate(pca9535.TinyGoBus(machine.I2C0), 0x20)
//
// The bus speed is set by the TinyGo bus configuration; SetSpeed is
// unsupported.
func TinyGoBus(b drivers.I2C) i2c.Bus {
	return &tinyGoBus{b: b}
}

type tinyGoBus struct {
	b drivers.I2C
}

func (t *tinyGoBus) String() string {
	return "tinygo-i2c"
}

func (t *tinyGoBus) Tx(addr uint16, w, r []byte) error {
	return t.b.Tx(addr, w, r)
}

func (t *tinyGoBus) SetSpeed(f physic.Frequency) error {
	return ErrSetSpeedUnsupported
}
