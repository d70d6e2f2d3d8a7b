// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pca9535 provides a driver for the NXP PCA9535 and PCA9535C 16-bit
// I²C I/O expanders.
//
// The device has two banks of eight pins. Each pin can be configured as an
// input or an output, and inputs support polarity inversion. The PCA9535 has
// totem pole outputs, the PCA9535C open-drain outputs. The open-drain INT
// output is asserted when an input differs from the content of the input port
// register. The address is 0x20 plus the three hardware configurable bits
// A2-A0, so up to eight devices can share a bus.
//
// After power-on all pins are high impedance inputs.
//
// # Operation modes
//
// Immediate issues a bus transaction on every call and holds no state.
//
// Cached keeps a mirror of the eight registers and relies on the INT output
// of the device: input registers are only read from the bus while INT is
// asserted, everything else is served from the mirror. Using Cached requires
// wiring INT to a host pin.
//
// # Usage
//
// Standard offers bit level access to pins on top of either mode. The pins
// have to be configured by the caller before use.
//
// IoExpander makes an Expander safe for concurrent use. InputPin and
// OutputPin are created from it and can be handed to independent goroutines.
//
// Dev exposes the pins as gpio.PinIO, registered in gpioreg, and the banks as
// conn.Conn, for use with other periph drivers.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/PCA9535_PCA9535C.pdf
package pca9535
