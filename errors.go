// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import "errors"

// WriteError is returned when a write-only bus transaction failed. Err is the
// error of the underlying bus.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "pca9535: write failed: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteReadError is returned when a combined write-then-read bus transaction
// failed. Err is the error of the underlying bus.
type WriteReadError struct {
	Err error
}

func (e *WriteReadError) Error() string {
	return "pca9535: write-read failed: " + e.Err.Error()
}

func (e *WriteReadError) Unwrap() error {
	return e.Err
}

var (
	ErrPullUnsupported = errors.New("pca9535: pull-up/pull-down is not supported")
	ErrEdgeUnsupported = errors.New("pca9535: edge detection is not supported")
	ErrPWMUnsupported  = errors.New("pca9535: PWM is not supported")
	ErrHalfDuplex      = errors.New("pca9535: only conn.Half duplex is supported")

	// ErrSetSpeedUnsupported is returned by the SetSpeed method of the bus
	// returned by TinyGoBus. Configure the TinyGo bus instead.
	ErrSetSpeedUnsupported = errors.New("pca9535: SetSpeed is not supported on a TinyGo bus")
)
