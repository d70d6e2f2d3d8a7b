// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

const addr uint16 = 0x20

// errBus is an i2c.Bus failing every transaction.
type errBus struct {
	i2ctest.Playback
	err error
}

func (b *errBus) Tx(addr uint16, w, r []byte) error {
	return b.err
}

func TestNewImmediate_addresses(t *testing.T) {
	for a := MinAddress; a <= MaxAddress; a++ {
		if e := NewImmediate(&i2ctest.Playback{}, a); e == nil {
			t.Fatalf("NewImmediate(%d) returned nil", a)
		}
	}
	mustPanic(t, func() { NewImmediate(&i2ctest.Playback{}, 31) })
	mustPanic(t, func() { NewImmediate(&i2ctest.Playback{}, 40) })
}

func TestImmediate_byte(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: addr, W: []byte{0x04, 0xCD}},
			{Addr: addr, W: []byte{0x04}, R: []byte{0xCD}},
		},
		DontPanic: true,
	}
	e := NewImmediate(pb, addr)
	if err := e.WriteByte(PolarityInversionPort0, 0xCD); err != nil {
		t.Fatal(err)
	}
	v, err := e.ReadByte(PolarityInversionPort0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xCD {
		t.Errorf("ReadByte() = %#x, want 0xcd", v)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestImmediate_halfword(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// The high byte goes to the named register.
			{Addr: addr, W: []byte{0x02, 0x4A, 0x07}},
			{Addr: addr, W: []byte{0x03, 0x4A, 0x07}},
			{Addr: addr, W: []byte{0x03}, R: []byte{0x4A, 0x07}},
		},
		DontPanic: true,
	}
	e := NewImmediate(pb, addr)
	if err := e.WriteHalfword(OutputPort0, 0x4A07); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteHalfword(OutputPort1, 0x4A07); err != nil {
		t.Fatal(err)
	}
	v, err := e.ReadHalfword(OutputPort1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x4A07 {
		t.Errorf("ReadHalfword() = %#x, want 0x4a07", v)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestImmediate_noCaching(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: addr, W: []byte{0x00}, R: []byte{0x01}},
			{Addr: addr, W: []byte{0x00}, R: []byte{0x02}},
		},
		DontPanic: true,
	}
	e := NewImmediate(pb, addr)
	for _, want := range []byte{0x01, 0x02} {
		v, err := e.ReadByte(InputPort0)
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("ReadByte() = %#x, want %#x", v, want)
		}
	}
	if pb.Count != 2 {
		t.Errorf("expected 2 transactions, got %d", pb.Count)
	}
}

func TestImmediate_errors(t *testing.T) {
	busErr := errors.New("nack")
	e := NewImmediate(&errBus{err: busErr}, addr)

	var we *WriteError
	if err := e.WriteByte(OutputPort0, 0); !errors.As(err, &we) || !errors.Is(err, busErr) {
		t.Errorf("WriteByte() = %v, want WriteError", err)
	}
	if err := e.WriteHalfword(OutputPort0, 0); !errors.As(err, &we) {
		t.Errorf("WriteHalfword() = %v, want WriteError", err)
	}
	var wre *WriteReadError
	if _, err := e.ReadByte(OutputPort0); !errors.As(err, &wre) || !errors.Is(err, busErr) {
		t.Errorf("ReadByte() = %v, want WriteReadError", err)
	}
	if _, err := e.ReadHalfword(OutputPort0); !errors.As(err, &wre) {
		t.Errorf("ReadHalfword() = %v, want WriteReadError", err)
	}
	if s := (&WriteError{Err: busErr}).Error(); s != "pca9535: write failed: nack" {
		t.Errorf("Error() = %q", s)
	}
}

func TestImmediate_String(t *testing.T) {
	if s := NewImmediate(&i2ctest.Playback{}, 0x27).String(); s != "PCA9535_27" {
		t.Errorf("String() = %q", s)
	}
}
