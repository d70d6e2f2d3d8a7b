// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9535_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/GermanBionicSystems/pca9535"
	"github.com/GermanBionicSystems/pca9535/pca9535test"
	"periph.io/x/conn/v3/gpio"
)

const simAddr uint16 = 0x24

func newSimCached(t *testing.T) (*pca9535.Cached, *pca9535test.Device) {
	t.Helper()
	sim := pca9535test.New(simAddr)
	c, err := pca9535.NewCached(sim, simAddr, sim, false)
	if err != nil {
		t.Fatal(err)
	}
	return c, sim
}

func TestCached_polarityCoherency(t *testing.T) {
	c, sim := newSimCached(t)
	s := pca9535.Standard{Expander: c}
	sim.SetInput(pca9535.Bank0, 0, gpio.High)
	// INT is asserted, so this read latches the new level.
	if high, err := s.PinIsHigh(pca9535.Bank0, 0); err != nil || !high {
		t.Fatalf("PinIsHigh() = %t, %v", high, err)
	}
	if sim.Asserted() {
		t.Fatal("INT still asserted")
	}
	start := sim.Count()

	for _, f := range []func(pca9535.Bank, uint8) error{
		s.PinInversePolarity, s.PinNormalPolarity, s.PinInversePolarity,
	} {
		if err := f(pca9535.Bank0, 0); err != nil {
			t.Fatal(err)
		}
	}
	if high, err := s.PinIsHigh(pca9535.Bank0, 0); err != nil || high {
		t.Errorf("PinIsHigh() = %t, %v, want false", high, err)
	}
	if err := s.PinNormalPolarity(pca9535.Bank0, 0); err != nil {
		t.Fatal(err)
	}
	if high, err := s.PinIsHigh(pca9535.Bank0, 0); err != nil || !high {
		t.Errorf("PinIsHigh() = %t, %v, want true", high, err)
	}
	// Only the four polarity writes hit the bus.
	if n := sim.Count() - start; n != 4 {
		t.Errorf("%d transactions, want 4", n)
	}
}

func TestCached_refreshOnInterrupt(t *testing.T) {
	c, sim := newSimCached(t)
	start := sim.Count()
	for i := 0; i < 5; i++ {
		if _, err := c.ReadHalfword(pca9535.InputPort0); err != nil {
			t.Fatal(err)
		}
	}
	if n := sim.Count() - start; n != 0 {
		t.Errorf("%d transactions while INT is idle", n)
	}

	sim.SetInput(pca9535.Bank1, 6, gpio.High)
	if !sim.Asserted() {
		t.Fatal("INT not asserted")
	}
	v, err := c.ReadByte(pca9535.InputPort1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x40 {
		t.Errorf("ReadByte() = %#x, want 0x40", v)
	}
	if n := sim.Count() - start; n != 1 {
		t.Errorf("%d transactions, want 1", n)
	}
	// The read cleared INT; the value now comes from the cache.
	if v, err := c.ReadByte(pca9535.InputPort1); err != nil || v != 0x40 {
		t.Errorf("ReadByte() = %#x, %v", v, err)
	}
	if n := sim.Count() - start; n != 1 {
		t.Errorf("%d transactions, want 1", n)
	}
}

// TestCached_mirrorCoherency issues random writes and checks that every
// register read through the cache matches the device.
func TestCached_mirrorCoherency(t *testing.T) {
	c, sim := newSimCached(t)
	rnd := rand.New(rand.NewSource(1))
	regs := []pca9535.Register{
		pca9535.OutputPort0, pca9535.OutputPort1,
		pca9535.PolarityInversionPort0, pca9535.PolarityInversionPort1,
		pca9535.ConfigurationPort0, pca9535.ConfigurationPort1,
	}
	for i := 0; i < 500; i++ {
		r := regs[rnd.Intn(len(regs))]
		switch rnd.Intn(3) {
		case 0:
			if err := c.WriteByte(r, byte(rnd.Intn(256))); err != nil {
				t.Fatal(err)
			}
		case 1:
			if err := c.WriteHalfword(r, uint16(rnd.Intn(65536))); err != nil {
				t.Fatal(err)
			}
		case 2:
			sim.SetInput(pca9535.Bank(rnd.Intn(2)), uint8(rnd.Intn(8)), gpio.Level(rnd.Intn(2) == 1))
		}
		for _, r := range append(regs, pca9535.InputPort0, pca9535.InputPort1) {
			v, err := c.ReadByte(r)
			if err != nil {
				t.Fatal(err)
			}
			want := sim.Register(r)
			if r.IsInput() {
				// INT only tracks pins configured as inputs.
				m := sim.Register(pca9535.ConfigurationRegister(r.Bank()))
				v &= m
				want &= m
			}
			if v != want {
				t.Fatalf("step %d: %s = %#x, device has %#x", i, r, v, want)
			}
		}
	}
}

func TestOutputPin_concurrent(t *testing.T) {
	sim := pca9535test.New(simAddr)
	io := pca9535.NewIoExpander(pca9535.NewImmediate(sim, simAddr))
	var wg sync.WaitGroup
	for _, bank := range []pca9535.Bank{pca9535.Bank0, pca9535.Bank1} {
		for pin := uint8(0); pin < 8; pin++ {
			wg.Add(1)
			go func(bank pca9535.Bank, pin uint8) {
				defer wg.Done()
				p, err := pca9535.NewOutputPin(io, bank, pin, gpio.High)
				if err != nil {
					t.Error(err)
					return
				}
				for i := 0; i < 50; i++ {
					if err := p.SetHigh(); err != nil {
						t.Error(err)
					}
					if err := p.SetLow(); err != nil {
						t.Error(err)
					}
				}
			}(bank, pin)
		}
	}
	wg.Wait()
	for _, r := range []pca9535.Register{
		pca9535.OutputPort0, pca9535.OutputPort1,
		pca9535.ConfigurationPort0, pca9535.ConfigurationPort1,
	} {
		if v := sim.Register(r); v != 0x00 {
			t.Errorf("%s = %#x, want 0x00", r, v)
		}
	}
}

// slowDevice stretches every transaction so that unsynchronized
// read-modify-writes interleave.
type slowDevice struct {
	*pca9535test.Device
}

func (s slowDevice) Tx(addr uint16, w, r []byte) error {
	time.Sleep(50 * time.Microsecond)
	return s.Device.Tx(addr, w, r)
}

func TestStandard_concurrentOverDev(t *testing.T) {
	sim := pca9535test.New(0x23)
	d, err := pca9535.New(slowDevice{sim}, 0x23, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if err := d.Expander().WriteHalfword(pca9535.OutputPort0, 0x0000); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for pin := uint8(0); pin < 8; pin++ {
		wg.Add(1)
		go func(pin uint8) {
			defer wg.Done()
			s := pca9535.Standard{Expander: d.Expander()}
			if err := s.PinSetHigh(pca9535.Bank0, pin); err != nil {
				t.Error(err)
			}
			if err := s.PinIntoOutput(pca9535.Bank1, pin); err != nil {
				t.Error(err)
			}
		}(pin)
	}
	wg.Wait()
	if v := sim.Register(pca9535.OutputPort0); v != 0xFF {
		t.Errorf("OutputPort0 = %#x, want 0xff", v)
	}
	if v := sim.Register(pca9535.ConfigurationPort1); v != 0x00 {
		t.Errorf("ConfigurationPort1 = %#x, want 0x00", v)
	}
}
