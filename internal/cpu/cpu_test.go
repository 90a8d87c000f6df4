package cpu

import (
	"errors"
	"testing"

	"github.com/madnes/madnes/internal/errs"
)

// flatBus is a 64KiB flat address space, enough to exercise the CPU
// in isolation without a real bus/mapper/PPU behind it.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	// Point the reset vector somewhere harmless; tests override PC
	// directly via SetPC.
	bus.mem[vectorReset] = 0x00
	bus.mem[vectorReset+1] = 0x80
	c := New(bus)
	return c, bus
}

func load(bus *flatBus, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		bus.mem[addr+uint16(i)] = b
	}
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x8000)
	load(bus, 0x8000, 0xA9, 0x00) // LDA #$00

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
	if !c.flag(flagZero) {
		t.Errorf("zero flag not set after loading 0")
	}
	if c.flag(flagNegative) {
		t.Errorf("negative flag unexpectedly set")
	}
}

func TestINCZeroPageWraps(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x8000)
	load(bus, 0x8000, 0xE6, 0x10) // INC $10
	bus.mem[0x0010] = 0xFF

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if bus.mem[0x0010] != 0x00 {
		t.Errorf("INC wraparound: mem[0x10] = 0x%02X, want 0x00", bus.mem[0x0010])
	}
	if !c.flag(flagZero) {
		t.Errorf("zero flag not set after wraparound to 0")
	}
}

func TestBranchTakenAcrossPageCosts4Cycles(t *testing.T) {
	c, bus := newTestCPU()
	// Place BNE at 0x80FE so the relative target crosses into the next page.
	c.SetPC(0x80FE)
	load(bus, 0x80FE, 0xD0, 0x10) // BNE +16 -> target 0x8110
	c.setFlag(flagZero, false)    // ensure branch is taken

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4 (2 base + taken + page cross)", cycles)
	}
	if c.PC() != 0x8110 {
		t.Errorf("PC = 0x%04X, want 0x8110", c.PC())
	}
}

func TestBranchNotTakenCosts2Cycles(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x8000)
	load(bus, 0x8000, 0xD0, 0x10) // BNE +16
	c.setFlag(flagZero, true)     // branch not taken

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
	if c.PC() != 0x8002 {
		t.Errorf("PC = 0x%04X, want 0x8002", c.PC())
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x9000)
	load(bus, 0x9000, 0x6C, 0xFF, 0x80) // JMP ($80FF)
	bus.mem[0x80FF] = 0x34
	bus.mem[0x8100] = 0x56 // would be read if the bug were absent
	bus.mem[0x8000] = 0x12 // actually read: hardware wraps within the same page

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.PC() != 0x1234 {
		t.Errorf("PC = 0x%04X, want 0x1234 (page-wrap bug)", c.PC())
	}
}

func TestUnknownOpcodeReturnsError(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x8000)
	load(bus, 0x8000, 0x02) // unofficial/undecoded opcode

	_, err := c.Step()
	var unk *errs.UnknownOpcodeError
	if !errors.As(err, &unk) {
		t.Fatalf("err = %v, want *errs.UnknownOpcodeError", err)
	}
	if unk.Opcode != 0x02 || unk.PC != 0x8000 {
		t.Errorf("got %+v, want Opcode=0x02 PC=0x8000", unk)
	}
}

func TestNMIServicing(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[vectorNMI] = 0x00
	bus.mem[vectorNMI+1] = 0x90
	c.SetPC(0x8000)
	startSP := c.SP()

	c.TriggerNMI()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7", cycles)
	}
	if c.PC() != 0x9000 {
		t.Errorf("PC = 0x%04X, want 0x9000 (NMI vector)", c.PC())
	}
	if wantSP := startSP - 3; c.SP() != wantSP {
		t.Errorf("SP = 0x%02X, want 0x%02X (3 bytes pushed)", c.SP(), wantSP)
	}
	if !c.flag(flagInterrupt) {
		t.Errorf("interrupt-disable flag not set after NMI")
	}

	pushedP := bus.mem[stackPage|uint16(c.SP()+1)]
	if pushedP&flagBreak != 0 {
		t.Errorf("pushed P has Break set, want clear for hardware NMI")
	}
}

func TestBRKPushesPCPlusTwo(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[vectorIRQ] = 0x00
	bus.mem[vectorIRQ+1] = 0x90
	c.SetPC(0x8000)
	load(bus, 0x8000, 0x00, 0x00) // BRK, padding byte

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	lo := bus.mem[stackPage|uint16(c.SP()+2)]
	hi := bus.mem[stackPage|uint16(c.SP()+3)]
	pushed := uint16(hi)<<8 | uint16(lo)
	if pushed != 0x8002 {
		t.Errorf("pushed return address = 0x%04X, want 0x8002", pushed)
	}
}

func TestStackWrapsWithinPage1(t *testing.T) {
	c, bus := newTestCPU()
	c.sp = 0x00
	c.push(0x42)
	if c.sp != 0xFF {
		t.Errorf("SP = 0x%02X, want 0xFF after push wraps", c.sp)
	}
	if bus.mem[0x0100] != 0x42 {
		t.Errorf("pushed byte not found at 0x0100")
	}
}

func TestADCSetsOverflowOnSignedWrap(t *testing.T) {
	c, bus := newTestCPU()
	c.SetPC(0x8000)
	load(bus, 0x8000, 0xA9, 0x7F) // LDA #$7F
	c.Step()
	load(bus, 0x8002, 0x69, 0x01) // ADC #$01 -> 0x80, signed overflow
	c.Step()

	if c.a != 0x80 {
		t.Fatalf("A = 0x%02X, want 0x80", c.a)
	}
	if !c.flag(flagOverflow) {
		t.Errorf("overflow flag not set on positive+positive=negative")
	}
	if !c.flag(flagNegative) {
		t.Errorf("negative flag not set for 0x80")
	}
}
