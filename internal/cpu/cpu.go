// Package cpu implements the MOS 6502 interpreter at the heart of the
// NES: instruction decode, addressing-mode evaluation, flag
// arithmetic, interrupt servicing, and cycle accounting (§4.1).
package cpu

import (
	"fmt"

	"github.com/madnes/madnes/internal/errs"
)

// Bus is the single choke point the CPU reads and writes through.
// The orchestrator owns the real bus (RAM, PPU registers, APU
// registers, mapper); the CPU never touches any of those directly
// (§9's CPU/bus coupling design note).
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// 6502 interrupt and reset vectors.
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE // BRK shares this vector
)

// Processor status flags (NV-BDIZC), named per nesdev's convention.
const (
	flagCarry     uint8 = 1 << 0
	flagZero      uint8 = 1 << 1
	flagInterrupt uint8 = 1 << 2
	flagDecimal   uint8 = 1 << 3
	flagBreak     uint8 = 1 << 4
	flagUnused    uint8 = 1 << 5
	flagOverflow  uint8 = 1 << 6
	flagNegative  uint8 = 1 << 7
)

const stackPage = 0x0100

// CPU holds the full 6502 register file plus cycle/instruction
// counters. All state lives here; the bus is the only external
// collaborator.
type CPU struct {
	a, x, y uint8
	pc      uint16
	sp      uint8
	p       uint8

	bus Bus

	cycles       uint64
	instructions uint64

	pendingNMI  bool
	irqAsserted bool

	// extraCycles and stolenCycles accumulate, per-instruction, the
	// branch/page-cross penalties and DMA/DMC cycle theft; Step()
	// folds them into its returned cycle count and clears them.
	extraCycles  int
	stolenCycles int
}

// New constructs a CPU wired to bus and performs the power-up reset
// sequence (§3 Lifecycle).
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset re-reads the reset vector, sets SP=0xFD, and sets
// P = InterruptDisable | Unused, per §3's Lifecycle.
func (c *CPU) Reset() {
	c.sp = 0xFD
	c.p = flagInterrupt | flagUnused
	c.pc = c.read16(vectorReset)
	c.pendingNMI = false
	c.irqAsserted = false
}

// TriggerNMI latches a non-maskable interrupt for servicing at the
// next instruction boundary (§4.1).
func (c *CPU) TriggerNMI() {
	c.pendingNMI = true
}

// SetIRQ sets the level of the maskable interrupt line. Mappers and
// the APU frame sequencer/DMC hold this asserted until their
// condition is acknowledged.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqAsserted = asserted
}

// StealCycles accounts for cycles consumed by something other than
// instruction execution - OAM DMA and DMC sample fetches - so the
// orchestrator's PPU/APU stepping stays phase-locked to the CPU
// (§4.2, §4.4.4, §9's DMC DMA open question).
func (c *CPU) StealCycles(n int) {
	c.stolenCycles += n
}

// PC, A, X, Y, SP, P, Cycles, and Instructions expose register state
// for tests, instruction tracing, and the (out-of-core) debug
// overlay.
func (c *CPU) PC() uint16          { return c.pc }
func (c *CPU) A() uint8            { return c.a }
func (c *CPU) X() uint8            { return c.x }
func (c *CPU) Y() uint8            { return c.y }
func (c *CPU) SP() uint8           { return c.sp }
func (c *CPU) P() uint8            { return c.p }
func (c *CPU) Cycles() uint64      { return c.cycles }
func (c *CPU) Instructions() uint64 { return c.instructions }

// SetPC is exposed for tests that need to place execution at a known
// address (e.g. nestest-style automated ROM entry points).
func (c *CPU) SetPC(pc uint16) { c.pc = pc }

func (c *CPU) read(addr uint16) uint8       { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, v uint8)   { c.bus.Write(addr, v) }

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) stackAddr() uint16 { return stackPage | uint16(c.sp) }

func (c *CPU) push(v uint8) {
	c.write(c.stackAddr(), v)
	c.sp--
}

func (c *CPU) pop() uint8 {
	c.sp++
	return c.read(c.stackAddr())
}

func (c *CPU) pushAddr(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr))
}

func (c *CPU) popAddr() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.p |= mask
	} else {
		c.p &^= mask
	}
}

func (c *CPU) flag(mask uint8) bool { return c.p&mask != 0 }

func (c *CPU) setZN(v uint8) {
	c.setFlag(flagZero, v == 0)
	c.setFlag(flagNegative, v&0x80 != 0)
}

// pageCrossed reports whether a and b fall in different 256-byte
// pages - the condition that adds a cycle to indexed addressing modes
// and taken branches.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// Step executes exactly one instruction (after servicing any latched
// NMI or asserted, unmasked IRQ first) and returns the number of
// cycles it consumed, folding in branch/page-cross penalties and any
// cycles stolen by OAM DMA or DMC fetches since the last Step. An
// undecodable opcode returns errs.UnknownOpcodeError and consumes no
// cycles; the core does not treat it as NOP (§4.1 step 3).
func (c *CPU) Step() (int, error) {
	if c.pendingNMI {
		c.pendingNMI = false
		c.serviceInterrupt(vectorNMI, false)
		return c.drainStolen(7), nil
	}
	if c.irqAsserted && !c.flag(flagInterrupt) {
		c.serviceInterrupt(vectorIRQ, false)
		return c.drainStolen(7), nil
	}

	opcodeByte := c.read(c.pc)
	pc := c.pc
	c.pc++

	op := decodeTable[opcodeByte]
	if op == nil {
		return 0, &errs.UnknownOpcodeError{PC: pc, Opcode: opcodeByte}
	}

	c.extraCycles = 0
	opStart := c.pc
	op.exec(c, op.mode)
	if c.pc == opStart {
		c.pc += uint16(op.bytes) - 1
	}

	c.instructions++
	total := int(op.cycles) + c.extraCycles
	c.cycles += uint64(total)
	return c.drainStolen(total), nil
}

func (c *CPU) drainStolen(cycles int) int {
	cycles += c.stolenCycles
	c.stolenCycles = 0
	return cycles
}

// serviceInterrupt pushes PC (high, then low), then P, loads PC from
// vector, and sets the interrupt-disable flag (§4.1's "Interrupt
// sequencing"). brk distinguishes BRK (which sets the pushed Break
// flag) from hardware NMI/IRQ (which clear it); Unused is always set
// on push.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.pushAddr(c.pc)
	pushed := c.p | flagUnused
	if brk {
		pushed |= flagBreak
	} else {
		pushed &^= flagBreak
	}
	c.push(pushed)
	c.setFlag(flagInterrupt, true)
	c.pc = c.read16(vector)
}

func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d",
		c.a, c.x, c.y, c.p, c.sp, c.pc, c.cycles)
}
