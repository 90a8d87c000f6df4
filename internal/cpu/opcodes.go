package cpu

import "math/bits"

// addrMode enumerates the twelve addressing modes named in §4.1.1
// (Implied and Accumulator are kept as distinct internal constants for
// implementation convenience, matching the teacher's layout, even
// though the spec groups them as one category).
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

type opcode struct {
	mnemonic string
	mode     addrMode
	bytes    uint8
	cycles   uint8
	exec     func(*CPU, addrMode)
}

// operandAddress computes the effective address for mode, reading
// whatever operand bytes it needs starting at c.pc (which, mid
// instruction, always points at the first operand byte - the opcode
// itself was already consumed by Step). It reports whether the access
// crossed a 256-byte page, for the indexed modes that care.
//
// Two hardware quirks are reproduced here (§4.1.1): zero-page indexed
// addresses wrap within the zero page rather than leaving it, and the
// zero-page pointer used by IndirectX/IndirectY wraps within the zero
// page too.
func (c *CPU) operandAddress(mode addrMode) (addr uint16, crossed bool) {
	switch mode {
	case modeImmediate:
		return c.pc, false
	case modeZeroPage:
		return uint16(c.read(c.pc)), false
	case modeZeroPageX:
		return uint16(c.read(c.pc) + c.x), false
	case modeZeroPageY:
		return uint16(c.read(c.pc) + c.y), false
	case modeAbsolute:
		return c.read16(c.pc), false
	case modeAbsoluteX:
		base := c.read16(c.pc)
		addr = base + uint16(c.x)
		return addr, pageCrossed(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.pc)
		addr = base + uint16(c.y)
		return addr, pageCrossed(base, addr)
	case modeIndirect:
		ptr := c.read16(c.pc)
		return c.readIndirect(ptr), false
	case modeIndirectX:
		zp := c.read(c.pc) + c.x
		return c.readZPPointer(zp), false
	case modeIndirectY:
		zp := c.read(c.pc)
		base := c.readZPPointer(zp)
		addr = base + uint16(c.y)
		return addr, pageCrossed(base, addr)
	case modeRelative:
		off := int8(c.read(c.pc))
		return uint16(int32(c.pc) + 1 + int32(off)), false
	}
	panic("operandAddress called with a mode that carries no operand")
}

// readIndirect implements JMP's indirect addressing, including the
// famous page-wrap bug: if the pointer's low byte is 0xFF, the high
// byte is fetched from the start of the *same* page instead of
// crossing into the next one.
func (c *CPU) readIndirect(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

// readZPPointer reads a 16-bit pointer whose two bytes live in the
// zero page, wrapping within it (§4.1.1).
func (c *CPU) readZPPointer(zp uint8) uint16 {
	lo := uint16(c.read(uint16(zp)))
	hi := uint16(c.read(uint16(zp + 1)))
	return hi<<8 | lo
}

func (c *CPU) addPageCrossPenalty(crossed bool) {
	if crossed {
		c.extraCycles++
	}
}

// --- Load/store -------------------------------------------------

func (c *CPU) opLDA(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.a = c.read(addr)
	c.setZN(c.a)
}

func (c *CPU) opLDX(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.x = c.read(addr)
	c.setZN(c.x)
}

func (c *CPU) opLDY(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.y = c.read(addr)
	c.setZN(c.y)
}

func (c *CPU) opSTA(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.write(addr, c.a)
}

func (c *CPU) opSTX(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.write(addr, c.x)
}

func (c *CPU) opSTY(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.write(addr, c.y)
}

// --- Transfers ----------------------------------------------------

func (c *CPU) opTAX(addrMode) { c.x = c.a; c.setZN(c.x) }
func (c *CPU) opTAY(addrMode) { c.y = c.a; c.setZN(c.y) }
func (c *CPU) opTXA(addrMode) { c.a = c.x; c.setZN(c.a) }
func (c *CPU) opTYA(addrMode) { c.a = c.y; c.setZN(c.a) }
func (c *CPU) opTSX(addrMode) { c.x = c.sp; c.setZN(c.x) }
func (c *CPU) opTXS(addrMode) { c.sp = c.x }

// --- Stack ----------------------------------------------------

func (c *CPU) opPHA(addrMode) { c.push(c.a) }
func (c *CPU) opPHP(addrMode) { c.push(c.p | flagBreak | flagUnused) }
func (c *CPU) opPLA(addrMode) { c.a = c.pop(); c.setZN(c.a) }
func (c *CPU) opPLP(addrMode) {
	c.p = (c.pop() &^ flagBreak) | flagUnused
}

// --- Arithmetic ----------------------------------------------------

func (c *CPU) addWithCarry(operand uint8) {
	carry := uint16(0)
	if c.flag(flagCarry) {
		carry = 1
	}
	sum := uint16(c.a) + uint16(operand) + carry
	result := uint8(sum)

	c.setFlag(flagCarry, sum > 0xFF)
	c.setFlag(flagOverflow, (c.a^result)&(operand^result)&0x80 != 0)
	c.a = result
	c.setZN(c.a)
}

func (c *CPU) opADC(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.addWithCarry(c.read(addr))
}

func (c *CPU) opSBC(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	// SBC is ADC on the one's complement of the operand (§4.1 step 5).
	c.addWithCarry(^c.read(addr))
}

func (c *CPU) compare(a, b uint8) {
	c.setZN(a - b)
	c.setFlag(flagCarry, a >= b)
}

func (c *CPU) opCMP(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.compare(c.a, c.read(addr))
}

func (c *CPU) opCPX(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.compare(c.x, c.read(addr))
}

func (c *CPU) opCPY(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.compare(c.y, c.read(addr))
}

// --- Increment/decrement ----------------------------------------------------

func (c *CPU) opINC(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) opDEC(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) opINX(addrMode) { c.x++; c.setZN(c.x) }
func (c *CPU) opINY(addrMode) { c.y++; c.setZN(c.y) }
func (c *CPU) opDEX(addrMode) { c.x--; c.setZN(c.x) }
func (c *CPU) opDEY(addrMode) { c.y--; c.setZN(c.y) }

// --- Logical ----------------------------------------------------

func (c *CPU) opAND(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.a &= c.read(addr)
	c.setZN(c.a)
}

func (c *CPU) opORA(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.a |= c.read(addr)
	c.setZN(c.a)
}

func (c *CPU) opEOR(mode addrMode) {
	addr, crossed := c.operandAddress(mode)
	c.addPageCrossPenalty(crossed)
	c.a ^= c.read(addr)
	c.setZN(c.a)
}

func (c *CPU) opBIT(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	v := c.read(addr)
	c.setFlag(flagZero, v&c.a == 0)
	c.setFlag(flagOverflow, v&flagOverflow != 0)
	c.setFlag(flagNegative, v&flagNegative != 0)
}

// --- Shifts/rotates ----------------------------------------------------

func (c *CPU) readModifyWrite(mode addrMode, f func(uint8) uint8) {
	if mode == modeAccumulator {
		c.a = f(c.a)
		return
	}
	addr, _ := c.operandAddress(mode)
	c.write(addr, f(c.read(addr)))
}

func (c *CPU) opASL(mode addrMode) {
	c.readModifyWrite(mode, func(v uint8) uint8 {
		c.setFlag(flagCarry, v&0x80 != 0)
		r := v << 1
		c.setZN(r)
		return r
	})
}

func (c *CPU) opLSR(mode addrMode) {
	c.readModifyWrite(mode, func(v uint8) uint8 {
		c.setFlag(flagCarry, v&0x01 != 0)
		r := v >> 1
		c.setZN(r)
		return r
	})
}

func (c *CPU) opROL(mode addrMode) {
	c.readModifyWrite(mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.flag(flagCarry) {
			carryIn = 1
		}
		c.setFlag(flagCarry, v&0x80 != 0)
		r := (v << 1) | carryIn
		c.setZN(r)
		return r
	})
}

func (c *CPU) opROR(mode addrMode) {
	c.readModifyWrite(mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.flag(flagCarry) {
			carryIn = 1 << 7
		}
		c.setFlag(flagCarry, v&0x01 != 0)
		r := bits.RotateLeft8(v, -1)&0x7F | carryIn
		c.setZN(r)
		return r
	})
}

// --- Jumps/calls ----------------------------------------------------

func (c *CPU) opJMP(mode addrMode) {
	addr, _ := c.operandAddress(mode)
	c.pc = addr
}

func (c *CPU) opJSR(addrMode) {
	// The operand is the next two bytes; push the address of the last
	// byte of the JSR instruction (pc+1), not the instruction after.
	addr := c.read16(c.pc)
	c.pushAddr(c.pc + 1)
	c.pc = addr
}

func (c *CPU) opRTS(addrMode) {
	c.pc = c.popAddr() + 1
}

func (c *CPU) opRTI(addrMode) {
	c.p = (c.pop() &^ flagBreak) | flagUnused
	c.pc = c.popAddr()
}

func (c *CPU) opBRK(addrMode) {
	// BRK's operand byte is a padding byte the assembler reserves for
	// a break-reason code; the pushed return address is PC+2 (current
	// PC, already past the opcode, plus that padding byte) per the
	// nestest-verified resolution of the §9 open question.
	c.pushAddr(c.pc + 1)
	c.push(c.p | flagBreak | flagUnused)
	c.setFlag(flagInterrupt, true)
	c.pc = c.read16(vectorIRQ)
}

// --- Branches ----------------------------------------------------

func (c *CPU) branch(take bool) {
	addr, _ := c.operandAddress(modeRelative)
	if !take {
		c.pc++ // skip over the unused relative offset byte
		return
	}

	// Page-cross penalty is relative to the branch opcode's own address,
	// not the post-operand PC - a target that shares a page with the
	// following instruction but not with the branch itself still costs
	// the extra cycle (§8 scenario 3).
	from := c.pc - 1
	c.extraCycles++ // taken branch
	if pageCrossed(from, addr) {
		c.extraCycles++
	}
	c.pc = addr
}

func (c *CPU) opBCC(addrMode) { c.branch(!c.flag(flagCarry)) }
func (c *CPU) opBCS(addrMode) { c.branch(c.flag(flagCarry)) }
func (c *CPU) opBEQ(addrMode) { c.branch(c.flag(flagZero)) }
func (c *CPU) opBNE(addrMode) { c.branch(!c.flag(flagZero)) }
func (c *CPU) opBMI(addrMode) { c.branch(c.flag(flagNegative)) }
func (c *CPU) opBPL(addrMode) { c.branch(!c.flag(flagNegative)) }
func (c *CPU) opBVC(addrMode) { c.branch(!c.flag(flagOverflow)) }
func (c *CPU) opBVS(addrMode) { c.branch(c.flag(flagOverflow)) }

// --- Flags ----------------------------------------------------

func (c *CPU) opCLC(addrMode) { c.setFlag(flagCarry, false) }
func (c *CPU) opSEC(addrMode) { c.setFlag(flagCarry, true) }
func (c *CPU) opCLI(addrMode) { c.setFlag(flagInterrupt, false) }
func (c *CPU) opSEI(addrMode) { c.setFlag(flagInterrupt, true) }
func (c *CPU) opCLD(addrMode) { c.setFlag(flagDecimal, false) }
func (c *CPU) opSED(addrMode) { c.setFlag(flagDecimal, true) }
func (c *CPU) opCLV(addrMode) { c.setFlag(flagOverflow, false) }

func (c *CPU) opNOP(addrMode) {}

// decodeTable is the 256-entry, compile-time-literal decode table the
// §9 design note calls for: an array indexed directly by opcode byte,
// nil where the byte doesn't name an official instruction. Only
// official opcodes are populated (§4.1.2); undecoded bytes fail per
// §4.1 step 3.
var decodeTable = [256]*opcode{
	0x69: {"ADC", modeImmediate, 2, 2, (*CPU).opADC},
	0x65: {"ADC", modeZeroPage, 2, 3, (*CPU).opADC},
	0x75: {"ADC", modeZeroPageX, 2, 4, (*CPU).opADC},
	0x6D: {"ADC", modeAbsolute, 3, 4, (*CPU).opADC},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, (*CPU).opADC},
	0x79: {"ADC", modeAbsoluteY, 3, 4, (*CPU).opADC},
	0x61: {"ADC", modeIndirectX, 2, 6, (*CPU).opADC},
	0x71: {"ADC", modeIndirectY, 2, 5, (*CPU).opADC},

	0x29: {"AND", modeImmediate, 2, 2, (*CPU).opAND},
	0x25: {"AND", modeZeroPage, 2, 3, (*CPU).opAND},
	0x35: {"AND", modeZeroPageX, 2, 4, (*CPU).opAND},
	0x2D: {"AND", modeAbsolute, 3, 4, (*CPU).opAND},
	0x3D: {"AND", modeAbsoluteX, 3, 4, (*CPU).opAND},
	0x39: {"AND", modeAbsoluteY, 3, 4, (*CPU).opAND},
	0x21: {"AND", modeIndirectX, 2, 6, (*CPU).opAND},
	0x31: {"AND", modeIndirectY, 2, 5, (*CPU).opAND},

	0x0A: {"ASL", modeAccumulator, 1, 2, (*CPU).opASL},
	0x06: {"ASL", modeZeroPage, 2, 5, (*CPU).opASL},
	0x16: {"ASL", modeZeroPageX, 2, 6, (*CPU).opASL},
	0x0E: {"ASL", modeAbsolute, 3, 6, (*CPU).opASL},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, (*CPU).opASL},

	0x90: {"BCC", modeRelative, 2, 2, (*CPU).opBCC},
	0xB0: {"BCS", modeRelative, 2, 2, (*CPU).opBCS},
	0xF0: {"BEQ", modeRelative, 2, 2, (*CPU).opBEQ},
	0xD0: {"BNE", modeRelative, 2, 2, (*CPU).opBNE},
	0x30: {"BMI", modeRelative, 2, 2, (*CPU).opBMI},
	0x10: {"BPL", modeRelative, 2, 2, (*CPU).opBPL},
	0x50: {"BVC", modeRelative, 2, 2, (*CPU).opBVC},
	0x70: {"BVS", modeRelative, 2, 2, (*CPU).opBVS},

	0x24: {"BIT", modeZeroPage, 2, 3, (*CPU).opBIT},
	0x2C: {"BIT", modeAbsolute, 3, 4, (*CPU).opBIT},

	0x00: {"BRK", modeImplied, 1, 7, (*CPU).opBRK},

	0x18: {"CLC", modeImplied, 1, 2, (*CPU).opCLC},
	0xD8: {"CLD", modeImplied, 1, 2, (*CPU).opCLD},
	0x58: {"CLI", modeImplied, 1, 2, (*CPU).opCLI},
	0xB8: {"CLV", modeImplied, 1, 2, (*CPU).opCLV},
	0x38: {"SEC", modeImplied, 1, 2, (*CPU).opSEC},
	0xF8: {"SED", modeImplied, 1, 2, (*CPU).opSED},
	0x78: {"SEI", modeImplied, 1, 2, (*CPU).opSEI},

	0xC9: {"CMP", modeImmediate, 2, 2, (*CPU).opCMP},
	0xC5: {"CMP", modeZeroPage, 2, 3, (*CPU).opCMP},
	0xD5: {"CMP", modeZeroPageX, 2, 4, (*CPU).opCMP},
	0xCD: {"CMP", modeAbsolute, 3, 4, (*CPU).opCMP},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, (*CPU).opCMP},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, (*CPU).opCMP},
	0xC1: {"CMP", modeIndirectX, 2, 6, (*CPU).opCMP},
	0xD1: {"CMP", modeIndirectY, 2, 5, (*CPU).opCMP},

	0xE0: {"CPX", modeImmediate, 2, 2, (*CPU).opCPX},
	0xE4: {"CPX", modeZeroPage, 2, 3, (*CPU).opCPX},
	0xEC: {"CPX", modeAbsolute, 3, 4, (*CPU).opCPX},

	0xC0: {"CPY", modeImmediate, 2, 2, (*CPU).opCPY},
	0xC4: {"CPY", modeZeroPage, 2, 3, (*CPU).opCPY},
	0xCC: {"CPY", modeAbsolute, 3, 4, (*CPU).opCPY},

	0xC6: {"DEC", modeZeroPage, 2, 5, (*CPU).opDEC},
	0xD6: {"DEC", modeZeroPageX, 2, 6, (*CPU).opDEC},
	0xCE: {"DEC", modeAbsolute, 3, 6, (*CPU).opDEC},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, (*CPU).opDEC},
	0xCA: {"DEX", modeImplied, 1, 2, (*CPU).opDEX},
	0x88: {"DEY", modeImplied, 1, 2, (*CPU).opDEY},

	0x49: {"EOR", modeImmediate, 2, 2, (*CPU).opEOR},
	0x45: {"EOR", modeZeroPage, 2, 3, (*CPU).opEOR},
	0x55: {"EOR", modeZeroPageX, 2, 4, (*CPU).opEOR},
	0x4D: {"EOR", modeAbsolute, 3, 4, (*CPU).opEOR},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, (*CPU).opEOR},
	0x59: {"EOR", modeAbsoluteY, 3, 4, (*CPU).opEOR},
	0x41: {"EOR", modeIndirectX, 2, 6, (*CPU).opEOR},
	0x51: {"EOR", modeIndirectY, 2, 5, (*CPU).opEOR},

	0xE6: {"INC", modeZeroPage, 2, 5, (*CPU).opINC},
	0xF6: {"INC", modeZeroPageX, 2, 6, (*CPU).opINC},
	0xEE: {"INC", modeAbsolute, 3, 6, (*CPU).opINC},
	0xFE: {"INC", modeAbsoluteX, 3, 7, (*CPU).opINC},
	0xE8: {"INX", modeImplied, 1, 2, (*CPU).opINX},
	0xC8: {"INY", modeImplied, 1, 2, (*CPU).opINY},

	0x4C: {"JMP", modeAbsolute, 3, 3, (*CPU).opJMP},
	0x6C: {"JMP", modeIndirect, 3, 5, (*CPU).opJMP},
	0x20: {"JSR", modeAbsolute, 3, 6, (*CPU).opJSR},

	0xA9: {"LDA", modeImmediate, 2, 2, (*CPU).opLDA},
	0xA5: {"LDA", modeZeroPage, 2, 3, (*CPU).opLDA},
	0xB5: {"LDA", modeZeroPageX, 2, 4, (*CPU).opLDA},
	0xAD: {"LDA", modeAbsolute, 3, 4, (*CPU).opLDA},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, (*CPU).opLDA},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, (*CPU).opLDA},
	0xA1: {"LDA", modeIndirectX, 2, 6, (*CPU).opLDA},
	0xB1: {"LDA", modeIndirectY, 2, 5, (*CPU).opLDA},

	0xA2: {"LDX", modeImmediate, 2, 2, (*CPU).opLDX},
	0xA6: {"LDX", modeZeroPage, 2, 3, (*CPU).opLDX},
	0xB6: {"LDX", modeZeroPageY, 2, 4, (*CPU).opLDX},
	0xAE: {"LDX", modeAbsolute, 3, 4, (*CPU).opLDX},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, (*CPU).opLDX},

	0xA0: {"LDY", modeImmediate, 2, 2, (*CPU).opLDY},
	0xA4: {"LDY", modeZeroPage, 2, 3, (*CPU).opLDY},
	0xB4: {"LDY", modeZeroPageX, 2, 4, (*CPU).opLDY},
	0xAC: {"LDY", modeAbsolute, 3, 4, (*CPU).opLDY},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, (*CPU).opLDY},

	0x4A: {"LSR", modeAccumulator, 1, 2, (*CPU).opLSR},
	0x46: {"LSR", modeZeroPage, 2, 5, (*CPU).opLSR},
	0x56: {"LSR", modeZeroPageX, 2, 6, (*CPU).opLSR},
	0x4E: {"LSR", modeAbsolute, 3, 6, (*CPU).opLSR},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, (*CPU).opLSR},

	0xEA: {"NOP", modeImplied, 1, 2, (*CPU).opNOP},

	0x09: {"ORA", modeImmediate, 2, 2, (*CPU).opORA},
	0x05: {"ORA", modeZeroPage, 2, 3, (*CPU).opORA},
	0x15: {"ORA", modeZeroPageX, 2, 4, (*CPU).opORA},
	0x0D: {"ORA", modeAbsolute, 3, 4, (*CPU).opORA},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, (*CPU).opORA},
	0x19: {"ORA", modeAbsoluteY, 3, 4, (*CPU).opORA},
	0x01: {"ORA", modeIndirectX, 2, 6, (*CPU).opORA},
	0x11: {"ORA", modeIndirectY, 2, 5, (*CPU).opORA},

	0x48: {"PHA", modeImplied, 1, 3, (*CPU).opPHA},
	0x08: {"PHP", modeImplied, 1, 3, (*CPU).opPHP},
	0x68: {"PLA", modeImplied, 1, 4, (*CPU).opPLA},
	0x28: {"PLP", modeImplied, 1, 4, (*CPU).opPLP},

	0x2A: {"ROL", modeAccumulator, 1, 2, (*CPU).opROL},
	0x26: {"ROL", modeZeroPage, 2, 5, (*CPU).opROL},
	0x36: {"ROL", modeZeroPageX, 2, 6, (*CPU).opROL},
	0x2E: {"ROL", modeAbsolute, 3, 6, (*CPU).opROL},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, (*CPU).opROL},

	0x6A: {"ROR", modeAccumulator, 1, 2, (*CPU).opROR},
	0x66: {"ROR", modeZeroPage, 2, 5, (*CPU).opROR},
	0x76: {"ROR", modeZeroPageX, 2, 6, (*CPU).opROR},
	0x6E: {"ROR", modeAbsolute, 3, 6, (*CPU).opROR},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, (*CPU).opROR},

	0x40: {"RTI", modeImplied, 1, 6, (*CPU).opRTI},
	0x60: {"RTS", modeImplied, 1, 6, (*CPU).opRTS},

	0xE9: {"SBC", modeImmediate, 2, 2, (*CPU).opSBC},
	0xE5: {"SBC", modeZeroPage, 2, 3, (*CPU).opSBC},
	0xF5: {"SBC", modeZeroPageX, 2, 4, (*CPU).opSBC},
	0xED: {"SBC", modeAbsolute, 3, 4, (*CPU).opSBC},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, (*CPU).opSBC},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, (*CPU).opSBC},
	0xE1: {"SBC", modeIndirectX, 2, 6, (*CPU).opSBC},
	0xF1: {"SBC", modeIndirectY, 2, 5, (*CPU).opSBC},

	0x85: {"STA", modeZeroPage, 2, 3, (*CPU).opSTA},
	0x95: {"STA", modeZeroPageX, 2, 4, (*CPU).opSTA},
	0x8D: {"STA", modeAbsolute, 3, 4, (*CPU).opSTA},
	0x9D: {"STA", modeAbsoluteX, 3, 5, (*CPU).opSTA},
	0x99: {"STA", modeAbsoluteY, 3, 5, (*CPU).opSTA},
	0x81: {"STA", modeIndirectX, 2, 6, (*CPU).opSTA},
	0x91: {"STA", modeIndirectY, 2, 6, (*CPU).opSTA},

	0x86: {"STX", modeZeroPage, 2, 3, (*CPU).opSTX},
	0x96: {"STX", modeZeroPageY, 2, 4, (*CPU).opSTX},
	0x8E: {"STX", modeAbsolute, 3, 4, (*CPU).opSTX},

	0x84: {"STY", modeZeroPage, 2, 3, (*CPU).opSTY},
	0x94: {"STY", modeZeroPageX, 2, 4, (*CPU).opSTY},
	0x8C: {"STY", modeAbsolute, 3, 4, (*CPU).opSTY},

	0xAA: {"TAX", modeImplied, 1, 2, (*CPU).opTAX},
	0xA8: {"TAY", modeImplied, 1, 2, (*CPU).opTAY},
	0xBA: {"TSX", modeImplied, 1, 2, (*CPU).opTSX},
	0x8A: {"TXA", modeImplied, 1, 2, (*CPU).opTXA},
	0x9A: {"TXS", modeImplied, 1, 2, (*CPU).opTXS},
	0x98: {"TYA", modeImplied, 1, 2, (*CPU).opTYA},
}
