package mappers

import "github.com/madnes/madnes/internal/ines"

func init() {
	Register(0, newNROM)
}

// nrom implements Mapper 000 (NROM): no bank switching, no IRQ.
// 16 KiB PRG is mirrored into both halves of 0x8000-0xFFFF; 32 KiB
// PRG is mapped directly. CHR is either 8 KiB ROM or 8 KiB RAM.
type nrom struct {
	rom    *ines.ROM
	prgRAM [0x2000]uint8
}

func newNROM(rom *ines.ROM) Mapper {
	return &nrom{rom: rom}
}

func (m *nrom) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		off := int(addr - 0x8000)
		if len(m.rom.PRG) == 0x4000 {
			off %= 0x4000
		}
		return m.rom.PRG[off]
	}
	return 0
}

func (m *nrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = val
	}
	// Writes to 0x8000-0xFFFF are dropped; NROM has no registers.
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.rom.CHR[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	if m.rom.ChrIsRAM {
		m.rom.CHR[addr] = val
	}
}

func (m *nrom) MirrorMode() uint8 { return m.rom.MirrorMode() }
func (m *nrom) Reset()            {}
func (m *nrom) IRQState() bool    { return false }
func (m *nrom) ClearIRQ()         {}
func (m *nrom) Scanline()         {}
