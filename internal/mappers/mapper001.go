package mappers

import "github.com/madnes/madnes/internal/ines"

func init() {
	Register(1, newMMC1)
}

// MMC1 mirroring modes, as stored in the low 2 bits of the control
// register.
const (
	mmc1MirrorSingleLower = iota
	mmc1MirrorSingleUpper
	mmc1MirrorVertical
	mmc1MirrorHorizontal
)

// mmc1 implements Mapper 001 (SxROM/MMC1): a 5-bit serial shift
// register accumulates data across five consecutive writes to any
// 0x8000-0xFFFF address; the fifth write commits the accumulated
// value into one of four internal registers chosen by the
// destination address's bits 13-14 (§4.5.2).
type mmc1 struct {
	rom *ines.ROM

	shift      uint8
	shiftCount uint8

	control  uint8
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8

	prgRAM [0x2000]uint8
}

func newMMC1(rom *ines.ROM) Mapper {
	m := &mmc1{rom: rom}
	m.Reset()
	return m
}

func (m *mmc1) Reset() {
	m.shift = 0
	m.shiftCount = 0
	// Power-on control value fixes the last 16 KiB PRG bank and
	// leaves 8-KiB CHR mode, per nesdev's documented reset state.
	m.control = 0x0C
	m.chrBank0 = 0
	m.chrBank1 = 0
	m.prgBank = 0
}

func (m *mmc1) prgMode() uint8 { return (m.control >> 2) & 0x03 }
func (m *mmc1) chrMode() uint8 { return (m.control >> 4) & 0x01 }

func (m *mmc1) numPRGBanks16k() uint8 {
	return uint8(len(m.rom.PRG) / 0x4000)
}

func (m *mmc1) PrgRead(addr uint16) uint8 {
	if addr >= 0x6000 && addr < 0x8000 {
		return m.prgRAM[addr-0x6000]
	}
	if addr < 0x8000 {
		return 0
	}

	bank16k := m.prgBank & 0x0F
	last := m.numPRGBanks16k() - 1

	var lo, hi uint8
	switch m.prgMode() {
	case 0, 1: // 32 KiB mode: ignore low bit, switch 32 KiB at a time
		base := (bank16k &^ 1)
		lo, hi = base, base+1
	case 2: // fix first bank at 0x8000, switch 16 KiB at 0xC000
		lo, hi = 0, bank16k
	default: // 3: switch 16 KiB at 0x8000, fix last bank at 0xC000
		lo, hi = bank16k, last
	}

	var bank uint8
	var off uint16
	if addr < 0xC000 {
		bank, off = lo, addr-0x8000
	} else {
		bank, off = hi, addr-0xC000
	}

	return m.rom.PRG[int(bank)*0x4000+int(off)]
}

func (m *mmc1) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = val
		return
	}
	if addr < 0x8000 {
		return
	}

	if val&0x80 != 0 {
		// Reset the shift register and force PRG mode 3 (fix last
		// bank), per §4.5.2.
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shift = (m.shift >> 1) | ((val & 1) << 4)
	m.shiftCount++

	if m.shiftCount < 5 {
		return
	}

	committed := m.shift
	m.shift = 0
	m.shiftCount = 0

	switch {
	case addr < 0xA000:
		m.control = committed
	case addr < 0xC000:
		m.chrBank0 = committed
	case addr < 0xE000:
		m.chrBank1 = committed
	default:
		m.prgBank = committed
	}
}

func (m *mmc1) chrBankOffset(bank uint8) int {
	return int(bank) * 0x1000
}

func (m *mmc1) ChrRead(addr uint16) uint8 {
	if m.rom.ChrIsRAM {
		return m.rom.CHR[addr]
	}

	if m.chrMode() == 0 {
		// 8 KiB mode: chrBank0's low bits select an 8 KiB bank,
		// ignoring its low bit (two 4 KiB halves move together).
		base := m.chrBankOffset(m.chrBank0 &^ 1)
		return m.rom.CHR[base+int(addr)]
	}

	if addr < 0x1000 {
		return m.rom.CHR[m.chrBankOffset(m.chrBank0)+int(addr)]
	}
	return m.rom.CHR[m.chrBankOffset(m.chrBank1)+int(addr-0x1000)]
}

func (m *mmc1) ChrWrite(addr uint16, val uint8) {
	if m.rom.ChrIsRAM {
		m.rom.CHR[addr] = val
	}
	// CHR-ROM cartridges ignore writes.
}

func (m *mmc1) MirrorMode() uint8 {
	switch m.control & 0x03 {
	case mmc1MirrorSingleLower:
		return MirrorSingleLower
	case mmc1MirrorSingleUpper:
		return MirrorSingleUpper
	case mmc1MirrorVertical:
		return ines.MirrorVertical
	default:
		return ines.MirrorHorizontal
	}
}

func (m *mmc1) IRQState() bool { return false }
func (m *mmc1) ClearIRQ()      {}
func (m *mmc1) Scanline()      {}
