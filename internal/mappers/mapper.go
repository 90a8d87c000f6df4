// Package mappers implements cartridge mapper chips - the circuitry
// that translates CPU/PPU addresses into PRG/CHR bank offsets and
// reacts to writes by switching banks or changing mirroring. Mappers
// are registered by number at init() time and looked up by
// (*ines.ROM).MapperNumber(), the way the teacher repo's
// mappers.RegisterMapper/Get does it.
package mappers

import (
	"fmt"

	"github.com/madnes/madnes/internal/errs"
	"github.com/madnes/madnes/internal/ines"
)

// Mapper is the capability set every cartridge chip implements (§4.5):
// address translation for PRG and CHR, mirroring, reset, and the IRQ
// hooks mappers with scanline counters (not implemented here, but the
// interface has room) need.
type Mapper interface {
	// PrgRead translates a CPU address in 0x6000-0xFFFF into a PRG
	// ROM/RAM offset and the byte at it.
	PrgRead(addr uint16) uint8
	// PrgWrite either updates PRG RAM or feeds the mapper's internal
	// register state machine; ROM writes are consumed, never passed
	// through.
	PrgWrite(addr uint16, val uint8)
	// ChrRead translates a PPU address in 0x0000-0x1FFF into a CHR
	// ROM/RAM offset and the byte at it.
	ChrRead(addr uint16) uint8
	// ChrWrite writes CHR RAM; a no-op on CHR-ROM cartridges.
	ChrWrite(addr uint16, val uint8)
	// MirrorMode reports the current nametable mirroring mode; some
	// mappers (MMC1) can change this at runtime.
	MirrorMode() uint8
	// Reset restores power-up mapper register state.
	Reset()
	// IRQState reports whether the mapper currently asserts IRQ.
	IRQState() bool
	// ClearIRQ acknowledges a mapper-asserted IRQ.
	ClearIRQ()
	// Scanline is the hook for scanline-counting mappers. Neither
	// mapper here counts scanlines, and the console does not call it.
	Scanline()
}

// Mirroring modes a Mapper can report. The first three match
// ines.Header.MirrorMode's values; single-screen modes are runtime-only
// (MMC1 switches into them via its control register - §4.5.2) and have
// no iNES header encoding.
const (
	MirrorHorizontal  = ines.MirrorHorizontal
	MirrorVertical    = ines.MirrorVertical
	MirrorFourScreen  = ines.MirrorFourScreen
	MirrorSingleLower = 3
	MirrorSingleUpper = 4
)

type factory func(*ines.ROM) Mapper

var registry = map[uint16]factory{}

// Register associates a mapper number with a constructor. Called from
// each mapper file's init().
func Register(id uint16, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper %d already registered", id))
	}
	registry[id] = f
}

// Get constructs the mapper named by rom's header, or
// UnsupportedMapperError if nothing is registered for that number.
func Get(rom *ines.ROM) (Mapper, error) {
	id := rom.MapperNumber()
	f, ok := registry[id]
	if !ok {
		return nil, &errs.UnsupportedMapperError{Number: id}
	}
	return f(rom), nil
}
