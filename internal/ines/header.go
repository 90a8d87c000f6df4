// Package ines implements support for the NES (iNES) ROM container
// format. https://www.nesdev.org/wiki/INES
package ines

import (
	"fmt"

	"github.com/madnes/madnes/internal/errs"
)

const HeaderSize = 16

// Mirroring modes a mapper can report.
const (
	MirrorHorizontal = iota
	MirrorVertical
	MirrorFourScreen
)

// flags6 bit identifiers - the top 4 bits are the lower nibble of the
// mapper number.
const (
	flag6Mirroring    = 1 << 0
	flag6BatteryBacked = 1 << 1
	flag6Trainer      = 1 << 2
	flag6FourScreen   = 1 << 3
)

// flags7 bit identifiers - the top 4 bits are the upper nibble of the
// mapper number.
const (
	flag7VSUnisystem = 1 << 0
	flag7PlayChoice  = 1 << 1
	flag7NES2Mask    = 0x0C
	flag7NES2Value   = 0x08
)

// Header is the parsed, validated 16-byte iNES header.
type Header struct {
	PrgBlocks uint8 // 16 KiB units
	ChrBlocks uint8 // 8 KiB units
	Flags6    uint8
	Flags7    uint8
	Flags8    uint8
	Flags9    uint8
	Flags10   uint8
	Unused    [5]byte
}

func (h *Header) String() string {
	return fmt.Sprintf("iNES prg=%d(x16K) chr=%d(x8K) flags(%02X,%02X,%02X,%02X,%02X)",
		h.PrgBlocks, h.ChrBlocks, h.Flags6, h.Flags7, h.Flags8, h.Flags9, h.Flags10)
}

// ParseHeader validates and decodes the first 16 bytes of an iNES
// file. It never consumes more than HeaderSize bytes.
func ParseHeader(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, &errs.FileTooSmallError{Expected: HeaderSize, Actual: len(b)}
	}
	if b[0] != 'N' || b[1] != 'E' || b[2] != 'S' || b[3] != 0x1A {
		return nil, &errs.InvalidHeaderError{Reason: "missing \"NES\\x1A\" signature"}
	}

	h := &Header{
		PrgBlocks: b[4],
		ChrBlocks: b[5],
		Flags6:    b[6],
		Flags7:    b[7],
		Flags8:    b[8],
		Flags9:    b[9],
		Flags10:   b[10],
	}
	copy(h.Unused[:], b[11:16])
	return h, nil
}

// Bytes serializes the header back into its 16-byte on-disk form.
// Used both for writing and for the round-trip testable property in
// §8 of the spec.
func (h *Header) Bytes() [HeaderSize]byte {
	var out [HeaderSize]byte
	out[0], out[1], out[2], out[3] = 'N', 'E', 'S', 0x1A
	out[4] = h.PrgBlocks
	out[5] = h.ChrBlocks
	out[6] = h.Flags6
	out[7] = h.Flags7
	out[8] = h.Flags8
	out[9] = h.Flags9
	out[10] = h.Flags10
	copy(out[11:16], h.Unused[:])
	return out
}

// HasTrainer reports whether a 512-byte trainer precedes PRG data.
func (h *Header) HasTrainer() bool {
	return h.Flags6&flag6Trainer != 0
}

// HasPlayChoice reports whether a PlayChoice-10 INST-ROM/PROM trails
// CHR data.
func (h *Header) HasPlayChoice() bool {
	return h.Flags7&flag7PlayChoice != 0
}

// HasBatteryBackedPRGRAM reports whether cartridge PRG RAM is
// battery-backed (persistent across power cycles).
func (h *Header) HasBatteryBackedPRGRAM() bool {
	return h.Flags6&flag6BatteryBacked != 0
}

// MirrorMode resolves the nametable mirroring mode. A four-screen
// override in flags6 takes priority over the mirroring bit.
func (h *Header) MirrorMode() uint8 {
	if h.Flags6&flag6FourScreen != 0 {
		return MirrorFourScreen
	}
	if h.Flags6&flag6Mirroring != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// isNES2 reports whether flags7 bits 2-3 mark this as a NES 2.0
// header. NES 2.0 extensions beyond mapper/mirroring are a
// documented non-goal; this is only used to decide the
// ignore-high-nibble heuristic below.
func (h *Header) isNES2() bool {
	return h.Flags7&flag7NES2Mask == flag7NES2Value
}

// ignoreHighNibble reports whether the upper nibble of the mapper
// number (flags7 bits 4-7) should be discarded. Older rippers wrote
// tool names into bytes 7-15; if the unused tail (bytes 11-15) is
// non-zero and the header isn't NES 2.0, the upper nibble is almost
// certainly garbage,
// not a mapper number.
func (h *Header) ignoreHighNibble() bool {
	if h.isNES2() {
		return false
	}
	for _, b := range h.Unused {
		if b != 0 {
			return true
		}
	}
	return false
}

// MapperNumber returns the mapper number built from the upper nibble
// of flags7 and the upper nibble of flags6.
func (h *Header) MapperNumber() uint16 {
	low := uint16(h.Flags6&0xF0) >> 4
	if h.ignoreHighNibble() {
		return low
	}
	return (uint16(h.Flags7) & 0xF0) | low
}

// PRGRAMSize returns the size of PRG RAM in bytes. Flags8 of 0 means
// a single 8 KiB unit is assumed, per §6.
func (h *Header) PRGRAMSize() int {
	n := h.Flags8
	if n == 0 {
		n = 1
	}
	return int(n) * 8192
}
