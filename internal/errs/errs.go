// Package errs collects the error taxonomy shared by every core
// subsystem: CPU decode failures, memory bus faults, and iNES
// container problems. Each kind is its own type so callers can use
// errors.As to recover the offending address/opcode/size rather than
// parsing a message string.
package errs

import (
	"errors"
	"fmt"
)

// ErrRomNotLoaded names a cartridge access made before a ROM has been
// attached. No bus or mapper in this repository returns it.
var ErrRomNotLoaded = errors.New("no ROM loaded")

// ErrMissingData names a ROM that claims a payload (trainer, PRG, CHR)
// the file doesn't contain enough bytes for. ines.Parse reports that
// case as *FileTooSmallError; nothing returns ErrMissingData.
var ErrMissingData = errors.New("missing ROM data")

// UnknownOpcodeError is returned by the CPU when it fetches a byte
// that isn't in the 256-entry decode table. The core does not treat
// this as a NOP; execution stops.
type UnknownOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// InvalidInstructionError indicates a decode-table bug: an opcode
// resolved to an addressing mode the executor doesn't know how to
// evaluate.
type InvalidInstructionError struct {
	Addr   uint16
	Reason string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction at 0x%04X: %s", e.Addr, e.Reason)
}

// OutOfBoundsError names an address that falls outside any region a
// memory owner is prepared to service. The bus does not return it;
// unmapped reads yield 0.
type OutOfBoundsError struct {
	Address uint16
	Size    int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("address 0x%04X out of bounds for region of size %d", e.Address, e.Size)
}

// InvalidRegionError names an address that doesn't map to any known
// region of the bus. The bus does not return it.
type InvalidRegionError struct {
	Address uint16
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("0x%04X doesn't belong to any mapped region", e.Address)
}

// InvalidHeaderError indicates a malformed iNES header: a bad magic
// number or a nonsensical field combination.
type InvalidHeaderError struct {
	Reason string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid iNES header: %s", e.Reason)
}

// FileTooSmallError indicates a ROM file that is shorter than its own
// header claims it should be.
type FileTooSmallError struct {
	Expected, Actual int
}

func (e *FileTooSmallError) Error() string {
	return fmt.Sprintf("ROM file too small: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

// UnsupportedMapperError is returned when a ROM names a mapper number
// nothing in the registry implements.
type UnsupportedMapperError struct {
	Number uint16
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d", e.Number)
}

// CorruptedDataError covers PRG/CHR payloads that fail a sanity check
// (wrong multiple of the bank size, etc).
type CorruptedDataError struct {
	Reason string
}

func (e *CorruptedDataError) Error() string {
	return fmt.Sprintf("corrupted ROM data: %s", e.Reason)
}
