package ines

import (
	"os"

	"github.com/madnes/madnes/internal/errs"
)

const (
	TrainerSize  = 512
	PRGBlockSize = 16384
	CHRBlockSize = 8192
	ChrRAMSize   = 8192
)

// ROM owns the raw PRG/CHR bytes and mirroring/mapper metadata parsed
// from an iNES container. It never itself applies bank switching -
// that's the mapper's job (§4.5); ROM just exposes flat reads/writes
// into whichever bank offset the mapper computed.
type ROM struct {
	Header  *Header
	Trainer []byte
	PRG     []byte
	CHR     []byte // ROM if non-empty; otherwise CHR RAM is used instead
	ChrIsRAM bool
}

// Load reads and validates an iNES file at path.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse validates and slices an in-memory iNES image into its
// constituent sections.
func Parse(data []byte) (*ROM, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	want := HeaderSize
	if h.HasTrainer() {
		want += TrainerSize
	}
	want += int(h.PrgBlocks) * PRGBlockSize
	want += int(h.ChrBlocks) * CHRBlockSize
	if len(data) < want {
		return nil, &errs.FileTooSmallError{Expected: want, Actual: len(data)}
	}

	r := &ROM{Header: h}
	off := HeaderSize
	if h.HasTrainer() {
		r.Trainer = append([]byte(nil), data[off:off+TrainerSize]...)
		off += TrainerSize
	}

	prgSize := int(h.PrgBlocks) * PRGBlockSize
	if prgSize == 0 {
		return nil, &errs.CorruptedDataError{Reason: "PRG ROM size is zero"}
	}
	r.PRG = append([]byte(nil), data[off:off+prgSize]...)
	off += prgSize

	chrSize := int(h.ChrBlocks) * CHRBlockSize
	if chrSize == 0 {
		r.CHR = make([]byte, ChrRAMSize)
		r.ChrIsRAM = true
	} else {
		r.CHR = append([]byte(nil), data[off:off+chrSize]...)
	}

	return r, nil
}

// MirrorMode returns the cartridge's nametable mirroring mode.
func (r *ROM) MirrorMode() uint8 {
	return r.Header.MirrorMode()
}

// MapperNumber returns the mapper number this ROM was built for.
func (r *ROM) MapperNumber() uint16 {
	return r.Header.MapperNumber()
}
