package ines

import "testing"

func buildROM(prgBlocks, chrBlocks uint8, trainer bool) []byte {
	flags6 := uint8(0)
	if trainer {
		flags6 |= flag6Trainer
	}

	b := []byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if trainer {
		b = append(b, make([]byte, TrainerSize)...)
	}
	b = append(b, make([]byte, int(prgBlocks)*PRGBlockSize)...)
	b = append(b, make([]byte, int(chrBlocks)*CHRBlockSize)...)
	return b
}

func TestParseSlicesSections(t *testing.T) {
	data := buildROM(2, 1, true)
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(r.PRG) != 2*PRGBlockSize {
		t.Errorf("PRG len = %d, want %d", len(r.PRG), 2*PRGBlockSize)
	}
	if len(r.CHR) != CHRBlockSize {
		t.Errorf("CHR len = %d, want %d", len(r.CHR), CHRBlockSize)
	}
	if len(r.Trainer) != TrainerSize {
		t.Errorf("Trainer len = %d, want %d", len(r.Trainer), TrainerSize)
	}
	if r.ChrIsRAM {
		t.Error("ChrIsRAM should be false when CHR blocks > 0")
	}
}

func TestParseFallsBackToChrRAM(t *testing.T) {
	data := buildROM(1, 0, false)
	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !r.ChrIsRAM {
		t.Error("expected ChrIsRAM when header declares zero CHR blocks")
	}
	if len(r.CHR) != ChrRAMSize {
		t.Errorf("CHR RAM size = %d, want %d", len(r.CHR), ChrRAMSize)
	}
}

func TestParseRejectsTruncatedFile(t *testing.T) {
	data := buildROM(2, 1, false)
	data = data[:len(data)-100]
	if _, err := Parse(data); err == nil {
		t.Fatal("expected an error for a truncated ROM")
	}
}
