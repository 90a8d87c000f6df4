// Package bus implements the NES CPU memory map (§4.2): 2 KiB of
// internal RAM mirrored four times, the PPU register window mirrored
// every 8 bytes, APU/controller registers, OAM DMA, and the
// mapper-owned cartridge space. It is the single choke point the CPU
// reads and writes through (§9's CPU/bus-coupling design note).
package bus

import (
	"github.com/madnes/madnes/internal/controller"
	"github.com/madnes/madnes/internal/mappers"
	"github.com/madnes/madnes/internal/ppu"
)

const ramSize = 0x0800

// APU is the subset of the APU the bus needs: register writes for
// 0x4000-0x4013/0x4015/0x4017, and the $4015 status read.
type APU interface {
	ReadStatus() uint8
	WriteRegister(addr uint16, val uint8)
}

// cycleStealer lets OAM DMA charge its cost back to the CPU's cycle
// counter without the bus holding a full CPU reference. DMC fetches do
// not go through it: the APU is handed CPU.StealCycles directly.
type cycleStealer interface {
	StealCycles(n int)
}

// Bus wires RAM, the PPU, the APU, both controllers, and the cartridge
// mapper into the single address space the CPU sees.
type Bus struct {
	ram [ramSize]uint8

	PPU    *ppu.PPU
	APU    APU
	Mapper mappers.Mapper

	Controller1, Controller2 *controller.Controller

	cpu cycleStealer

	cycleCount uint64
}

// New builds a Bus. Callers wire PPU/APU/Mapper/controllers onto the
// returned struct before passing it to cpu.New, then call AttachCPU so
// OAM DMA can steal cycles.
func New() *Bus {
	return &Bus{}
}

// AttachCPU gives the bus a narrow hook back to the CPU for OAM DMA
// cycle accounting. Constructed after the CPU itself, since the CPU
// needs a Bus to be built.
func (b *Bus) AttachCPU(cpu cycleStealer) {
	b.cpu = cpu
}

// mapperPPUBus adapts a mappers.Mapper to the small Bus interface the
// ppu package expects, so the PPU never holds a mapper reference
// directly (§9's cyclic-references design note).
type mapperPPUBus struct {
	m mappers.Mapper
}

func (a mapperPPUBus) ChrRead(addr uint16) uint8      { return a.m.ChrRead(addr) }
func (a mapperPPUBus) ChrWrite(addr uint16, v uint8)  { a.m.ChrWrite(addr, v) }
func (a mapperPPUBus) MirrorMode() ppu.MirrorMode {
	switch a.m.MirrorMode() {
	case mappers.MirrorVertical:
		return ppu.MirrorVertical
	case mappers.MirrorFourScreen:
		return ppu.MirrorFourScreen
	case mappers.MirrorSingleLower:
		return ppu.MirrorSingleLower
	case mappers.MirrorSingleUpper:
		return ppu.MirrorSingleUpper
	default:
		return ppu.MirrorHorizontal
	}
}

// NewPPUBus wraps m for use as a ppu.Bus.
func NewPPUBus(m mappers.Mapper) ppu.Bus { return mapperPPUBus{m: m} }

// Read implements cpu.Bus (§4.2's address-range table).
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%ramSize]
	case addr < 0x4000:
		return b.PPU.ReadRegister((addr - 0x2000) % 8)
	case addr == 0x4015:
		return b.APU.ReadStatus()
	case addr == 0x4016:
		return b.Controller1.Read()
	case addr == 0x4017:
		return b.Controller2.Read()
	case addr < 0x4020:
		return 0 // open-bus: APU test range and the OAM DMA write-only register
	default:
		return b.Mapper.PrgRead(addr)
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = val
	case addr < 0x4000:
		b.PPU.WriteRegister((addr-0x2000)%8, val)
	case addr == 0x4014:
		b.startOAMDMA(val)
	case addr == 0x4016:
		b.Controller1.Write(val)
		b.Controller2.Write(val)
	case addr < 0x4018:
		b.APU.WriteRegister(addr, val)
	case addr < 0x4020:
		// APU test range: no-op.
	default:
		b.Mapper.PrgWrite(addr, val)
	}
}

// startOAMDMA copies 256 bytes starting at val<<8 into PPU OAM starting
// at OAMADDR, costing 513 CPU cycles (514 if triggered on an odd CPU
// cycle) - §4.2.
func (b *Bus) startOAMDMA(val uint8) {
	base := uint16(val) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteOAMByte(b.Read(base + uint16(i)))
	}

	cost := 513
	if b.cycleCount%2 == 1 {
		cost = 514
	}
	if b.cpu != nil {
		b.cpu.StealCycles(cost)
	}
}

// CountCycles lets the orchestrator report elapsed CPU cycles so OAM
// DMA can apply the correct odd-cycle-start parity penalty.
func (b *Bus) CountCycles(n int) {
	b.cycleCount += uint64(n)
}
