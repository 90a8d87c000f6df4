package bus

import (
	"testing"

	"github.com/madnes/madnes/internal/controller"
	"github.com/madnes/madnes/internal/ines"
	"github.com/madnes/madnes/internal/mappers"
	"github.com/madnes/madnes/internal/ppu"
)

type fakeAPU struct {
	lastAddr uint16
	lastVal  uint8
}

func (f *fakeAPU) ReadStatus() uint8 { return 0 }
func (f *fakeAPU) WriteRegister(addr uint16, val uint8) {
	f.lastAddr, f.lastVal = addr, val
}

func testBus(t *testing.T) *Bus {
	t.Helper()
	rom := &ines.ROM{
		Header: &ines.Header{PrgBlocks: 2},
		PRG:    make([]byte, 0x8000),
		CHR:    make([]byte, 0x2000),
	}
	m, err := mappers.Get(rom)
	if err != nil {
		t.Fatalf("mappers.Get: %v", err)
	}

	b := New()
	b.PPU = ppu.New(NewPPUBus(m))
	b.APU = &fakeAPU{}
	b.Mapper = m
	b.Controller1 = controller.New(controller.Player1Keys)
	b.Controller2 = controller.New(controller.Player2Keys)
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := testBus(t)
	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}

	for _, base := range []uint16{0, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			if got := b.Read(base + uint16(i)); got != uint8(i+1) {
				t.Errorf("mem[0x%04X] = %d, want %d", base+uint16(i), got, i+1)
			}
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := testBus(t)
	b.Write(0x2000, 0x80) // PPUCTRL
	b.Write(0x2008, 0x00) // mirrors 0x2000 again

	// Reading back PPUSTATUS through either mirror should be identical.
	if got, want := b.Read(0x2002), b.Read(0x200A); got != want {
		t.Errorf("mirrored PPUSTATUS reads differ: 0x%02X vs 0x%02X", got, want)
	}
}

func TestAPURegisterRouting(t *testing.T) {
	b := testBus(t)
	fake := b.APU.(*fakeAPU)
	b.Write(0x4001, 0x7F)
	if fake.lastAddr != 0x4001 || fake.lastVal != 0x7F {
		t.Errorf("APU write routed incorrectly: addr=0x%04X val=0x%02X", fake.lastAddr, fake.lastVal)
	}
}

func TestOAMDMACopies256Bytes(t *testing.T) {
	b := testBus(t)
	for i := 0; i < 256; i++ {
		b.Write(0x0300+uint16(i), uint8(i))
	}

	var stolen int
	b.AttachCPU(stealerFunc(func(n int) { stolen = n }))
	b.Write(0x4014, 0x03)

	if stolen != 513 {
		t.Errorf("stolen cycles = %d, want 513 (even starting cycle)", stolen)
	}

	for i := 0; i < 256; i++ {
		b.Write(0x2003, uint8(i)) // OAMADDR
		if got := b.Read(0x2004); got != uint8(i) {
			t.Errorf("OAM[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestOAMDMAOddCycleCostsOneMore(t *testing.T) {
	b := testBus(t)
	b.CountCycles(1) // make the running cycle count odd

	var stolen int
	b.AttachCPU(stealerFunc(func(n int) { stolen = n }))
	b.Write(0x4014, 0x03)

	if stolen != 514 {
		t.Errorf("stolen cycles = %d, want 514 on an odd starting cycle", stolen)
	}
}

func TestMapperRegionRouting(t *testing.T) {
	b := testBus(t)
	// PRG is zeroed but readable; just confirm no panic and a stable value.
	if got := b.Read(0x8000); got != 0 {
		t.Errorf("Read(0x8000) = %d, want 0 from a zeroed PRG ROM", got)
	}
}

type stealerFunc func(int)

func (f stealerFunc) StealCycles(n int) { f(n) }
