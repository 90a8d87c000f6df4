// Package console wires the CPU, PPU, APU, mapper and controllers
// into the single machine an ebiten window drives, the way the
// teacher's console.Bus type implements ebiten.Game (§2's module
// diagram, §4.7's step ordering).
package console

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/madnes/madnes/internal/apu"
	"github.com/madnes/madnes/internal/bus"
	"github.com/madnes/madnes/internal/controller"
	"github.com/madnes/madnes/internal/cpu"
	"github.com/madnes/madnes/internal/mappers"
	"github.com/madnes/madnes/internal/ppu"
	"github.com/madnes/madnes/internal/timing"
)

// Console is the top-level machine: an ebiten.Game whose Update steps
// the emulated hardware and whose Draw presents the PPU's latest
// completed frame.
type Console struct {
	cpu    *cpu.CPU
	bus    *bus.Bus
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper mappers.Mapper

	cycleDebt float64
	screen    *ebiten.Image

	trace io.Writer
}

// EnableTrace turns on a per-instruction log: one line per Step,
// written before the instruction executes, showing registers, PC and
// the running cycle count (CPU.String). The lines do not carry the
// instruction bytes or disassembly columns of a nestest.log line.
func (c *Console) EnableTrace(w io.Writer) {
	c.trace = w
}

// New builds a Console around an already-identified cartridge mapper.
// The CPU/bus/PPU/APU construction order follows the teacher's
// console.New: the bus exists first, the CPU and PPU are built around
// it, then the bus is handed the CPU's cycle-stealing hook.
func New(m mappers.Mapper) *Console {
	b := bus.New()
	b.Mapper = m
	b.PPU = ppu.New(bus.NewPPUBus(m))
	b.Controller1 = controller.New(controller.Player1Keys)
	b.Controller2 = controller.New(controller.Player2Keys)

	c := cpu.New(b)
	b.AttachCPU(c)

	a := apu.New(b.Read, c.StealCycles)
	b.APU = a

	return &Console{
		cpu:    c,
		bus:    b,
		ppu:    b.PPU,
		apu:    a,
		mapper: m,
		screen: ebiten.NewImage(ppu.Width, ppu.Height),
	}
}

// Step runs exactly one CPU instruction and its associated PPU/APU
// ticks, for tests and the cmd/madnes debug tracer. It returns the
// instruction's cycle count.
func (c *Console) Step() (int, error) {
	if c.trace != nil {
		fmt.Fprintln(c.trace, c.cpu)
	}

	n, err := c.cpu.Step()
	if err != nil {
		return n, err
	}
	c.bus.CountCycles(n)

	for i := 0; i < n; i++ {
		c.ppu.Tick()
		c.ppu.Tick()
		c.ppu.Tick()
		if c.ppu.TakeNMI() {
			c.cpu.TriggerNMI()
		}
		c.apu.Step()
	}
	c.cpu.SetIRQ(c.apu.IRQPending() || c.mapper.IRQState())

	return n, nil
}

// Update advances the machine by roughly one video frame's worth of
// CPU cycles. ebiten calls this at its own pace, which rarely lines
// up exactly with the NES's ~60.0988 Hz field rate, so cycleDebt
// carries the fractional remainder forward rather than rounding it
// away every call.
func (c *Console) Update() error {
	c.cycleDebt += timing.CPUCyclesPerFrame
	for c.cycleDebt > 0 {
		n, err := c.Step()
		if err != nil {
			return err
		}
		c.cycleDebt -= float64(n)
	}
	return nil
}

// Draw presents the PPU's most recently completed frame. When no new
// frame is ready yet (Draw can run more often than a frame completes)
// it simply redraws the last one.
func (c *Console) Draw(screen *ebiten.Image) {
	if pix, ok := c.ppu.TakeFrame(); ok {
		c.screen.WritePixels(pix[:])
	}
	screen.DrawImage(c.screen, nil)
}

// Layout reports the NES's fixed native resolution; ebiten scales the
// window around it.
func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}
