// Package apu implements the NES's five-channel sound generator
// (§4.4): two pulse channels, a triangle, a noise generator, and a
// delta-modulation sample player, combined through the non-linear
// mixer described in §4.4.3 and clocked by a frame sequencer that
// gates envelopes, sweeps, and length counters.
package apu

const sampleBufferCapacity = 1 << 15

type frameStep struct {
	cycle          uint32
	quarter, half  bool
	irq            bool
}

var fourStepSequence = []frameStep{
	{cycle: 7457, quarter: true},
	{cycle: 14913, quarter: true, half: true},
	{cycle: 22371, quarter: true},
	{cycle: 29829, quarter: true, half: true, irq: true},
}

var fiveStepSequence = []frameStep{
	{cycle: 7457, quarter: true},
	{cycle: 14913, quarter: true, half: true},
	{cycle: 22371, quarter: true},
	{cycle: 29829},
	{cycle: 37281, quarter: true, half: true},
}

// APU is the top-level sound generator. It satisfies the bus.APU
// interface (ReadStatus/WriteRegister) and exposes Step for the
// orchestrator to call once per CPU cycle.
type APU struct {
	pulse1 *pulse
	pulse2 *pulse
	tri    *triangle
	noise  *noise
	dmc    *dmc

	frameMode       uint8 // 0 = 4-step, 1 = 5-step
	frameIRQInhibit bool
	frameIRQPending bool
	frameCycle      uint32
	frameStepIndex  int

	cycle uint64

	samples *ringBuffer
}

// New builds an APU. memRead lets the DMC channel fetch sample bytes
// from CPU address space; stealCycles charges DMC DMA fetches back to
// the CPU the same way OAM DMA does.
func New(memRead func(addr uint16) uint8, stealCycles func(n int)) *APU {
	return &APU{
		pulse1:  newPulse(1),
		pulse2:  newPulse(2),
		tri:     &triangle{},
		noise:   newNoise(),
		dmc:     newDMC(memRead, stealCycles),
		samples: newRingBuffer(sampleBufferCapacity),
	}
}

// WriteRegister dispatches a CPU write in the $4000-$4017 range to the
// owning channel or to frame-sequencer/status control.
func (a *APU) WriteRegister(addr uint16, val uint8) {
	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.pulse1.WriteRegister(uint8(addr-0x4000), val)
	case addr >= 0x4004 && addr <= 0x4007:
		a.pulse2.WriteRegister(uint8(addr-0x4004), val)
	case addr >= 0x4008 && addr <= 0x400B:
		a.tri.WriteRegister(uint8(addr-0x4008), val)
	case addr >= 0x400C && addr <= 0x400F:
		a.noise.WriteRegister(uint8(addr-0x400C), val)
	case addr >= 0x4010 && addr <= 0x4013:
		a.dmc.WriteRegister(uint8(addr-0x4010), val)
	case addr == 0x4015:
		a.writeStatus(val)
	case addr == 0x4017:
		a.writeFrameCounter(val)
	}
}

func (a *APU) writeStatus(val uint8) {
	a.pulse1.setEnabled(val&0x01 != 0)
	a.pulse2.setEnabled(val&0x02 != 0)
	a.tri.setEnabled(val&0x04 != 0)
	a.noise.setEnabled(val&0x08 != 0)
	a.dmc.setEnabled(val&0x10 != 0)
	a.dmc.irqPending = false
}

func (a *APU) writeFrameCounter(val uint8) {
	a.frameMode = (val >> 7) & 1
	a.frameIRQInhibit = val&0x40 != 0
	if a.frameIRQInhibit {
		a.frameIRQPending = false
	}
	a.frameCycle = 0
	a.frameStepIndex = 0
	if a.frameMode == 1 {
		a.clockQuarterFrame()
		a.clockHalfFrame()
	}
}

// ReadStatus implements the $4015 read: each channel's length-counter
// activity bit, plus frame and DMC IRQ flags. Reading clears the frame
// IRQ flag (the DMC IRQ flag only clears on a $4015 write or when the
// channel's IRQ-enable bit is turned off).
func (a *APU) ReadStatus() uint8 {
	var v uint8
	if a.pulse1.lengthCounterActive() {
		v |= 0x01
	}
	if a.pulse2.lengthCounterActive() {
		v |= 0x02
	}
	if a.tri.lengthCounterActive() {
		v |= 0x04
	}
	if a.noise.lengthCounterActive() {
		v |= 0x08
	}
	if a.dmc.active() {
		v |= 0x10
	}
	if a.frameIRQPending {
		v |= 0x40
	}
	if a.dmc.irqPending {
		v |= 0x80
	}
	a.frameIRQPending = false
	return v
}

// IRQPending reports whether the APU currently asserts the shared IRQ
// line (frame sequencer or DMC), for the orchestrator to OR together
// with mapper IRQs before driving cpu.SetIRQ.
func (a *APU) IRQPending() bool {
	return a.frameIRQPending || a.dmc.irqPending
}

func (a *APU) clockQuarterFrame() {
	a.pulse1.clockEnvelope()
	a.pulse2.clockEnvelope()
	a.noise.clockEnvelope()
	a.tri.clockLinearCounter()
}

func (a *APU) clockHalfFrame() {
	a.pulse1.clockLengthCounter()
	a.pulse2.clockLengthCounter()
	a.tri.clockLengthCounter()
	a.noise.clockLengthCounter()
	a.pulse1.clockSweep()
	a.pulse2.clockSweep()
}

func (a *APU) sequence() []frameStep {
	if a.frameMode == 1 {
		return fiveStepSequence
	}
	return fourStepSequence
}

func (a *APU) clockFrameSequencer() {
	a.frameCycle++
	seq := a.sequence()
	step := seq[a.frameStepIndex]
	if a.frameCycle != step.cycle {
		return
	}

	if step.quarter {
		a.clockQuarterFrame()
	}
	if step.half {
		a.clockHalfFrame()
	}
	if step.irq && !a.frameIRQInhibit {
		a.frameIRQPending = true
	}

	a.frameStepIndex++
	if a.frameStepIndex >= len(seq) {
		a.frameStepIndex = 0
		a.frameCycle = 0
	}
}

// Step advances every channel and the frame sequencer by one CPU
// cycle, and appends the freshly mixed sample to the output buffer.
// Pulse, noise and DMC timers run at half the CPU clock; triangle and
// the frame sequencer run at the full CPU clock (§4.4.1).
func (a *APU) Step() {
	a.cycle++

	a.tri.clockTimer()
	if a.cycle%2 == 0 {
		a.pulse1.clockTimer()
		a.pulse2.clockTimer()
		a.noise.clockTimer()
		a.dmc.clockTimer()
	}

	a.clockFrameSequencer()

	s := mix(a.pulse1.sample(), a.pulse2.sample(), a.tri.sample(), a.noise.sample(), a.dmc.sample())
	a.samples.push(s)
}

// PopSample drains one mixed sample for the host audio sink, reporting
// false once the buffer is empty.
func (a *APU) PopSample() (float32, bool) {
	return a.samples.pop()
}

// BufferedSamples reports how many samples are queued for playback.
func (a *APU) BufferedSamples() int {
	return a.samples.Len()
}
