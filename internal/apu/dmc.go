package apu

// dmc implements the delta modulation channel (§4.4.4): it streams
// 1-bit delta-encoded samples out of CPU address space via DMA,
// adjusting a 7-bit output level by +-2 per bit. Unlike the other
// three channels it drives its own memory fetches rather than being
// purely timer-driven, which is why it needs callbacks back into the
// bus/CPU instead of just register state.
type dmc struct {
	memRead     func(addr uint16) uint8
	stealCycles func(n int)

	irqEnable bool
	loop      bool

	timerPeriod uint16
	timerValue  uint16

	outputLevel uint8

	sampleAddress uint16
	sampleLength  uint16

	currentAddress uint16
	bytesRemaining uint16

	sampleBuffer    uint8
	bufferFilled    bool
	shiftRegister   uint8
	bitsRemaining   uint8
	silence         bool
	irqPending      bool
}

func newDMC(memRead func(uint16) uint8, stealCycles func(int)) *dmc {
	return &dmc{
		memRead:       memRead,
		stealCycles:   stealCycles,
		timerPeriod:   dmcRateTableNTSC[0],
		bitsRemaining: 8,
		silence:       true,
	}
}

func (d *dmc) WriteRegister(reg uint8, val uint8) {
	switch reg {
	case 0:
		d.irqEnable = val&0x80 != 0
		d.loop = val&0x40 != 0
		d.timerPeriod = dmcRateTableNTSC[val&0x0F]
		if !d.irqEnable {
			d.irqPending = false
		}
	case 1:
		d.outputLevel = val & 0x7F
	case 2:
		d.sampleAddress = 0xC000 | (uint16(val) << 6)
	case 3:
		d.sampleLength = (uint16(val) << 4) | 1
	}
}

// setEnabled starts (or halts) the sample stream, mirroring the
// enable bit stored in $4015.
func (d *dmc) setEnabled(v bool) {
	if !v {
		d.bytesRemaining = 0
		return
	}
	if d.bytesRemaining == 0 {
		d.currentAddress = d.sampleAddress
		d.bytesRemaining = d.sampleLength
	}
	d.fetchIfNeeded()
}

func (d *dmc) active() bool { return d.bytesRemaining > 0 }

// fetchIfNeeded performs the DMA read described in §4.4.4: whenever the
// sample buffer is empty and bytes remain in the current sample, the
// DMC fetches the next byte. Called on enable and after the shift
// register drains the buffer, so the buffer is never left empty while
// a sample is still playing.
func (d *dmc) fetchIfNeeded() {
	if !d.bufferFilled && d.bytesRemaining > 0 {
		d.fetchSample()
	}
}

// fetchSample performs the DMA read that refills the sample buffer,
// stealing CPU cycles the way OAM DMA does (§4.2/§4.4.4). Called
// through fetchIfNeeded, once the buffer is empty and more bytes
// remain.
func (d *dmc) fetchSample() {
	d.sampleBuffer = d.memRead(d.currentAddress)
	d.bufferFilled = true

	d.currentAddress++
	if d.currentAddress == 0 {
		d.currentAddress = 0x8000
	}
	d.bytesRemaining--

	if d.bytesRemaining == 0 {
		if d.loop {
			d.currentAddress = d.sampleAddress
			d.bytesRemaining = d.sampleLength
		} else if d.irqEnable {
			d.irqPending = true
		}
	}

	if d.stealCycles != nil {
		d.stealCycles(4)
	}
}

// clockTimer runs on every other CPU cycle (see APU.Step), so the
// period from dmcRateTableNTSC, which is in CPU cycles, is halved here.
func (d *dmc) clockTimer() {
	if d.timerValue == 0 {
		d.timerValue = d.timerPeriod/2 - 1
		d.clockOutputUnit()
	} else {
		d.timerValue--
	}
}

func (d *dmc) clockOutputUnit() {
	if !d.silence {
		if d.shiftRegister&1 != 0 {
			if d.outputLevel <= 125 {
				d.outputLevel += 2
			}
		} else {
			if d.outputLevel >= 2 {
				d.outputLevel -= 2
			}
		}
	}
	d.shiftRegister >>= 1

	if d.bitsRemaining > 0 {
		d.bitsRemaining--
	}
	if d.bitsRemaining == 0 {
		d.bitsRemaining = 8
		if !d.bufferFilled {
			d.silence = true
		} else {
			d.silence = false
			d.shiftRegister = d.sampleBuffer
			d.bufferFilled = false
			d.fetchIfNeeded()
		}
	}
}

func (d *dmc) sample() uint8 { return d.outputLevel }
