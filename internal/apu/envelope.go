package apu

// envelope is the decay-level volume generator shared by the pulse and
// noise channels (§4.4.2).
type envelope struct {
	start          bool
	loop           bool
	constantVolume bool
	volume         uint8 // also the constant-volume level when constantVolume is set
	counter        uint8
	decayLevel     uint8
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decayLevel = 15
		e.counter = e.volume
		return
	}

	if e.counter > 0 {
		e.counter--
		return
	}

	e.counter = e.volume
	if e.decayLevel > 0 {
		e.decayLevel--
	} else if e.loop {
		e.decayLevel = 15
	}
}

func (e *envelope) output() uint8 {
	if e.constantVolume {
		return e.volume
	}
	return e.decayLevel
}

func (e *envelope) reset() { *e = envelope{} }
