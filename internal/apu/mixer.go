package apu

// pulseTable and tndTable are the two non-linear mixer lookup tables
// (§4.4.3). They are built once from the documented closed-form
// approximations rather than simulating the underlying analog mixer
// circuit.
var pulseTable [31]float32
var tndTable [203]float32

func init() {
	for i := 1; i < len(pulseTable); i++ {
		pulseTable[i] = 95.52 / (8128.0/float32(i) + 100.0)
	}
	for i := 1; i < len(tndTable); i++ {
		tndTable[i] = 163.67 / (24329.0/float32(i) + 100.0)
	}
}

// mix combines the five channels' raw amplitudes into a single
// normalized sample in [-1, 1], using the two independent lookup
// tables rather than a single linear sum (§4.4.3).
func mix(pulse1, pulse2, tri, noise, dmc uint8) float32 {
	pulseOut := pulseTable[pulse1+pulse2]
	tndOut := tndTable[3*uint16(tri)+2*uint16(noise)+uint16(dmc)]
	out := pulseOut + tndOut
	switch {
	case out > 1:
		return 1
	case out < -1:
		return -1
	default:
		return out
	}
}
