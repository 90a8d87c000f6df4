// Package controller models the NES controller as the 8-bit
// parallel-in/serial-out shift register it physically is (§4.6).
package controller

import "github.com/hajimehoshi/ebiten/v2"

// Button bit positions, in the order the shift register serializes
// them on read: A, B, Select, Start, Up, Down, Left, Right.
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is one 8-bit parallel-in/serial-out shift register.
// While strobe is held high it continuously latches live button
// state; on the high-to-low transition the latch freezes and
// subsequent reads shift bits out oldest-first.
type Controller struct {
	keys    [8]ebiten.Key
	strobe  bool
	latched uint8
	index   uint8
}

// Player1Keys is the teacher's keyboard mapping for controller 1: Z/X
// for A/B, right Shift for Select, Enter for Start, arrow keys for the
// D-pad (§6).
var Player1Keys = [8]ebiten.Key{
	ebiten.KeyZ,
	ebiten.KeyX,
	ebiten.KeyShiftRight,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// Player2Keys maps controller 2 onto the numeric keypad per §6.
var Player2Keys = [8]ebiten.Key{
	ebiten.KeyKP1,
	ebiten.KeyKP2,
	ebiten.KeyKP0,
	ebiten.KeyKPEnter,
	ebiten.KeyKP8,
	ebiten.KeyKP5,
	ebiten.KeyKP4,
	ebiten.KeyKP6,
}

// New builds a controller that polls the given key mapping.
func New(keys [8]ebiten.Key) *Controller {
	return &Controller{keys: keys}
}

func (c *Controller) poll() uint8 {
	var b uint8
	for i, k := range c.keys {
		if ebiten.IsKeyPressed(k) {
			b |= 1 << uint(i)
		}
	}
	return b
}

// Write handles a CPU write to 0x4016, which the bus delivers to both
// controllers. Bit 0 is the strobe line: while held
// high the register continuously re-latches; the falling edge
// freezes it for serial readout.
func (c *Controller) Write(val uint8) {
	strobe := val&1 != 0
	if strobe {
		c.latched = c.poll()
		c.index = 0
	} else if c.strobe {
		// falling edge: freeze the already-latched value
		c.index = 0
	}
	c.strobe = strobe
}

// Read shifts the next bit out of the latched register. Reads past
// the eighth bit return 1, matching real NES hardware (§4.6).
func (c *Controller) Read() uint8 {
	if c.strobe {
		// While strobe is high, every read re-samples button 0 (A).
		return c.poll() & 1
	}

	if c.index >= 8 {
		return 1
	}

	bit := (c.latched >> c.index) & 1
	c.index++
	return bit
}
