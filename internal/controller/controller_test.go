package controller

import "testing"

// fakeController exercises the shift-register protocol directly
// without going through ebiten key polling, by pre-seeding latched
// state the way strobe-high polling would.
func fakeController(buttons uint8) *Controller {
	c := New(Player1Keys)
	c.latched = buttons
	return c
}

func TestReadOrderAndOverrun(t *testing.T) {
	// A and Start pressed.
	c := fakeController(1<<ButtonA | 1<<ButtonStart)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}

	// Ninth and further reads return 1.
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Fatalf("overrun read %d = %d, want 1", i, got)
		}
	}
}

func TestStrobeResetsIndex(t *testing.T) {
	c := fakeController(1)
	c.Read()
	c.Read()

	c.Write(1) // strobe high
	c.Write(0) // falling edge freezes the latch

	if c.index != 0 {
		t.Fatalf("index = %d, want 0 after a strobe cycle", c.index)
	}
}
