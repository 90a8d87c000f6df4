package ppu

// loopy stores one of the PPU's two "loopy" scroll registers (v, the
// current VRAM address, and t, its temporary counterpart) and the
// accessors for the fields packed into it:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

func (l *loopy) coarseX() uint16 { return l.data & 0x001F }

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data & 0xFFE0) | (n & 0x001F)
}

func (l *loopy) incrementCoarseX() {
	if l.coarseX() == 31 {
		l.data &^= 0x001F
		l.data ^= 0x0400 // wrap into the adjacent horizontal nametable
		return
	}
	l.data++
}

func (l *loopy) coarseY() uint16 { return (l.data & 0x03E0) >> 5 }

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data & 0xFC1F) | ((n & 0x001F) << 5)
}

// incrementFineY implements the PPU's vertical-scroll increment
// (§4.3.2, dot 256): fine Y wraps into coarse Y, which itself wraps
// (with the notorious 29/31 special case) into the vertical nametable
// bit.
func (l *loopy) incrementFineY() {
	if l.fineY() < 7 {
		l.data += 0x1000
		return
	}
	l.data &^= 0x7000
	switch l.coarseY() {
	case 29:
		l.setCoarseY(0)
		l.data ^= 0x0800
	case 31:
		l.setCoarseY(0)
	default:
		l.setCoarseY(l.coarseY() + 1)
	}
}

func (l *loopy) nametableX() uint16 { return (l.data & 0x0400) >> 10 }
func (l *loopy) nametableY() uint16 { return (l.data & 0x0800) >> 11 }

func (l *loopy) fineY() uint16 { return (l.data & 0x7000) >> 12 }

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data & 0x0FFF) | ((n & 0x0007) << 12)
}

// copyHorizontalBits copies the horizontal scroll bits (coarse X and
// nametable X) from t into v, per dot 257 of each visible scanline.
func (l *loopy) copyHorizontalBits(t loopy) {
	l.data = (l.data &^ 0x041F) | (t.data & 0x041F)
}

// copyVerticalBits copies the vertical scroll bits (fine Y, coarse Y,
// nametable Y) from t into v, per dots 280-304 of the pre-render line.
func (l *loopy) copyVerticalBits(t loopy) {
	l.data = (l.data &^ 0x7BE0) | (t.data & 0x7BE0)
}
