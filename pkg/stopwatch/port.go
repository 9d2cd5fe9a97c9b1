package stopwatch

// DisplayPort is the write-only boundary to the display drive
// electronics. Both outputs are active-low: segment bits follow the
// layout in segment.go, select bits follow the layout in mux.go.
//
// Implementations must tolerate a write on every fast tick (500/s).
type DisplayPort interface {
	WriteSegments(pattern uint8)
	WriteSelect(lines uint8)
}

// Frame is the last pattern driven at each of the 5 select positions:
// indices 0-3 are digit0 (rightmost) through digit3 (leftmost), index
// 4 is the separator. A position nothing has been driven on yet reads
// blank (0xFF).
type Frame [5]uint8

// Lit reports whether a segment of a position is lit (0 = A .. 6 = G,
// 7 = decimal point).
func (f Frame) Lit(position int, segment uint) bool {
	return SegmentLit(f[position], segment)
}

// latchingPort is the default DisplayPort. It emulates the persistence
// of vision a multiplexed display relies on: the pattern driven while
// a select line is asserted stays latched for that position, so a
// frame shows all 5 positions even though only one is physically lit
// at a time.
//
// Written only from the device goroutine; frames cross to the
// frontend by value over FrameChan.
type latchingPort struct {
	segments uint8
	frame    Frame
}

func newLatchingPort() *latchingPort {
	p := &latchingPort{segments: segmentsBlank}
	for i := range p.frame {
		p.frame[i] = segmentsBlank
	}
	return p
}

func (p *latchingPort) WriteSegments(pattern uint8) {
	p.segments = pattern
}

func (p *latchingPort) WriteSelect(lines uint8) {
	if lines == selectNone {
		return
	}
	for pos := uint(0); pos < 5; pos++ {
		if lines&(1<<pos) == 0 {
			p.frame[pos] = p.segments
		}
	}
}

func (p *latchingPort) Frame() Frame {
	return p.frame
}

func (p *latchingPort) String() string {
	return "DISPLAY"
}
