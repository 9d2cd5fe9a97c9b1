package stopwatch

const (
	// clockHz is the reference clock the periods below are derived
	// from. One Cycle call corresponds to one clock cycle.
	clockHz = 1_000_000

	// fastPeriodCycles gives the display multiplexer a 2ms refresh per
	// position. 10ms per position is empirically visible flicker, so
	// there is little slack here.
	fastPeriodCycles = 2 * clockHz / 1000

	// slowPeriodCycles gives the elapsed-time register a 100ms tick;
	// ten slow ticks advance the displayed time by one second.
	slowPeriodCycles = 100 * clockHz / 1000
)

// tickScheduler derives the two periodic tick sources from the
// reference clock. Each source only latches a pending interrupt;
// dispatch order (slow strictly before fast) is the device's job.
//
// Periods are fixed for the device lifetime. A tick is never queued:
// if a source fires again before its previous tick was serviced the
// latch is simply still set, matching hardware that has no guard
// against handler overrun.
type tickScheduler struct {
	fastCycles int
	slowCycles int

	// Slow fires every 100ms and drives time accounting; it holds the
	// higher interrupt priority.
	Slow *interruptSource

	// Fast fires every 2ms and drives the display multiplexer.
	Fast *interruptSource
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{
		Slow: newInterruptSource(),
		Fast: newInterruptSource(),
	}
}

// Cycle advances the scheduler by one reference-clock cycle and
// latches any source whose period elapsed.
func (s *tickScheduler) Cycle() {
	s.slowCycles++
	if s.slowCycles >= slowPeriodCycles {
		s.slowCycles = 0
		s.Slow.Set()
	}

	s.fastCycles++
	if s.fastCycles >= fastPeriodCycles {
		s.fastCycles = 0
		s.Fast.Set()
	}
}

func (s *tickScheduler) String() string {
	return "SCHEDULER"
}
