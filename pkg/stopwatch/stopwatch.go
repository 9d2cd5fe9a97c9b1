package stopwatch

import (
	"context"
	"time"

	"github.com/prometheus/common/log"
)

const (
	// frameCycles is how often the latched display state is published
	// to FrameChan (roughly 60 frames per second)
	frameCycles = 16 * clockHz / 1000

	// maxCatchUp caps how much wall time a single run-loop iteration
	// is allowed to replay, so a stalled host (debugger, suspend) does
	// not make the stopwatch leap forward
	maxCatchUp = 250 * time.Millisecond
)

// Stopwatch is the assembled device: the two timer-driven handlers,
// the button handler and the state they share.
type Stopwatch struct {
	keeper    *timeKeeper
	buttons   *buttonController
	mux       *displayMux
	scheduler *tickScheduler
	latch     *latchingPort

	cycles int

	// FrameChan receives the latched display state at roughly 60
	// frames per second while Run is active. Frames are dropped, not
	// queued, if the receiver lags.
	FrameChan chan Frame
}

// Option configures a Stopwatch on construction.
type Option func(*Stopwatch)

// WithDisplayPort drives display writes into the given port instead of
// (only) the built-in latching port. The latching port still observes
// every write so FrameChan keeps working.
func WithDisplayPort(port DisplayPort) Option {
	return func(s *Stopwatch) {
		s.mux.port = teePort{s.latch, port}
	}
}

func New(opts ...Option) *Stopwatch {
	keeper := newTimeKeeper()
	latch := newLatchingPort()

	s := &Stopwatch{
		keeper:    keeper,
		buttons:   newButtonController(keeper),
		mux:       newDisplayMux(keeper, latch),
		scheduler: newTickScheduler(),
		latch:     latch,
		FrameChan: make(chan Frame, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Press latches a press edge on a button line. Safe to call from any
// goroutine; the edge is serviced on the next cycle.
func (s *Stopwatch) Press(button Button) {
	s.buttons.Press(button)
}

// Reading returns the current display value, four packed BCD digits.
func (s *Stopwatch) Reading() uint16 {
	return s.keeper.Snapshot()
}

// Running reports whether elapsed time is advancing.
func (s *Stopwatch) Running() bool {
	return s.keeper.Running()
}

// Frame returns the current latched display state.
func (s *Stopwatch) Frame() Frame {
	return s.latch.Frame()
}

// Cycle advances the device by one reference-clock cycle and services
// whatever became pending.
//
// Service order is fixed: the slow tick (time accounting) strictly
// before the fast tick (display refresh), then at most one button
// event. When both timer sources co-fire, the multiplexer therefore
// always reads the already-updated register.
func (s *Stopwatch) Cycle() {
	s.scheduler.Cycle()

	if s.scheduler.Slow.ReadAndClear() {
		s.keeper.Tick()
	}

	if s.scheduler.Fast.ReadAndClear() {
		s.mux.Refresh()
	}

	if s.buttons.Pending() {
		s.buttons.Service()
	}

	s.cycles++
	if s.cycles >= frameCycles {
		s.cycles = 0
		s.publishFrame()
	}
}

func (s *Stopwatch) publishFrame() {
	select {
	case s.FrameChan <- s.latch.Frame():
	default:
	}
}

// Run paces the device against wall time: one cycle per microsecond of
// the 1MHz reference clock, batched on a 2ms ticker so the fast tick
// fires once per wakeup. Returns when ctx is done.
func (s *Stopwatch) Run(ctx context.Context) error {
	log.Infof("stopwatch running, %dHz reference clock", clockHz)

	ticker := time.NewTicker(fastPeriodCycles * time.Microsecond)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Infoln("stopwatch stopped")
			return nil

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if elapsed > maxCatchUp {
				elapsed = maxCatchUp
			}

			for i := int64(0); i < elapsed.Microseconds(); i++ {
				s.Cycle()
			}
		}
	}
}

// teePort duplicates display writes to two ports, preserving write
// order on each.
type teePort [2]DisplayPort

func (t teePort) WriteSegments(pattern uint8) {
	t[0].WriteSegments(pattern)
	t[1].WriteSegments(pattern)
}

func (t teePort) WriteSelect(lines uint8) {
	t[0].WriteSelect(lines)
	t[1].WriteSelect(lines)
}
