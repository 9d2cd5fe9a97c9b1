package stopwatch

import (
	"sync"

	"github.com/prometheus/common/log"
)

// Button identifies one of the three input lines. The physical lines
// are active-low with pull-ups; only the press edge reaches this
// package, as a latched event.
type Button int

const (
	ButtonStart Button = iota
	ButtonPause
	ButtonReset

	buttonLines = 3
)

func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "START"
	case ButtonPause:
		return "PAUSE"
	case ButtonReset:
		return "RESET"
	}
	return "UNKNOWN"
}

// buttonController latches press edges and applies them to the time
// keeper, one action per serviced event.
//
// Press may be called from any goroutine; Service runs in the device's
// interrupt context.
type buttonController struct {
	mu sync.Mutex

	// pending holds the per-line pending-press indicators
	pending [buttonLines]bool

	// portPending is the port-level indicator: set on any edge, even
	// one with no recognized line (a spurious event)
	portPending bool

	keeper *timeKeeper
}

func newButtonController(keeper *timeKeeper) *buttonController {
	return &buttonController{keeper: keeper}
}

// Press latches a press edge on a button line. An out-of-range button
// raises only the port-level indicator, which Service then treats as
// spurious.
func (b *buttonController) Press(button Button) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if button >= 0 && int(button) < buttonLines {
		b.pending[button] = true
	}
	b.portPending = true
}

// Pending reports whether a button event awaits servicing.
func (b *buttonController) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.portPending
}

// Service handles exactly one button event. Lines are checked in
// start, pause, reset order and only the consumed line's indicator is
// cleared, so a second latched press is handled on the next event. An
// event with no recognized line pending clears the whole port's
// indicator and changes no state.
func (b *buttonController) Service() {
	button, ok := b.consumeOne()
	if !ok {
		return
	}

	log.Debugf("button %s pressed", button)

	switch button {
	case ButtonStart:
		b.keeper.Start()
	case ButtonPause:
		b.keeper.Pause()
	case ButtonReset:
		b.keeper.Reset()
	}
}

func (b *buttonController) consumeOne() (Button, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for line := 0; line < buttonLines; line++ {
		if !b.pending[line] {
			continue
		}
		b.pending[line] = false
		b.portPending = b.pending[0] || b.pending[1] || b.pending[2]
		return Button(line), true
	}

	// spurious event: no recognized line
	b.portPending = false
	return 0, false
}

func (b *buttonController) String() string {
	return "BUTTONS"
}
