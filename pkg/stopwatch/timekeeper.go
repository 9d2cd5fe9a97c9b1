package stopwatch

import "sync"

const (
	// tickStep is the displayed-time advance per slow tick as a packed
	// BCD value: 100ms lands in digit1, so digit0 (units of 10ms)
	// always reads zero and ten slow ticks advance digit2 (seconds)
	// by one.
	tickStep uint16 = 0x0010

	// maxElapsed is the highest reading the display can show. The
	// tick step cannot skip over it, so a strict equality check after
	// the increment is sufficient to detect it.
	maxElapsed uint16 = 0x9990
)

// timeKeeper owns the elapsed-time register and the run flag.
//
// Both values are shared between the slow-tick handler, the button
// actions and (read-only) the digit multiplexer, so raw variables are
// never handed out. Every operation holds the mutex for the whole
// multi-step sequence, which keeps a button action from interleaving
// with an in-progress increment-compare-clear.
type timeKeeper struct {
	mu sync.Mutex

	// elapsed is four packed BCD digits, least significant digit in
	// the lowest nibble
	elapsed uint16

	running bool
}

func newTimeKeeper() *timeKeeper {
	return &timeKeeper{}
}

// Tick is the slow-tick handler body: advance the reading by one step
// and stop counting once the display maximum is reached.
//
// A reading already pinned at the maximum is left untouched even if
// the run flag has been forced back on; the flag is cleared again
// instead of the register wrapping.
func (tk *timeKeeper) Tick() {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	if !tk.running {
		return
	}

	if tk.elapsed == maxElapsed {
		tk.running = false
		return
	}

	tk.elapsed = bcdAdd(tk.elapsed, tickStep)
	if tk.elapsed == maxElapsed {
		tk.running = false
	}
}

// Start resumes counting. Starting while pinned at the maximum is
// accepted: the very next slow tick clears the flag again.
func (tk *timeKeeper) Start() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.running = true
}

// Pause freezes the reading. Idempotent.
func (tk *timeKeeper) Pause() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.running = false
}

// Reset zeroes the reading and stops counting, from any state. This is
// the only way out of the overflow-stopped state.
func (tk *timeKeeper) Reset() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.elapsed = 0
	tk.running = false
}

// Snapshot returns the current reading for display or inspection.
func (tk *timeKeeper) Snapshot() uint16 {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.elapsed
}

func (tk *timeKeeper) Running() bool {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.running
}

func (tk *timeKeeper) String() string {
	return "TIMEKEEPER"
}
