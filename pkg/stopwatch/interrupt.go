package stopwatch

// interruptSource is a pending-edge latch. An event source calls Set
// when its edge fires; the handler consumes the edge with ReadAndClear
// so the same edge is never processed twice.
type interruptSource struct {
	pending bool
}

func newInterruptSource() *interruptSource {
	return &interruptSource{}
}

func (i *interruptSource) Set() {
	i.pending = true
}

func (i *interruptSource) ReadAndClear() bool {
	result := i.pending
	i.pending = false
	return result
}

func (i *interruptSource) Pending() bool {
	return i.pending
}
