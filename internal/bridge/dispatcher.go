package bridge

import "sync"

// Dispatcher marshals completion work onto a caller-chosen execution
// context. Transport goroutines never touch shared state directly; they hand
// closures to the Dispatcher, which is expected to run them serially.
type Dispatcher interface {
	Dispatch(fn func())
}

// Direct runs work inline on the calling goroutine. It is the right choice
// for CLI flows and tests that block on each result anyway; it provides no
// serialization across goroutines on its own.
type Direct struct{}

func (Direct) Dispatch(fn func()) { fn() }

// SerialDispatcher queues work and runs it one closure at a time on the
// goroutine that calls Run, mirroring a UI main loop. Dispatch never blocks
// the transport side as long as Run is draining.
type SerialDispatcher struct {
	queue     chan func()
	closeOnce sync.Once
}

// NewSerialDispatcher returns a dispatcher ready for Dispatch calls. Run
// must be started for queued work to execute.
func NewSerialDispatcher() *SerialDispatcher {
	return &SerialDispatcher{queue: make(chan func(), 64)}
}

// Dispatch enqueues fn for the Run loop.
func (d *SerialDispatcher) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	d.queue <- fn
}

// Run executes queued work until Close is called and the queue drains.
func (d *SerialDispatcher) Run() {
	for fn := range d.queue {
		fn()
	}
}

// Close stops the Run loop once pending work has drained. Callers must not
// Dispatch after Close.
func (d *SerialDispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
}
