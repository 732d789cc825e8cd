package bridge

import "sync"

// completion enforces the one-notification-per-request guarantee. The first
// deliver wins; later attempts are dropped rather than left to caller
// discipline.
type completion[T any] struct {
	once       sync.Once
	dispatcher Dispatcher
	callback   func(Outcome[T])
}

func newCompletion[T any](dispatcher Dispatcher, callback func(Outcome[T])) *completion[T] {
	return &completion[T]{dispatcher: dispatcher, callback: callback}
}

func (c *completion[T]) deliver(outcome Outcome[T]) {
	c.once.Do(func() {
		if c.callback == nil {
			return
		}
		c.dispatcher.Dispatch(func() {
			c.callback(outcome)
		})
	})
}
