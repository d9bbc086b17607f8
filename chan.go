// chan implements a source of records received from a channel.  It is an
// adapter for anything that produces records concurrently.

package relq

import (
	"context"
	"iter"
)

// FromChan yields each record received from ch until it is closed.  Records
// are copied as they are received, and a channel can only be read once, so
// the source cannot be iterated a second time with the same result.
//
// Stopping early leaves the remaining records in the channel; the sender is
// responsible for not blocking forever, for example with FromChanContext.
func FromChan[R any](ch <-chan R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for r := range ch {
			if !yield(&r) {
				return
			}
		}
	}
}

// FromChanContext is FromChan which also stops when ctx is done.
func FromChanContext[R any](ctx context.Context, ch <-chan R) iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for {
			select {
			case r, ok := <-ch:
				if !ok || !yield(&r) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

// Send sends each record of seq to a new channel from its own goroutine and
// closes the channel when the records run out.  Cancelling ctx stops the
// goroutine, after which the channel is closed without further records.
func Send[R any](ctx context.Context, seq iter.Seq[*R]) <-chan R {
	res := make(chan R)
	go func() {
		defer close(res)
		for r := range seq {
			select {
			case res <- *r:
			case <-ctx.Done():
				return
			}
		}
	}()
	return res
}
