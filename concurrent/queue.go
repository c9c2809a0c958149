/**
 * Copyright (c) 2026, The Eventual Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrQueueClosed is returned by Push to indicate the queue cannot accept the new element because
	// it is closed.
	ErrQueueClosed = errors.New("queue: closed")

	// ErrQueuePollTimeout is returned by Poll to indicate no element showed up within the timeout.
	ErrQueuePollTimeout = errors.New("queue: poll timeout")

	// ErrElementNotFound is returned by Remove to indicate the given element is not in the queue.
	ErrElementNotFound = errors.New("queue: given element is not found in the queue")
)

// Queue stores a collection of objects in FIFO order. Implementations must be safe for concurrent
// use by multiple goroutines.
type Queue interface {
	// Push inserts the specified element into this queue. It returns nil if the element was
	// inserted. The element cannot be nil.
	Push(element interface{}) error

	// Poll pops one element from the head of this queue, waiting for one to arrive when the queue
	// is empty. A non-positive timeout waits indefinitely; a positive timeout bounds the wait and
	// ErrQueuePollTimeout is returned when it elapses. Once the queue is closed and drained, Poll
	// returns (nil, nil) immediately.
	Poll(timeout time.Duration) (interface{}, error)

	// Remove removes the given element from the queue.
	Remove(element interface{}) error

	// Empty returns true if the queue contains no elements.
	Empty() bool

	// Close stops the queue from accepting new elements. Elements already in the queue remain
	// available via Poll; subsequent calls to Push return ErrQueueClosed.
	Close()
}

// blockingQueue is the Queue used by WorkerPoolExecutor when no custom queue is configured. It is
// a plain slice guarded by a mutex; waiters park on a broadcast channel that is closed and
// replaced on every Push.
type blockingQueue struct {
	mu     sync.Mutex
	items  []interface{}
	arrive chan struct{}
	closed bool
}

var _ Queue = (*blockingQueue)(nil)

func newBlockingQueue() *blockingQueue {
	return &blockingQueue{
		arrive: make(chan struct{}),
	}
}

// Push implements Queue.
func (queue *blockingQueue) Push(element interface{}) error {
	queue.mu.Lock()
	if queue.closed {
		queue.mu.Unlock()
		return ErrQueueClosed
	}
	queue.items = append(queue.items, element)

	// Broadcast arrival by closing the channel all waiters currently park on.
	close(queue.arrive)
	queue.arrive = make(chan struct{})
	queue.mu.Unlock()

	return nil
}

// Poll implements Queue.
func (queue *blockingQueue) Poll(timeout time.Duration) (interface{}, error) {
	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	for {
		queue.mu.Lock()
		if len(queue.items) > 0 {
			element := queue.items[0]
			queue.items = queue.items[1:]
			queue.mu.Unlock()
			return element, nil
		}
		if queue.closed {
			queue.mu.Unlock()
			return nil, nil
		}
		arrive := queue.arrive
		queue.mu.Unlock()

		select {
		case <-arrive:
			// Something was pushed (or the queue was closed); re-check under the lock. Another poller
			// may win the race for the element, in which case we park again.
		case <-timeoutC:
			return nil, ErrQueuePollTimeout
		}
	}
}

// Remove implements Queue.
func (queue *blockingQueue) Remove(element interface{}) error {
	queue.mu.Lock()
	for i, item := range queue.items {
		if item == element {
			queue.items = append(queue.items[:i], queue.items[i+1:]...)
			queue.mu.Unlock()
			return nil
		}
	}
	queue.mu.Unlock()
	return ErrElementNotFound
}

// Empty implements Queue.
func (queue *blockingQueue) Empty() bool {
	queue.mu.Lock()
	empty := len(queue.items) == 0
	queue.mu.Unlock()
	return empty
}

// Close implements Queue.
func (queue *blockingQueue) Close() {
	queue.mu.Lock()
	if !queue.closed {
		queue.closed = true
		// Unblock current waiters.
		close(queue.arrive)
		queue.arrive = make(chan struct{})
	}
	queue.mu.Unlock()
}
