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
	"sync"
	"time"

	"github.com/everdrift/eventual/concurrent/future"
)

// This file bridges the two halves of the library: SubmitFuture turns a Task running on an
// Executor into a Future, and Spawn drives a Future (typically a combinator tree) to completion on
// an Executor, one poll step per wakeup.

//===----------------------------------------------------------------------------------------====//
// SubmitFuture
//===----------------------------------------------------------------------------------------====//

// taskFuture is the Future returned by SubmitFuture. It is single-writer (settled exactly once by
// the task completion) and keeps only the most recently registered Waker, per the Poll contract.
type taskFuture struct {
	mu      sync.Mutex
	settled bool
	result  interface{}
	err     error
	waker   future.Waker
}

var _ future.Future = (*taskFuture)(nil)

// Poll implements future.Future.
func (f *taskFuture) Poll(waker future.Waker) (future.PollResult, error) {
	f.mu.Lock()
	if f.settled {
		result, err := f.result, f.err
		f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	f.waker = waker
	f.mu.Unlock()
	return future.PollResultPending, nil
}

// settle records the outcome and wakes the registered continuation, if any.
func (f *taskFuture) settle(result interface{}, err error) {
	f.mu.Lock()
	f.settled = true
	f.result, f.err = result, err
	waker := f.waker
	f.waker = nil
	f.mu.Unlock()

	if waker != nil {
		// A failed wake means whoever polled us is no longer being driven; the outcome stays
		// available through Poll regardless.
		_ = waker.Wake()
	}
}

// SubmitFuture submits task to the executor and returns a Future that settles with the task's
// outcome. The task starts immediately (as immediately as the executor allows); the returned
// future merely observes its settlement. Wrap a SubmitFuture call in a future.Factory to obtain
// the restartable computations that Sequence, Both, Pipeline and Insist consume.
func SubmitFuture(executor Executor, task Task) (future.Future, error) {
	f := &taskFuture{}
	_, err := executor.Submit(TaskFunc(func() (interface{}, error) {
		result, err := task.Run()
		f.settle(result, err)
		return result, err
	}))
	if err != nil {
		return nil, err
	}
	return f, nil
}

//===----------------------------------------------------------------------------------------====//
// Spawn
//===----------------------------------------------------------------------------------------====//

// SpawnHandle reports the outcome of a future driven by Spawn.
type SpawnHandle struct {
	settleOnce sync.Once
	done       chan struct{}

	// Valid after done is closed.
	result interface{}
	err    error
}

func (handle *SpawnHandle) settle(result interface{}, err error) {
	handle.settleOnce.Do(func() {
		handle.result = result
		handle.err = err
		close(handle.done)
	})
}

// Done returns a channel that is closed once the driven future has settled.
func (handle *SpawnHandle) Done() <-chan struct{} {
	return handle.done
}

// AwaitResult blocks the caller until the driven future settled, or until timeout elapsed when
// timeout is positive, in which case it returns ErrAwaitTaskResultTimeout.
func (handle *SpawnHandle) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-handle.done:
		case <-timer.C:
			return nil, ErrAwaitTaskResultTimeout
		}
	} else {
		<-handle.done
	}
	return handle.result, handle.err
}

// Spawn driver states.
const (
	// No poll step is scheduled; the next Wake schedules one.
	spawnIdle = iota
	// A poll step is queued or running.
	spawnScheduled
	// A Wake arrived while a poll step was running; one more step follows.
	spawnNotified
)

// spawnDriver drives a Future on an Executor. Every wakeup translates into exactly one submitted
// poll step; the state machine guarantees the future is never polled by two workers at once and
// that no wakeup is lost between a pending poll and the next registration.
type spawnDriver struct {
	executor Executor
	f        future.Future
	handle   *SpawnHandle

	mu    sync.Mutex
	state int
}

// wake implements the Waker registered with the driven future.
func (d *spawnDriver) wake() error {
	d.mu.Lock()
	switch d.state {
	case spawnIdle:
		d.state = spawnScheduled
		d.mu.Unlock()
		return d.schedule()
	case spawnScheduled:
		d.state = spawnNotified
	}
	d.mu.Unlock()
	return nil
}

// schedule submits one poll step. A submit failure (executor shut down) settles the handle with
// that error: the future can no longer be driven.
func (d *spawnDriver) schedule() error {
	_, err := d.executor.Submit(TaskFunc(d.pollStep))
	if err != nil {
		d.handle.settle(nil, err)
	}
	return err
}

// pollStep performs a single poll of the driven future.
func (d *spawnDriver) pollStep() (interface{}, error) {
	result, err := d.f.Poll(future.WakerFunc(d.wake))
	if err != nil {
		d.handle.settle(nil, err)
		return nil, err
	}
	if result != future.PollResultPending {
		d.handle.settle(result, nil)
		return result, nil
	}

	// Still pending. If a wakeup arrived while we were polling, run another step; otherwise park
	// until the registered waker fires.
	d.mu.Lock()
	if d.state == spawnNotified {
		d.state = spawnScheduled
		d.mu.Unlock()
		d.schedule()
	} else {
		d.state = spawnIdle
		d.mu.Unlock()
	}
	return nil, nil
}

// Spawn drives f to completion on the executor and returns a handle to its outcome. f is polled on
// a worker; while it is pending no worker is held, and each Wake of the registered continuation
// re-submits exactly one poll step. This is the executor-backed counterpart of future.BlockOn.
func Spawn(executor Executor, f future.Future) (*SpawnHandle, error) {
	d := &spawnDriver{
		executor: executor,
		f:        f,
		handle:   &SpawnHandle{done: make(chan struct{})},
		state:    spawnScheduled,
	}
	if err := d.schedule(); err != nil {
		return nil, err
	}
	return d.handle, nil
}
