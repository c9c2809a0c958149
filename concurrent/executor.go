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
	"time"
)

// Task represents a unit of work that can be executed by an Executor.
type Task interface {
	// Run performs the work. The return values are delivered to the corresponding TaskHandle and can
	// be read via AwaitResult.
	Run() (interface{}, error)
}

// The TaskFunc type is an adapter to allow the use of ordinary functions as a Task.
type TaskFunc func() (interface{}, error)

// TaskFunc implements Task.
var _ Task = (TaskFunc)(nil)

// Run implements Task. It calls f().
func (f TaskFunc) Run() (interface{}, error) {
	return f()
}

// Error values returned from TaskHandle methods.
var (
	// ErrTaskCancelled indicates the task was cancelled before it started running.
	ErrTaskCancelled = errors.New("task was cancelled")

	// ErrAwaitTaskResultTimeout indicates AwaitResult ran out of time waiting for the result.
	ErrAwaitTaskResultTimeout = errors.New("timeout while waiting for task result")
)

// TaskHandle tracks progress of a submitted Task. It can be used to cancel execution and to wait
// for completion.
type TaskHandle interface {
	// Cancel tries to cancel execution of the associated task. It fails if the task already started
	// running.
	Cancel() error

	// AwaitResult blocks the caller until the task completed, or until timeout elapsed when timeout
	// is positive. Possible return values:
	//
	//	1. (nil, ErrTaskCancelled): the task was cancelled.
	//	2. (nil, ErrAwaitTaskResultTimeout): timeout elapsed before the task completed.
	//	3. Otherwise: the values returned from the Run method of the task.
	AwaitResult(timeout time.Duration) (interface{}, error)
}

// Executor runs submitted tasks on some pool of workers. The library's combinators (see the future
// package) impose ordering constraints between settlements only; which worker runs what, and when,
// is entirely the Executor's business.
type Executor interface {
	// Submit arranges task for execution. The actual execution may occur at any later time, on any
	// worker.
	Submit(task Task) (TaskHandle, error)

	// Shutdown shuts down the executor. Previously submitted tasks are still executed but no new
	// tasks are accepted. It is a no-op if the executor is already shut down. The returned channel
	// receives a value once all remaining tasks have completed.
	Shutdown() (terminated <-chan bool, err error)
}
