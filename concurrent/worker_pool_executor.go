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
	"fmt"
	"sync"
	"time"
)

//===----------------------------------------------------------------------------------------====//
// WorkerPoolExecutorConfig
//===----------------------------------------------------------------------------------------====//

// WorkerPoolExecutorConfig contains options to configure a WorkerPoolExecutor.
type WorkerPoolExecutorConfig struct {
	// The maximum number of workers allowed in pool (required, must be greater than 0)
	MaxPoolSize uint32

	// The minimum number of workers to maintain in pool
	MinPoolSize uint32

	// The maximum time for an idle worker above MinPoolSize to wait for a new task before exiting
	KeepAliveTime time.Duration

	// Queue provides storage for queueing tasks. If not set, a blockingQueue is created and used.
	Queue Queue
}

// Validate verifies config values.
func (config *WorkerPoolExecutorConfig) Validate() error {
	if config.MaxPoolSize == 0 {
		return errors.New(`WorkerPoolExecutor: MaxPoolSize must be a non-zero value which specifies ` +
			`the maximum number of workers to be created by the executor. If you have no idea, try to ` +
			`set the value to uint32(runtime.GOMAXPROCS(-1)).`)
	}

	if config.MaxPoolSize < config.MinPoolSize {
		return fmt.Errorf(`WorkerPoolExecutor: MaxPoolSize (%d) should be greater than MinPoolSize (%d)`,
			config.MaxPoolSize, config.MinPoolSize)
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// poolTask
//===----------------------------------------------------------------------------------------====//

// poolTask implements TaskHandle for a Task executed in a WorkerPoolExecutor. The result is
// single-assignment: settle runs at most once and closes done to release all waiters.
type poolTask struct {
	Task
	executor *WorkerPoolExecutor

	settleOnce sync.Once
	done       chan struct{}

	// Valid after done is closed.
	result interface{}
	err    error
}

var (
	_ Task       = (*poolTask)(nil)
	_ TaskHandle = (*poolTask)(nil)
)

func newPoolTask(task Task, executor *WorkerPoolExecutor) *poolTask {
	return &poolTask{
		Task:     task,
		executor: executor,
		done:     make(chan struct{}),
	}
}

// settle records the execution result and releases waiters blocked in AwaitResult. Later calls are
// no-ops.
func (task *poolTask) settle(result interface{}, err error) {
	task.settleOnce.Do(func() {
		task.result = result
		task.err = err
		close(task.done)
	})
}

// Cancel implements TaskHandle.
func (task *poolTask) Cancel() error {
	// Request the executor to pull the task off its queue. This fails once a worker picked the task
	// up.
	if err := task.executor.cancelTask(task); err != nil {
		return err
	}
	task.settle(nil, ErrTaskCancelled)
	return nil
}

// AwaitResult implements TaskHandle.
func (task *poolTask) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-task.done:
		case <-timer.C:
			return nil, ErrAwaitTaskResultTimeout
		}
	} else {
		<-task.done
	}
	return task.result, task.err
}

//===----------------------------------------------------------------------------------------====//
// WorkerPoolExecutor
//===----------------------------------------------------------------------------------------====//

// WorkerPoolExecutor runs submitted tasks on a pool of goroutine-backed workers. The pool does not
// preallocate workers; a worker is created when a task arrives and no idle worker is around, up to
// MaxPoolSize. Workers above MinPoolSize that stay idle for KeepAliveTime exit on their own. The
// shape of the pool (on-demand growth, keep-alive reaping, queue hand-off) follows Doug Lea's
// PooledExecutor [0].
//
// [0]: http://gee.cs.oswego.edu/dl/classes/EDU/oswego/cs/dl/util/concurrent/intro.html
type WorkerPoolExecutor struct {
	config    *WorkerPoolExecutorConfig
	taskQueue Queue

	// mu guards the fields below.
	mu           sync.Mutex
	workerCount  uint32
	idleWorkers  uint32
	shutdown     bool
	terminated   bool
	terminations []chan<- bool
}

// WorkerPoolExecutor implements Executor.
var _ Executor = (*WorkerPoolExecutor)(nil)

// NewWorkerPoolExecutor creates a WorkerPoolExecutor from the given config.
func NewWorkerPoolExecutor(config WorkerPoolExecutorConfig) (*WorkerPoolExecutor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	taskQueue := config.Queue
	if taskQueue == nil {
		taskQueue = newBlockingQueue()
	}

	return &WorkerPoolExecutor{
		config:    &config,
		taskQueue: taskQueue,
	}, nil
}

var (
	errRejectTaskDueToShuttingDown = errors.New("unable to execute task because executor is shutting down")
)

// Submit implements Executor.
//
// A new worker is created when the pool is below MinPoolSize, or when no worker is idle and the
// pool is below MaxPoolSize; otherwise the task is handed to an existing worker through the queue.
func (executor *WorkerPoolExecutor) Submit(task Task) (TaskHandle, error) {
	handle := newPoolTask(task, executor)

	executor.mu.Lock()
	if executor.shutdown {
		executor.mu.Unlock()
		return nil, errRejectTaskDueToShuttingDown
	}

	config := executor.config
	if executor.workerCount < config.MinPoolSize ||
		(executor.idleWorkers == 0 && executor.workerCount < config.MaxPoolSize) {
		executor.workerCount++
		executor.mu.Unlock()
		go executor.runWorker(handle)
		return handle, nil
	}
	executor.mu.Unlock()

	// Hand the task to an idle worker through the queue.
	if err := executor.taskQueue.Push(handle); err != nil {
		return nil, errRejectTaskDueToShuttingDown
	}
	return handle, nil
}

// Shutdown implements Executor.
func (executor *WorkerPoolExecutor) Shutdown() (terminated <-chan bool, err error) {
	termination := make(chan bool, 1)

	executor.mu.Lock()
	if executor.terminated {
		// Already terminated; fill the returned channel right away.
		termination <- true
		executor.mu.Unlock()
		return termination, nil
	}

	executor.terminations = append(executor.terminations, termination)
	first := !executor.shutdown
	executor.shutdown = true
	executor.mu.Unlock()

	if first {
		// Closing the queue unblocks workers parked on an empty queue; they drain what is left and
		// exit.
		executor.taskQueue.Close()
	}

	// Cover the case of a pool with no workers at all.
	executor.tryTerminate()

	return termination, nil
}

// runWorker is the worker run loop. firstTask may be nil, in which case the worker goes straight
// to the queue.
func (executor *WorkerPoolExecutor) runWorker(firstTask *poolTask) {
	task := firstTask
	for {
		if task == nil {
			task = executor.pollTask()
			if task == nil {
				break
			}
		}

		result, err := task.Task.Run()
		task.settle(result, err)
		task = nil
	}

	executor.workerExited()
}

// pollTask blocks the calling worker waiting for a task. It returns nil when the worker should
// exit: either the executor is shutting down and the queue is drained, or the worker is above
// MinPoolSize and stayed idle for KeepAliveTime.
func (executor *WorkerPoolExecutor) pollTask() *poolTask {
	config := executor.config

	for {
		executor.mu.Lock()
		redundant := executor.workerCount > config.MinPoolSize
		executor.idleWorkers++
		executor.mu.Unlock()

		var timeout time.Duration
		if redundant {
			timeout = config.KeepAliveTime
		}
		element, err := executor.taskQueue.Poll(timeout)

		executor.mu.Lock()
		executor.idleWorkers--
		executor.mu.Unlock()

		switch {
		case err == ErrQueuePollTimeout:
			// Idled out. The worker is redundant or it would not have polled with a timeout.
			return nil
		case err != nil:
			// Queue misbehaved; keep polling.
			continue
		case element == nil:
			// Queue closed and drained.
			return nil
		default:
			return element.(*poolTask)
		}
	}
}

// workerExited bookkeeps a worker leaving the pool and drives termination or replacement.
func (executor *WorkerPoolExecutor) workerExited() {
	executor.mu.Lock()
	executor.workerCount--
	shutdown := executor.shutdown
	needReplacement := !shutdown && executor.workerCount == 0 && !executor.taskQueue.Empty()
	if needReplacement {
		// The last worker died with work still queued (all-idle-timeout race). Replace it.
		executor.workerCount++
	}
	executor.mu.Unlock()

	if needReplacement {
		go executor.runWorker(nil)
		return
	}
	if shutdown {
		executor.tryTerminate()
	}
}

// cancelTask tries to remove the task from the queue to stop its execution.
func (executor *WorkerPoolExecutor) cancelTask(task *poolTask) error {
	if err := executor.taskQueue.Remove(task); err != nil {
		return err
	}

	// Removing the last queued task may be the missing piece of the termination condition.
	executor.tryTerminate()

	return nil
}

// tryTerminate transitions to terminated and fires the termination notifications once the executor
// is shut down with no workers left and nothing queued.
func (executor *WorkerPoolExecutor) tryTerminate() {
	executor.mu.Lock()
	if !executor.shutdown || executor.terminated ||
		executor.workerCount > 0 || !executor.taskQueue.Empty() {
		executor.mu.Unlock()
		return
	}

	executor.terminated = true
	terminations := executor.terminations
	executor.terminations = nil
	executor.mu.Unlock()

	for _, termination := range terminations {
		termination <- true
	}
}
