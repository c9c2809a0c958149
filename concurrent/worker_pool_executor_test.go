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

package concurrent_test

import (
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/everdrift/eventual/concurrent"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WorkerPoolExecutor", func() {
	It("cannot be created with an invalid pool size", func() {
		var err error

		_, err = concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{})
		Expect(err.Error()).Should(ContainSubstring("MaxPoolSize must be a non-zero value"))

		_, err = concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MaxPoolSize: 50,
			MinPoolSize: 100,
		})
		Expect(err.Error()).Should(ContainSubstring("MaxPoolSize (50) should be greater than MinPoolSize (100)"))
	})

	It("executes a task and delivers its result", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MinPoolSize: 0,
			MaxPoolSize: uint32(runtime.GOMAXPROCS(-1)),
		})
		Expect(err).ShouldNot(HaveOccurred())

		handle, err := executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return "task result", nil
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(handle.AwaitResult(0)).Should(Equal("task result"))

		Expect(shutdownExecutor(executor)).Should(Succeed())
	})

	It("delivers a task's error", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MaxPoolSize: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())

		taskErr := errors.New("task failed")
		handle, err := executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return nil, taskErr
		}))
		Expect(err).ShouldNot(HaveOccurred())

		_, err = handle.AwaitResult(0)
		Expect(err).Should(MatchError(taskErr))

		Expect(shutdownExecutor(executor)).Should(Succeed())
	})

	It("executes many tasks on a bounded pool", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MinPoolSize: 4,
			MaxPoolSize: 8,
		})
		Expect(err).ShouldNot(HaveOccurred())

		const times = 100

		var x int32
		task := concurrent.TaskFunc(func() (interface{}, error) {
			atomic.AddInt32(&x, 1)
			return nil, nil
		})

		for i := 0; i < times; i++ {
			_, err := executor.Submit(task)
			Expect(err).ShouldNot(HaveOccurred())
		}

		// Shutdown drains the queue before terminating.
		Expect(shutdownExecutor(executor)).Should(Succeed())
		Expect(atomic.LoadInt32(&x)).Should(Equal(int32(times)))
	})

	It("can cancel a queued task but not a running one", func() {
		// Pool of size 1: the first task occupies the only worker and the second stays queued.
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MinPoolSize: 1,
			MaxPoolSize: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())

		var (
			enterFirstTask = make(chan bool, 1)
			stopFirstTask  = make(chan bool, 1)
		)
		firstHandle, err := executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			enterFirstTask <- true
			<-stopFirstTask
			return "first task result", nil
		}))
		Expect(err).ShouldNot(HaveOccurred())

		// Wait until the first task is running; it cannot be cancelled anymore.
		<-enterFirstTask
		Expect(firstHandle.Cancel()).ShouldNot(Succeed())

		secondHandle, err := executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return "second task", nil
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(secondHandle.Cancel()).Should(Succeed())

		stopFirstTask <- true
		Expect(shutdownExecutor(executor)).Should(Succeed())

		Expect(firstHandle.AwaitResult(0)).Should(Equal("first task result"))

		_, secondErr := secondHandle.AwaitResult(0)
		Expect(secondErr).Should(MatchError(concurrent.ErrTaskCancelled))
	})

	It("times out waiting for a result", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MaxPoolSize: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())

		release := make(chan bool)
		handle, err := executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			<-release
			return "slow result", nil
		}))
		Expect(err).ShouldNot(HaveOccurred())

		_, err = handle.AwaitResult(10 * time.Millisecond)
		Expect(err).Should(MatchError(concurrent.ErrAwaitTaskResultTimeout))

		release <- true
		Expect(handle.AwaitResult(0)).Should(Equal("slow result"))
		Expect(shutdownExecutor(executor)).Should(Succeed())
	})

	It("rejects tasks after shutdown", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MaxPoolSize: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(shutdownExecutor(executor)).Should(Succeed())

		_, err = executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			return nil, nil
		}))
		Expect(err).Should(HaveOccurred())
	})

	It("reports termination to every shutdown caller", func() {
		executor, err := concurrent.NewWorkerPoolExecutor(concurrent.WorkerPoolExecutorConfig{
			MaxPoolSize: 2,
		})
		Expect(err).ShouldNot(HaveOccurred())

		first, err := executor.Shutdown()
		Expect(err).ShouldNot(HaveOccurred())
		second, err := executor.Shutdown()
		Expect(err).ShouldNot(HaveOccurred())

		Expect(<-first).Should(BeTrue())
		Expect(<-second).Should(BeTrue())
	})
})
