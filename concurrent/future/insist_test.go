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

package future_test

import (
	"errors"

	"github.com/everdrift/eventual/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Insist: bounded retry of a computation factory", func() {
	It("succeeds once an attempt succeeds, invoking the factory once per attempt", func() {
		attempts := &countingFactory{fn: func(invocation int) future.Future {
			if invocation < 3 {
				return future.Err(errors.New("transient"))
			}
			return future.Ready(42)
		}}

		f := future.Insist(attempts.factory(), 3)
		Expect(future.BlockOn(f)).Should(Equal(42))
		Expect(attempts.invocations).Should(Equal(3))
	})

	It("does not retry after a success", func() {
		attempts := &countingFactory{fn: func(int) future.Future {
			return future.Ready("first try")
		}}

		f := future.Insist(attempts.factory(), 5)
		Expect(future.BlockOn(f)).Should(Equal("first try"))
		Expect(attempts.invocations).Should(Equal(1))
	})

	It("stops after exactly maxAttempts failed attempts", func() {
		attemptErr := errors.New("always failing")
		attempts := &countingFactory{fn: func(int) future.Future {
			return future.Err(attemptErr)
		}}

		f := future.Insist(attempts.factory(), 2)
		_, err := future.BlockOn(f)
		Expect(attempts.invocations).Should(Equal(2))
		Expect(future.IsAttemptsExhausted(err)).Should(BeTrue())
	})

	It("fails immediately with a zero attempt budget, never invoking the factory", func() {
		attempts := &countingFactory{fn: func(int) future.Future {
			return future.Ready("unreachable")
		}}

		f := future.Insist(attempts.factory(), 0)
		_, err := future.BlockOn(f)
		Expect(future.IsAttemptsExhausted(err)).Should(BeTrue())
		Expect(attempts.invocations).Should(Equal(0))
	})

	It("reports exhaustion as a synthesized error that still wraps the last attempt's error", func() {
		attemptErr := errors.New("always failing")
		attempts := &countingFactory{fn: func(int) future.Future {
			return future.Err(attemptErr)
		}}

		f := future.Insist(attempts.factory(), 3)
		_, err := future.BlockOn(f)
		Expect(attempts.invocations).Should(Equal(3))

		// The terminal error is the exhaustion value, not the last attempt's own error...
		var exhausted *future.AttemptsExhaustedError
		Expect(errors.As(err, &exhausted)).Should(BeTrue())
		Expect(exhausted.Attempts).Should(Equal(3))

		// ...but the last attempt's error stays reachable.
		Expect(errors.Is(err, attemptErr)).Should(BeTrue())
	})

	It("propagates a fatal failure immediately without spending further attempts", func() {
		fatalErr := future.Fatal(errors.New("configuration rejected"))
		attempts := &countingFactory{fn: func(int) future.Future {
			return future.Err(fatalErr)
		}}

		f := future.Insist(attempts.factory(), 5)
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(fatalErr))
		Expect(future.IsFatal(err)).Should(BeTrue())
		Expect(future.IsAttemptsExhausted(err)).Should(BeFalse())
		Expect(attempts.invocations).Should(Equal(1))
	})

	It("retries across attempts that settle asynchronously", func() {
		var (
			firstAttempt  = newManualFuture()
			secondAttempt = newManualFuture()
		)
		attempts := &countingFactory{fn: func(invocation int) future.Future {
			if invocation == 1 {
				return firstAttempt
			}
			return secondAttempt
		}}

		f := future.Insist(attempts.factory(), 2)

		result, err := f.Poll(future.NopWaker)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result).Should(Equal(future.PollResultPending))
		Expect(attempts.invocations).Should(Equal(1))

		// The first attempt fails after a while; the next poll starts a fresh attempt rather than
		// replaying the failed one.
		firstAttempt.fail(errors.New("transient"))
		result, err = f.Poll(future.NopWaker)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result).Should(Equal(future.PollResultPending))
		Expect(attempts.invocations).Should(Equal(2))

		secondAttempt.succeed("recovered")
		Expect(f.Poll(future.NopWaker)).Should(Equal("recovered"))
	})
})
