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

package future

// insist implements the Future returned by Insist. attempt is the running attempt, or nil between
// attempts; remaining counts the factory invocations still permitted.
type insist struct {
	factory   Factory
	budget    int
	remaining int
	attempt   Future
	lastErr   error
}

// Poll implements Future.
func (f *insist) Poll(waker Waker) (PollResult, error) {
	for {
		if f.attempt == nil {
			if f.remaining == 0 {
				return nil, &AttemptsExhaustedError{
					Attempts: f.budget,
					LastErr:  f.lastErr,
				}
			}
			f.remaining--
			f.attempt = f.factory()
		}

		result, err := f.attempt.Poll(waker)
		if err != nil {
			if IsFatal(err) {
				return nil, err
			}
			// An ordinary failure consumes the attempt. The failed attempt's future is discarded; the
			// next loop iteration starts a fresh one from the factory.
			f.lastErr = err
			f.attempt = nil
			continue
		}
		if result == PollResultPending {
			return PollResultPending, nil
		}
		return result, nil
	}
}

// Insist re-invokes factory until one of its computations succeeds, spending at most maxAttempts
// invocations. Each attempt is a fresh, independent computation; a failed attempt's handle is
// never replayed. An ordinary failure consumes one attempt; a fatal failure (see Fatal) terminates
// Insist immediately, propagating unchanged without spending further attempts. When the budget
// runs out without a success (including maxAttempts <= 0, where factory is never invoked), the
// future fails with an *AttemptsExhaustedError rather than the last attempt's own error; see that
// type for the rationale.
func Insist(factory Factory, maxAttempts int) Future {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &insist{
		factory:   factory,
		budget:    maxAttempts,
		remaining: maxAttempts,
	}
}
