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

// join implements the Future returned by Join. Settled inputs are nil'ed so they are never polled
// again; pending counts the inputs that have not settled yet.
type join struct {
	inputs  []Future
	results []interface{}
	pending int
}

// Poll implements Future.
func (f *join) Poll(waker Waker) (PollResult, error) {
	for i, input := range f.inputs {
		if input == nil {
			continue
		}

		result, err := input.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result != PollResultPending {
			f.results[i] = result
			f.inputs[i] = nil
			f.pending--
		}
	}

	if f.pending == 0 {
		return f.results, nil
	}
	return PollResultPending, nil
}

// Join creates a Future which aggregates the values of a collection of Futures into an
// []interface{} in the same order as they are given. The inputs make progress independently of one
// another; the joined future fails with the first failure it observes and leaves the remaining
// inputs to run out on their own. Both is the two-input, factory-taking special case.
func Join(f ...Future) Future {
	return &join{
		inputs:  f,
		results: make([]interface{}, len(f)),
		pending: len(f),
	}
}
