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

// both implements the Future returned by Both. A settled input is nil'ed and its value parked in
// the corresponding result field so it is never polled again.
type both struct {
	first        Future
	second       Future
	firstResult  PollResult
	secondResult PollResult
}

// Poll implements Future.
func (f *both) Poll(waker Waker) (PollResult, error) {
	if f.first != nil {
		result, err := f.first.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result != PollResultPending {
			f.firstResult = result
			f.first = nil
		}
	}

	if f.second != nil {
		result, err := f.second.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result != PollResultPending {
			f.secondResult = result
			f.second = nil
		}
	}

	if f.first == nil && f.second == nil {
		return Pair{First: f.firstResult, Second: f.secondResult}, nil
	}
	return PollResultPending, nil
}

// Both runs two computations concurrently and joins their outcomes into an ordered Pair. Both
// factories are invoked immediately, before the returned future is first polled, and no ordering
// is imposed between the two computations. The combined future settles successfully only when both
// succeed; it fails with the first failure it observes, in which case the other computation is
// simply discarded and left to run out on its own (fire-and-forget, not awaited).
func Both(first, second Factory) Future {
	return &both{
		first:  first(),
		second: second(),
	}
}
