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

// sequence implements the Future returned by Sequence. first is nil'ed once the first computation
// has settled successfully; from then on second holds the running second computation.
type sequence struct {
	first         Future
	firstValue    interface{}
	secondFactory Factory
	second        Future
}

// Poll implements Future.
func (f *sequence) Poll(waker Waker) (PollResult, error) {
	if f.second == nil {
		result, err := f.first.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result == PollResultPending {
			return PollResultPending, nil
		}

		// The first computation succeeded; only now may the second one start.
		f.firstValue = result
		f.first = nil
		f.second = f.secondFactory()
	}

	result, err := f.second.Poll(waker)
	if err != nil {
		return nil, err
	}
	if result == PollResultPending {
		return PollResultPending, nil
	}

	return Pair{First: f.firstValue, Second: result}, nil
}

// Sequence runs two computations strictly one after the other. first is invoked immediately;
// second is invoked only after the first computation has settled successfully, never concurrently
// with it. If the first computation fails, the combined future fails with that error and second is
// never invoked. If the second computation fails, the combined future fails with its error. When
// both succeed the future settles with the ordered Pair of their values.
func Sequence(first, second Factory) Future {
	return &sequence{
		first:         first(),
		secondFactory: second,
	}
}
