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

// transform implements the Future returned by Transform.
type transform struct {
	src Future
	fn  func(interface{}) interface{}
}

// Poll implements Future.
func (f *transform) Poll(waker Waker) (PollResult, error) {
	result, err := f.src.Poll(waker)
	if err != nil {
		return nil, err
	}
	if result == PollResultPending {
		return PollResultPending, nil
	}
	return f.fn(result), nil
}

// Transform maps the success value of src through fn. If src settles with a value, the returned
// future settles with fn applied to that value; fn runs at most once, and only after src has
// settled successfully. When src settles with an error, the error passes through unchanged and fn
// is never invoked.
func Transform(src Future, fn func(interface{}) interface{}) Future {
	return &transform{
		src: src,
		fn:  fn,
	}
}
