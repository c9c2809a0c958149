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

// recoverFuture implements the Future returned by Recover.
type recoverFuture struct {
	src      Future
	fallback interface{}
}

// Poll implements Future.
func (f *recoverFuture) Poll(waker Waker) (PollResult, error) {
	result, err := f.src.Poll(waker)
	if err != nil {
		if IsFatal(err) {
			return nil, err
		}
		return f.fallback, nil
	}
	return result, nil
}

// Recover replaces an ordinary failure of src with the given fallback value. A success of src
// passes through untouched, and a fatal failure (see Fatal) propagates unchanged: fatal errors
// signal conditions the caller must not paper over.
func Recover(src Future, fallback interface{}) Future {
	return &recoverFuture{
		src:      src,
		fallback: fallback,
	}
}
