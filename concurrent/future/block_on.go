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

// BlockOn drives f on the calling goroutine until it settles and returns its outcome. Each time f
// returns PollResultPending the goroutine parks until the registered Waker fires.
//
// BlockOn is the minimal single-task executor. It is mainly useful in tests and at the outermost
// edge of a program; everywhere else, futures should be driven by an executor (see the concurrent
// package) so that a pending future suspends instead of holding a goroutine.
func BlockOn(f Future) (interface{}, error) {
	wake := make(chan struct{}, 1)
	waker := WakerFunc(func() error {
		select {
		case wake <- struct{}{}:
		default:
			// A wakeup is already pending; coalesce.
		}
		return nil
	})

	for {
		result, err := f.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result != PollResultPending {
			return result, nil
		}
		<-wake
	}
}
