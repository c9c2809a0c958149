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

// A Future is the handle to an asynchronous computation: a value that has not necessarily finished
// computing yet. It settles exactly once, either with a value or with an error, and never settles
// twice. The design follows the poll-based model pioneered by Rust's futures [0]: a Future is
// inert on its own and only makes progress when something (an executor, or BlockOn) polls it.
//
// Combinators in this package wrap Futures into new Futures. They suspend by propagating the Waker
// they were polled with into the Future they wait on and returning PollResultPending; they never
// block the polling goroutine and never poll in a tight loop. When the inner computation can make
// progress it calls Wake on the registered Waker, which tells whoever drives the outer Future to
// poll it again.
//
// [0]: https://aturon.github.io/blog/2016/09/07/futures-design/
type Future interface {
	// Poll attempts to resolve the future to its final value.
	//
	// The return values are interpreted as follows:
	//
	//	* (any, err): the future settled with the error err.
	//	* (PollResultPending, nil): the future has not settled yet. waker has been registered and its
	//	  Wake will be called when the future is ready to make progress.
	//	* (value other than PollResultPending, nil): the future settled successfully with value.
	//
	// Poll must return quickly and must never block. Once a future has settled, callers must not
	// poll it again.
	//
	// On multiple polls, only the most recently registered Waker is guaranteed to receive the
	// wakeup.
	Poll(waker Waker) (PollResult, error)
}

// A Factory produces a fresh, independently started Future on every invocation. The distinction
// between a Future (one computation, started once) and a Factory (restart-capable) matters:
// combinators that may need to start a computation more than once (Insist) or at a point of their
// own choosing (Sequence, Both, Pipeline) take a Factory, while combinators that only observe an
// outcome (Transform, Recover) take the Future itself.
type Factory func() Future
