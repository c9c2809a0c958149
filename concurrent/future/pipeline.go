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

// A Stage is one dependent step of a Pipeline: it receives the settled value of its predecessor
// and starts the computation that produces its own.
type Stage func(input interface{}) Future

// pipeline implements the Future returned by Pipeline. current is the running stage; stages holds
// the ones not started yet.
type pipeline struct {
	current Future
	stages  []Stage
}

// Poll implements Future.
func (f *pipeline) Poll(waker Waker) (PollResult, error) {
	for {
		result, err := f.current.Poll(waker)
		if err != nil {
			return nil, err
		}
		if result == PollResultPending {
			return PollResultPending, nil
		}
		if len(f.stages) == 0 {
			return result, nil
		}

		// The running stage succeeded; start the next one with its value.
		f.current = f.stages[0](result)
		f.stages = f.stages[1:]
	}
}

// Pipeline chains a fixed sequence of dependent async stages: source starts the first computation,
// and each stage is invoked with the settled value of its predecessor, only after that predecessor
// has succeeded. If any stage fails, the pipeline fails with that stage's error and no later stage
// is invoked. The pipeline settles with the last stage's value. Pipeline generalizes Sequence to
// any number of stages and shares its short-circuit policy; it differs in that stages consume
// their predecessor's output instead of producing an aggregate pair.
func Pipeline(source Factory, stages ...Stage) Future {
	return &pipeline{
		current: source(),
		stages:  stages,
	}
}
